package entity

import (
	"errors"
	"fmt"
	"math"
)

// TileID identifies a tile in the level's tileset.
type TileID int

// EmptyTile marks a grid cell with no tile.
const EmptyTile TileID = -1

var (
	// ErrInvalidTileSize is returned when a stage is built with a non-positive tile size.
	ErrInvalidTileSize = errors.New("invalid tile size")
	// ErrInvalidEntityExtent is returned when a body is built with a non-positive width or height.
	ErrInvalidEntityExtent = errors.New("invalid entity extent")
)

// TileTags classifies tile ids as solid, hazard or climbable.
// It is built once from configuration and never mutated.
type TileTags struct {
	solid     map[TileID]struct{}
	hazard    map[TileID]struct{}
	climbable map[TileID]struct{}
}

// NewTileTags creates a tag table from the given id lists
func NewTileTags(solid, hazard, climbable []TileID) TileTags {
	return TileTags{
		solid:     toSet(solid),
		hazard:    toSet(hazard),
		climbable: toSet(climbable),
	}
}

func toSet(ids []TileID) map[TileID]struct{} {
	set := make(map[TileID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// IsSolid reports whether the tile blocks movement
func (t TileTags) IsSolid(id TileID) bool {
	return t.has(t.solid, id)
}

// IsHazard reports whether touching the tile kills
func (t TileTags) IsHazard(id TileID) bool {
	return t.has(t.hazard, id)
}

// IsClimbable reports whether the tile arms the wall-jump window
func (t TileTags) IsClimbable(id TileID) bool {
	return t.has(t.climbable, id)
}

func (t TileTags) has(set map[TileID]struct{}, id TileID) bool {
	if id == EmptyTile {
		return false
	}
	_, ok := set[id]
	return ok
}

// SpawnMarker is a named world position from a level's object layer
type SpawnMarker struct {
	Type string
	X, Y float64
}

// Stage is a loaded level: an immutable tile grid plus its spawn markers.
// Row 0 is the top row; world Y grows upward, so row gy spans
// world Y from -gy*TileSize down to -(gy+1)*TileSize.
type Stage struct {
	Width    int
	Height   int
	TileSize float64

	tiles   []TileID
	markers []SpawnMarker
}

// NewStage creates a stage from row-major tile ids.
func NewStage(width, height int, tileSize float64, tiles []TileID, markers []SpawnMarker) (*Stage, error) {
	if tileSize <= 0 || math.IsNaN(tileSize) || math.IsInf(tileSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTileSize, tileSize)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid stage size %dx%d", width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("stage has %d tiles, want %d", len(tiles), width*height)
	}

	s := &Stage{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		tiles:    make([]TileID, len(tiles)),
		markers:  make([]SpawnMarker, len(markers)),
	}
	copy(s.tiles, tiles)
	copy(s.markers, markers)
	return s, nil
}

// InBounds reports whether the grid coordinate lies inside the stage
func (s *Stage) InBounds(gx, gy int) bool {
	return gx >= 0 && gx < s.Width && gy >= 0 && gy < s.Height
}

// Tile returns the tile id at the given grid coordinate.
// ok is false when the coordinate is outside the grid.
func (s *Stage) Tile(gx, gy int) (id TileID, ok bool) {
	if !s.InBounds(gx, gy) {
		return EmptyTile, false
	}
	return s.tiles[gy*s.Width+gx], true
}

// Markers returns a copy of the stage's spawn markers in file order
func (s *Stage) Markers() []SpawnMarker {
	out := make([]SpawnMarker, len(s.markers))
	copy(out, s.markers)
	return out
}

// OccupiedTiles calls fn for every non-empty tile, row by row.
func (s *Stage) OccupiedTiles(fn func(gx, gy int, id TileID)) {
	for gy := 0; gy < s.Height; gy++ {
		for gx := 0; gx < s.Width; gx++ {
			if id := s.tiles[gy*s.Width+gx]; id != EmptyTile {
				fn(gx, gy, id)
			}
		}
	}
}

// WorldToTile converts a world position to the grid coordinate containing it
func (s *Stage) WorldToTile(wx, wy float64) (gx, gy int) {
	return WorldToTile(wx, wy, s.TileSize)
}

// TileToWorldCenter returns the world position of a tile's center
func (s *Stage) TileToWorldCenter(gx, gy int) (wx, wy float64) {
	return TileToWorldCenter(gx, gy, s.TileSize)
}

// WorldSize returns the stage extent in world units
func (s *Stage) WorldSize() (w, h float64) {
	return float64(s.Width) * s.TileSize, float64(s.Height) * s.TileSize
}

// WorldToTile floors both axes; Y is negated first. Collision resolution
// relies on this exact rounding at tile boundaries.
func WorldToTile(wx, wy, tileSize float64) (gx, gy int) {
	return int(math.Floor(wx / tileSize)), int(math.Floor(-wy / tileSize))
}

// TileToWorldCenter is the inverse of WorldToTile for tile centers
func TileToWorldCenter(gx, gy int, tileSize float64) (wx, wy float64) {
	return (float64(gx) + 0.5) * tileSize, -(float64(gy) + 0.5) * tileSize
}
