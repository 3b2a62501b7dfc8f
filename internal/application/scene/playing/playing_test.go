package playing

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/oof/internal/application/replay"
	"github.com/younwookim/oof/internal/application/scene"
	"github.com/younwookim/oof/internal/application/session"
	"github.com/younwookim/oof/internal/application/state"
	"github.com/younwookim/oof/internal/application/system"
	"github.com/younwookim/oof/internal/domain/entity"
	"github.com/younwookim/oof/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

const testLevel = `[header]
width=8
height=4

[layer]
data=
1,1,1,1,1,1,1,1
0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0
1,1,1,1,1,1,1,1

[ObjectsLayer]
type=Player
location=1,2
type=Victory
location=6,2
`

// Compile-time check that Playing implements scene.Scene
var _ scene.Scene = (*Playing)(nil)

// scriptedInput replays a fixed list of inputs, then idles
type scriptedInput struct {
	inputs []system.InputState
}

func (s *scriptedInput) GetInput() system.InputState {
	if len(s.inputs) == 0 {
		return system.InputState{}
	}
	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	return in
}

type fakeProgress struct {
	reached []int
	wins    int
}

func (f *fakeProgress) Reached(level int) { f.reached = append(f.reached, level) }
func (f *fakeProgress) Won()              { f.wins++ }

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: &config.PhysicsConfig{
			Display: config.DisplayConfig{
				ScreenWidth:   320,
				ScreenHeight:  240,
				Scale:         2,
				Framerate:     60,
				PixelsPerUnit: 160,
				FadeSeconds:   0.5,
			},
			Physics: config.PhysicsSettings{
				TileSize:  0.1,
				Gravity:   -2.2,
				FrictionX: 1.5,
				Epsilon:   1e-6,
			},
			Movement:  config.MovementConfig{Acceleration: 1.05, JumpVelocity: 1.0},
			WallJump:  config.WallJumpConfig{Window: 0.4, VelocityX: 2.0, VelocityY: 0.8, Acceleration: 0.5},
			Attack:    config.AttackConfig{Lifetime: 1.0, Kick: 1.0, StrikeBoost: 1.0, Displacement: 1000},
			Hostile:   config.HostileConfig{Speed: 0.35, WakeDistance: 1},
			Animation: config.AnimationConfig{FPS: 15},
		},
		Entities: &config.EntitiesConfig{
			Tiles: config.TileTagConfig{Solid: []int{0, 6, 100}, Hazard: []int{100}, Climbable: []int{6}},
			Player: config.TemplateConfig{
				Width: 1, Height: 1,
				Sprites: config.SpriteSetsConfig{Idle: []int{0, 1, 2}},
			},
			Victory: config.TemplateConfig{
				Width: 1, Height: 1, Static: true,
				Sprites: config.SpriteSetsConfig{Idle: []int{48}},
			},
			Hitbox: config.HitboxConfig{Width: 1, Height: 0.5, Gap: 0.5, UpCell: 39, DownCell: 38},
		},
		Game: &config.ManifestConfig{Title: "Oof", Levels: []string{"test.txt"}},
	}
}

func createTestStage(t *testing.T) *entity.Stage {
	t.Helper()
	stage, err := system.ParseStage(strings.NewReader(testLevel), 0.1)
	require.NoError(t, err)
	return stage
}

func createTestPlaying(t *testing.T, input InputSource, opts Options) *Playing {
	t.Helper()
	cfg := createTestConfig()
	sess, err := session.New(cfg, []*entity.Stage{createTestStage(t)}, nil)
	require.NoError(t, err)
	return New(cfg, sess, input, opts)
}

func press(a system.Action) system.InputState {
	return system.InputState{Held: a, Pressed: a}
}

func TestPlaying_OnEnterStartsSession(t *testing.T) {
	p := createTestPlaying(t, &scriptedInput{}, Options{})
	p.OnEnter()

	assert.Equal(t, state.MainMenu, p.Session().Mode())
	assert.Equal(t, float32(1), p.FadeAlpha())
}

func TestPlaying_UpdateDrivesSession(t *testing.T) {
	progress := &fakeProgress{}
	input := &scriptedInput{inputs: []system.InputState{press(system.ActionConfirm)}}
	p := createTestPlaying(t, input, Options{Progress: progress})
	p.OnEnter()

	next, err := p.Update(testDT)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, state.InLevel(0), p.Session().Mode())
	assert.Equal(t, []int{0}, progress.reached)

	// The fade restarts on the transition and runs out
	for i := 0; i < 60; i++ {
		_, err := p.Update(testDT)
		require.NoError(t, err)
	}
	assert.Zero(t, p.FadeAlpha())
}

func TestPlaying_WinIsTracked(t *testing.T) {
	progress := &fakeProgress{}
	p := createTestPlaying(t, &scriptedInput{inputs: []system.InputState{press(system.ActionConfirm)}}, Options{Progress: progress})
	p.OnEnter()

	_, err := p.Update(testDT)
	require.NoError(t, err)

	sess := p.Session()
	sess.Player().X, sess.Player().Y = sess.Victory().X, sess.Victory().Y
	_, err = p.Update(testDT)
	require.NoError(t, err)

	assert.Equal(t, state.Win, sess.Mode())
	assert.Equal(t, 1, progress.wins)
}

func TestPlaying_QuitTerminates(t *testing.T) {
	p := createTestPlaying(t, &scriptedInput{inputs: []system.InputState{press(system.ActionQuit)}}, Options{})
	p.OnEnter()

	_, err := p.Update(testDT)
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.True(t, p.Session().Done())
}

func TestPlaying_RecordsAndSavesOnQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	input := &scriptedInput{inputs: []system.InputState{
		press(system.ActionConfirm),
		{Held: system.ActionMoveRight},
		press(system.ActionQuit),
	}}
	p := createTestPlaying(t, input, Options{RecordPath: path, LevelsDir: "/srv/levels"})
	p.OnEnter()

	var err error
	for i := 0; i < 3 && err == nil; i++ {
		_, err = p.Update(testDT)
	}
	require.ErrorIs(t, err, ebiten.Termination)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	require.Len(t, data.Frames, 3)
	assert.Equal(t, uint16(system.ActionMoveRight), data.Frames[1].H)
	assert.Equal(t, []string{"test.txt"}, data.Levels)
	assert.Equal(t, "/srv/levels", data.LevelsDir)
	assert.Equal(t, 60, data.TickRate)
}

func TestPlaying_AppliesReloads(t *testing.T) {
	reloads := make(chan LevelReload, 3)
	p := createTestPlaying(t, &scriptedInput{}, Options{Reloads: reloads})
	p.OnEnter()

	fresh := createTestStage(t)
	reloads <- LevelReload{Index: 0, Stage: fresh}
	reloads <- LevelReload{Index: 4, Stage: fresh} // rejected, logged
	close(reloads)

	_, err := p.Update(testDT)
	require.NoError(t, err)
	assert.Nil(t, p.opts.Reloads, "closed channel is dropped")

	// Not in a level, so the swap is immediate
	p.input = &scriptedInput{inputs: []system.InputState{press(system.ActionConfirm)}}
	_, err = p.Update(testDT)
	require.NoError(t, err)
	assert.Same(t, fresh, p.Session().Stage())
}

func TestPlaying_DrawEveryMode(t *testing.T) {
	p := createTestPlaying(t, &scriptedInput{inputs: []system.InputState{press(system.ActionConfirm)}}, Options{})
	p.OnEnter()
	screen := ebiten.NewImage(320, 240)

	assert.NotPanics(t, func() { p.Draw(screen) })

	_, err := p.Update(testDT)
	require.NoError(t, err)
	assert.NotPanics(t, func() { p.Draw(screen) })
}

func TestCameraOrigin(t *testing.T) {
	tests := []struct {
		name         string
		focusX       float64
		focusY       float64
		wantX, wantY float64
	}{
		{"centered", 2, -2, 1.5, 1.5},
		{"clamped at the top-left", 0.1, -0.1, 0, 0},
		{"clamped at the bottom-right", 3.9, -3.9, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cameraOrigin(tt.focusX, tt.focusY, 4, 4, 1, 1)
			assert.InDelta(t, tt.wantX, x, 1e-12)
			assert.InDelta(t, tt.wantY, y, 1e-12)
		})
	}

	// A world smaller than the view pins to the origin
	x, y := cameraOrigin(0.5, -0.5, 0.8, 0.8, 2, 2)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestTileColor(t *testing.T) {
	tags := entity.NewTileTags([]entity.TileID{0, 6, 100}, []entity.TileID{100}, []entity.TileID{6})

	assert.Equal(t, color.Color(colorSolid), tileColor(tags, 0))
	assert.Equal(t, color.Color(colorHazard), tileColor(tags, 100))
	assert.Equal(t, color.Color(colorClimb), tileColor(tags, 6))
	assert.Equal(t, color.Color(colorDecor), tileColor(tags, 42))
}

func TestShade(t *testing.T) {
	c := color.RGBA{100, 200, 50, 255}
	assert.Equal(t, c, shade(c, -1))
	assert.NotEqual(t, shade(c, 0), shade(c, 1))
	assert.Equal(t, uint8(255), shade(c, 5).A)
}
