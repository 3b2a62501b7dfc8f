package playing

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/oof/internal/application/state"
	"github.com/younwookim/oof/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorSolid    = color.RGBA{80, 80, 100, 255}
	colorHazard   = color.RGBA{200, 50, 50, 255}
	colorClimb    = color.RGBA{70, 140, 90, 255}
	colorDecor    = color.RGBA{50, 50, 70, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorVictory  = color.RGBA{255, 215, 0, 255}
	colorHostile  = color.RGBA{200, 100, 100, 255}
	colorHitbox   = color.RGBA{240, 240, 255, 200}
	colorText     = color.RGBA{230, 230, 230, 255}
	colorSubtitle = color.RGBA{160, 160, 180, 255}
)

type renderer struct {
	title *text.GoTextFace
	body  *text.GoTextFace
	small *text.GoTextFace
}

func newRenderer() *renderer {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Warning: font unavailable, using debug text: %v", err)
		return &renderer{}
	}
	return &renderer{
		title: &text.GoTextFace{Source: src, Size: 48},
		body:  &text.GoTextFace{Source: src, Size: 20},
		small: &text.GoTextFace{Source: src, Size: 12},
	}
}

// drawText centers s horizontally on x
func (r *renderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x)-3*len(s), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// Draw renders the current mode (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if p.renderer == nil {
		p.renderer = newRenderer()
	}

	mode := p.session.Mode()
	switch mode.State {
	case state.StateMenu:
		p.drawMenu(screen)
	case state.StateLevel:
		p.drawLevel(screen, mode)
	case state.StateGameOver:
		p.drawGameOver(screen)
	case state.StateWin:
		p.drawWin(screen)
	}

	if p.fadeAlpha > 0 {
		vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH),
			color.RGBA{0, 0, 0, uint8(255 * p.fadeAlpha)}, false)
	}
}

func (p *Playing) drawMenu(screen *ebiten.Image) {
	cx := float64(p.screenW) / 2
	h := float64(p.screenH)
	r := p.renderer

	r.drawText(screen, p.config.Game.Title, r.title, cx, h*0.2, colorText)
	r.drawText(screen, "the game", r.body, cx, h*0.2+56, colorSubtitle)
	r.drawText(screen, "PRESS SPACE TO START", r.body, cx, h*0.65, colorText)
	r.drawText(screen, "PRESS Q to QUIT", r.small, cx, h*0.9, colorSubtitle)
}

func (p *Playing) drawGameOver(screen *ebiten.Image) {
	cx := float64(p.screenW) / 2
	h := float64(p.screenH)
	r := p.renderer

	r.drawText(screen, "Ya lost, it's over", r.body, cx, h*0.4, colorHazard)
	r.drawText(screen, "Press Space to", r.small, cx, h*0.65, colorText)
	r.drawText(screen, "go back to Menu", r.small, cx, h*0.65+16, colorText)
}

func (p *Playing) drawWin(screen *ebiten.Image) {
	cx := float64(p.screenW) / 2
	h := float64(p.screenH)
	r := p.renderer

	r.drawText(screen, "You win", r.title, cx, h*0.3, colorVictory)
	r.drawText(screen, "Press Space to", r.small, cx, h*0.65, colorText)
	r.drawText(screen, "go back to Menu", r.small, cx, h*0.65+16, colorText)
}

// view maps world coordinates to screen pixels for one frame
type view struct {
	originX, originY float64 // world units, Y pointing down
	ppu              float64
}

func (v view) toScreen(wx, wy float64) (float32, float32) {
	return float32((wx - v.originX) * v.ppu), float32((-wy - v.originY) * v.ppu)
}

// cameraOrigin centers the view on the focus point and keeps it inside the world
func cameraOrigin(focusX, focusY, worldW, worldH, viewW, viewH float64) (float64, float64) {
	return clampView(focusX-viewW/2, worldW-viewW), clampView(-focusY-viewH/2, worldH-viewH)
}

func clampView(v, limit float64) float64 {
	if v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (p *Playing) drawLevel(screen *ebiten.Image, mode state.Mode) {
	stage := p.session.Stage()
	player := p.session.Player()
	if stage == nil || player == nil {
		return
	}

	ppu := p.config.Physics.Display.PixelsPerUnit
	worldW, worldH := stage.WorldSize()
	viewW, viewH := float64(p.screenW)/ppu, float64(p.screenH)/ppu
	ox, oy := cameraOrigin(player.X, player.Y, worldW, worldH, viewW, viewH)
	v := view{originX: ox, originY: oy, ppu: ppu}

	tags := p.session.Tags()
	half := stage.TileSize / 2
	size := float32(stage.TileSize * ppu)
	stage.OccupiedTiles(func(gx, gy int, id entity.TileID) {
		cx, cy := stage.TileToWorldCenter(gx, gy)
		x, y := v.toScreen(cx-half, cy+half)
		if x+size < 0 || y+size < 0 || x > float32(p.screenW) || y > float32(p.screenH) {
			return
		}
		vector.FillRect(screen, x, y, size, size, tileColor(tags, id), false)
	})

	drawBody(screen, v, &p.session.Victory().Body, shade(colorVictory, p.session.Victory().Anim.Cell()))
	for _, h := range p.session.Hostiles() {
		drawBody(screen, v, &h.Body, shade(colorHostile, h.Anim.Cell()))
	}
	if hb := p.session.Hitbox(); hb != nil {
		drawBody(screen, v, &hb.Body, colorHitbox)
	}
	drawBody(screen, v, &player.Body, shade(colorPlayer, player.Anim.Cell()))

	p.renderer.drawText(screen, mode.String(), p.renderer.small, 40, 8, colorText)
}

func drawBody(screen *ebiten.Image, v view, b *entity.Body, c color.Color) {
	x, y := v.toScreen(b.Left(), b.Top())
	vector.FillRect(screen, x, y, float32(b.Width*v.ppu), float32(b.Height*v.ppu), c, false)
}

func tileColor(tags entity.TileTags, id entity.TileID) color.Color {
	switch {
	case tags.IsHazard(id):
		return colorHazard
	case tags.IsClimbable(id):
		return colorClimb
	case tags.IsSolid(id):
		return colorSolid
	default:
		return colorDecor
	}
}

// shade varies brightness by sprite cell so animation frames are visible
func shade(c color.RGBA, cell int) color.RGBA {
	if cell < 0 {
		return c
	}
	k := 0.8 + 0.1*float64(cell%3)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
