package game

import (
	"image/color"

	"github.com/Garsondee/Grand-Strategy/internal/camera"
	"github.com/Garsondee/Grand-Strategy/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// placeholderSize is the side of the white marker square at the map origin.
const placeholderSize = 400

// copiedToastTicks is how long the "copied" notice stays on screen.
const copiedToastTicks = 120

var (
	backgroundColor = color.RGBA{R: 12, G: 14, B: 20, A: 255}
	mapColor        = color.RGBA{R: 28, G: 44, B: 32, A: 255}
	mapBorderColor  = color.RGBA{R: 65, G: 90, B: 65, A: 255}
	hudTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Draw renders the map through the camera, the HUD, then any menu.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.pose != nil {
		g.drawWorld(screen, *g.pose)
	}
	g.drawHUD(screen)
	if g.mode.InGame() {
		g.events.Draw(screen, g.height)
	}
	g.drawMenus(screen)
}

// worldToScreen maps a world point (y up) to screen pixels (y down). An
// orthographic scale above 1 shows more of the world.
func (g *Game) worldToScreen(p camera.Pose, wx, wy float64) (float32, float32) {
	scale := p.Projection.Scale
	if scale <= 0 {
		scale = 1
	}
	sx := (wx-p.Position.X)/scale + float64(g.width)/2
	sy := -(wy-p.Position.Y)/scale + float64(g.height)/2
	return float32(sx), float32(sy)
}

func (g *Game) drawWorld(screen *ebiten.Image, p camera.Pose) {
	scale := p.Projection.Scale
	if scale <= 0 {
		scale = 1
	}

	hw, hh := g.bounds.Width/2, g.bounds.Height/2
	x0, y0 := g.worldToScreen(p, -hw, hh)
	w, h := float32(g.bounds.Width/scale), float32(g.bounds.Height/scale)
	vector.FillRect(screen, x0, y0, w, h, mapColor, false)
	vector.StrokeRect(screen, x0, y0, w, h, 2, mapBorderColor, false)

	half := float64(placeholderSize) / 2
	px, py := g.worldToScreen(p, -half, half)
	side := float32(placeholderSize / scale)
	vector.FillRect(screen, px, py, side, side, color.White, false)
}

func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, hudFace, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	drawText(screen, g.fpsText.Value, 5, 5, hudTextColor)
	drawText(screen, g.dateText.Value, 5, 30, hudTextColor)
	if g.copied != "" && g.tick-g.copiedAt < copiedToastTicks {
		drawText(screen, "status copied", 5, 55, mapBorderColor)
	}
}

func (g *Game) drawMenus(screen *ebiten.Image) {
	g.world.Each(func(n *ui.Node) {
		r := n.Rect
		if n.Background.A > 0 {
			vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y),
				float32(r.Dx()), float32(r.Dy()), n.Background, false)
		}
		if n.Label == "" {
			return
		}
		tw, th := text.Measure(n.Label, hudFace, 0)
		x := float64(r.Min.X) + (float64(r.Dx())-tw)/2
		y := float64(r.Min.Y) + (float64(r.Dy())-th)/2
		drawText(screen, n.Label, x, y, n.TextColor)
	})
}
