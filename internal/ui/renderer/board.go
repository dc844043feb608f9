package renderer

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/HexConquest/internal/common"
	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/ui/camera"
)

// -----------------------------------------------------------------------------
// Labels
// -----------------------------------------------------------------------------

var (
	unitLabels     = [...]string{core.UnitInfantry: "INF", core.UnitTank: "TNK", core.UnitArtillery: "ART", core.UnitAircraft: "AIR"}
	buildingLabels = [...]string{
		core.BuildingCapital:     "CAP",
		core.BuildingBarracks:    "BAR",
		core.BuildingResearchLab: "LAB",
		core.BuildingFactory:     "FAC",
		core.BuildingMine:        "MIN",
	}

	OwnerTintShift  = 40
	UnitTextColor   = color.White
	DamagedHPColor  = color.RGBA{255, 120, 120, 255}
	BuildingBGColor = color.RGBA{20, 20, 20, 200}
)

// -----------------------------------------------------------------------------
// Renderer
// -----------------------------------------------------------------------------

type BoardRenderer struct {
	layout      core.Layout
	defaultFont font.Face
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(layout core.Layout, f font.Face) *BoardRenderer {
	return &BoardRenderer{layout: layout, defaultFont: f}
}

// Draw renders every tile, then buildings, units and the highlight overlay.
func (br *BoardRenderer) Draw(screen *ebiten.Image, v command.View, cam *camera.Camera, ov Overlay) {
	zoom := float32(cam.Zoom())

	for _, c := range v.Coordinates() {
		tile, _ := v.TileAt(c)
		pts := br.screenCorners(cam, c)

		// ---------------------------------------------------------------------
		// Terrain, tinted towards the owner
		// ---------------------------------------------------------------------
		fill := color.Color(common.TerrainColor(int(tile.Terrain)))
		if !tile.IsNeutral() {
			fill = blend(fill, common.PlayerColor(tile.Owner), 0.35)
		}
		fillPolygon(screen, pts, fill)
		strokePolygon(screen, pts, 1, common.GridLineColor)
	}

	ov.drawTiles(br, screen, cam)

	for _, c := range v.Coordinates() {
		cx, cy := br.screenCenter(cam, c)

		// ---------------------------------------------------------------------
		// Building badge above the centre
		// ---------------------------------------------------------------------
		if b, ok := v.BuildingAt(c); ok {
			w := float32(br.layout.Size) * zoom
			h := w * 0.45
			vector.DrawFilledRect(screen, cx-w/2, cy-w*0.8, w, h, BuildingBGColor, false)
			vector.StrokeRect(screen, cx-w/2, cy-w*0.8, w, h, 1.5, common.PlayerColor(b.Owner), false)
			br.drawLabel(screen, buildingLabels[b.Type], cx, cy-w*0.8+h/2, common.TextColor)
		}

		// ---------------------------------------------------------------------
		// Unit disc with type and damaged health
		// ---------------------------------------------------------------------
		if u, ok := v.UnitAt(c); ok {
			r := float32(br.layout.Size) * 0.5 * zoom
			body := common.PlayerColor(u.Owner)
			if u.MovesLeft == 0 && u.HasAttacked {
				body = shiftColor(body, -OwnerTintShift)
			}
			vector.DrawFilledCircle(screen, cx, cy+r*0.3, r, body, true)
			vector.StrokeCircle(screen, cx, cy+r*0.3, r, 1, color.Black, true)
			br.drawLabel(screen, unitLabels[u.Type], cx, cy+r*0.3, UnitTextColor)
			if u.Health < core.MaxHealth {
				br.drawLabel(screen, strconv.Itoa(u.Health), cx, cy+r*1.6, DamagedHPColor)
			}
		}
	}

	ov.drawOutlines(br, screen, cam)
}

func (br *BoardRenderer) drawLabel(screen *ebiten.Image, s string, cx, cy float32, clr color.Color) {
	if br.defaultFont == nil {
		return
	}
	b := text.BoundString(br.defaultFont, s)
	textW := b.Max.X - b.Min.X
	textH := b.Max.Y - b.Min.Y
	text.Draw(screen, s, br.defaultFont, int(cx)-textW/2, int(cy)+textH/2, clr)
}

func (br *BoardRenderer) screenCenter(cam *camera.Camera, c core.Coordinate) (float32, float32) {
	x, y := cam.WorldToScreen(br.layout.HexToWorld(c))
	return float32(x), float32(y)
}

func (br *BoardRenderer) screenCorners(cam *camera.Camera, c core.Coordinate) [6][2]float32 {
	var out [6][2]float32
	for i, p := range br.layout.Corners(c) {
		x, y := cam.WorldToScreen(p[0], p[1])
		out[i] = [2]float32{float32(x), float32(y)}
	}
	return out
}

// shiftColor returns c lightened (or darkened, for negative amounts).
func shiftColor(c color.Color, amount int) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(clamp16(int(r)+amount<<8) >> 8),
		uint8(clamp16(int(g)+amount<<8) >> 8),
		uint8(clamp16(int(b)+amount<<8) >> 8),
		uint8(a >> 8),
	}
}

func clamp16(v int) int {
	return common.Clamp(v, 0, 0xFFFF)
}

// blend mixes t into c by weight w in [0,1]
func blend(c, t color.Color, w float64) color.Color {
	r1, g1, b1, a1 := c.RGBA()
	r2, g2, b2, _ := t.RGBA()
	mix := func(x, y uint32) uint8 {
		return uint8((float64(x)*(1-w) + float64(y)*w) / 0x101)
	}
	return color.RGBA{mix(r1, r2), mix(g1, g2), mix(b1, b2), uint8(a1 >> 8)}
}
