package ui

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/HexConquest/internal/common"
	"github.com/mitchelldurbincs/HexConquest/internal/config"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/ui/camera"
	"github.com/mitchelldurbincs/HexConquest/internal/ui/input"
	"github.com/mitchelldurbincs/HexConquest/internal/ui/renderer"
	"github.com/mitchelldurbincs/HexConquest/internal/ui/session"
)

var helpLines = []string{
	"Click: select / move / attack",
	"Right click, Esc: deselect",
	"Shift+right or middle drag: pan, wheel: zoom",
	"1-4: produce INF TNK ART AIR",
	"B L F M: build on selected tile",
	"C: copy board, Space: end turn",
}

// HexGame is the ebiten.Game for a local match with one human seat
type HexGame struct {
	match         session.Match
	session       *session.Session
	camera        *camera.Camera
	boardRenderer *renderer.BoardRenderer
	input         *input.Handler
	defaultFont   font.Face
	logger        zerolog.Logger

	hover    core.Coordinate
	hasHover bool
}

// NewHexGame wires the renderer, camera and input handler around a match
func NewHexGame(match session.Match, human int, ui config.UIConfig, logger zerolog.Logger) *HexGame {
	g := &HexGame{
		match:       match,
		session:     session.New(match, human, logger),
		camera:      camera.New(ui.Window.Width, ui.Window.Height, ui.Camera.MinZoom, ui.Camera.MaxZoom, ui.Camera.ZoomStep),
		input:       input.NewHandler(nil),
		defaultFont: basicfont.Face7x13,
		logger:      logger.With().Str("component", "HexGame").Logger(),
	}
	g.boardRenderer = renderer.NewBoardRenderer(match.Layout(), g.defaultFont)
	return g
}

// Update applies this frame's input.
func (g *HexGame) Update() error {
	for _, in := range g.input.Update() {
		switch in.Kind {
		case input.IntentClick:
			if c, ok := g.tileAtScreen(in.X, in.Y); ok {
				g.session.Click(c)
			}
		case input.IntentCancel:
			g.session.Cancel()
		case input.IntentEndTurn:
			g.session.EndTurn()
		case input.IntentBuild:
			g.session.Build(in.Building)
		case input.IntentProduce:
			g.session.Produce(in.Unit)
		case input.IntentCopyBoard:
			g.session.CopyBoard(clipboard.WriteAll)
		case input.IntentZoom:
			g.camera.ApplyWheel(in.Delta)
		case input.IntentPanStart:
			g.camera.StartDrag(in.X, in.Y)
		case input.IntentPan:
			g.camera.UpdateDrag(in.X, in.Y)
		case input.IntentPanEnd:
			g.camera.StopDrag()
		}
	}

	g.hover, g.hasHover = g.tileAtScreen(g.input.Cursor())

	// Keeps bots playing after the human seat is eliminated
	if !g.session.MyTurn() {
		g.match.AdvanceBots()
	}
	return nil
}

func (g *HexGame) tileAtScreen(sx, sy float64) (core.Coordinate, bool) {
	return g.match.TileAtWorld(g.camera.ScreenToWorld(sx, sy))
}

// Draw renders the game screen.
func (g *HexGame) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)

	ov := renderer.Overlay{Hover: g.hover, HasHover: g.hasHover}
	if sel, ok := g.session.Selection(); ok {
		ov.Selection = &sel
	}
	g.boardRenderer.Draw(screen, g.match, g.camera, ov)
	g.drawUI(screen)
}

func (g *HexGame) drawUI(screen *ebiten.Image) {
	st := g.match.Standings()

	turnStr := fmt.Sprintf("Turn %d  Player %d to move", st.Turn, g.match.ActivePlayer())
	if st.Survivor >= 0 {
		turnStr = fmt.Sprintf("Player %d is the last one standing", st.Survivor)
	}
	text.Draw(screen, turnStr, g.defaultFont, 5, 15, common.TextColor)

	for i, p := range st.Players {
		line := session.HUDLine(p)
		if p.ID == g.session.Human() {
			line += "  (you)"
		}
		text.Draw(screen, line, g.defaultFont, 5, 35+i*15, common.PlayerColor(p.ID))
	}

	helpY := int(g.camera.Height) - 15*len(helpLines) - 5
	for i, l := range helpLines {
		text.Draw(screen, l, g.defaultFont, 5, helpY+i*15, color.Gray{200})
	}

	if msg := g.session.Status(); msg != "" {
		b := text.BoundString(g.defaultFont, msg)
		msgX := int(g.camera.Width)/2 - b.Dx()/2
		text.Draw(screen, msg, g.defaultFont, msgX, int(g.camera.Height)-20, common.TextColor)
	}
}

// Layout follows the window so resizing shows more of the board.
func (g *HexGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.camera.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
