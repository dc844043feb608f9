package renderer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mitchelldurbincs/HexConquest/internal/common"
	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/ui/camera"
)

// Overlay is the interaction state drawn over the board
type Overlay struct {
	Selection *command.Selection
	Hover     core.Coordinate
	HasHover  bool
}

func (ov Overlay) drawTiles(br *BoardRenderer, screen *ebiten.Image, cam *camera.Camera) {
	if ov.Selection != nil && ov.Selection.HasUnit() {
		for _, c := range ov.Selection.Reachable.Coordinates() {
			fillPolygon(screen, br.screenCorners(cam, c), common.HighlightColor)
		}
		for _, c := range ov.Selection.Targets {
			fillPolygon(screen, br.screenCorners(cam, c), common.TargetColor)
		}
	}
	if ov.HasHover {
		fillPolygon(screen, br.screenCorners(cam, ov.Hover), common.HighlightColor)
	}
}

func (ov Overlay) drawOutlines(br *BoardRenderer, screen *ebiten.Image, cam *camera.Camera) {
	if ov.Selection == nil {
		return
	}
	strokePolygon(screen, br.screenCorners(cam, ov.Selection.At), 3, common.SelectionColor)
}
