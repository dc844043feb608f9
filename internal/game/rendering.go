package game

import (
	"strings"

	"github.com/mitchelldurbincs/HexConquest/internal/common"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
)

// This file contains the terminal board rendering for the game engine.

var (
	unitGlyphs     = [...]byte{core.UnitInfantry: 'i', core.UnitTank: 't', core.UnitArtillery: 'a', core.UnitAircraft: 'f'}
	buildingGlyphs = [...]string{
		core.BuildingCapital:     "♔",
		core.BuildingBarracks:    "B",
		core.BuildingResearchLab: "L",
		core.BuildingFactory:     "F",
		core.BuildingMine:        "M",
	}
)

// Board returns a colored, row-offset picture of the grid. Each cell shows
// the building (or terrain) glyph followed by the unit glyph, colored by owner.
func (e *Engine) Board() string { return e.renderBoard(true) }

// BoardText is Board without terminal colors
func (e *Engine) BoardText() string { return e.renderBoard(false) }

func (e *Engine) renderBoard(colored bool) string {
	g := e.state.Grid
	radius := g.Radius

	var sb strings.Builder
	sb.Grow(g.Len()*24 + (2*radius+1)*8 + 128)

	for r := -radius; r <= radius; r++ {
		sb.WriteString(strings.Repeat(" ", 2*common.Abs(r)))
		qMin := common.Max(-radius, -r-radius)
		qMax := common.Min(radius, -r+radius)
		for q := qMin; q <= qMax; q++ {
			e.writeCell(&sb, core.NewCoordinate(q, r), colored)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	for _, t := range core.AllTerrains {
		sb.WriteString(t.Symbol())
		sb.WriteString("=")
		sb.WriteString(strings.ToLower(t.String()))
		sb.WriteString(" ")
	}
	sb.WriteString("♔=capital B/L/F/M=buildings i/t/a/f=units\n")
	return sb.String()
}

// writeCell writes one four-column cell directly into the builder
func (e *Engine) writeCell(sb *strings.Builder, c core.Coordinate, colored bool) {
	color := func(owner int) {
		if colored {
			sb.WriteString(common.PlayerANSI(owner))
		}
	}
	t := e.state.Grid.GetTile(c)

	if b := e.state.BuildingAt(c); b != nil {
		color(b.Owner)
		sb.WriteString(buildingGlyphs[b.Type])
	} else {
		color(t.Owner)
		sb.WriteString(t.Terrain.Symbol())
	}

	if u := e.state.UnitAt(c); u != nil {
		color(u.Owner)
		sb.WriteByte(unitGlyphs[u.Type])
	} else {
		sb.WriteByte(' ')
	}

	if colored {
		sb.WriteString(common.ANSIReset)
	}
	sb.WriteString("  ")
}
