// Package session turns board clicks and hotkeys into commands for the
// human seat. It has no rendering or input-polling dependencies.
package session

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexConquest/internal/game/command"
	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
	"github.com/mitchelldurbincs/HexConquest/internal/game/rules"
)

// Match is everything the client needs from a running engine
type Match interface {
	command.Surface
	Layout() core.Layout
	TileAtWorld(x, y float64) (core.Coordinate, bool)
	Standings() rules.Standings
	BoardText() string
	IsBot(playerID int) bool
	// AdvanceBots plays consecutive bot turns and returns how many ran
	AdvanceBots() int
}

// Session holds the human player's selection and the last status line
type Session struct {
	match     Match
	human     int
	selection *command.Selection
	status    string
	logger    zerolog.Logger
}

// New creates a session for the given seat
func New(match Match, human int, logger zerolog.Logger) *Session {
	return &Session{
		match:  match,
		human:  human,
		logger: logger.With().Str("component", "Session").Int("player_id", human).Logger(),
	}
}

// Human is the seat this session plays
func (s *Session) Human() int { return s.human }

// MyTurn reports whether the human seat is active
func (s *Session) MyTurn() bool { return s.match.ActivePlayer() == s.human }

// Selection returns the current selection, if any
func (s *Session) Selection() (command.Selection, bool) {
	if s.selection == nil {
		return command.Selection{}, false
	}
	return *s.selection, true
}

// Status is the message shown under the board
func (s *Session) Status() string { return s.status }

// Cancel drops the selection
func (s *Session) Cancel() {
	s.selection = nil
	s.status = ""
}

// Click handles a left click on a tile. With a unit selected it attacks a
// listed target or moves to a highlighted tile; otherwise it selects.
func (s *Session) Click(pos core.Coordinate) {
	if !s.MyTurn() {
		s.status = "Waiting for other players"
		return
	}

	sel := s.selection
	switch {
	case sel == nil:
		s.selectAt(pos)
	case sel.At == pos:
		s.Cancel()
	case sel.HasUnit() && contains(sel.Targets, pos):
		s.attack(sel.At, pos)
	case sel.HasUnit() && sel.Reachable.Contains(pos):
		s.move(sel.At, pos)
	default:
		s.selectAt(pos)
	}
}

func (s *Session) selectAt(pos core.Coordinate) {
	sel, err := s.match.Select(pos)
	if err != nil {
		s.selection = nil
		s.fail(err)
		return
	}
	s.selection = &sel
	switch {
	case sel.HasUnit():
		s.status = fmt.Sprintf("%s %d/%d hp, %d moves", sel.Unit.Type, sel.Unit.Health, core.MaxHealth, sel.Unit.MovesLeft)
	case sel.Building != nil:
		s.status = fmt.Sprintf("%s at %s", sel.Building.Type, pos)
	default:
		s.status = fmt.Sprintf("Tile %s", pos)
	}
}

func (s *Session) move(from, to core.Coordinate) {
	if err := s.match.Move(from, to); err != nil {
		s.fail(err)
		return
	}
	// Keep the unit selected so its new targets show
	s.selectAt(to)
}

func (s *Session) attack(from, to core.Coordinate) {
	if err := s.match.Attack(from, to); err != nil {
		s.fail(err)
		return
	}
	s.selection = nil
	s.status = fmt.Sprintf("Attacked %s", to)
}

// Build constructs on the selected tile
func (s *Session) Build(bt core.BuildingType) {
	if !s.MyTurn() {
		return
	}
	if s.selection == nil {
		s.status = "Select a tile to build on"
		return
	}
	at := s.selection.At
	if err := s.match.Build(bt, at); err != nil {
		s.fail(err)
		return
	}
	s.selection = nil
	s.status = fmt.Sprintf("Built %s for %s gold", bt, humanize.Comma(int64(bt.Stats().Cost)))
}

// Produce buys a unit next to a Barracks or the Capital
func (s *Session) Produce(ut core.UnitType) {
	if !s.MyTurn() {
		return
	}
	at, err := s.match.Produce(ut)
	if err != nil {
		s.fail(err)
		return
	}
	s.status = fmt.Sprintf("%s ready at %s for %s gold", ut, at, humanize.Comma(int64(ut.Stats().Cost)))
}

// EndTurn passes the turn; bot seats play before it returns
func (s *Session) EndTurn() {
	if !s.MyTurn() {
		return
	}
	s.selection = nil
	if err := s.match.EndTurn(); err != nil {
		s.fail(err)
		return
	}
	s.status = fmt.Sprintf("Turn %d", s.match.Turn())
}

// CopyBoard hands the text board to write, typically the system clipboard
func (s *Session) CopyBoard(write func(string) error) {
	if err := write(s.match.BoardText()); err != nil {
		s.logger.Warn().Err(err).Msg("Board copy failed")
		s.status = "Could not copy the board"
		return
	}
	s.status = "Board copied"
}

func (s *Session) fail(err error) {
	s.logger.Debug().Err(err).Msg("Command refused")
	s.status = Describe(err)
}

// Describe turns a command error into a short message for the player
func Describe(err error) string {
	switch {
	case errors.Is(err, core.ErrInsufficientFunds):
		return "Not enough gold"
	case errors.Is(err, core.ErrOutOfRange):
		return "Out of range or already attacked"
	case errors.Is(err, core.ErrUnreachableTarget):
		return "Cannot reach that tile this turn"
	case errors.Is(err, core.ErrInvalidTarget):
		return "Invalid target"
	case errors.Is(err, core.ErrInvalidSelection):
		return "Nothing of yours there"
	case errors.Is(err, core.ErrGameNotRunning):
		return "Game is not running"
	default:
		return err.Error()
	}
}

// HUDLine formats one player's standing for the side panel
func HUDLine(p rules.PlayerStanding) string {
	if !p.Alive {
		return fmt.Sprintf("P%d eliminated", p.ID)
	}
	return fmt.Sprintf("P%d %s gold (+%s)  %d units  %d tiles",
		p.ID, humanize.Comma(int64(p.Gold)), humanize.Comma(int64(p.Income)), p.Units, p.Tiles)
}

func contains(cs []core.Coordinate, c core.Coordinate) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
