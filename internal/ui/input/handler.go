package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/HexConquest/internal/game/core"
)

type IntentKind int

const (
	IntentClick IntentKind = iota
	IntentCancel
	IntentEndTurn
	IntentBuild
	IntentProduce
	IntentCopyBoard
	IntentZoom
	IntentPanStart
	IntentPan
	IntentPanEnd
)

// Intent is one thing the player asked for this frame. X and Y are screen
// pixels for pointer intents.
type Intent struct {
	Kind     IntentKind
	X, Y     float64
	Delta    float64
	Building core.BuildingType
	Unit     core.UnitType
}

// KeyBinding maps a key press to an intent
type KeyBinding struct {
	Key    ebiten.Key
	Intent Intent
}

// DefaultBindings is the hotkey table shown in the help line
var DefaultBindings = []KeyBinding{
	{ebiten.KeySpace, Intent{Kind: IntentEndTurn}},
	{ebiten.KeyEscape, Intent{Kind: IntentCancel}},
	{ebiten.KeyDigit1, Intent{Kind: IntentProduce, Unit: core.UnitInfantry}},
	{ebiten.KeyDigit2, Intent{Kind: IntentProduce, Unit: core.UnitTank}},
	{ebiten.KeyDigit3, Intent{Kind: IntentProduce, Unit: core.UnitArtillery}},
	{ebiten.KeyDigit4, Intent{Kind: IntentProduce, Unit: core.UnitAircraft}},
	{ebiten.KeyB, Intent{Kind: IntentBuild, Building: core.BuildingBarracks}},
	{ebiten.KeyL, Intent{Kind: IntentBuild, Building: core.BuildingResearchLab}},
	{ebiten.KeyF, Intent{Kind: IntentBuild, Building: core.BuildingFactory}},
	{ebiten.KeyM, Intent{Kind: IntentBuild, Building: core.BuildingMine}},
	{ebiten.KeyC, Intent{Kind: IntentCopyBoard}},
}

type Handler struct {
	// Mouse state
	mouseX, mouseY int
	panning        bool

	bindings []KeyBinding
	intents  []Intent
}

func NewHandler(bindings []KeyBinding) *Handler {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Handler{bindings: bindings}
}

// Update polls ebiten once and returns this frame's intents. The slice is
// reused on the next call.
func (h *Handler) Update() []Intent {
	h.intents = h.intents[:0]
	h.mouseX, h.mouseY = GetCursorPosition()
	x, y := float64(h.mouseX), float64(h.mouseY)

	if IsLeftClickJustPressed() {
		h.push(Intent{Kind: IntentClick, X: x, Y: y})
	}

	switch {
	case IsPanJustPressed():
		h.panning = true
		h.push(Intent{Kind: IntentPanStart, X: x, Y: y})
	case IsRightClickJustPressed():
		h.push(Intent{Kind: IntentCancel})
	case h.panning && IsPanJustReleased():
		h.panning = false
		h.push(Intent{Kind: IntentPanEnd, X: x, Y: y})
	case h.panning:
		h.push(Intent{Kind: IntentPan, X: x, Y: y})
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		h.push(Intent{Kind: IntentZoom, X: x, Y: y, Delta: dy})
	}

	for _, b := range h.bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			h.push(b.Intent)
		}
	}
	return h.intents
}

func (h *Handler) push(in Intent) { h.intents = append(h.intents, in) }

// Cursor returns the last polled pointer position
func (h *Handler) Cursor() (float64, float64) {
	return float64(h.mouseX), float64(h.mouseY)
}
