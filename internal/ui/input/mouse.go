package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func IsLeftClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func IsRightClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// Panning starts on the middle button, or right button with Shift held
func IsPanJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) ||
		(ebiten.IsKeyPressed(ebiten.KeyShift) && IsRightClickJustPressed())
}

func IsPanJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
}

func GetCursorPosition() (int, int) {
	return ebiten.CursorPosition()
}
