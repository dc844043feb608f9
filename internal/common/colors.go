package common

import (
	"image/color"
)

// PlayerColors defines the color scheme for each player
var PlayerColors = map[int]color.Color{
	-1: color.RGBA{120, 120, 120, 255}, // Neutral – gray
	0:  color.RGBA{200, 50, 50, 255},   // Red
	1:  color.RGBA{50, 100, 200, 255},  // Blue
	2:  color.RGBA{50, 200, 50, 255},   // Green
	3:  color.RGBA{200, 200, 50, 255},  // Yellow
	4:  color.RGBA{160, 60, 200, 255},  // Purple
	5:  color.RGBA{50, 190, 190, 255},  // Cyan
}

// PlayerColor returns the player's color, or neutral gray for unknown ids
func PlayerColor(id int) color.Color {
	if c, ok := PlayerColors[id]; ok {
		return c
	}
	return PlayerColors[-1]
}

// Terrain fill colors, indexed by core.Terrain
var TerrainColors = [...]color.RGBA{
	{150, 190, 110, 255}, // Plain
	{40, 110, 50, 255},   // Forest
	{120, 105, 95, 255},  // Mountain
	{50, 90, 170, 255},   // Water
}

// TerrainColor returns the fill for a terrain index
func TerrainColor(terrain int) color.RGBA {
	if terrain < 0 || terrain >= len(TerrainColors) {
		return color.RGBA{255, 0, 255, 255}
	}
	return TerrainColors[terrain]
}

// UI colors
var (
	BackgroundColor = color.Black
	GridLineColor   = color.RGBA{30, 30, 30, 255}
	HighlightColor  = color.RGBA{255, 255, 255, 90}
	TargetColor     = color.RGBA{255, 60, 60, 140}
	SelectionColor  = color.RGBA{255, 230, 80, 255}
	TextColor       = color.White
)

// ANSI color codes for terminal rendering
const (
	ANSIReset  = "\033[0m"
	ANSIRed    = "\033[31m"
	ANSIGreen  = "\033[32m"
	ANSIYellow = "\033[33m"
	ANSIBlue   = "\033[34m"
	ANSIPurple = "\033[35m"
	ANSICyan   = "\033[36m"
	ANSIWhite  = "\033[37m"
	ANSIGray   = "\033[90m"
)

var playerANSI = []string{ANSIRed, ANSIBlue, ANSIGreen, ANSIYellow, ANSIPurple, ANSICyan}

// PlayerANSI returns the terminal color for a player, gray for neutral
func PlayerANSI(id int) string {
	if id >= 0 && id < len(playerANSI) {
		return playerANSI[id]
	}
	return ANSIGray
}
