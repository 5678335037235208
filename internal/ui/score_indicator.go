// internal/ui/score_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-missile-defense/internal/config"
)

// ScoreIndicator draws the score readout in the top-left corner.
type ScoreIndicator struct {
	X, Y int
}

func NewScoreIndicator(x, y int) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, score int) {
	text.Draw(screen, fmt.Sprintf("SCORE %d / %d", score, config.WinScore),
		basicfont.Face7x13, i.X, i.Y, config.TextLightColor)
}

// DrawLine draws an extra HUD line under the score (towers left, hints).
func (i *ScoreIndicator) DrawLine(screen *ebiten.Image, line int, s string, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, i.X, i.Y+14*line, clr)
}
