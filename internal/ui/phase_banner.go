// internal/ui/phase_banner.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-missile-defense/internal/config"
)

// PhaseBanner dims the field and centers a title plus a prompt line, used
// for the start screen and the WON/LOST overlays.
type PhaseBanner struct{}

func NewPhaseBanner() *PhaseBanner {
	return &PhaseBanner{}
}

func (b *PhaseBanner) Draw(screen *ebiten.Image, title, prompt string, titleColor color.Color) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.BannerDimColor, false)

	face := basicfont.Face7x13
	titleW := len(title) * face.Advance
	promptW := len(prompt) * face.Advance
	text.Draw(screen, title, face, (w-titleW)/2, h/2-10, titleColor)
	text.Draw(screen, prompt, face, (w-promptW)/2, h/2+14, config.TextLightColor)
}
