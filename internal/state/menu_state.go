// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"
)

// MenuState — title screen shown before the first run.
type MenuState struct {
	sm     *StateMachine
	banner *ui.PhaseBanner
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm, banner: ui.NewPhaseBanner()}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.banner.Draw(screen, "MISSILE DEFENSE", "click to play", config.TextLightColor)
}

func (m *MenuState) Exit() {}
