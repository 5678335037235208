// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-missile-defense/internal/app"
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"
	"go-missile-defense/internal/utils"
)

// GameState — the playing screen. It routes pointer and key input into the
// simulation and draws the HUD and phase overlays on top of the field.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	score    *ui.ScoreIndicator
	banner   *ui.PhaseBanner
	touchIDs []ebiten.TouchID
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{
		sm:     sm,
		game:   game.NewGame(utils.NewPRNGService(0)),
		score:  ui.NewScoreIndicator(config.ScoreTextX, config.ScoreTextY),
		banner: ui.NewPhaseBanner(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if g.game.Phase() == component.PhasePlaying {
			g.game.HandlePauseClick()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.game.CopyRunReport(); err != nil {
			log.Printf("copy run report: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.game.Phase() != component.PhasePlaying {
		g.game.Begin()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleTap(float64(x), float64(y))
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.handleTap(float64(x), float64(y))
	}

	g.game.Update(deltaTime)
}

// handleTap fires while PLAYING and acts as the begin/restart trigger in
// every other phase.
func (g *GameState) handleTap(x, y float64) {
	if g.game.Phase() == component.PhasePlaying {
		if !g.game.IsPaused() {
			g.game.FireAt(x, y)
		}
		return
	}
	g.game.Begin()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)

	g.score.Draw(screen, g.game.Score())
	g.score.DrawLine(screen, 1,
		fmt.Sprintf("TOWERS %d  CITIES %d", g.game.ECS.AliveTowers(), g.game.ECS.AliveCities()),
		config.TextLightColor)

	switch g.game.Phase() {
	case component.PhaseStart:
		g.banner.Draw(screen, "MISSILE DEFENSE", "click to start", config.TextLightColor)
	case component.PhaseWon:
		g.banner.Draw(screen, "YOU WIN", "click to play again", config.WonBannerColor)
	case component.PhaseLost:
		g.banner.Draw(screen, "ALL TOWERS DESTROYED", "click to retry", config.LostBannerColor)
	default:
		if g.game.IsPaused() {
			g.banner.Draw(screen, "PAUSED", "press P to resume", config.TextLightColor)
		}
	}
}

func (g *GameState) Exit() {}

// Resize forwards the outside size to the simulation; cmd/game calls this
// from ebiten's Layout.
func (g *GameState) Resize(w, h int) {
	g.game.Resize(w, h)
}
