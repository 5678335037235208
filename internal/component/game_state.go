// internal/component/game_state.go
package component

// GamePhase — the run's overall state.
type GamePhase int

const (
	PhaseStart GamePhase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

func (p GamePhase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseWon:
		return "WON"
	case PhaseLost:
		return "LOST"
	}
	return "UNKNOWN"
}

// GameState holds the run-level mutable state: current phase and score.
// Score never decreases while PLAYING and resets to zero on Begin.
type GameState struct {
	Phase GamePhase
	Score int
}
