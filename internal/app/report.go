// internal/app/report.go
package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"go-missile-defense/internal/system"
)

// RunReport renders a plain-text snapshot of the run for bug reports:
// seed, phase, score, elapsed time and entity counts.
func (g *Game) RunReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- missile-defense run report ---\n")
	fmt.Fprintf(&b, "seed=%d phase=%s score=%d elapsed=%.0fms\n",
		g.Rng.Seed(), g.ECS.GameState.Phase, g.ECS.GameState.Score, g.gameTime)
	fmt.Fprintf(&b, "rockets=%d interceptors=%d explosions=%d\n",
		len(g.ECS.Rockets), len(g.ECS.Interceptors), len(g.ECS.Explosions))
	fmt.Fprintf(&b, "towers=%d/%d cities=%d/%d\n",
		g.ECS.AliveTowers(), len(g.ECS.Towers),
		g.ECS.AliveCities(), len(g.ECS.Cities))
	fmt.Fprintf(&b, "spawn_interval=%.0fms paused=%v\n",
		system.Interval(g.ECS.GameState.Score), g.isPaused)
	return b.String()
}

// CopyRunReport puts the report on the system clipboard.
func (g *Game) CopyRunReport() error {
	return clipboard.WriteAll(g.RunReport())
}
