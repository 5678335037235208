// internal/app/game.go
package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/system"
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game wires the ECS and the simulation systems together. All entity
// mutation funnels through Update (the simulation step) and FireAt (the
// input mapper, append-only); everything else only reads.
type Game struct {
	ECS              *entity.ECS
	SpawnSystem      *system.SpawnSystem
	ProjectileSystem *system.ProjectileSystem
	ExplosionSystem  *system.ExplosionSystem
	StateSystem      *system.StateSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	gameTime float64
	isPaused bool
}

// NewGame builds a game instance around the given PRNG service. Pass a
// seeded service for reproducible runs; NewPRNGService(0) seeds from the
// clock.
func NewGame(rng *utils.PRNGService) *Game {
	ecs := entity.NewECS()
	ecs.ScreenW = config.ScreenWidth
	ecs.ScreenH = config.ScreenHeight
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, eventDispatcher, rng)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.ExplosionSystem = system.NewExplosionSystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs)
	return g
}

// Update advances the simulation by dt milliseconds. Outside PLAYING (or
// while paused) the step is a no-op and the frozen state keeps rendering.
func (g *Game) Update(dt float64) {
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	if g.ECS.GameState.Phase != component.PhasePlaying || g.isPaused {
		return
	}

	g.SpawnSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.ExplosionSystem.Update(dt)
}

// Draw renders the current entity state. Read-only.
func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
}

// Begin starts or restarts a run; safe to call repeatedly from START, WON
// or LOST and ignored while PLAYING.
func (g *Game) Begin() {
	g.isPaused = false
	g.StateSystem.Begin()
}

// FireAt is the input mapper: one tap becomes a burst of interceptors from
// the alive tower nearest the tap, each with independently jittered target
// and speed. With no tower alive the tap is dropped.
func (g *Game) FireAt(x, y float64) {
	towerID, ok := g.nearestAliveTower(x, y)
	if !ok {
		return
	}
	tower := g.ECS.Towers[towerID]

	for i := 0; i < config.InterceptorBurstSize; i++ {
		id := g.ECS.NewEntity()
		g.ECS.Interceptors[id] = &component.Interceptor{
			OriginX: tower.X,
			OriginY: tower.Y,
			TargetX: x + g.Rng.Jitter(config.InterceptorTargetJitter),
			TargetY: y + g.Rng.Jitter(config.InterceptorTargetJitter),
			Speed:   config.InterceptorSpeedBase + g.Rng.Range(config.InterceptorSpeedJitter),
		}
	}
}

// nearestAliveTower scans in ascending ID order so distance ties resolve
// stably.
func (g *Game) nearestAliveTower(x, y float64) (types.EntityID, bool) {
	var bestID types.EntityID
	bestDist := -1.0
	for id := types.EntityID(1); id < g.ECS.NextID; id++ {
		tower, ok := g.ECS.Towers[id]
		if !ok || !tower.Alive {
			continue
		}
		d := utils.Distance(x, y, tower.X, tower.Y)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestID = id
		}
	}
	return bestID, bestDist >= 0
}

// Resize records the viewport size. Spawn bounds pick it up immediately;
// installation layout only re-reads it on the next Begin.
func (g *Game) Resize(w, h int) {
	g.ECS.ScreenW = float64(w)
	g.ECS.ScreenH = float64(h)
}

func (g *Game) Phase() component.GamePhase {
	return g.ECS.GameState.Phase
}

func (g *Game) Score() int {
	return g.ECS.GameState.Score
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}
