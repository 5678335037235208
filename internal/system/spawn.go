// internal/system/spawn.go
package system

import (
	"sort"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
)

// SpawnSystem schedules rocket launches. The interval between launches
// shrinks as the score climbs, down to a floor, and rocket speed creeps up
// with score, so a long run gets steadily harder.
type SpawnSystem struct {
	ecs   *entity.ECS
	rng   *utils.PRNGService
	timer float64
}

func NewSpawnSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, rng *utils.PRNGService) *SpawnSystem {
	s := &SpawnSystem{ecs: ecs, rng: rng}
	dispatcher.Subscribe(event.RunStarted, s)
	return s
}

// OnEvent resets the spawn timer when a fresh run begins.
func (s *SpawnSystem) OnEvent(e event.Event) {
	if e.Type == event.RunStarted {
		s.timer = 0
	}
}

// Interval returns the current launch interval in ms for the given score.
func Interval(score int) float64 {
	interval := config.SpawnIntervalBase - float64(score/100)*config.SpawnIntervalDecrement
	if interval < config.SpawnIntervalMin {
		interval = config.SpawnIntervalMin
	}
	return interval
}

func (s *SpawnSystem) Update(dt float64) {
	s.timer += dt
	if s.timer <= Interval(s.ecs.GameState.Score) {
		return
	}
	s.timer = 0

	ref, ok := s.pickTarget()
	if !ok {
		// Nothing left to aim at; the loss condition is handled elsewhere.
		return
	}

	tx, ty := s.structurePosition(ref)
	speed := config.RocketSpeedBase +
		s.rng.Range(config.RocketSpeedJitter) +
		float64(s.ecs.GameState.Score)*config.RocketSpeedPerScore

	id := s.ecs.NewEntity()
	s.ecs.Rockets[id] = &component.Rocket{
		OriginX:   s.rng.Range(s.ecs.ScreenW),
		OriginY:   0,
		TargetX:   tx,
		TargetY:   ty,
		Speed:     speed,
		TargetRef: ref,
	}
}

// pickTarget chooses uniformly among all alive cities and towers. Candidates
// are ordered by ID so a seeded PRNG yields a reproducible pick.
func (s *SpawnSystem) pickTarget() (types.StructureRef, bool) {
	candidates := make([]types.StructureRef, 0, len(s.ecs.Cities)+len(s.ecs.Towers))
	for id, c := range s.ecs.Cities {
		if c.Alive {
			candidates = append(candidates, types.StructureRef{Kind: types.StructureCity, ID: id})
		}
	}
	for id, t := range s.ecs.Towers {
		if t.Alive {
			candidates = append(candidates, types.StructureRef{Kind: types.StructureTower, ID: id})
		}
	}
	if len(candidates) == 0 {
		return types.StructureRef{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Kind != candidates[j].Kind {
			return candidates[i].Kind < candidates[j].Kind
		}
		return candidates[i].ID < candidates[j].ID
	})
	return candidates[s.rng.Intn(len(candidates))], true
}

func (s *SpawnSystem) structurePosition(ref types.StructureRef) (float64, float64) {
	if ref.Kind == types.StructureCity {
		c := s.ecs.Cities[ref.ID]
		return c.X, c.Y
	}
	t := s.ecs.Towers[ref.ID]
	return t.X, t.Y
}
