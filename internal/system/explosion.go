// internal/system/explosion.go
package system

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
)

// kill records where a rocket was caught so chain explosions can be added
// after map iteration finishes.
type kill struct {
	x, y float64
}

// ExplosionSystem grows and shrinks hazard volumes and destroys any rocket
// caught strictly inside one. Each kill is worth a fixed score award and
// leaves a secondary explosion, so one interception can cascade.
type ExplosionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewExplosionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ExplosionSystem {
	return &ExplosionSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ExplosionSystem) Update(dt float64) {
	step := dt / config.FrameTime
	var chains []kill

	for id, ex := range s.ecs.Explosions {
		if ex.Expanding {
			ex.Radius += config.ExplosionGrowRate * step
			if ex.Radius >= ex.MaxRadius {
				ex.Radius = ex.MaxRadius
				ex.Expanding = false
			}
		} else {
			ex.Radius -= config.ExplosionShrinkRate * step
			if ex.Radius <= 0 {
				delete(s.ecs.Explosions, id)
				continue
			}
		}

		// A live explosion is a hazard in both phases. Removal is immediate,
		// so a rocket can be credited at most once per step.
		for rid, rocket := range s.ecs.Rockets {
			rx := utils.Lerp(rocket.OriginX, rocket.TargetX, rocket.Progress)
			ry := utils.Lerp(rocket.OriginY, rocket.TargetY, rocket.Progress)
			if utils.Distance(ex.X, ex.Y, rx, ry) < ex.Radius {
				delete(s.ecs.Rockets, rid)
				chains = append(chains, kill{x: rx, y: ry})
				s.eventDispatcher.Dispatch(event.Event{Type: event.RocketIntercepted, Data: rid})
			}
		}
	}

	for _, k := range chains {
		spawnExplosion(s.ecs, k.x, k.y, config.ChainExplosionRadius)
	}
}
