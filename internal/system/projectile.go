// internal/system/projectile.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
)

// ProjectileSystem advances rockets and interceptors along their paths.
// Progress is normalized to the nominal frame so the constants are
// frame-rate independent. Impacts are resolved through the StructureRef
// captured at spawn time, never by matching coordinates.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(dt float64) {
	step := dt / config.FrameTime

	for id, rocket := range s.ecs.Rockets {
		rocket.Progress += rocket.Speed * step
		if rocket.Progress < 1 {
			continue
		}
		s.resolveImpact(id, rocket)
	}

	for id, itc := range s.ecs.Interceptors {
		itc.Progress += itc.Speed * step
		if itc.Progress < 1 {
			continue
		}
		// Detonation only; interceptors never damage installations.
		spawnExplosion(s.ecs, itc.TargetX, itc.TargetY, config.InterceptorExplosionRadius)
		delete(s.ecs.Interceptors, id)
	}
}

// resolveImpact marks the struck installation dead, leaves an explosion at
// the impact point and removes the rocket. Loss evaluation happens in the
// StateSystem, which listens for StructureDestroyed.
func (s *ProjectileSystem) resolveImpact(id types.EntityID, rocket *component.Rocket) {
	wasAlive := false
	switch rocket.TargetRef.Kind {
	case types.StructureCity:
		if c, ok := s.ecs.Cities[rocket.TargetRef.ID]; ok && c.Alive {
			c.Alive = false
			wasAlive = true
		}
	case types.StructureTower:
		if t, ok := s.ecs.Towers[rocket.TargetRef.ID]; ok && t.Alive {
			t.Alive = false
			wasAlive = true
		}
	}

	spawnExplosion(s.ecs, rocket.TargetX, rocket.TargetY, config.ImpactExplosionRadius)
	delete(s.ecs.Rockets, id)

	s.eventDispatcher.Dispatch(event.Event{Type: event.RocketImpacted, Data: id})
	if wasAlive {
		s.eventDispatcher.Dispatch(event.Event{Type: event.StructureDestroyed, Data: rocket.TargetRef})
	}
}

// spawnExplosion creates a hazard volume that starts at radius zero and
// expands toward maxRadius.
func spawnExplosion(ecs *entity.ECS, x, y, maxRadius float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Explosions[id] = &component.Explosion{
		X:         x,
		Y:         y,
		Radius:    0,
		MaxRadius: maxRadius,
		Expanding: true,
	}
	return id
}
