// internal/entity/ecs.go
package entity

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/types"
)

// ECS holds every entity collection of the simulation. The simulation systems
// are the only writers; the render system and HUD only read. Viewport
// dimensions are set by the resize collaborator and read for spawn bounds and
// (at reset only) installation layout.
type ECS struct {
	GameTime float64 // ms since the process started, speed-independent
	NextID   types.EntityID

	Rockets      map[types.EntityID]*component.Rocket
	Interceptors map[types.EntityID]*component.Interceptor
	Explosions   map[types.EntityID]*component.Explosion
	Cities       map[types.EntityID]*component.City
	Towers       map[types.EntityID]*component.Tower

	GameState *component.GameState

	ScreenW float64
	ScreenH float64
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Rockets:      make(map[types.EntityID]*component.Rocket),
		Interceptors: make(map[types.EntityID]*component.Interceptor),
		Explosions:   make(map[types.EntityID]*component.Explosion),
		Cities:       make(map[types.EntityID]*component.City),
		Towers:       make(map[types.EntityID]*component.Tower),
		GameState:    &component.GameState{Phase: component.PhaseStart},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AliveTowers counts towers still standing; zero while PLAYING means defeat.
func (ecs *ECS) AliveTowers() int {
	n := 0
	for _, t := range ecs.Towers {
		if t.Alive {
			n++
		}
	}
	return n
}

// AliveCities counts cities still standing.
func (ecs *ECS) AliveCities() int {
	n := 0
	for _, c := range ecs.Cities {
		if c.Alive {
			n++
		}
	}
	return n
}
