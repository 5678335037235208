// internal/system/state.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
)

// StateSystem owns the phase machine and the score. Legal transitions:
// START→PLAYING, PLAYING→WON, PLAYING→LOST, WON|LOST→PLAYING. It reacts to
// interception and destruction events dispatched mid-step, so a run can end
// the instant the deciding event fires.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.RocketIntercepted, ss)
	eventDispatcher.Subscribe(event.StructureDestroyed, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if s.ecs.GameState.Phase != component.PhasePlaying {
		return
	}
	switch e.Type {
	case event.RocketIntercepted:
		s.ecs.GameState.Score += config.KillScore
		if s.ecs.GameState.Score >= config.WinScore {
			s.ecs.GameState.Phase = component.PhaseWon
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon})
		}
	case event.StructureDestroyed:
		ref, ok := e.Data.(types.StructureRef)
		if !ok || ref.Kind != types.StructureTower {
			return
		}
		if s.ecs.AliveTowers() == 0 {
			s.ecs.GameState.Phase = component.PhaseLost
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameLost})
		}
	}
}

// Begin starts (or restarts) a run. It is a no-op while PLAYING, and safe to
// call repeatedly from START, WON or LOST: score drops to zero, all transient
// entities are cleared and the installations are laid out afresh from the
// current viewport.
func (s *StateSystem) Begin() {
	if s.ecs.GameState.Phase == component.PhasePlaying {
		return
	}

	s.ecs.GameState.Score = 0
	clearEntities(s.ecs)
	s.layoutStructures()
	s.ecs.GameState.Phase = component.PhasePlaying
	s.eventDispatcher.Dispatch(event.Event{Type: event.RunStarted})
}

func clearEntities(ecs *entity.ECS) {
	for id := range ecs.Rockets {
		delete(ecs.Rockets, id)
	}
	for id := range ecs.Interceptors {
		delete(ecs.Interceptors, id)
	}
	for id := range ecs.Explosions {
		delete(ecs.Explosions, id)
	}
	for id := range ecs.Cities {
		delete(ecs.Cities, id)
	}
	for id := range ecs.Towers {
		delete(ecs.Towers, id)
	}
}

// layoutStructures places towers and cities at fixed horizontal fractions of
// the viewport, on top of the ground strip.
func (s *StateSystem) layoutStructures() {
	groundY := s.ecs.ScreenH - config.GroundHeight
	for _, f := range config.TowerLayoutFractions {
		id := s.ecs.NewEntity()
		s.ecs.Towers[id] = &component.Tower{
			X:       f * s.ecs.ScreenW,
			Y:       groundY,
			Alive:   true,
			Ammo:    config.TowerAmmo,
			MaxAmmo: config.TowerAmmo,
		}
	}
	for _, f := range config.CityLayoutFractions {
		id := s.ecs.NewEntity()
		s.ecs.Cities[id] = &component.City{
			X:     f * s.ecs.ScreenW,
			Y:     groundY,
			Alive: true,
		}
	}
}
