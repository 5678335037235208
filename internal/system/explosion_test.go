package system

import (
	"math"
	"testing"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
)

func addExplosion(ecs *entity.ECS, x, y, radius, maxRadius float64, expanding bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Explosions[id] = &component.Explosion{X: x, Y: y, Radius: radius, MaxRadius: maxRadius, Expanding: expanding}
	return id
}

func TestExplosion_GrowsToMaxThenContracts(t *testing.T) {
	ecs, d := newTestWorld()
	id := addExplosion(ecs, 0, 0, 0, 40, true)
	s := NewExplosionSystem(ecs, d)

	s.Update(config.FrameTime)
	ex := ecs.Explosions[id]
	if math.Abs(ex.Radius-config.ExplosionGrowRate) > 1e-6 {
		t.Fatalf("one nominal frame should grow by %.1f, got %.4f", config.ExplosionGrowRate, ex.Radius)
	}

	for i := 0; i < 100 && ex.Expanding; i++ {
		s.Update(config.FrameTime)
	}
	if ex.Expanding {
		t.Fatal("explosion never reached max radius")
	}
	if ex.Radius > ex.MaxRadius {
		t.Fatalf("radius overshot max: %.2f > %.2f", ex.Radius, ex.MaxRadius)
	}

	before := ex.Radius
	s.Update(config.FrameTime)
	if ex.Radius >= before {
		t.Fatal("contracting explosion should shrink")
	}
}

func TestExplosion_RemovedAtZero(t *testing.T) {
	ecs, d := newTestWorld()
	id := addExplosion(ecs, 0, 0, 0.5, 40, false)
	s := NewExplosionSystem(ecs, d)

	s.Update(config.FrameTime)
	if _, ok := ecs.Explosions[id]; ok {
		t.Fatal("explosion at radius <= 0 should be removed")
	}
}

func TestExplosion_KillsRocketInsideRadius(t *testing.T) {
	ecs, d := newTestWorld()
	NewStateSystem(ecs, d) // scoring listener
	addExplosion(ecs, 0, 0, 50, 50, false)

	// Rocket interpolated position: halfway from (20,20) to (0,0) = (10,10),
	// distance ~14.1 from the blast center.
	rid := ecs.NewEntity()
	ecs.Rockets[rid] = &component.Rocket{
		OriginX: 20, OriginY: 20,
		TargetX: 0, TargetY: 0,
		Speed: 0, Progress: 0.5,
	}
	s := NewExplosionSystem(ecs, d)
	s.Update(config.FrameTime)

	if _, ok := ecs.Rockets[rid]; ok {
		t.Fatal("rocket inside the blast radius should be destroyed")
	}
	if ecs.GameState.Score != config.KillScore {
		t.Fatalf("one kill awards exactly %d, got %d", config.KillScore, ecs.GameState.Score)
	}

	var chain *component.Explosion
	count := 0
	for _, ex := range ecs.Explosions {
		if ex.MaxRadius == config.ChainExplosionRadius {
			chain = ex
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one chain explosion, got %d", count)
	}
	if math.Abs(chain.X-10) > 1e-9 || math.Abs(chain.Y-10) > 1e-9 {
		t.Fatalf("chain explosion should sit at the kill point, got (%.2f,%.2f)", chain.X, chain.Y)
	}
}

func TestExplosion_RocketOutsideRadiusSurvives(t *testing.T) {
	ecs, d := newTestWorld()
	addExplosion(ecs, 0, 0, 10, 40, false)
	rid := ecs.NewEntity()
	ecs.Rockets[rid] = &component.Rocket{OriginX: 100, OriginY: 100, TargetX: 100, TargetY: 200, Progress: 0.1}

	s := NewExplosionSystem(ecs, d)
	s.Update(config.FrameTime)
	if _, ok := ecs.Rockets[rid]; !ok {
		t.Fatal("rocket outside every blast should survive")
	}
}

func TestExplosion_SingleCreditWithOverlappingBlasts(t *testing.T) {
	ecs, d := newTestWorld()
	NewStateSystem(ecs, d)
	addExplosion(ecs, -5, 0, 50, 50, false)
	addExplosion(ecs, 5, 0, 50, 50, false)

	rid := ecs.NewEntity()
	ecs.Rockets[rid] = &component.Rocket{TargetY: 10, Progress: 0} // at (0,0)

	s := NewExplosionSystem(ecs, d)
	s.Update(config.FrameTime)

	if ecs.GameState.Score != config.KillScore {
		t.Fatalf("overlapping blasts must credit a rocket once, got score %d", ecs.GameState.Score)
	}
}

func TestExplosion_OneBlastKillsSeveralRockets(t *testing.T) {
	ecs, d := newTestWorld()
	NewStateSystem(ecs, d)
	addExplosion(ecs, 0, 0, 60, 60, false)
	for i := 0; i < 3; i++ {
		id := ecs.NewEntity()
		ecs.Rockets[id] = &component.Rocket{OriginX: float64(i * 10), OriginY: 5, TargetX: float64(i * 10), TargetY: 6, Progress: 0}
	}

	s := NewExplosionSystem(ecs, d)
	s.Update(config.FrameTime)

	if len(ecs.Rockets) != 0 {
		t.Fatalf("all rockets inside the blast should die, %d left", len(ecs.Rockets))
	}
	if ecs.GameState.Score != 3*config.KillScore {
		t.Fatalf("three kills award %d, got %d", 3*config.KillScore, ecs.GameState.Score)
	}
}
