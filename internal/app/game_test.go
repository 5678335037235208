package app

import (
	"math"
	"strings"
	"testing"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/utils"
)

func newTestGame(seed int64) *Game {
	g := NewGame(utils.NewPRNGService(seed))
	g.Resize(1000, 800)
	return g
}

func TestFireAt_BurstOfFive(t *testing.T) {
	g := newTestGame(1)
	g.Begin()
	// Collapse to a single known tower.
	for _, tower := range g.ECS.Towers {
		tower.Alive = false
	}
	id := g.ECS.NewEntity()
	g.ECS.Towers[id] = &component.Tower{X: 100, Y: 500, Alive: true, Ammo: config.TowerAmmo, MaxAmmo: config.TowerAmmo}

	g.FireAt(100, 500)

	if len(g.ECS.Interceptors) != config.InterceptorBurstSize {
		t.Fatalf("expected a burst of %d, got %d", config.InterceptorBurstSize, len(g.ECS.Interceptors))
	}
	for _, itc := range g.ECS.Interceptors {
		if itc.OriginX != 100 || itc.OriginY != 500 {
			t.Fatalf("burst origin should be the tower position, got (%.1f,%.1f)", itc.OriginX, itc.OriginY)
		}
		if math.Abs(itc.TargetX-100) > config.InterceptorTargetJitter ||
			math.Abs(itc.TargetY-500) > config.InterceptorTargetJitter {
			t.Fatalf("target jitter out of ±%.0f px: (%.1f,%.1f)", config.InterceptorTargetJitter, itc.TargetX, itc.TargetY)
		}
		if itc.Speed < config.InterceptorSpeedBase ||
			itc.Speed >= config.InterceptorSpeedBase+config.InterceptorSpeedJitter {
			t.Fatalf("interceptor speed out of range: %.4f", itc.Speed)
		}
		if itc.Progress != 0 {
			t.Fatalf("fresh interceptor should start at progress 0, got %.4f", itc.Progress)
		}
	}
}

func TestFireAt_PicksNearestAliveTower(t *testing.T) {
	g := newTestGame(1)
	g.Begin() // towers at x fractions {0.1,0.3,0.5,0.7,0.9} of 1000px

	g.FireAt(120, 300)

	for _, itc := range g.ECS.Interceptors {
		if itc.OriginX != 100 {
			t.Fatalf("expected fire from the tower at x=100, got x=%.1f", itc.OriginX)
		}
	}
}

func TestFireAt_SkipsDeadTowers(t *testing.T) {
	g := newTestGame(1)
	g.Begin()
	for _, tower := range g.ECS.Towers {
		if tower.X == 100 {
			tower.Alive = false
		}
	}

	g.FireAt(100, 300)

	for _, itc := range g.ECS.Interceptors {
		if itc.OriginX == 100 {
			t.Fatal("dead tower must not fire")
		}
	}
	if len(g.ECS.Interceptors) != config.InterceptorBurstSize {
		t.Fatalf("next-nearest tower should fire instead, got %d interceptors", len(g.ECS.Interceptors))
	}
}

func TestFireAt_DroppedWithNoTowers(t *testing.T) {
	g := newTestGame(1)
	g.Begin()
	for _, tower := range g.ECS.Towers {
		tower.Alive = false
	}

	g.FireAt(500, 300)

	if len(g.ECS.Interceptors) != 0 {
		t.Fatalf("tap with no towers alive should be dropped, got %d interceptors", len(g.ECS.Interceptors))
	}
}

func TestUpdate_NoOpOutsidePlaying(t *testing.T) {
	g := newTestGame(1)
	// Phase is START: even huge dt must not spawn anything.
	for i := 0; i < 100; i++ {
		g.Update(config.MaxDeltaTime)
	}
	if len(g.ECS.Rockets) != 0 {
		t.Fatalf("simulation must idle outside PLAYING, got %d rockets", len(g.ECS.Rockets))
	}
}

func TestUpdate_NoOpWhilePaused(t *testing.T) {
	g := newTestGame(1)
	g.Begin()
	g.HandlePauseClick()
	for i := 0; i < 200; i++ {
		g.Update(config.MaxDeltaTime)
	}
	if len(g.ECS.Rockets) != 0 {
		t.Fatal("paused simulation must not spawn")
	}
}

func TestUpdate_ScoreNeverDecreases(t *testing.T) {
	g := newTestGame(99)
	g.Begin()
	prev := 0
	for i := 0; i < 2000; i++ {
		g.Update(config.FrameTime)
		if i%50 == 0 {
			g.FireAt(g.ECS.ScreenW/2, 200)
		}
		if g.Score() < prev {
			t.Fatalf("score decreased: %d -> %d", prev, g.Score())
		}
		prev = g.Score()
		if g.Phase() != component.PhasePlaying {
			break
		}
	}
}

func TestUpdate_RocketsEventuallySpawn(t *testing.T) {
	g := newTestGame(5)
	g.Begin()
	for i := 0; i < 200; i++ {
		g.Update(config.FrameTime)
		if len(g.ECS.Rockets) > 0 {
			return
		}
	}
	t.Fatal("no rocket spawned in ~3.3s of simulated time")
}

func TestBegin_RestartAfterLoss(t *testing.T) {
	g := newTestGame(1)
	g.Begin()
	for _, tower := range g.ECS.Towers {
		tower.Alive = false
	}
	g.ECS.GameState.Phase = component.PhaseLost

	g.Begin()

	if g.Phase() != component.PhasePlaying {
		t.Fatalf("restart should yield PLAYING, got %v", g.Phase())
	}
	if g.ECS.AliveTowers() != len(config.TowerLayoutFractions) {
		t.Fatalf("restart should rebuild all towers, got %d", g.ECS.AliveTowers())
	}
}

func TestRunReport_Contents(t *testing.T) {
	g := newTestGame(123)
	g.Begin()
	r := g.RunReport()

	for _, want := range []string{"seed=123", "phase=PLAYING", "score=0", "towers=5/5", "cities=6/6"} {
		if !strings.Contains(r, want) {
			t.Fatalf("report missing %q:\n%s", want, r)
		}
	}
}
