// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/utils"
)

// RenderSystem draws the whole field from read-only entity state. It is a
// full redraw every frame; nothing here mutates the simulation.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	w := float32(s.ecs.ScreenW)
	h := float32(s.ecs.ScreenH)
	vector.DrawFilledRect(screen, 0, h-float32(config.GroundHeight), w, float32(config.GroundHeight), config.GroundColor, true)

	s.drawCities(screen)
	s.drawTowers(screen)
	s.drawRockets(screen)
	s.drawInterceptors(screen)
	s.drawExplosions(screen)
}

func (s *RenderSystem) drawCities(screen *ebiten.Image) {
	for _, city := range s.ecs.Cities {
		if !city.Alive {
			continue
		}
		x, y := float32(city.X), float32(city.Y)
		r := float32(config.CityRadius)
		vector.DrawFilledCircle(screen, x, y, r, config.CityColor, true)
		// Ground strip covers the lower half, leaving a dome.
		for i := 0; i < 3; i++ {
			wx := x - r/2 + float32(i)*r/2
			vector.DrawFilledRect(screen, wx-1.5, y-r/2, 3, 4, config.CityWindowColor, true)
		}
	}
}

func (s *RenderSystem) drawTowers(screen *ebiten.Image) {
	for _, tower := range s.ecs.Towers {
		if !tower.Alive {
			continue
		}
		x, y := float32(tower.X), float32(tower.Y)
		r := float32(config.TowerRadius)

		// Cannon wedge.
		vector.DrawFilledRect(screen, x-r, y-r/2, 2*r, r/2, config.TowerColor, true)
		vector.StrokeLine(screen, x, y-r/2, x, y-r-4, 3, config.TowerColor, true)

		strokeArc(screen, x, y-r/2, float32(config.ShieldRadius), math.Pi, 2*math.Pi, 2, config.TowerShieldColor)

		// Ammo pips: cosmetic, current rules never spend them.
		for i := 0; i < tower.Ammo; i++ {
			px := x - r + 3 + float32(i)*(2*r-6)/float32(tower.MaxAmmo)
			vector.DrawFilledCircle(screen, px, y-3, 1.5, config.AmmoPipColor, true)
		}
	}
}

func (s *RenderSystem) drawRockets(screen *ebiten.Image) {
	for _, rocket := range s.ecs.Rockets {
		x := utils.Lerp(rocket.OriginX, rocket.TargetX, rocket.Progress)
		y := utils.Lerp(rocket.OriginY, rocket.TargetY, rocket.Progress)

		trailP := utils.Clamp(rocket.Progress-config.TrailLength, 0, 1)
		tx := utils.Lerp(rocket.OriginX, rocket.TargetX, trailP)
		ty := utils.Lerp(rocket.OriginY, rocket.TargetY, trailP)
		vector.StrokeLine(screen, float32(tx), float32(ty), float32(x), float32(y), 2, config.RocketTrailColor, true)

		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(config.RocketRadius), config.RocketColor, true)
		// Flame sits just behind the body along the flight direction.
		fx := utils.Lerp(x, tx, 0.3)
		fy := utils.Lerp(y, ty, 0.3)
		vector.DrawFilledCircle(screen, float32(fx), float32(fy), 2, config.RocketFlameColor, true)
	}
}

func (s *RenderSystem) drawInterceptors(screen *ebiten.Image) {
	for _, itc := range s.ecs.Interceptors {
		x := utils.Lerp(itc.OriginX, itc.TargetX, itc.Progress)
		y := utils.Lerp(itc.OriginY, itc.TargetY, itc.Progress)

		vector.StrokeLine(screen, float32(itc.OriginX), float32(itc.OriginY), float32(x), float32(y), 1, config.InterceptorBeamColor, true)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(config.InterceptorRadius), config.InterceptorColor, true)

		// Target marker: small cross at the detonation point.
		mx, my := float32(itc.TargetX), float32(itc.TargetY)
		vector.StrokeLine(screen, mx-4, my, mx+4, my, 1, config.TargetMarkerColor, true)
		vector.StrokeLine(screen, mx, my-4, mx, my+4, 1, config.TargetMarkerColor, true)
	}
}

func (s *RenderSystem) drawExplosions(screen *ebiten.Image) {
	for _, ex := range s.ecs.Explosions {
		x, y := float32(ex.X), float32(ex.Y)
		r := float32(ex.Radius)
		if r <= 0 {
			continue
		}
		// Three layered discs stand in for a radial gradient.
		vector.DrawFilledCircle(screen, x, y, r, config.ExplosionEdgeColor, true)
		vector.DrawFilledCircle(screen, x, y, r*0.65, config.ExplosionMidColor, true)
		vector.DrawFilledCircle(screen, x, y, r*0.3, config.ExplosionCoreColor, true)
	}
}

// strokeArc approximates a circular arc with short line segments; the vector
// package has no arc primitive.
func strokeArc(screen *ebiten.Image, cx, cy, r float32, from, to float64, width float32, clr color.Color) {
	const segments = 24
	step := (to - from) / segments
	px := cx + r*float32(math.Cos(from))
	py := cy + r*float32(math.Sin(from))
	for i := 1; i <= segments; i++ {
		a := from + step*float64(i)
		nx := cx + r*float32(math.Cos(a))
		ny := cy + r*float32(math.Sin(a))
		vector.StrokeLine(screen, px, py, nx, ny, width, clr, true)
		px, py = nx, ny
	}
}
