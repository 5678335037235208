// internal/config/config.go
package config

import "image/color"

// All time quantities are in milliseconds unless noted. Projectile speeds are
// progress-per-nominal-frame; FrameTime is the nominal frame they normalize to.
const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	MaxDeltaTime = 100.0 // ms; absorbs tab suspension / slow frames
	FrameTime    = 16.67 // ms; nominal frame for speed constants

	// Spawn schedule: interval = max(SpawnIntervalMin, SpawnIntervalBase - (score/100)*SpawnIntervalDecrement)
	SpawnIntervalBase      = 1000.0
	SpawnIntervalMin       = 266.0
	SpawnIntervalDecrement = 66.0

	RocketSpeedBase     = 0.0015
	RocketSpeedJitter   = 0.0015
	RocketSpeedPerScore = 1.0 / 100000.0

	InterceptorSpeedBase    = 0.12
	InterceptorSpeedJitter  = 0.05
	InterceptorBurstSize    = 5
	InterceptorTargetJitter = 15.0 // px, per axis

	ImpactExplosionRadius      = 40.0
	InterceptorExplosionRadius = 50.0
	ChainExplosionRadius       = 40.0
	ExplosionGrowRate          = 1.5 // px per nominal frame
	ExplosionShrinkRate        = 0.8

	KillScore = 20
	WinScore  = 1000

	TowerAmmo         = 6 // cosmetic pips, not consumed by current rules
	GroundHeight      = 40.0
	CityRadius        = 16.0
	TowerRadius       = 14.0
	ShieldRadius      = 24.0
	RocketRadius      = 3.0
	InterceptorRadius = 2.5
	TrailLength       = 0.06 // progress-units of trail behind a rocket

	ScoreTextX = 16
	ScoreTextY = 24
)

// Horizontal layout fractions for installations, applied to the viewport
// width at run start. Mid-run resizes do not relocate anything.
var (
	TowerLayoutFractions = []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	CityLayoutFractions  = []float64{0.2, 0.4, 0.45, 0.55, 0.6, 0.8}
)

var (
	BackgroundColor      = color.RGBA{10, 12, 28, 255}
	GroundColor          = color.RGBA{40, 34, 28, 255}
	CityColor            = color.RGBA{70, 130, 180, 255}
	CityWindowColor      = color.RGBA{255, 220, 120, 255}
	TowerColor           = color.RGBA{120, 180, 90, 255}
	TowerShieldColor     = color.RGBA{120, 200, 255, 90}
	AmmoPipColor         = color.RGBA{220, 220, 220, 200}
	RocketColor          = color.RGBA{255, 80, 60, 255}
	RocketTrailColor     = color.RGBA{255, 160, 60, 110}
	RocketFlameColor     = color.RGBA{255, 200, 80, 220}
	InterceptorColor     = color.RGBA{120, 220, 255, 255}
	InterceptorBeamColor = color.RGBA{120, 220, 255, 70}
	TargetMarkerColor    = color.RGBA{120, 220, 255, 160}
	ExplosionCoreColor   = color.RGBA{255, 240, 180, 230}
	ExplosionMidColor    = color.RGBA{255, 150, 60, 150}
	ExplosionEdgeColor   = color.RGBA{200, 60, 40, 80}
	TextLightColor       = color.RGBA{240, 240, 240, 255}
	BannerDimColor       = color.RGBA{0, 0, 0, 140}
	WonBannerColor       = color.RGBA{120, 255, 140, 255}
	LostBannerColor      = color.RGBA{255, 90, 80, 255}
)
