// internal/component/explosion.go
package component

// Explosion is a transient hazard volume. The radius rises to MaxRadius,
// then falls back to zero, at which point the entity is removed. Rockets
// strictly inside the radius are destroyed in either phase.
type Explosion struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Expanding bool
}
