// internal/component/structure.go
package component

// City is a ground installation worth defending. Dead cities stay in the
// collection so the renderer can skip them in place.
type City struct {
	X, Y  float64
	Alive bool
}

// Tower is a launch site. Ammo is cosmetic under current rules (pips on the
// HUD, never consumed); Alive flips false exactly once, permanently.
type Tower struct {
	X, Y    float64
	Alive   bool
	Ammo    int
	MaxAmmo int
}
