// internal/component/projectile.go
package component

import "go-missile-defense/internal/types"

// Rocket is an enemy projectile descending from the top edge toward one
// installation. Progress runs [0,1] along the origin→target segment and
// only ever increases; at 1 the rocket resolves against TargetRef.
type Rocket struct {
	OriginX, OriginY float64
	TargetX, TargetY float64
	Speed            float64 // progress per nominal frame
	Progress         float64
	TargetRef        types.StructureRef
}

// Interceptor is a player projectile fired from a tower toward a jittered
// tap point. On reaching its target it detonates; it never damages
// installations and has no miss penalty.
type Interceptor struct {
	OriginX, OriginY float64
	TargetX, TargetY float64
	Speed            float64
	Progress         float64
}
