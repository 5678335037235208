// internal/types/types.go
package types

// EntityID — opaque identifier for any entity in the ECS.
type EntityID uint64

// StructureKind distinguishes the two installation collections a rocket
// can be aimed at.
type StructureKind int

const (
	StructureCity StructureKind = iota
	StructureTower
)

// StructureRef is a tagged reference to an installation, captured when a
// rocket spawns so impact resolution never has to match by coordinates.
type StructureRef struct {
	Kind StructureKind
	ID   EntityID
}
