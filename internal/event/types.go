// internal/event/types.go
package event

const (
	RunStarted         EventType = "RunStarted"         // Begin accepted, fresh PLAYING state
	RocketImpacted     EventType = "RocketImpacted"     // rocket reached its target
	StructureDestroyed EventType = "StructureDestroyed" // city or tower marked dead (Data: types.StructureRef)
	RocketIntercepted  EventType = "RocketIntercepted"  // rocket destroyed by an explosion
	GameWon            EventType = "GameWon"
	GameLost           EventType = "GameLost"
)
