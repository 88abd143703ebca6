// internal/event/types.go
package event

const (
	EnemySpawned   EventType = "EnemySpawned"   // Data: types.EntityID
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: types.EntityID
	PlayerSpawned  EventType = "PlayerSpawned"
	PlayerHit      EventType = "PlayerHit"
	LaserFired     EventType = "LaserFired" // Data: bool, true for player fire
)
