package parameter

// System Execution Priorities (lower runs first)
// Order is the per-tick stage order of the game loop
const (
	PrioritySpeed      = 10
	PriorityPlayer     = 20
	PriorityScroll     = 30
	PriorityWeapon     = 40
	PriorityProjectile = 50
	PriorityExplosion  = 55
	PriorityCollision  = 60
	PriorityCamera     = 70
	PriorityScore      = 80
	PriorityAudio      = 90
	PriorityNotify     = 95
)
