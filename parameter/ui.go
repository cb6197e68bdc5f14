package parameter

import "time"

// Transient Message Durations
const (
	MessageDuration       = 2 * time.Second
	RecordMessageDuration = 3 * time.Second
)

// Input Hold Windows
// Terminals report presses and auto-repeats but no releases
const (
	// KeyHoldWindow keeps a freshly pressed key held until auto-repeat starts
	KeyHoldWindow = 250 * time.Millisecond

	// KeyRepeatWindow keeps a repeating key held between repeats
	KeyRepeatWindow = 90 * time.Millisecond
)

// HUD
const (
	HUDHeight = 1
)

// Camera Projection
const (
	// FollowViewAhead is the world distance shown ahead of the player in follow mode
	FollowViewAhead = 30.0
	// FollowViewBehind is the world distance shown behind the player in follow mode
	FollowViewBehind = 3.0

	// CockpitEyeHeight is the eye offset above the player body
	CockpitEyeHeight = 0.6
	// CockpitNearPlane hides anything closer than this ahead of the eye
	CockpitNearPlane = 0.5
	// CockpitHorizonRatio places the horizon at this fraction of the viewport height
	CockpitHorizonRatio = 0.35
	// CellAspect is the height-to-width ratio of a terminal cell
	CellAspect = 2.0
)

// Glyphs
const (
	GlyphPlayer      = 'A'
	GlyphPlayerLeft  = '\\'
	GlyphPlayerRight = '/'
	GlyphEnemy       = 'W'
	GlyphProjectile  = '|'
	GlyphWater       = '~'
	GlyphBank        = '.'
	GlyphTree        = '♣'
	GlyphHouse       = '⌂'
	GlyphBuilding    = '█'
	GlyphHitBox      = '+'
)

// ExplosionGlyphs are shown in order over a marker's lifetime
var ExplosionGlyphs = []rune{'#', '*', '+', '.'}
