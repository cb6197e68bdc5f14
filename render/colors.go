package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbSky        = tcell.NewRGBColor(40, 60, 110)   // Cockpit sky
	RgbWater      = tcell.NewRGBColor(20, 60, 140)   // River water
	RgbWaterCrest = tcell.NewRGBColor(90, 140, 220)  // Water ripple glyph
	RgbBank       = tcell.NewRGBColor(30, 90, 30)    // Grass bank
	RgbBankDot    = tcell.NewRGBColor(70, 140, 60)   // Bank texture glyph
	RgbPlayer     = tcell.NewRGBColor(255, 255, 255) // Player plane
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)   // Enemy boat
	RgbProjectile = tcell.NewRGBColor(255, 255, 0)   // Shot
	RgbTree       = tcell.NewRGBColor(50, 200, 50)   // Tree
	RgbHouse      = tcell.NewRGBColor(200, 140, 80)  // House
	RgbBuilding   = tcell.NewRGBColor(150, 150, 160) // Building
	RgbExplosion  = tcell.NewRGBColor(255, 165, 0)   // Orange explosion
	RgbHitBox     = tcell.NewRGBColor(255, 0, 255)   // Debug hit box corners

	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg     = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbLives        = tcell.NewRGBColor(255, 80, 80)   // Red hearts
	RgbMessage      = tcell.NewRGBColor(0, 255, 255)   // Cyan transient message
	RgbBanner       = tcell.NewRGBColor(255, 255, 0)   // Pause and game over banners
	RgbRecordBanner = tcell.NewRGBColor(255, 215, 0)   // Gold
)
