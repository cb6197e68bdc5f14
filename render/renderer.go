package render

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/river-raid/component"
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/physics"
	"github.com/lixenwraith/river-raid/vmath"
)

// Renderer draws a session onto a tcell screen
// It only reads session state and must run on the goroutine that ticks the session
type Renderer struct {
	screen tcell.Screen
	hud    *HUD
	debug  bool
}

// NewRenderer creates a renderer; hud may be nil
func NewRenderer(screen tcell.Screen, hud *HUD) *Renderer {
	return &Renderer{screen: screen, hud: hud}
}

// SetDebug toggles the hit box overlay
func (r *Renderer) SetDebug(on bool) { r.debug = on }
func (r *Renderer) Debug() bool      { return r.debug }

// Playfield returns the viewport below the HUD for a screen size
func Playfield(width, height int) Viewport {
	return Viewport{X: 0, Y: parameter.HUDHeight, W: width, H: height - parameter.HUDHeight}
}

// Draw renders one frame
func (r *Renderer) Draw(s *engine.Session) {
	r.screen.Clear()
	width, height := r.screen.Size()
	vp := Playfield(width, height)

	if vp.W > 0 && vp.H > 0 {
		player := s.Player()
		mode := s.Camera()
		proj := newProjection(mode, vp, s.River(), player.Pos)

		r.drawRiver(proj, vp, s.River(), mode)
		r.drawSprites(proj, collectSprites(s))
		r.drawPlayer(proj, vp, &player, mode)
		if r.debug {
			r.drawHitBoxes(proj, s)
		}
	}

	if r.hud != nil {
		r.hud.Draw(r.screen, width, height)
	}
	r.screen.Show()
}

// drawRiver fills the playfield with water, banks and, in cockpit view, sky
func (r *Renderer) drawRiver(proj projection, vp Viewport, river parameter.RiverTuning, mode engine.CameraMode) {
	water := tcell.StyleDefault.Background(RgbWater).Foreground(RgbWaterCrest)
	bank := tcell.StyleDefault.Background(RgbBank).Foreground(RgbBankDot)
	outside := tcell.StyleDefault.Background(RgbBackground)
	if mode == engine.CameraCockpit {
		outside = tcell.StyleDefault.Background(RgbSky)
	}

	half := river.HalfWidth()
	for row := vp.Y; row < vp.Y+vp.H; row++ {
		for col := vp.X; col < vp.X+vp.W; col++ {
			x, ok := proj.ground(col, row)
			switch {
			case !ok:
				r.screen.SetContent(col, row, ' ', nil, outside)
			case math.Abs(x) <= half:
				ch := ' '
				if (col+row)%5 == 0 {
					ch = parameter.GlyphWater
				}
				r.screen.SetContent(col, row, ch, nil, water)
			case math.Abs(x) <= half+river.BankWidth:
				ch := ' '
				if (col*3+row)%7 == 0 {
					ch = parameter.GlyphBank
				}
				r.screen.SetContent(col, row, ch, nil, bank)
			default:
				r.screen.SetContent(col, row, ' ', nil, outside)
			}
		}
	}
}

// sprite is one drawable entity
type sprite struct {
	pos       vmath.Vec3F
	halfWidth float64
	glyph     rune
	fg        tcell.Color
}

// collectSprites gathers every visible non-player entity ordered far to near
func collectSprites(s *engine.Session) []sprite {
	var out []sprite
	for _, sc := range s.Scenery() {
		if !sc.Visible {
			continue
		}
		glyph, fg := sceneryLook(sc.Variant)
		out = append(out, sprite{pos: sc.Pos, halfWidth: sc.HalfWidth(), glyph: glyph, fg: fg})
	}
	for _, e := range s.Enemies() {
		if !e.Collidable() {
			continue
		}
		out = append(out, sprite{pos: e.Pos, halfWidth: e.HalfWidth(), glyph: parameter.GlyphEnemy, fg: RgbEnemy})
	}
	for _, p := range s.Projectiles() {
		if !p.Active {
			continue
		}
		out = append(out, sprite{pos: p.Pos, glyph: parameter.GlyphProjectile, fg: RgbProjectile})
	}
	for _, ex := range s.Explosions() {
		if !ex.Active {
			continue
		}
		out = append(out, sprite{pos: ex.Pos, glyph: explosionGlyph(ex.Progress()), fg: RgbExplosion})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].pos.Z < out[j].pos.Z })
	return out
}

func sceneryLook(v component.SceneryVariant) (rune, tcell.Color) {
	switch v {
	case component.SceneryHouse:
		return parameter.GlyphHouse, RgbHouse
	case component.SceneryBuilding:
		return parameter.GlyphBuilding, RgbBuilding
	default:
		return parameter.GlyphTree, RgbTree
	}
}

// explosionGlyph picks the marker frame for an elapsed lifetime fraction
func explosionGlyph(progress float64) rune {
	frames := parameter.ExplosionGlyphs
	i := int(progress * float64(len(frames)))
	if i >= len(frames) {
		i = len(frames) - 1
	}
	return frames[i]
}

// drawSprites draws each sprite as a horizontal run across its projected width
// The background of the underlying cell is kept
func (r *Renderer) drawSprites(proj projection, sprites []sprite) {
	for _, sp := range sprites {
		col, row, ok := proj.project(sp.pos)
		if !ok {
			continue
		}
		left, right := col, col
		if sp.halfWidth > 0 {
			if c, _, ok := proj.project(vmath.Vec3F{X: sp.pos.X - sp.halfWidth, Y: sp.pos.Y, Z: sp.pos.Z}); ok {
				left = c
			}
			if c, _, ok := proj.project(vmath.Vec3F{X: sp.pos.X + sp.halfWidth, Y: sp.pos.Y, Z: sp.pos.Z}); ok {
				right = c
			}
		}
		for c := left; c <= right; c++ {
			r.setGlyph(c, row, sp.glyph, sp.fg)
		}
	}
}

// drawPlayer draws the plane; the cockpit view shows its nose at the bottom centre
func (r *Renderer) drawPlayer(proj projection, vp Viewport, p *component.PlayerComponent, mode engine.CameraMode) {
	if !p.Visible {
		return
	}
	glyph := playerGlyph(p.Tilt)
	if mode == engine.CameraCockpit {
		r.setGlyph(vp.X+vp.W/2, vp.Y+vp.H-1, glyph, RgbPlayer)
		return
	}
	if col, row, ok := proj.project(p.Pos); ok {
		r.setGlyph(col, row, glyph, RgbPlayer)
	}
}

func playerGlyph(tilt float64) rune {
	const bank = parameter.PlayerTiltAngle / 3
	switch {
	case tilt <= -bank:
		return parameter.GlyphPlayerLeft
	case tilt >= bank:
		return parameter.GlyphPlayerRight
	default:
		return parameter.GlyphPlayer
	}
}

// drawHitBoxes marks the collision box corners of every collidable entity
func (r *Renderer) drawHitBoxes(proj projection, s *engine.Session) {
	c := s.Tuning().Collision
	var boxes []vmath.Box3
	if p := s.Player(); p.Collidable() {
		boxes = append(boxes, physics.PlayerHitBox(&p, c))
	}
	for _, e := range s.Enemies() {
		if e.Collidable() {
			boxes = append(boxes, physics.EnemyHitBox(&e, c))
		}
	}
	for _, p := range s.Projectiles() {
		if p.Active {
			boxes = append(boxes, physics.ProjectileHitBox(&p, c))
		}
	}

	for _, b := range boxes {
		y := b.Center().Y
		for _, corner := range [4]vmath.Vec3F{
			{X: b.Min.X, Y: y, Z: b.Min.Z},
			{X: b.Max.X, Y: y, Z: b.Min.Z},
			{X: b.Min.X, Y: y, Z: b.Max.Z},
			{X: b.Max.X, Y: y, Z: b.Max.Z},
		} {
			if col, row, ok := proj.project(corner); ok {
				r.setGlyph(col, row, parameter.GlyphHitBox, RgbHitBox)
			}
		}
	}
}

// setGlyph replaces the rune and foreground of a cell, keeping its background
func (r *Renderer) setGlyph(col, row int, ch rune, fg tcell.Color) {
	_, _, style, _ := r.screen.GetContent(col, row)
	r.screen.SetContent(col, row, ch, nil, style.Foreground(fg))
}
