package engine

import (
	"github.com/lixenwraith/river-raid/component"
	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/physics"
	"github.com/lixenwraith/river-raid/vmath"
)

// World owns every entity in fixed-capacity pools allocated once
// Destruction is deactivation; Reset reinitialises every slot in place
type World struct {
	Resources *Resource

	Player      component.PlayerComponent
	Enemies     []component.EnemyComponent
	Projectiles []component.ProjectileComponent
	Scenery     []component.SceneryComponent
	Explosions  []component.ExplosionComponent

	// Initialized is false until the first Reset populates the pools
	Initialized bool

	systems []System
}

// NewWorld allocates pools sized by the tuning held in res
func NewWorld(res *Resource) *World {
	pools := res.Tuning.Pools
	return &World{
		Resources:   res,
		Enemies:     make([]component.EnemyComponent, pools.Enemies),
		Projectiles: make([]component.ProjectileComponent, pools.Projectiles),
		Scenery:     make([]component.SceneryComponent, pools.Scenery),
		Explosions:  make([]component.ExplosionComponent, pools.Explosions),
	}
}

// Reset places the player at spawn and repopulates every pool
// Enemy generations carry over so a late reactivation can never match a reset slot
func (w *World) Reset() {
	river := w.Resources.Tuning.River
	rng := w.Resources.RNG

	w.Player = component.NewPlayer(river.Width)

	for i := range w.Enemies {
		gen := w.Enemies[i].Generation
		w.Enemies[i] = component.NewEnemy()
		w.Enemies[i].Generation = gen + 1
		physics.Respawn(&w.Enemies[i].Body, river, rng)
	}

	for i := range w.Scenery {
		side := component.SideLeft
		if i%2 == 1 {
			side = component.SideRight
		}
		variant := component.SceneryVariant(rng.Intn(component.SceneryVariantCount))
		w.Scenery[i] = component.NewScenery(side, variant)
		physics.Scatter(&w.Scenery[i].Body, river, rng)
	}

	for i := range w.Projectiles {
		w.Projectiles[i] = component.NewProjectile()
	}
	for i := range w.Explosions {
		w.Explosions[i] = component.ExplosionComponent{}
	}

	w.Initialized = true
}

// AddSystem adds a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs every system once in priority order
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update()
	}
}

// PushEvent queues an event for dispatch at the end of the current tick
func (w *World) PushEvent(et event.EventType, payload any) {
	w.ScheduleEvent(et, payload, 0)
}

// ScheduleEvent queues an event that becomes due after the given number of ticks
func (w *World) ScheduleEvent(et event.EventType, payload any, ticks int64) {
	res := w.Resources
	res.Events.Push(event.GameEvent{
		Type:    et,
		Payload: payload,
		Epoch:   res.Game.Epoch,
		Due:     res.Time.Tick + ticks,
	})
}

// FreeProjectile returns the first inactive projectile slot
func (w *World) FreeProjectile() (*component.ProjectileComponent, bool) {
	for i := range w.Projectiles {
		if !w.Projectiles[i].Active {
			return &w.Projectiles[i], true
		}
	}
	return nil, false
}

// SpawnExplosion activates a marker, reusing the oldest when the pool is full
func (w *World) SpawnExplosion(pos vmath.Vec3F, lifetime int) {
	if len(w.Explosions) == 0 {
		return
	}
	slot := -1
	for i := range w.Explosions {
		if !w.Explosions[i].Active {
			slot = i
			break
		}
		if slot < 0 || w.Explosions[i].Age > w.Explosions[slot].Age {
			slot = i
		}
	}
	w.Explosions[slot] = component.ExplosionComponent{Pos: pos, Lifetime: lifetime, Active: true}
}
