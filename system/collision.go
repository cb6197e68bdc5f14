package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/river-raid/component"
	"github.com/lixenwraith/river-raid/engine"
	"github.com/lixenwraith/river-raid/event"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/physics"
	"github.com/lixenwraith/river-raid/status"
	"github.com/lixenwraith/river-raid/vmath"
)

// CollisionSystem resolves player, enemy, projectile and bank contacts once per tick
// It also owns the deferred recovery of both sides: player respawn and enemy reactivation
//
// Player lifecycle: Normal -> hit (invisible, Colliding, one life lost) -> respawn after delay -> Normal
// A hit with no lives left ends the game instead of scheduling a respawn
type CollisionSystem struct {
	world *engine.World

	statKills *atomic.Int64
	statHits  *atomic.Int64
}

func NewCollisionSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &CollisionSystem{
		world:     world,
		statKills: reg.Ints.Get(status.MetricKills),
		statHits:  reg.Ints.Get(status.MetricHits),
	}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.statKills.Store(0)
	s.statHits.Store(0)
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerRespawn,
		event.EventEnemyReactivate,
	}
}

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlayerRespawn:
		if p, ok := ev.Payload.(*event.PlayerRespawnPayload); ok {
			s.respawnPlayer(p.Episode)
		}
	case event.EventEnemyReactivate:
		if p, ok := ev.Payload.(*event.EnemyReactivatePayload); ok {
			s.reactivateEnemy(p.Slot, p.Generation)
		}
	}
}

func (s *CollisionSystem) Update() {
	w := s.world
	if !w.Initialized {
		return
	}
	p := &w.Player
	if !p.Active || !p.Visible || p.Colliding {
		return
	}

	if idx, ok := s.findRammedEnemy(); ok {
		s.deactivateEnemy(idx)
		s.hitPlayer()
		// The final score is fixed by the game-ending hit
		if w.Resources.Game.Phase == engine.PhaseGameOver {
			return
		}
	}

	if pi, ei, ok := s.findShotEnemy(); ok {
		s.destroyEnemy(pi, ei)
	}

	if !p.Colliding && physics.OutOfRiver(p.Pos.X, w.Resources.Tuning.River, w.Resources.Tuning.Collision) {
		s.hitPlayer()
	}
}

// findRammedEnemy returns the first enemy whose centre is within ramming distance of the player on the water plane
func (s *CollisionSystem) findRammedEnemy() (int, bool) {
	w := s.world
	limit := w.Resources.Tuning.Collision.PlayerEnemyDistance
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Collidable() {
			continue
		}
		if vmath.PlanarDistance(w.Player.Pos, e.Pos) < limit {
			return i, true
		}
	}
	return 0, false
}

// findShotEnemy returns the first projectile/enemy pair whose hit boxes overlap, projectiles outermost
func (s *CollisionSystem) findShotEnemy() (int, int, bool) {
	w := s.world
	c := w.Resources.Tuning.Collision
	for pi := range w.Projectiles {
		proj := &w.Projectiles[pi]
		if !proj.Collidable() {
			continue
		}
		pbox := physics.ProjectileHitBox(proj, c)
		for ei := range w.Enemies {
			e := &w.Enemies[ei]
			if !e.Collidable() {
				continue
			}
			if pbox.Intersects(physics.EnemyHitBox(e, c)) {
				return pi, ei, true
			}
		}
	}
	return 0, 0, false
}

// hitPlayer starts a hit episode: one life lost, explosion, then respawn or game over
func (s *CollisionSystem) hitPlayer() {
	w := s.world
	res := w.Resources
	p := &w.Player

	p.Colliding = true
	p.Visible = false
	p.Episode++
	s.statHits.Add(1)

	w.PushEvent(event.EventExplosion, &event.ExplosionPayload{Pos: p.Pos})

	if res.Game.LoseLife() {
		log.Printf("[%s] collision: game over, score=%d", res.Game.ID, res.Game.Score)
		w.PushEvent(event.EventGameOver, nil)
		return
	}
	w.ScheduleEvent(event.EventPlayerRespawn,
		&event.PlayerRespawnPayload{Episode: p.Episode},
		res.Tuning.TicksFor(res.Tuning.RespawnDelay))
}

func (s *CollisionSystem) destroyEnemy(projIdx, enemyIdx int) {
	w := s.world
	res := w.Resources
	pos := w.Enemies[enemyIdx].Pos

	w.Projectiles[projIdx].Deactivate()
	s.deactivateEnemy(enemyIdx)
	res.Game.AddScore(res.Tuning.ScorePerKill)
	s.statKills.Add(1)

	w.PushEvent(event.EventExplosion, &event.ExplosionPayload{Pos: pos})
}

func (s *CollisionSystem) deactivateEnemy(idx int) {
	w := s.world
	e := &w.Enemies[idx]
	e.Deactivate()
	w.ScheduleEvent(event.EventEnemyReactivate,
		&event.EnemyReactivatePayload{Slot: idx, Generation: e.Generation},
		w.Resources.Tuning.TicksFor(w.Resources.Tuning.ReactivateDelay))
}

// respawnPlayer ends the hit episode it was scheduled for; anything else is stale
func (s *CollisionSystem) respawnPlayer(episode uint64) {
	w := s.world
	p := &w.Player
	if w.Resources.Game.Phase == engine.PhaseGameOver || !p.Colliding || p.Episode != episode {
		return
	}
	p.Respawn()
}

// reactivateEnemy returns a slot to play if it is still in the deactivation the event answers
func (s *CollisionSystem) reactivateEnemy(slot int, generation uint32) {
	w := s.world
	if slot < 0 || slot >= len(w.Enemies) {
		return
	}
	e := &w.Enemies[slot]
	if e.State != component.EnemyDeactivated || e.Generation != generation {
		return
	}
	physics.Respawn(&e.Body, w.Resources.Tuning.River, w.Resources.RNG)
	e.MarkMoving()
}
