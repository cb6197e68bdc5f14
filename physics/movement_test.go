package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/river-raid/component"
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

func river() parameter.RiverTuning {
	return parameter.DefaultTuning().River
}

func TestAdvanceWithinBoundsDoesNotRecycle(t *testing.T) {
	rng := vmath.NewFastRand(7)
	e := component.NewEnemy()
	e.Active, e.Visible = true, true
	e.Pos = vmath.Vec3F{X: 1, Z: 0}

	if Advance(&e.Body, 0.2, river(), rng) {
		t.Fatal("recycled inside river")
	}
	if math.Abs(e.Pos.Z-0.2) > 1e-12 || e.Pos.X != 1 {
		t.Errorf("Pos = %+v, want X=1 Z=0.2", e.Pos)
	}
}

func TestAdvanceRecyclesEnemyInsideRiver(t *testing.T) {
	r := river()
	rng := vmath.NewFastRand(42)
	e := component.NewEnemy()

	for i := 0; i < 500; i++ {
		e.Pos = vmath.Vec3F{X: 0, Z: r.HalfLength() + r.TrailingMargin}
		e.Active, e.Visible = false, false
		if !Advance(&e.Body, 0.4, r, rng) {
			t.Fatal("expected recycle past trailing edge")
		}
		maxLateral := r.HalfWidth() - e.HalfWidth()
		if math.Abs(e.Pos.X) > maxLateral {
			t.Fatalf("X = %v outside ±%v", e.Pos.X, maxLateral)
		}
		if e.Pos.Z > -r.HalfLength() || e.Pos.Z < -r.HalfLength()-r.SpawnJitter {
			t.Fatalf("Z = %v outside spawn band", e.Pos.Z)
		}
		if !e.Active || !e.Visible {
			t.Fatal("respawn must re-assert active and visible")
		}
	}
}

func TestRespawnSceneryOnItsBank(t *testing.T) {
	r := river()
	rng := vmath.NewFastRand(3)
	tests := []struct {
		side component.Side
		sign float64
	}{
		{component.SideLeft, -1},
		{component.SideRight, 1},
	}
	for _, tt := range tests {
		s := component.NewScenery(tt.side, component.SceneryTree)
		for i := 0; i < 100; i++ {
			Respawn(&s.Body, r, rng)
			x := s.Pos.X * tt.sign
			if x < r.HalfWidth() || x > r.HalfWidth()+parameter.SceneryBankJitter {
				t.Fatalf("side %v: X = %v off bank", tt.side, s.Pos.X)
			}
		}
	}
}

func TestRespawnIgnoresPlayer(t *testing.T) {
	p := component.NewPlayer(parameter.RiverWidth)
	before := p.Pos
	Respawn(&p.Body, river(), vmath.NewFastRand(1))
	if p.Pos != before {
		t.Errorf("player moved by Respawn: %+v", p.Pos)
	}
}

func TestRecycleIsIdempotentAcrossCalls(t *testing.T) {
	r := river()
	rng := vmath.NewFastRand(11)
	e := component.NewEnemy()
	e.Pos.Z = r.HalfLength() + r.TrailingMargin + 1
	Respawn(&e.Body, r, rng)
	first := e.Pos.Z
	if Advance(&e.Body, 0, r, rng) {
		t.Fatal("freshly respawned body recycled again")
	}
	if e.Pos.Z != first {
		t.Errorf("Z changed from %v to %v with zero delta", first, e.Pos.Z)
	}
}

func TestScatterSpreadsScenery(t *testing.T) {
	r := river()
	rng := vmath.NewFastRand(5)
	s := component.NewScenery(component.SideRight, component.SceneryHouse)
	Scatter(&s.Body, r, rng)
	if s.Pos.Z < -r.HalfLength() || s.Pos.Z >= r.HalfLength() {
		t.Errorf("Z = %v outside river", s.Pos.Z)
	}
}

func TestAdvanceProjectile(t *testing.T) {
	r := river()
	p := component.NewProjectile()
	p.Launch(MuzzlePosition(vmath.Vec3F{Z: 5}), parameter.ProjectileSpeed, KillDistance(r))
	if p.Pos.Z != 4 {
		t.Fatalf("muzzle Z = %v, want 4", p.Pos.Z)
	}

	ticks := 0
	for AdvanceProjectile(&p) {
		ticks++
		if ticks > 1000 {
			t.Fatal("projectile never expired")
		}
	}
	if p.Active || p.Visible {
		t.Error("expired projectile still active")
	}
	if p.Pos.Z >= KillDistance(r) {
		t.Errorf("Z = %v not beyond kill distance %v", p.Pos.Z, KillDistance(r))
	}
}

func TestOutOfRiver(t *testing.T) {
	r := river()
	c := parameter.DefaultTuning().Collision
	limit := r.HalfWidth() - c.BoundaryMargin
	tests := []struct {
		x    float64
		want bool
	}{
		{0, false},
		{limit, false},
		{-limit, false},
		{limit + 0.01, true},
		{-limit - 0.01, true},
	}
	for _, tt := range tests {
		if got := OutOfRiver(tt.x, r, c); got != tt.want {
			t.Errorf("OutOfRiver(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestHitBoxScaling(t *testing.T) {
	c := parameter.DefaultTuning().Collision
	e := component.NewEnemy()
	got := EnemyHitBox(&e, c).Size()
	if math.Abs(got.X-parameter.EnemySizeX*c.EnemyBoxFactor) > 1e-9 {
		t.Errorf("enemy hit box X = %v", got.X)
	}
	p := component.NewProjectile()
	got = ProjectileHitBox(&p, c).Size()
	if math.Abs(got.Z-parameter.ProjectileSizeZ*c.ProjectileBoxFactor) > 1e-9 {
		t.Errorf("projectile hit box Z = %v", got.Z)
	}
}
