package parameter

import (
	"testing"
	"time"
)

func TestTicksFor(t *testing.T) {
	tu := DefaultTuning()
	tu.TickInterval = 16 * time.Millisecond

	tests := []struct {
		name  string
		delay time.Duration
		want  int64
	}{
		{"exact multiple", 32 * time.Millisecond, 2},
		{"rounds up", 1 * time.Second, 63},
		{"sub-tick", time.Millisecond, 1},
		{"zero", 0, 1},
		{"negative", -time.Second, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tu.TicksFor(tt.delay); got != tt.want {
				t.Errorf("TicksFor(%v) = %d, want %d", tt.delay, got, tt.want)
			}
		})
	}
}

func TestTicksForZeroInterval(t *testing.T) {
	tu := DefaultTuning()
	tu.TickInterval = 0
	if got := tu.TicksFor(time.Second); got != 1 {
		t.Errorf("TicksFor with zero interval = %d, want 1", got)
	}
}

func TestDefaultTuningMatchesConstants(t *testing.T) {
	tu := DefaultTuning()
	if tu.River.HalfWidth() != RiverWidth/2 {
		t.Errorf("HalfWidth = %v, want %v", tu.River.HalfWidth(), RiverWidth/2)
	}
	if tu.River.HalfLength() != RiverLength/2 {
		t.Errorf("HalfLength = %v, want %v", tu.River.HalfLength(), RiverLength/2)
	}
	if tu.MaxLives != MaxLives || tu.ScorePerKill != ScorePerKill {
		t.Errorf("lives/score = %d/%d, want %d/%d", tu.MaxLives, tu.ScorePerKill, MaxLives, ScorePerKill)
	}
	if tu.Pools.Enemies != EnemyPoolSize || tu.Pools.Projectiles != ProjectilePoolSize {
		t.Errorf("pool sizes = %+v", tu.Pools)
	}
}
