package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

// ExplosionGenerator synthesises a decaying noise burst over a low rumble
// It streams forever; callers bound it with beep.Take
type ExplosionGenerator struct {
	sr  beep.SampleRate
	pos int
	rng *vmath.FastRand
}

func NewExplosionGenerator(sr beep.SampleRate, seed uint64) *ExplosionGenerator {
	return &ExplosionGenerator{
		sr:  sr,
		rng: vmath.NewFastRand(seed),
	}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sharp attack, exponential tail
		envelope := math.Exp(-t * parameter.ExplosionDecayRate)

		noise := g.rng.Float64()*2 - 1
		rumble := math.Sin(2 * math.Pi * parameter.ExplosionRumbleHz * t)

		sample := envelope * (0.45*noise + 0.35*rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}
