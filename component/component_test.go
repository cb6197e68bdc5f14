package component

import (
	"math"
	"testing"

	"github.com/lixenwraith/river-raid/parameter"
)

func TestNewPlayerAtSpawn(t *testing.T) {
	p := NewPlayer(parameter.RiverWidth)
	if p.Pos != SpawnPoint() {
		t.Errorf("Pos = %+v, want spawn %+v", p.Pos, SpawnPoint())
	}
	if !p.Active || !p.Visible || p.Colliding {
		t.Errorf("flags = active %v visible %v colliding %v", p.Active, p.Visible, p.Colliding)
	}
	want := parameter.RiverWidth/2 - parameter.PlayerInitialScale*parameter.PlayerBoundaryScaleFactor
	if math.Abs(p.Boundary-want) > 1e-9 {
		t.Errorf("Boundary = %v, want %v", p.Boundary, want)
	}
}

func TestPlayerMoveLateralClamps(t *testing.T) {
	p := NewPlayer(parameter.RiverWidth)
	for i := 0; i < 1000; i++ {
		p.MoveLateral(-0.1)
	}
	if p.Pos.X != -p.Boundary {
		t.Errorf("X = %v, want %v", p.Pos.X, -p.Boundary)
	}
	if p.TargetTilt != -parameter.PlayerTiltAngle {
		t.Errorf("TargetTilt = %v", p.TargetTilt)
	}
	for i := 0; i < 1000; i++ {
		p.MoveLateral(0.1)
	}
	if p.Pos.X != p.Boundary {
		t.Errorf("X = %v, want %v", p.Pos.X, p.Boundary)
	}
}

func TestPlayerSetScaleClampsAndRecomputesBoundary(t *testing.T) {
	p := NewPlayer(parameter.RiverWidth)
	p.SetScale(5, parameter.RiverWidth)
	if p.Scale != parameter.PlayerMaxScale {
		t.Errorf("Scale = %v, want %v", p.Scale, parameter.PlayerMaxScale)
	}
	if want := PlayerBoundary(parameter.RiverWidth, parameter.PlayerMaxScale); p.Boundary != want {
		t.Errorf("Boundary = %v, want %v", p.Boundary, want)
	}
	p.SetScale(0, parameter.RiverWidth)
	if p.Scale != parameter.PlayerMinScale {
		t.Errorf("Scale = %v, want %v", p.Scale, parameter.PlayerMinScale)
	}
}

func TestPlayerSetScaleReclampsPosition(t *testing.T) {
	p := NewPlayer(parameter.RiverWidth)
	p.SetScale(parameter.PlayerMinScale, parameter.RiverWidth)
	for i := 0; i < 1000; i++ {
		p.MoveLateral(0.1)
	}
	p.SetScale(parameter.PlayerMaxScale, parameter.RiverWidth)
	if p.Pos.X > p.Boundary {
		t.Errorf("X = %v exceeds boundary %v after growing", p.Pos.X, p.Boundary)
	}
}

func TestPlayerEaseTiltReturnsToLevel(t *testing.T) {
	p := NewPlayer(parameter.RiverWidth)
	p.MoveLateral(0.1)
	p.EaseTilt()
	if p.Tilt <= 0 {
		t.Fatalf("Tilt = %v, want positive after moving right", p.Tilt)
	}
	for i := 0; i < 200; i++ {
		p.EaseTilt()
	}
	if math.Abs(p.Tilt) > 1e-6 {
		t.Errorf("Tilt = %v, want ~0 without input", p.Tilt)
	}
}

func TestPlayerRespawnClearsDebounce(t *testing.T) {
	p := NewPlayer(parameter.RiverWidth)
	p.Pos.X = 3
	p.Visible = false
	p.Colliding = true
	p.Respawn()
	if p.Pos != SpawnPoint() || !p.Visible || p.Colliding {
		t.Errorf("after Respawn: pos %+v visible %v colliding %v", p.Pos, p.Visible, p.Colliding)
	}
}

func TestEnemyDeactivateBumpsGeneration(t *testing.T) {
	e := NewEnemy()
	e.Active, e.Visible = true, true
	gen := e.Generation
	e.Deactivate()
	if e.Active || e.Visible || e.State != EnemyDeactivated {
		t.Errorf("after Deactivate: %+v", e)
	}
	if e.Generation != gen+1 {
		t.Errorf("Generation = %d, want %d", e.Generation, gen+1)
	}
}

func TestExplosionProgress(t *testing.T) {
	e := ExplosionComponent{Lifetime: 10, Age: 5}
	if e.Progress() != 0.5 {
		t.Errorf("Progress = %v", e.Progress())
	}
	e.Age = 20
	if e.Progress() != 1 {
		t.Errorf("Progress = %v, want clamp to 1", e.Progress())
	}
}
