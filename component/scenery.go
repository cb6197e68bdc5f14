package component

import (
	"github.com/lixenwraith/river-raid/parameter"
	"github.com/lixenwraith/river-raid/vmath"
)

// SceneryVariant picks the bank decoration shape
type SceneryVariant uint8

const (
	SceneryTree SceneryVariant = iota
	SceneryHouse
	SceneryBuilding
	sceneryVariantCount
)

// SceneryVariantCount is the number of decoration shapes
const SceneryVariantCount = int(sceneryVariantCount)

// SceneryComponent is a cosmetic bank object; it never collides
type SceneryComponent struct {
	Body

	Variant SceneryVariant
}

// NewScenery returns a scenery slot on the given bank
func NewScenery(side Side, variant SceneryVariant) SceneryComponent {
	s := SceneryComponent{
		Body: Body{
			Kind:    KindScenery,
			Side:    side,
			Active:  true,
			Visible: true,
		},
		Variant: variant,
	}
	s.Size = ScenerySize(variant)
	return s
}

// ScenerySize returns the visual extents of a variant
func ScenerySize(v SceneryVariant) vmath.Vec3F {
	switch v {
	case SceneryHouse:
		return vmath.Vec3F{X: parameter.HouseSize, Y: 0.3, Z: parameter.HouseSize}
	case SceneryBuilding:
		return vmath.Vec3F{X: 1.0, Y: 0.5, Z: parameter.BuildingSize}
	default:
		return vmath.Vec3F{X: parameter.TreeSize, Y: 0.3, Z: parameter.TreeSize}
	}
}
