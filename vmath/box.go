package vmath

// Box3 is an axis-aligned bounding box in world space
// A box with any Min component greater than its Max component is empty
type Box3 struct {
	Min, Max Vec3F
}

// BoxFromCenterSize builds a box of full extents size around center
func BoxFromCenterSize(center, size Vec3F) Box3 {
	half := V3FScale(size, 0.5)
	return Box3{
		Min: V3FSub(center, half),
		Max: V3FAdd(center, half),
	}
}

// Center returns the box midpoint
func (b Box3) Center() Vec3F {
	return V3FScale(V3FAdd(b.Min, b.Max), 0.5)
}

// Size returns the full extents
func (b Box3) Size() Vec3F {
	return V3FSub(b.Max, b.Min)
}

// IsEmpty reports whether the box encloses no volume on some axis
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Scaled returns the box resized by factor about its centre
func (b Box3) Scaled(factor float64) Box3 {
	return BoxFromCenterSize(b.Center(), V3FScale(b.Size(), factor))
}

// Intersects reports overlap on all three axes, touching faces count as overlap
func (b Box3) Intersects(o Box3) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Contains reports whether p lies inside or on the box
func (b Box3) Contains(p Vec3F) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
