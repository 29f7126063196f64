package integrator

import "github.com/fransixpaohui/RayTracing/pkg/core"

// Background supplies the radiance of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Value core.Vec3
}

// NewSolidBackground creates a uniform background
func NewSolidBackground(color core.Vec3) SolidBackground {
	return SolidBackground{Value: color}
}

// Color returns the constant color
func (b SolidBackground) Color(ray core.Ray) core.Vec3 {
	return b.Value
}

// GradientBackground blends vertically from Bottom (looking down) to Top (looking up)
type GradientBackground struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewGradientBackground creates a vertical gradient
func NewGradientBackground(bottom, top core.Vec3) GradientBackground {
	return GradientBackground{Bottom: bottom, Top: top}
}

// NewSkyBackground returns the white to light blue sky
func NewSkyBackground() GradientBackground {
	return NewGradientBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0))
}

// Color lerps by a = 0.5·(unit(direction).y + 1)
func (b GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - a).Add(b.Top.Multiply(a))
}
