package geometry

import (
	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/material"
)

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the intersection with the smallest t inside rayT, if any
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the object over the whole shutter interval
	BoundingBox() core.AABB
}

// pdfValue returns the light-sampling density of h, or 0 if h cannot be sampled
func pdfValue(h Hittable, origin, direction core.Vec3) float64 {
	if target, ok := h.(interface {
		PDFValue(origin, direction core.Vec3) float64
	}); ok {
		return target.PDFValue(origin, direction)
	}
	return 0
}

// randomDirection returns a direction from origin toward h, or +X if h cannot be sampled
func randomDirection(h Hittable, origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if target, ok := h.(interface {
		Random(origin core.Vec3, sampler core.Sampler) core.Vec3
	}); ok {
		return target.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}
