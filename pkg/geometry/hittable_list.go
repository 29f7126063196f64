package geometry

import (
	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/material"
)

// HittableList is a flat collection of objects tested one after another
type HittableList struct {
	objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the bounding box to enclose it
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
	l.bbox = core.NewAABBUnion(l.bbox, object.BoundingBox())
}

// Objects returns the contained objects
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all object boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue is the unweighted mean of the member densities
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.objects))
	sum := 0.0
	for _, object := range l.objects {
		sum += weight * pdfValue(object, origin, direction)
	}
	return sum
}

// Random samples a direction toward a uniformly chosen member
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	object := l.objects[core.SampleIndex(sampler.Get1D(), len(l.objects))]
	return randomDirection(object, origin, sampler)
}
