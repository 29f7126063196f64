package geometry

import (
	"math"
	"testing"

	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/material"
)

func TestHittableList_ReturnsClosestHit(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))

	// Insert the far sphere first so ordering cannot decide the result
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, -10), 1, far),
		NewSphere(core.NewVec3(0, 0, -4), 1, near),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := list.Hit(ray, defaultInterval)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Material != near || math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected near sphere at t=3, got t=%f", hit.T)
	}
}

func TestHittableList_EmptyMisses(t *testing.T) {
	list := NewHittableList()
	if _, ok := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), defaultInterval); ok {
		t.Error("Empty list should never be hit")
	}
	if list.PDFValue(core.Vec3{}, core.NewVec3(1, 0, 0)) != 0 {
		t.Error("Empty list should have zero density")
	}
}

func TestHittableList_BoundingBoxGrowsOnAdd(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, 0), 1, nil))
	list.Add(NewSphere(core.NewVec3(10, 0, 0), 1, nil))

	box := list.BoundingBox()
	if box.X.Min != -1 || box.X.Max != 11 {
		t.Errorf("Expected X extent [-1, 11], got %v", box.X)
	}
	if len(list.Objects()) != 2 {
		t.Errorf("Expected 2 objects, got %d", len(list.Objects()))
	}
}

func TestHittableList_PDFValueIsMean(t *testing.T) {
	a := NewQuad(core.NewVec3(-0.5, -2, -0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), nil)
	b := NewSphere(core.NewVec3(0, 5, 0), 1, nil)
	list := NewHittableList(a, b)
	origin := core.Vec3{}

	down := core.NewVec3(0, -1, 0)
	expected := 0.5*a.PDFValue(origin, down) + 0.5*b.PDFValue(origin, down)
	if got := list.PDFValue(origin, down); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected mean density %f, got %f", expected, got)
	}

	sampler := core.NewSeededSampler(42)
	hitsA, hitsB := 0, 0
	for i := 0; i < 1000; i++ {
		dir := list.Random(origin, sampler)
		if dir.Y < 0 {
			hitsA++
		} else {
			hitsB++
		}
	}
	if hitsA < 400 || hitsB < 400 {
		t.Errorf("Expected members chosen uniformly, got %d and %d", hitsA, hitsB)
	}
}
