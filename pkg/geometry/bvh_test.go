package geometry

import (
	"math"
	"testing"

	"github.com/fransixpaohui/RayTracing/pkg/core"
)

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes   int
	leafNodes    int
	maxDepth     int
	totalObjects int
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if n.Objects != nil {
		stats.leafNodes++
		stats.totalObjects += len(n.Objects)
		return
	}
	n.Left.collectStats(depth+1, stats)
	n.Right.collectStats(depth+1, stats)
}

func randomSpheres(n int, seed int64) []Hittable {
	sampler := core.NewSeededSampler(seed)
	objects := make([]Hittable, n)
	for i := range objects {
		center := sampler.Get3D().Multiply(20).Subtract(core.NewVec3(10, 10, 10))
		objects[i] = NewSphere(center, 0.2+0.5*sampler.Get1D(), nil)
	}
	return objects
}

func TestBVH_AgreesWithList(t *testing.T) {
	objects := randomSpheres(200, 42)
	list := NewHittableList(objects...)
	bvh := NewBVH(objects)
	sampler := core.NewSeededSampler(1)

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.SampleOnUnitSphere(sampler.Get2D()).Multiply(30)
		target := sampler.Get3D().Multiply(20).Subtract(core.NewVec3(10, 10, 10))
		ray := core.NewRay(origin, target.Subtract(origin))

		want, wantOk := list.Hit(ray, defaultInterval)
		got, gotOk := bvh.Hit(ray, defaultInterval)
		if wantOk != gotOk {
			t.Fatalf("Ray %d: list hit=%v, BVH hit=%v", i, wantOk, gotOk)
		}
		if wantOk {
			hits++
			if math.Abs(want.T-got.T) > 1e-9 {
				t.Fatalf("Ray %d: list t=%f, BVH t=%f", i, want.T, got.T)
			}
		}
	}

	if hits == 0 {
		t.Error("Test rays never hit anything")
	}
}

func TestBVH_Structure(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		wantLeaf bool
	}{
		{"single leaf", leafThreshold, true},
		{"split", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bvh := NewBVH(randomSpheres(tt.count, 3))

			stats := bvhStats{}
			bvh.collectStats(0, &stats)

			if stats.totalObjects != tt.count {
				t.Errorf("Expected %d objects in leaves, got %d", tt.count, stats.totalObjects)
			}
			if (stats.leafNodes == 1) != tt.wantLeaf {
				t.Errorf("Expected single leaf=%v, got %d leaves", tt.wantLeaf, stats.leafNodes)
			}
			if !tt.wantLeaf && stats.maxDepth > 20 {
				t.Errorf("Tree unexpectedly deep: %d", stats.maxDepth)
			}
		})
	}
}

func TestBVH_DoesNotModifyInput(t *testing.T) {
	objects := randomSpheres(50, 9)
	original := make([]Hittable, len(objects))
	copy(original, objects)

	NewBVH(objects)

	for i := range objects {
		if objects[i] != original[i] {
			t.Fatalf("Input order changed at index %d", i)
		}
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	if _, ok := bvh.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), defaultInterval); ok {
		t.Error("Empty BVH should never be hit")
	}
}
