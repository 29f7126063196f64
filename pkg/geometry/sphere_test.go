package geometry

import (
	"math"
	"testing"

	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/material"
)

var defaultInterval = core.NewInterval(0.001, math.Inf(1))

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, defaultInterval)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, defaultInterval)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_DistanceMinusRadius(t *testing.T) {
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		center := sampler.Get3D().Multiply(10).Subtract(core.NewVec3(5, 5, 5))
		radius := 0.1 + sampler.Get1D()
		sphere := NewSphere(center, radius, nil)

		origin := center.Add(core.SampleOnUnitSphere(sampler.Get2D()).Multiply(radius + 1 + 5*sampler.Get1D()))
		ray := core.NewRay(origin, center.Subtract(origin).Normalize())

		hit, ok := sphere.Hit(ray, defaultInterval)
		if !ok {
			t.Fatalf("Ray aimed at the center missed the sphere")
		}
		expected := center.Subtract(origin).Length() - radius
		if math.Abs(hit.T-expected) > 1e-9 {
			t.Fatalf("Expected t=%f, got %f", expected, hit.T)
		}
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test max bound
	if hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 0.5)); isHit {
		t.Errorf("Expected miss due to max bound, but got hit at t=%f", hit.T)
	}

	// Test min bound
	if hit, isHit := sphere.Hit(ray, core.NewInterval(3.5, 1000.0)); isHit {
		t.Errorf("Expected miss due to min bound, but got hit at t=%f", hit.T)
	}

	// Near root outside the interval falls through to the far root
	hit, isHit := sphere.Hit(ray, core.NewInterval(1.5, 1000.0))
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far intersection at t=3, got %v", hit)
	}
}

func TestSphere_TextureCoordinates(t *testing.T) {
	tests := []struct {
		name string
		p    core.Vec3
		u, v float64
	}{
		{"+X", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+Y", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"+Z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"-X", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"-Y", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"-Z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.p)
			// -X sits on the seam; atan2 may land on either side
			if tt.name == "-X" {
				u = math.Mod(u, 1)
			}
			if math.Abs(u-tt.u) > 1e-9 || math.Abs(v-tt.v) > 1e-9 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.u, tt.v, u, v)
			}
		})
	}
}

func TestMovingSphere_FollowsCenterOverTime(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0.5, mat)

	tests := []struct {
		name     string
		time     float64
		expectOk bool
	}{
		{"start position", 0.0, false},
		{"halfway", 0.5, true},
		{"end position", 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Ray along x at y=1 only meets the sphere while its center is near y=1
			ray := core.NewRayAtTime(core.NewVec3(-5, 1, 0), core.NewVec3(1, 0, 0), tt.time)
			_, ok := sphere.Hit(ray, defaultInterval)
			if ok != tt.expectOk {
				t.Errorf("At time %f expected hit=%v, got %v", tt.time, tt.expectOk, ok)
			}
		})
	}

	box := sphere.BoundingBox()
	if !box.Contains(core.NewVec3(0, -0.5, 0)) || !box.Contains(core.NewVec3(0, 2.5, 0)) {
		t.Errorf("Bounding box %v should cover the whole path", box)
	}
}

func TestSphere_NegativeRadiusClamped(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -2, nil)
	if sphere.Radius != 0 {
		t.Errorf("Expected radius clamped to 0, got %f", sphere.Radius)
	}
}

func TestSphere_ZeroRadiusNeverHit(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"zero radius", 0},
		{"negative radius", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, -3), tt.radius, nil)
			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
			if hit, ok := sphere.Hit(ray, defaultInterval); ok {
				t.Errorf("Expected no hit through the center, got %+v", hit)
			}
		})
	}
}

func TestSphere_PDFValueMatchesCone(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	origin := core.NewVec3(0, 0, 0)

	cosThetaMax := math.Sqrt(1 - 1.0/25.0)
	expected := 1 / (2 * math.Pi * (1 - cosThetaMax))

	if got := sphere.PDFValue(origin, core.NewVec3(0, 0, -1)); math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected %f toward the sphere, got %f", expected, got)
	}
	if got := sphere.PDFValue(origin, core.NewVec3(0, 0, 1)); got != 0 {
		t.Errorf("Expected 0 away from the sphere, got %f", got)
	}

	// Every sampled direction must land on the sphere
	sampler := core.NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		dir := sphere.Random(origin, sampler)
		if _, ok := sphere.Hit(core.NewRay(origin, dir), defaultInterval); !ok {
			t.Fatalf("Sampled direction %v misses the sphere", dir)
		}
	}
}
