package material

import (
	"github.com/fransixpaohui/RayTracing/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Base
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter reflects about the normal and perturbs the result by a random unit
// vector scaled by Fuzzness. Rays perturbed below the surface are still
// returned; they find no light and fade out on their own.
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal).Normalize()
	if m.Fuzzness > 0 {
		perturbation := core.SampleOnUnitSphere(sampler.Get2D()).Multiply(m.Fuzzness)
		// A full-strength perturbation can cancel the reflection outright
		if fuzzed := reflected.Add(perturbation); !fuzzed.NearZero() {
			reflected = fuzzed
		}
	}

	return ScatterRecord{
		Attenuation: m.Albedo, // No π factor for specular
		SkipPDF:     true,
		SkipPDFRay:  core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
	}, true
}
