package pdf

import "github.com/fransixpaohui/RayTracing/pkg/core"

// HittablePDF samples directions toward a light-sampling Target from a fixed origin
type HittablePDF struct {
	target Target
	origin core.Vec3
}

// NewHittablePDF creates a density toward target as seen from origin
func NewHittablePDF(target Target, origin core.Vec3) HittablePDF {
	return HittablePDF{target: target, origin: origin}
}

// Value delegates to the target's PDFValue
func (p HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate delegates to the target's Random
func (p HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.target.Random(p.origin, sampler)
}

// MixturePDF combines two densities with equal weight
type MixturePDF struct {
	p [2]PDF
}

// NewMixturePDF creates a 50/50 mixture of p0 and p1
func NewMixturePDF(p0, p1 PDF) MixturePDF {
	return MixturePDF{p: [2]PDF{p0, p1}}
}

// Value returns the average of both densities
func (m MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate picks one of the two densities with equal probability and samples it
func (m MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
