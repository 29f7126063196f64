package pdf

import (
	"math"

	"github.com/fransixpaohui/RayTracing/pkg/core"
)

// PDF is a probability density over world-space directions. Value must
// integrate to one over the unit sphere in solid angle.
type PDF interface {
	// Value returns the density of sampling direction
	Value(direction core.Vec3) float64
	// Generate draws a direction distributed according to Value
	Generate(sampler core.Sampler) core.Vec3
}

// Target is implemented by objects that can be sampled as light sources
type Target interface {
	// PDFValue returns the density of sampling direction from origin toward the object
	PDFValue(origin, direction core.Vec3) float64
	// Random returns a direction from origin toward the object
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// SpherePDF is uniform over the full unit sphere
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere density
func NewSpherePDF() SpherePDF {
	return SpherePDF{}
}

// Value returns 1/4π for every direction
func (SpherePDF) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate returns a uniform random unit vector
func (SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// CosinePDF is cosine-weighted over the hemisphere around a normal
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine density about normal
func NewCosinePDF(normal core.Vec3) CosinePDF {
	return CosinePDF{uvw: core.NewONB(normal)}
}

// Value returns max(0, cosθ)/π
func (p CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W())
	return math.Max(0, cosine/math.Pi)
}

// Generate returns a cosine-weighted direction in the normal's hemisphere
func (p CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Local(core.SampleCosineDirection(sampler.Get2D()))
}
