package material

import (
	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/pdf"
)

// Material describes how a surface emits and scatters light
type Material interface {
	// Scatter decides whether rayIn is re-emitted from the hit; false means absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// Emitted returns light given off at the hit point toward rayIn's origin
	Emitted(rayIn core.Ray, hit *HitRecord, u, v float64, p core.Vec3) core.Vec3

	// ScatteringPDF returns the material's own density for scattering toward scattered
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64
}

// Base is an absorbing, non-emissive surface. Embed it to inherit the defaults.
type Base struct{}

// Scatter never scatters
func (Base) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns black
func (Base) Emitted(rayIn core.Ray, hit *HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF returns zero
func (Base) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// ScatterRecord contains the result of material scattering
type ScatterRecord struct {
	Attenuation core.Vec3 // Color attenuation
	PDF         pdf.PDF   // Preferred sampling density (nil when SkipPDF)
	SkipPDF     bool      // Specular: follow SkipPDFRay without importance weighting
	SkipPDFRay  core.Ray  // The deterministic outgoing ray when SkipPDF
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterRecord) IsSpecular() bool {
	return s.SkipPDF
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, facing against the incoming ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
