package integrator

import (
	"math"

	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/geometry"
	"github.com/fransixpaohui/RayTracing/pkg/material"
	"github.com/fransixpaohui/RayTracing/pkg/pdf"
)

// minHitDistance keeps secondary rays from re-hitting the surface they left
const minHitDistance = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a hard depth cutoff
type PathTracingIntegrator struct {
	Background Background

	// Lights, when set, is mixed 50/50 with the scattering density for
	// diffuse bounces. Nil keeps pure cosine sampling.
	Lights pdf.Target

	// UseMaterialPDF samples the material's own density instead of a cosine
	// density about the normal.
	UseMaterialPDF bool
}

// NewPathTracingIntegrator creates a path tracer with the given background
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{Background: background}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(minHitDistance, math.Inf(1)))
	if !isHit {
		return pt.Background.Color(ray)
	}

	colorEmitted := hit.Material.Emitted(ray, hit, hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	if scatter.IsSpecular() {
		return colorEmitted.Add(scatter.Attenuation.MultiplyVec(
			pt.RayColor(scatter.SkipPDFRay, world, depth-1, sampler)))
	}

	return colorEmitted.Add(pt.calculateDiffuseColor(ray, hit, scatter, world, depth, sampler))
}

// calculateDiffuseColor importance-samples one scattered direction and weights
// the recursive estimate by scatteringPDF / samplingPDF
func (pt *PathTracingIntegrator) calculateDiffuseColor(ray core.Ray, hit *material.HitRecord, scatter material.ScatterRecord, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	samplingPDF := pt.samplingDensity(hit, scatter)

	scattered := core.NewRayAtTime(hit.Point, samplingPDF.Generate(sampler), ray.Time)
	pdfValue := samplingPDF.Value(scattered.Direction)
	if pdfValue <= 0 || math.IsNaN(pdfValue) || math.IsInf(pdfValue, 0) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	if scatteringPDF <= 0 {
		return core.Vec3{}
	}

	incoming := pt.RayColor(scattered, world, depth-1, sampler)
	return scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue)
}

// samplingDensity returns the density used to pick the next direction
func (pt *PathTracingIntegrator) samplingDensity(hit *material.HitRecord, scatter material.ScatterRecord) pdf.PDF {
	var surface pdf.PDF = pdf.NewCosinePDF(hit.Normal)
	if pt.UseMaterialPDF && scatter.PDF != nil {
		surface = scatter.PDF
	}

	if pt.Lights == nil {
		return surface
	}
	return pdf.NewMixturePDF(pdf.NewHittablePDF(pt.Lights, hit.Point), surface)
}
