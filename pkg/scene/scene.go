package scene

import (
	"github.com/fransixpaohui/RayTracing/pkg/geometry"
	"github.com/fransixpaohui/RayTracing/pkg/integrator"
	"github.com/fransixpaohui/RayTracing/pkg/pdf"
	"github.com/fransixpaohui/RayTracing/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          geometry.Hittable // Everything a ray can hit
	Lights         pdf.Target        // Emitters worth sampling directly (nil if none)
	Background     integrator.Background
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// Camera builds the scene's camera
func (s *Scene) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// Integrator returns a path tracer over the scene's background. With
// lightSampling set, diffuse bounces also aim at the scene's Lights.
func (s *Scene) Integrator(lightSampling bool) *integrator.PathTracingIntegrator {
	pt := integrator.NewPathTracingIntegrator(s.Background)
	if lightSampling && s.Lights != nil {
		pt.Lights = s.Lights
	}
	return pt
}

// newBVHWorld wraps the objects of list in a bounding volume hierarchy
func newBVHWorld(list *geometry.HittableList) geometry.Hittable {
	return geometry.NewBVHFromList(list)
}

// setupCamera merges the first override, if any, onto defaults
func setupCamera(defaults renderer.CameraConfig, cameraOverrides ...renderer.CameraConfig) renderer.CameraConfig {
	if len(cameraOverrides) > 0 {
		return renderer.MergeCameraConfig(defaults, cameraOverrides[0])
	}
	return defaults
}
