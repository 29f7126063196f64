package scene

import (
	"math/rand"

	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/geometry"
	"github.com/fransixpaohui/RayTracing/pkg/integrator"
	"github.com/fransixpaohui/RayTracing/pkg/material"
	"github.com/fransixpaohui/RayTracing/pkg/renderer"
	"github.com/fransixpaohui/RayTracing/pkg/texture"
)

// NewQuadsScene arranges five colored quads around the camera's view axis
func NewQuadsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := setupCamera(renderer.CameraConfig{
		Width:         400,
		AspectRatio:   1.0,
		VFov:          80,
		Center:        core.NewVec3(0, 0, 9),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		FocusDistance: 10,
	}, cameraOverrides...)

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	return &Scene{
		Name:           "quads",
		World:          world,
		Background:     integrator.NewSkyBackground(),
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// NewSimpleLightScene lights marble spheres with an emissive sphere and quad
// against a black background
func NewSimpleLightScene(random *rand.Rand, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := setupCamera(renderer.CameraConfig{
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		Center:        core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		Up:            core.NewVec3(0, 1, 0),
		FocusDistance: 10,
	}, cameraOverrides...)

	marble := material.NewTexturedLambertian(texture.NewMarbleTexture(texture.NewPerlin(random), 4))
	diffLight := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	lightSphere := geometry.NewSphere(core.NewVec3(0, 7, 0), 2, diffLight)
	lightQuad := geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), diffLight)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		lightSphere,
		lightQuad,
	)

	return &Scene{
		Name:           "light",
		World:          world,
		Lights:         geometry.NewHittableList(lightSphere, lightQuad),
		Background:     integrator.NewSolidBackground(core.Vec3{}),
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}
