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

// EarthImage is the texture file the earth scene looks for
const EarthImage = "earthmap.jpg"

// NewEarthScene wraps an image-textured globe. A missing image is reported
// through logger and the globe renders cyan.
func NewEarthScene(logger core.Logger, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := setupCamera(renderer.CameraConfig{
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		Center:        core.NewVec3(0, 0, 12),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		FocusDistance: 10,
	}, cameraOverrides...)

	earthTexture := texture.LoadImageTexture(EarthImage, logger)
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earthTexture))

	return &Scene{
		Name:           "earth",
		World:          geometry.NewHittableList(globe),
		Background:     integrator.NewSkyBackground(),
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// NewPerlinSpheresScene shows marble noise on a ground sphere and a small sphere
func NewPerlinSpheresScene(random *rand.Rand, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := setupCamera(spheresCamera(), cameraOverrides...)

	marble := material.NewTexturedLambertian(texture.NewMarbleTexture(texture.NewPerlin(random), 4))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return &Scene{
		Name:           "perlin",
		World:          world,
		Background:     integrator.NewSkyBackground(),
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}
