package scene

import (
	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/geometry"
	"github.com/fransixpaohui/RayTracing/pkg/integrator"
	"github.com/fransixpaohui/RayTracing/pkg/material"
	"github.com/fransixpaohui/RayTracing/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellRoom holds the shared walls and ceiling light of both Cornell scenes
type cornellRoom struct {
	world *geometry.HittableList
	light *geometry.Quad
	white material.Material
}

func newCornellRoom() cornellRoom {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	// Ceiling light faces down into the room
	ceilingLight := geometry.NewQuad(
		core.NewVec3(343, boxSize-1, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		light,
	)

	world := geometry.NewHittableList(
		// Green wall at x=boxSize, appears on the left from the camera
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Red wall at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		ceilingLight,
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)

	return cornellRoom{world: world, light: ceilingLight, white: white}
}

// cornellCamera looks into the open side of the box
func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:         600,
		AspectRatio:   1.0,
		VFov:          40,
		Center:        core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0,
		FocusDistance: 10,
	}
}

func cornellSampling() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}
}

// rotatedBox builds an axis-aligned box at the origin, turns it about Y and moves it into place
func rotatedBox(size core.Vec3, degrees float64, offset core.Vec3, mat material.Material) geometry.Hittable {
	var box geometry.Hittable = geometry.NewBox(core.NewVec3(0, 0, 0), size, mat)
	box = geometry.NewRotateY(box, degrees)
	return geometry.NewTranslate(box, offset)
}

// NewCornellScene creates the classic Cornell box with two rotated white blocks
func NewCornellScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	room := newCornellRoom()

	room.world.Add(rotatedBox(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), room.white))
	room.world.Add(rotatedBox(core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65), room.white))

	return &Scene{
		Name:           "cornell",
		World:          room.world,
		Lights:         room.light,
		Background:     integrator.NewSolidBackground(core.Vec3{}),
		CameraConfig:   setupCamera(cornellCamera(), cameraOverrides...),
		SamplingConfig: cornellSampling(),
	}
}

// NewCornellBoxesScene replaces the short block with a glass sphere and makes
// the tall block aluminum. Both the light and the sphere are sampling targets.
func NewCornellBoxesScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	room := newCornellRoom()

	aluminum := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)
	room.world.Add(rotatedBox(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), aluminum))

	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))
	room.world.Add(glassSphere)

	return &Scene{
		Name:           "cornell-boxes",
		World:          room.world,
		Lights:         geometry.NewHittableList(room.light, glassSphere),
		Background:     integrator.NewSolidBackground(core.Vec3{}),
		CameraConfig:   setupCamera(cornellCamera(), cameraOverrides...),
		SamplingConfig: cornellSampling(),
	}
}
