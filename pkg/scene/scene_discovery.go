package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/renderer"
)

// ErrUnknownScene is returned by New for an id not in ListScenes
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

var builtinScenes = []SceneInfo{
	{ID: "spheres", DisplayName: "Bouncing Spheres", Description: "Random field of diffuse, metal and glass spheres with motion blur and defocus"},
	{ID: "checkered", DisplayName: "Checkered Spheres", Description: "Two large spheres with a world-space checker texture"},
	{ID: "earth", DisplayName: "Earth", Description: "Image-textured globe (" + EarthImage + ")"},
	{ID: "perlin", DisplayName: "Perlin Spheres", Description: "Marble noise texture on two spheres"},
	{ID: "quads", DisplayName: "Quads", Description: "Five colored quads"},
	{ID: "light", DisplayName: "Simple Light", Description: "Marble spheres lit by an emissive sphere and quad"},
	{ID: "cornell", DisplayName: "Cornell Box", Description: "Cornell box with two rotated blocks"},
	{ID: "cornell-boxes", DisplayName: "Cornell Box (Metal and Glass)", Description: "Cornell box with an aluminum block and a glass sphere"},
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	return scenes
}

// New builds the scene named id. Procedural content is drawn from a generator
// seeded with seed, so the same seed always yields the same world.
func New(id string, seed int64, logger core.Logger, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	random := rand.New(rand.NewSource(seed))

	switch id {
	case "spheres":
		return NewSpheresScene(random, cameraOverrides...), nil
	case "checkered":
		return NewCheckeredSpheresScene(cameraOverrides...), nil
	case "earth":
		return NewEarthScene(logger, cameraOverrides...), nil
	case "perlin":
		return NewPerlinSpheresScene(random, cameraOverrides...), nil
	case "quads":
		return NewQuadsScene(cameraOverrides...), nil
	case "light":
		return NewSimpleLightScene(random, cameraOverrides...), nil
	case "cornell":
		return NewCornellScene(cameraOverrides...), nil
	case "cornell-boxes":
		return NewCornellBoxesScene(cameraOverrides...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
}
