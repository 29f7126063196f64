package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/renderer"
)

// RenderConfig is a JSON render description. Every field is optional; unset
// fields keep the scene's own values.
type RenderConfig struct {
	Scene           string      `json:"scene,omitempty"`
	Width           int         `json:"width,omitempty"`
	AspectRatio     float64     `json:"aspectRatio,omitempty"`
	VFov            float64     `json:"vfov,omitempty"`
	LookFrom        *[3]float64 `json:"lookFrom,omitempty"`
	LookAt          *[3]float64 `json:"lookAt,omitempty"`
	Up              *[3]float64 `json:"up,omitempty"`
	DefocusAngle    *float64    `json:"defocusAngle,omitempty"`
	FocusDistance   float64     `json:"focusDistance,omitempty"`
	SamplesPerPixel int         `json:"samplesPerPixel,omitempty"`
	MaxDepth        int         `json:"maxDepth,omitempty"`
	Seed            *int64      `json:"seed,omitempty"`
	Workers         int         `json:"workers,omitempty"`
	LightSampling   *bool       `json:"lightSampling,omitempty"`
	MaterialPDF     *bool       `json:"materialPDF,omitempty"`
}

// LoadRenderConfig reads a RenderConfig from a JSON file
func LoadRenderConfig(path string) (*RenderConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open render config: %w", err)
	}
	defer f.Close()

	config, err := ParseRenderConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// ParseRenderConfig decodes and validates a RenderConfig. Unknown keys are rejected.
func ParseRenderConfig(r io.Reader) (*RenderConfig, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var config RenderConfig
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("decode render config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *RenderConfig) validate() error {
	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid render config: width %d is negative", c.Width)
	case c.AspectRatio < 0:
		return fmt.Errorf("invalid render config: aspectRatio %g is negative", c.AspectRatio)
	case c.VFov < 0 || c.VFov >= 180:
		return fmt.Errorf("invalid render config: vfov %g outside [0, 180)", c.VFov)
	case c.DefocusAngle != nil && *c.DefocusAngle < 0:
		return fmt.Errorf("invalid render config: defocusAngle %g is negative", *c.DefocusAngle)
	case c.FocusDistance < 0:
		return fmt.Errorf("invalid render config: focusDistance %g is negative", c.FocusDistance)
	case c.SamplesPerPixel < 0:
		return fmt.Errorf("invalid render config: samplesPerPixel %d is negative", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("invalid render config: maxDepth %d is negative", c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("invalid render config: workers %d is negative", c.Workers)
	}
	return nil
}

// ApplyCamera returns base with the config's camera fields applied
func (c *RenderConfig) ApplyCamera(base renderer.CameraConfig) renderer.CameraConfig {
	override := renderer.CameraConfig{
		Width:         c.Width,
		AspectRatio:   c.AspectRatio,
		VFov:          c.VFov,
		FocusDistance: c.FocusDistance,
	}
	result := renderer.MergeCameraConfig(base, override)

	// Explicit values win even when zero, which a merge cannot express
	if c.LookFrom != nil {
		result.Center = vec3(*c.LookFrom)
	}
	if c.LookAt != nil {
		result.LookAt = vec3(*c.LookAt)
	}
	if c.Up != nil {
		result.Up = vec3(*c.Up)
	}
	if c.DefocusAngle != nil {
		result.DefocusAngle = *c.DefocusAngle
	}
	return result
}

// ApplySampling returns base with the config's sampling fields applied
func (c *RenderConfig) ApplySampling(base renderer.SamplingConfig) renderer.SamplingConfig {
	if c.SamplesPerPixel > 0 {
		base.SamplesPerPixel = c.SamplesPerPixel
	}
	if c.MaxDepth > 0 {
		base.MaxDepth = c.MaxDepth
	}
	return base
}

// Apply overrides the scene's camera and sampling settings in place
func (c *RenderConfig) Apply(s *Scene) {
	s.CameraConfig = c.ApplyCamera(s.CameraConfig)
	s.SamplingConfig = c.ApplySampling(s.SamplingConfig)
}

func vec3(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
