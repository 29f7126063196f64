package scene

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/renderer"
)

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestParseRenderConfig(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty object", `{}`, false},
		{"full", `{"scene":"cornell","width":200,"samplesPerPixel":16,"maxDepth":8,"lookFrom":[1,2,3],"defocusAngle":0,"seed":5,"lightSampling":true,"materialPDF":true}`, false},
		{"unknown field", `{"widht":200}`, true},
		{"negative width", `{"width":-1}`, true},
		{"vfov too wide", `{"vfov":180}`, true},
		{"negative defocus", `{"defocusAngle":-2}`, true},
		{"negative depth", `{"maxDepth":-3}`, true},
		{"not json", `width=3`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRenderConfig(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRenderConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderConfig_Apply(t *testing.T) {
	config, err := ParseRenderConfig(strings.NewReader(
		`{"width":120,"lookFrom":[0,1,2],"defocusAngle":0,"samplesPerPixel":9}`))
	if err != nil {
		t.Fatalf("ParseRenderConfig failed: %v", err)
	}

	s := NewSpheresScene(newTestRand(1))
	config.Apply(s)

	if s.CameraConfig.Width != 120 {
		t.Errorf("Expected width 120, got %d", s.CameraConfig.Width)
	}
	if s.CameraConfig.Center != core.NewVec3(0, 1, 2) {
		t.Errorf("Expected look-from (0,1,2), got %v", s.CameraConfig.Center)
	}
	if s.CameraConfig.DefocusAngle != 0 {
		t.Errorf("Expected explicit zero defocus to disable blur, got %g", s.CameraConfig.DefocusAngle)
	}
	if s.CameraConfig.VFov != 20 {
		t.Errorf("Expected scene vfov to be kept, got %g", s.CameraConfig.VFov)
	}
	if s.SamplingConfig.SamplesPerPixel != 9 {
		t.Errorf("Expected 9 samples per pixel, got %d", s.SamplingConfig.SamplesPerPixel)
	}
	if s.SamplingConfig.MaxDepth != renderer.DefaultSamplingConfig().MaxDepth {
		t.Errorf("Expected default depth to be kept, got %d", s.SamplingConfig.MaxDepth)
	}
}

func TestRenderConfig_ApplyZeroVectors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantCenter core.Vec3
		wantLookAt core.Vec3
	}{
		{"look-from at origin", `{"lookFrom":[0,0,0],"lookAt":[0,0,-1]}`, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)},
		{"look-at origin", `{"lookAt":[0,0,0]}`, core.NewVec3(26, 3, 6), core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseRenderConfig(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseRenderConfig failed: %v", err)
			}

			s := NewSimpleLightScene(newTestRand(1))
			config.Apply(s)

			if s.CameraConfig.Center != tt.wantCenter {
				t.Errorf("Expected look-from %v, got %v", tt.wantCenter, s.CameraConfig.Center)
			}
			if s.CameraConfig.LookAt != tt.wantLookAt {
				t.Errorf("Expected look-at %v, got %v", tt.wantLookAt, s.CameraConfig.LookAt)
			}
		})
	}
}

func TestLoadRenderConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.json")
	if err := os.WriteFile(path, []byte(`{"scene":"quads","maxDepth":4}`), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadRenderConfig(path)
	if err != nil {
		t.Fatalf("LoadRenderConfig failed: %v", err)
	}
	if config.Scene != "quads" || config.MaxDepth != 4 {
		t.Errorf("Unexpected config %+v", config)
	}

	if _, err := LoadRenderConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestQuadsScene_RendersSmallImage(t *testing.T) {
	s := NewQuadsScene(renderer.CameraConfig{Width: 16})
	sampling := renderer.SamplingConfig{SamplesPerPixel: 16, MaxDepth: 4}
	rt := renderer.NewRaytracer(s.World, s.Camera(), s.Integrator(false), sampling, renderer.DefaultRenderConfig(), nil)

	img, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Width != 16 || img.Height != 16 {
		t.Errorf("Expected 16x16 image, got %dx%d", img.Width, img.Height)
	}
	if stats.TotalPixels != 256 {
		t.Errorf("Expected 256 pixels, got %d", stats.TotalPixels)
	}

	// The center pixel looks straight at the green back wall
	center := img.At(8, 8)
	if center.G <= center.R || center.G <= center.B {
		t.Errorf("Expected a green center pixel, got %+v", center)
	}
}
