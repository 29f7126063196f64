package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// recordingLogger captures log lines for assertions
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}

func writeTestPNG(t *testing.T, path string) {
	t.Helper()

	// Create a simple 2x2 test image
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // Top-left: white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // Top-right: red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // Bottom-left: green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // Bottom-right: blue

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
}

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, testFile)

	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if imageData.Width() != 2 || imageData.Height() != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width(), imageData.Height())
	}

	tests := []struct {
		name     string
		x, y     int
		expected [3]byte
	}{
		{"Top-left (white)", 0, 0, [3]byte{255, 255, 255}},
		{"Top-right (red)", 1, 0, [3]byte{255, 0, 0}},
		{"Bottom-left (green)", 0, 1, [3]byte{0, 255, 0}},
		{"Bottom-right (blue)", 1, 1, [3]byte{0, 0, 255}},
		{"Clamped past right edge", 5, 0, [3]byte{255, 0, 0}},
		{"Clamped below zero", -3, -3, [3]byte{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageData.Pixel(tt.x, tt.y); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestFindImage_UsesEnvironmentOverride(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "override.png"))
	t.Setenv(ImageDirEnv, dir)

	logger := &recordingLogger{}
	img := FindImage("override.png", logger)

	if img.Width() != 2 {
		t.Errorf("Expected image to load from %s, got width %d", ImageDirEnv, img.Width())
	}
	if len(logger.lines) != 0 {
		t.Errorf("Expected no diagnostics, got %v", logger.lines)
	}
}

func TestFindImage_MissingDegradesToMagenta(t *testing.T) {
	t.Setenv(ImageDirEnv, t.TempDir())

	logger := &recordingLogger{}
	img := FindImage("definitely-missing.jpg", logger)

	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Expected empty image, got %dx%d", img.Width(), img.Height())
	}
	if img.Pixel(3, 4) != magenta {
		t.Errorf("Expected magenta sentinel, got %v", img.Pixel(3, 4))
	}
	if len(logger.lines) != 1 || !strings.Contains(logger.lines[0], "Could not load") {
		t.Errorf("Expected one load diagnostic, got %v", logger.lines)
	}
}

func TestSearchPaths_Order(t *testing.T) {
	t.Setenv(ImageDirEnv, "")
	paths := SearchPaths("earth.jpg")

	if paths[0] != "earth.jpg" {
		t.Errorf("Expected bare filename first, got %s", paths[0])
	}
	if paths[1] != filepath.Join("images", "earth.jpg") {
		t.Errorf("Expected images/ second, got %s", paths[1])
	}
	if len(paths) != 8 {
		t.Errorf("Expected 8 candidate paths, got %d", len(paths))
	}
}
