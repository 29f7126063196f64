package texture

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fransixpaohui/RayTracing/pkg/core"
)

// fakeImage is a 2x1 image: left pixel red, right pixel blue
type fakeImage struct{}

func (fakeImage) Width() int  { return 2 }
func (fakeImage) Height() int { return 1 }
func (fakeImage) Pixel(x, y int) [3]byte {
	if x <= 0 {
		return [3]byte{255, 0, 0}
	}
	return [3]byte{0, 0, 255}
}

// emptyImage reports zero dimensions
type emptyImage struct{}

func (emptyImage) Width() int             { return 0 }
func (emptyImage) Height() int            { return 0 }
func (emptyImage) Pixel(x, y int) [3]byte { return [3]byte{255, 0, 255} }

func TestSolidColor_Value(t *testing.T) {
	c := NewSolidColorRGB(0.1, 0.2, 0.3)
	if got := c.Value(0.7, 0.1, core.NewVec3(5, 5, 5)); got != core.NewVec3(0.1, 0.2, 0.3) {
		t.Errorf("Expected constant color, got %v", got)
	}
}

func TestChecker_AlternatesByCell(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerColors(1.0, even, odd)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"origin cell", core.NewVec3(0.5, 0.5, 0.5), even},
		{"step in x", core.NewVec3(1.5, 0.5, 0.5), odd},
		{"step in x and y", core.NewVec3(1.5, 1.5, 0.5), even},
		{"negative x", core.NewVec3(-0.5, 0.5, 0.5), odd},
		{"negative x and z", core.NewVec3(-0.5, 0.5, -0.5), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Value(0, 0, tt.point); got != tt.expected {
				t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, got)
			}
		})
	}
}

func TestImageTexture_LookupAndClamp(t *testing.T) {
	tex := NewImageTexture(fakeImage{})

	red := core.NewVec3(1, 0, 0)
	blue := core.NewVec3(0, 0, 1)

	if got := tex.Value(0.1, 0.5, core.Vec3{}); got != red {
		t.Errorf("Expected red on the left, got %v", got)
	}
	if got := tex.Value(0.9, 0.5, core.Vec3{}); got != blue {
		t.Errorf("Expected blue on the right, got %v", got)
	}
	if got := tex.Value(-4, 7, core.Vec3{}); got != red {
		t.Errorf("Expected clamped lookup to stay red, got %v", got)
	}
}

func TestImageTexture_EmptyImageIsCyan(t *testing.T) {
	tex := NewImageTexture(emptyImage{})
	if got := tex.Value(0.5, 0.5, core.Vec3{}); got != debugCyan {
		t.Errorf("Expected cyan debug color, got %v", got)
	}
}

func TestPerlin_DeterministicAndBounded(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewSource(42)))
	b := NewPerlin(rand.New(rand.NewSource(42)))
	random := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		p := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		na, nb := a.Noise(p), b.Noise(p)
		if na != nb {
			t.Fatalf("Same seed produced different noise at %v: %f vs %f", p, na, nb)
		}
		if na < 0 || na >= 1 {
			t.Fatalf("Noise %f at %v is outside [0,1)", na, p)
		}
	}
}

func TestPerlin_MatchesLatticeAtIntegerPoints(t *testing.T) {
	noise := NewPerlin(rand.New(rand.NewSource(42)))
	p := core.NewVec3(3, -2, 7)

	// At lattice points interpolation collapses to a single table entry
	expected := noise.randFloat[noise.permX[3&255]^noise.permY[-2&255]^noise.permZ[7&255]]
	if got := noise.Noise(p); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected lattice value %f, got %f", expected, got)
	}
}

func TestNoiseTexture_Grey(t *testing.T) {
	noise := NewPerlin(rand.New(rand.NewSource(42)))
	for _, tex := range []*NoiseTexture{NewNoiseTexture(noise, 4), NewMarbleTexture(noise, 4)} {
		c := tex.Value(0, 0, core.NewVec3(0.3, 1.7, -2.2))
		if c.X != c.Y || c.Y != c.Z {
			t.Errorf("Noise texture should be grey, got %v", c)
		}
		if c.X < 0 || c.X > 1 {
			t.Errorf("Noise texture level %f outside [0,1]", c.X)
		}
	}
}
