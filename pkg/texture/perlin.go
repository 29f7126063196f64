package texture

import (
	"math"
	"math/rand"

	"github.com/fransixpaohui/RayTracing/pkg/core"
)

const perlinPointCount = 256

// Perlin generates lattice value noise. The tables are fixed at
// construction, so a Perlin is safe to share between render workers.
type Perlin struct {
	randFloat [perlinPointCount]float64
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds the noise tables from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.randFloat {
		p.randFloat[i] = random.Float64()
	}
	generatePerm(&p.permX, random)
	generatePerm(&p.permY, random)
	generatePerm(&p.permZ, random)
	return p
}

func generatePerm(perm *[perlinPointCount]int, random *rand.Rand) {
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns a value in [0, 1) that varies smoothly with p
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randFloat[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(&c, u, v, w)
}

// Turbulence sums depth octaves of noise, halving the weight and doubling the frequency each time
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

func trilinearInterp(c *[2][2][2]float64, u, v, w float64) float64 {
	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) * c[i][j][k]
			}
		}
	}
	return accum
}

// NoiseTexture shades a surface grey by Perlin noise
type NoiseTexture struct {
	noise  *Perlin
	Scale  float64
	Marble bool // Use turbulence-driven marble stripes instead of raw noise
}

// NewNoiseTexture creates a noise texture at the given frequency scale
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{noise: noise, Scale: scale}
}

// NewMarbleTexture creates a noise texture with marble stripes along Z
func NewMarbleTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{noise: noise, Scale: scale, Marble: true}
}

// Value returns a grey level derived from the noise at p
func (t *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	var level float64
	if t.Marble {
		level = 0.5 * (1 + math.Sin(t.Scale*p.Z+10*t.noise.Turbulence(p, 7)))
	} else {
		level = t.noise.Noise(p.Multiply(t.Scale))
	}
	return core.NewVec3(1, 1, 1).Multiply(level)
}
