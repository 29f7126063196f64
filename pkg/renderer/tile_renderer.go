package renderer

import (
	"image"

	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/geometry"
	"github.com/fransixpaohui/RayTracing/pkg/integrator"
)

// TileRenderer renders individual tiles of an image using an integrator
type TileRenderer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
}

// NewTileRenderer creates a tile renderer. The world must not be modified while rendering.
func NewTileRenderer(world geometry.Hittable, camera *Camera, integratorInst integrator.Integrator, config SamplingConfig) *TileRenderer {
	return &TileRenderer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		config:     config,
	}
}

// RenderTileBounds renders every pixel within bounds into img. Tiles never
// overlap, so concurrent calls with disjoint bounds need no locking.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *Image, sampler core.Sampler) RenderStats {
	sqrtSPP := tr.config.SqrtSamplesPerPixel()
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy(), Tiles: 1}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := tr.samplePixel(i, j, sqrtSPP, sampler)
			stats.TotalSamples += ps.SampleCount
			img.Set(i, j, ColorToRGB(ps.GetColor()))
		}
	}

	return stats
}

// samplePixel traces one jittered ray per stratum of a sqrtSPP × sqrtSPP grid
func (tr *TileRenderer) samplePixel(i, j, sqrtSPP int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	for sj := 0; sj < sqrtSPP; sj++ {
		for si := 0; si < sqrtSPP; si++ {
			ray := tr.camera.GetRay(i, j, si, sj, sqrtSPP, sampler)
			ps.AddSample(tr.integrator.RayColor(ray, tr.world, tr.config.MaxDepth, sampler))
		}
	}
	return ps
}
