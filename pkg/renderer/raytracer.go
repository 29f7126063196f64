package renderer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/geometry"
	"github.com/fransixpaohui/RayTracing/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Requested rays per pixel; rounded down to a square
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// SqrtSamplesPerPixel returns the stratification grid size, at least 1
func (c SamplingConfig) SqrtSamplesPerPixel() int {
	return max(1, int(math.Sqrt(float64(c.SamplesPerPixel))))
}

// RenderConfig controls how work is split across goroutines
type RenderConfig struct {
	TileSize   int   // Edge length of a tile in pixels (0 = DefaultTileSize)
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for every tile's random stream
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: 0,
		Seed:       0,
	}
}

// Raytracer renders a world through a camera
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	sampling   SamplingConfig
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The world must be fully built before Render is called.
func NewRaytracer(world geometry.Hittable, camera *Camera, integratorInst integrator.Integrator, sampling SamplingConfig, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		sampling:   sampling,
		config:     config,
		logger:     logger,
	}
}

// Render traces the whole image in parallel tiles. Output is identical for a
// given seed regardless of the number of workers.
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	startTime := time.Now()

	width, height := rt.camera.Width(), rt.camera.Height()
	img := NewImage(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)

	tileRenderer := NewTileRenderer(rt.world, rt.camera, rt.integrator, rt.sampling)
	workerPool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)

	sqrtSPP := rt.sampling.SqrtSamplesPerPixel()
	rt.logger.Printf("Rendering %dx%d at %d samples/pixel: %d tiles on %d workers...\n",
		width, height, sqrtSPP*sqrtSPP, len(tiles), workerPool.GetNumWorkers())

	workerPool.Start(ctx)
	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Image: img})
	}

	stats := RenderStats{SamplesPerPixel: sqrtSPP * sqrtSPP, Workers: workerPool.GetNumWorkers()}
	var firstErr error
	for remaining := len(tiles); remaining > 0; remaining-- {
		result, ok := workerPool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.add(result.Stats)
		rt.logger.Printf("\rTiles remaining: %d ", remaining-1)
	}
	workerPool.Stop()

	stats.Duration = time.Since(startTime)
	if firstErr != nil {
		rt.logger.Printf("\nRendering stopped: %v\n", firstErr)
		return nil, stats, fmt.Errorf("render cancelled: %w", firstErr)
	}

	rt.logger.Printf("\rDone in %v.            \n", stats.Duration)
	return img, stats, nil
}
