package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/integrator"
	"github.com/fransixpaohui/RayTracing/pkg/renderer"
	"github.com/fransixpaohui/RayTracing/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneID       string
	configPath    string
	width         int
	spp           int
	depth         int
	workers       int
	seed          int64
	out           string
	pngOut        string
	lightSampling bool
	materialPDF   bool
	help          bool
	setFlags      map[string]bool // Flags given explicitly on the command line
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.sceneID, "scene", "spheres", "Scene to render (see -help for the list)")
	fs.StringVar(&opts.configPath, "config", "", "JSON render config overriding scene settings")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.spp, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = CPU count)")
	fs.Int64Var(&opts.seed, "seed", 0, "Seed for scene generation and sampling")
	fs.StringVar(&opts.out, "out", "", "PPM output path, '-' for stdout (default output/<scene>/render_<timestamp>.ppm)")
	fs.StringVar(&opts.pngOut, "png", "", "Also write a PNG to this path")
	fs.BoolVar(&opts.lightSampling, "lights", false, "Sample emitters directly on diffuse bounces")
	fs.BoolVar(&opts.materialPDF, "material-pdf", false, "Sample each material's own density instead of a cosine lobe")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.setFlags = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opts.setFlags[f.Name] = true })
	if opts.width < 0 || opts.spp < 0 || opts.depth < 0 || opts.workers < 0 {
		return opts, errors.New("-width, -spp, -depth and -workers must not be negative")
	}
	if opts.help {
		printHelp(output, fs)
	}
	return opts, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Monte Carlo Path Tracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-14s %s\n", info.ID, info.Description)
	}
}

// applyConfigFile merges a JSON render config under the command line: flags
// that were set explicitly win.
func applyConfigFile(opts *options, config *scene.RenderConfig) {
	if config.Scene != "" && !opts.setFlags["scene"] {
		opts.sceneID = config.Scene
	}
	if config.Seed != nil && !opts.setFlags["seed"] {
		opts.seed = *config.Seed
	}
	if config.Workers > 0 && !opts.setFlags["workers"] {
		opts.workers = config.Workers
	}
	if config.LightSampling != nil && !opts.setFlags["lights"] {
		opts.lightSampling = *config.LightSampling
	}
	if config.MaterialPDF != nil && !opts.setFlags["material-pdf"] {
		opts.materialPDF = *config.MaterialPDF
	}
}

// createScene builds the requested scene and applies config and flag overrides
func createScene(opts options, config *scene.RenderConfig, logger core.Logger) (*scene.Scene, error) {
	s, err := scene.New(opts.sceneID, opts.seed, logger)
	if err != nil {
		return nil, err
	}

	if config != nil {
		config.Apply(s)
	}
	if opts.width > 0 {
		s.CameraConfig.Width = opts.width
	}
	if opts.spp > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.spp
	}
	if opts.depth > 0 {
		s.SamplingConfig.MaxDepth = opts.depth
	}
	return s, nil
}

// newIntegrator configures the scene's path tracer from the sampling options
func newIntegrator(s *scene.Scene, opts options) *integrator.PathTracingIntegrator {
	pt := s.Integrator(opts.lightSampling)
	pt.UseMaterialPDF = opts.materialPDF
	return pt
}

func defaultOutputPath(sceneID string, now time.Time) string {
	return filepath.Join("output", sceneID, fmt.Sprintf("render_%s.ppm", now.Format("20060102_150405")))
}

func writeOutputs(img *renderer.Image, ppmPath, pngPath string, stdout io.Writer) error {
	if ppmPath == "-" {
		if err := img.WritePPM(stdout); err != nil {
			return fmt.Errorf("write PPM to stdout: %w", err)
		}
	} else if err := writeFile(ppmPath, img.WritePPM); err != nil {
		return err
	}

	if pngPath != "" {
		if err := writeFile(pngPath, img.WritePNG); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.help {
		return nil
	}

	// Keep stdout clean when it carries the image
	logger := renderer.NewWriterLogger(stdout)
	if opts.out == "-" {
		logger = renderer.NewWriterLogger(stderr)
	}

	var config *scene.RenderConfig
	if opts.configPath != "" {
		config, err = scene.LoadRenderConfig(opts.configPath)
		if err != nil {
			return err
		}
		applyConfigFile(&opts, config)
	}

	s, err := createScene(opts, config, logger)
	if err != nil {
		return err
	}

	camera := s.Camera()
	logger.Printf("Rendering scene %q at %dx%d, %d spp, depth %d\n",
		s.Name, camera.Width(), camera.Height(), s.SamplingConfig.SamplesPerPixel, s.SamplingConfig.MaxDepth)

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = opts.workers
	renderConfig.Seed = opts.seed

	rt := renderer.NewRaytracer(s.World, camera, newIntegrator(s, opts), s.SamplingConfig, renderConfig, logger)
	img, stats, err := rt.Render(ctx)
	if err != nil {
		return err
	}

	logger.Printf("%d tiles on %d workers, %d samples in %v\n", stats.Tiles, stats.Workers, stats.TotalSamples, stats.Duration)
	logger.Printf("Average luminance: %.4f\n", renderer.CalculateAverageLuminance(img.ToRGBA()))

	ppmPath := opts.out
	if ppmPath == "" {
		ppmPath = defaultOutputPath(s.Name, time.Now())
	}
	if err := writeOutputs(img, ppmPath, opts.pngOut, stdout); err != nil {
		return err
	}
	if ppmPath != "-" {
		logger.Printf("Render saved as %s\n", ppmPath)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
