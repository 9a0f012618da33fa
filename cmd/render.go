package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-montecarlo-tracer/pkg/core"
	"github.com/df07/go-montecarlo-tracer/pkg/output"
	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
	"github.com/df07/go-montecarlo-tracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame of a built-in scene.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneName := ctx.String("scene")
	if ctx.NArg() > 0 {
		sceneName = ctx.Args().First()
	}

	seed := time.Now().UnixNano()
	if ctx.IsSet("seed") {
		seed = ctx.Int64("seed")
	}

	// Load scene
	start := time.Now()
	sc, err := scene.Build(sceneName, scene.Options{
		Sampler:     core.NewSeededSampler(seed),
		TexturePath: ctx.String("texture"),
	})
	if err != nil {
		return err
	}
	logger.Infof("built scene %q (%d objects, %d lights) in %s", sc.Name, sc.Objects.Len(), sc.Lights.Len(), time.Since(start))

	config := applyOverrides(ctx, sc.Config, sc.CameraConfig.AspectRatio)
	config.Seed = seed

	outFile := ctx.String("out")
	if outFile == "" {
		outFile = defaultOutputPath(sceneName, time.Now())
	}
	// Reject unknown formats before spending time on the render
	if _, err := output.EncoderFor(outFile); err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering %q at %dx%d, %d spp, max depth %d", sc.Name, config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth)
	fb, stats, err := renderer.Render(renderCtx, sc.World, sc.Lights, sc.Camera(), config)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := output.Save(outFile, fb); err != nil {
		return err
	}
	logger.Noticef("wrote %s", outFile)

	// Display stats
	displayFrameStats(stats)

	return nil
}

// applyOverrides replaces the scene's recommended settings with any flags
// the user set. The height always follows the camera aspect ratio.
func applyOverrides(ctx *cli.Context, config renderer.Config, aspectRatio float64) renderer.Config {
	if ctx.IsSet("width") {
		config.Width = ctx.Int("width")
		config.Height = int(float64(config.Width) / aspectRatio)
	}
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		config.MaxDepth = ctx.Int("depth")
	}
	config.NumWorkers = ctx.Int("workers")
	return config
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func displayFrameStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
}

func formatFrameStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Samples", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		percent := 0.0
		if stats.TotalRows > 0 {
			percent = 100 * float64(stat.Rows) / float64(stats.TotalRows)
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%02.1f %%", percent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.TotalRows),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f samples/s", stats.SamplesPerSecond()),
		stats.RenderTime.String(),
	})

	table.Render()
	return buf.String()
}
