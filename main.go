package main

import (
	"fmt"
	"os"

	"github.com/df07/go-montecarlo-tracer/cmd"
	"github.com/df07/go-montecarlo-tracer/pkg/renderer"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}
	defaults := renderer.DefaultConfig()

	app := cli.NewApp()
	app.Name = "go-montecarlo-tracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Build one of the built-in scenes, trace it with a pool of worker goroutines
and write the frame to disk. The output format is picked from the file
extension: .ppm, .png, .bmp, .tif or .tiff.

Unset flags fall back to the settings recommended by the scene.`,
			ArgsUsage: "[scene]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "random-spheres",
					Usage: "name of the scene to render (see list-scenes)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "frame width; the height follows the camera aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: defaults.SamplesPerPixel,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: defaults.MaxDepth,
					Usage: "maximum number of bounces per path",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers; 0 uses one per logical CPU",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed; defaults to the current time",
				},
				cli.StringFlag{
					Name:  "texture",
					Value: "",
					Usage: "image file for textured scenes",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "",
					Usage: "image filename for the rendered frame (default output/<scene>/render_<timestamp>.png)",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:   "host-info",
			Usage:  "show the cpu and memory resources available for rendering",
			Action: cmd.HostInfo,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
