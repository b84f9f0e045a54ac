package main

import (
	"os"

	"github.com/mattrusch/SoftPT/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "softpt"
	app.Usage = "render sphere scenes using path tracing"
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
			Name:   "list-scenes",
			Usage:  "list built-in scene presets",
			Action: cmd.ListScenes,
		},
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:  "frame",
					Usage: "render single frame",
					Description: `
Render a single frame of a scene. The scene is either loaded from a json scene
file passed as the command argument or, when no argument is given, built from
the preset selected with --preset (see list-scenes).`,
					ArgsUsage: "[scene_file.json]",
					Flags: []cli.Flag{
						cli.IntFlag{
							Name:  "width",
							Value: 512,
							Usage: "frame width",
						},
						cli.IntFlag{
							Name:  "height",
							Value: 512,
							Usage: "frame height",
						},
						cli.IntFlag{
							Name:  "spp",
							Value: 4,
							Usage: "samples per pixel",
						},
						cli.IntFlag{
							Name:  "num-bounces",
							Value: 6,
							Usage: "hard bounce limit for traced paths",
						},
						cli.IntFlag{
							Name:  "workers",
							Value: 0,
							Usage: "number of cpu tracers (0 selects one per core)",
						},
						cli.Uint64Flag{
							Name:  "seed",
							Value: 0,
							Usage: "base random seed (0 picks a time-derived seed)",
						},
						cli.StringFlag{
							Name:  "background",
							Value: "black",
							Usage: "background mode: black or sky",
						},
						cli.StringFlag{
							Name:  "preset",
							Value: "demo",
							Usage: "scene preset to render when no scene file is given",
						},
						cli.StringFlag{
							Name:  "out, o",
							Value: "frame.png",
							Usage: "image filename for the rendered frame",
						},
					},
					Action: cmd.RenderFrame,
				},
			},
		},
	}

	app.Run(os.Args)
}
