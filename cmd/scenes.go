package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/mattrusch/SoftPT/scene"
)

// List the scene presets that can be rendered without a scene file.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Preset", "Spheres", "Materials", "Description"})

	for _, preset := range scene.Presets() {
		sc, err := preset.Build()
		if err != nil {
			return err
		}
		table.Append([]string{
			preset.Name,
			fmt.Sprintf("%d", len(sc.Spheres)),
			fmt.Sprintf("%d", len(sc.Materials)),
			preset.Description,
		})
	}

	table.Render()
	logger.Noticef("available scene presets\n%s", buf.String())
	return nil
}
