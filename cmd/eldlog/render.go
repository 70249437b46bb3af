package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/princesinghrajput/eld-logsheet/convert"
	"github.com/princesinghrajput/eld-logsheet/render"
	"github.com/princesinghrajput/eld-logsheet/trip"
)

var (
	renderOut   string
	renderWidth float64
	renderTheme string
)

var renderCmd = &cobra.Command{
	Use:   "render <trip-result.json>",
	Short: "Render a trip result's daily logs to SVG files",
	Long: `Render reads a raw trip-planning result from a JSON file (or "-" for
stdin), normalizes it, and writes one SVG log sheet per day into the output
directory. An unrecognizable result renders the two sample days.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", ".", "Output directory for SVG files")
	renderCmd.Flags().Float64VarP(&renderWidth, "width", "w", 1200, "Sheet width in px")
	renderCmd.Flags().StringVarP(&renderTheme, "theme", "t", "light", "Theme: light|dark")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	result, err := readTripResult(args[0])
	if err != nil {
		return err
	}

	days := convert.DaysOrSample(result, time.Now())
	theme := render.ParseTheme(renderTheme)

	for _, day := range days {
		geometry := render.LayoutDay(day, renderWidth)
		svg := render.RenderSheet(day, geometry, theme)
		if svg == "" {
			return fmt.Errorf("width %.0f leaves no drawable grid", renderWidth)
		}
		path := filepath.Join(renderOut, day.ID+".svg")
		if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d events)\n", path, day.Label, len(day.Events))
	}
	return nil
}

func readTripResult(path string) (*trip.Result, error) {
	if path == "-" {
		return trip.Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trip result: %w", err)
	}
	defer func() { _ = f.Close() }()
	return trip.Decode(f)
}
