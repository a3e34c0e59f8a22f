package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/immich-frame/internal/config"
	"github.com/kozaktomas/immich-frame/internal/constants"
	"github.com/kozaktomas/immich-frame/internal/frame"
	"github.com/kozaktomas/immich-frame/internal/immich"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch one random frame photo to a file",
	Long: `Fetch a random photo of the given people from Immich, resize and pad
it to the requested dimensions and write the JPEG to a file.

Example:
  immich-frame fetch --name "Jan Novak" --name Alice --output frame.jpg
  immich-frame fetch --name Alice --preset waveshare-7in3 --output -`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringSlice("name", nil, "Person name to match (repeatable)")
	fetchCmd.Flags().Int("width", constants.DefaultWidth, "Output width in pixels")
	fetchCmd.Flags().Int("height", constants.DefaultHeight, "Output height in pixels")
	fetchCmd.Flags().String("preset", "", "Frame size preset, see 'immich-frame presets'")
	fetchCmd.Flags().String("output", "frame.jpg", "Output file path, - for stdout")
	fetchCmd.MarkFlagRequired("name")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	names := mustGetStringSlice(cmd, "name")
	width := mustGetInt(cmd, "width")
	height := mustGetInt(cmd, "height")
	output := mustGetString(cmd, "output")

	if presetName := mustGetString(cmd, "preset"); presetName != "" {
		preset, ok := cfg.GetPreset(presetName)
		if !ok {
			return fmt.Errorf("unknown preset %q, see 'immich-frame presets'", presetName)
		}
		// Explicit --width/--height still win over the preset.
		if !cmd.Flags().Changed("width") {
			width = preset.Width
		}
		if !cmd.Flags().Changed("height") {
			height = preset.Height
		}
	}

	req := frame.Request{Names: names, Width: width, Height: height}
	if err := req.Validate(); err != nil {
		return err
	}

	im, err := immich.New(cfg.Immich)
	if err != nil {
		return fmt.Errorf("failed to create Immich client: %w", err)
	}

	data, err := frame.New(im).Photo(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to fetch photo: %w", err)
	}

	if output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Printf("Saved %dx%d photo to %s (%d bytes)\n", width, height, output, len(data))
	return nil
}
