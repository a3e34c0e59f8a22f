package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/immich-frame/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in frame size presets",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWIDTH\tHEIGHT")
	fmt.Fprintln(w, "----\t-----\t------")

	for _, name := range cfg.PresetNames() {
		preset, _ := cfg.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, preset.Width, preset.Height)
	}

	w.Flush()

	return nil
}
