package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/immich-frame/internal/config"
	"github.com/kozaktomas/immich-frame/internal/immich"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the connection to the Immich server",
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	im, err := immich.New(cfg.Immich)
	if err != nil {
		return fmt.Errorf("failed to create Immich client: %w", err)
	}

	if err := im.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("could not reach Immich at %s: %w", cfg.Immich.URL, err)
	}

	fmt.Printf("Immich at %s is reachable.\n", cfg.Immich.URL)
	return nil
}
