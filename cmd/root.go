package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "immich-frame",
	Short: "A photo frame companion for Immich",
	Long: `Immich Frame connects to an Immich instance and serves random photos
of chosen people, resized and padded for e-ink photo frames and other
fixed-size displays. It also ships small maintenance helpers for the
photo library, like duplicate cleanup.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
