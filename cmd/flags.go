package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Flag accessors for values registered in init(). A lookup only fails
// when the flag name is mistyped, which is a programming error, so
// these panic rather than thread an error through every command.

func mustGetBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("reading flag --%s: %v", name, err))
	}
	return v
}

func mustGetInt(cmd *cobra.Command, name string) int {
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("reading flag --%s: %v", name, err))
	}
	return v
}

func mustGetString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("reading flag --%s: %v", name, err))
	}
	return v
}

func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	v, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic(fmt.Sprintf("reading flag --%s: %v", name, err))
	}
	return v
}
