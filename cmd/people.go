package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/immich-frame/internal/config"
	"github.com/kozaktomas/immich-frame/internal/immich"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List people known to the Immich server",
	Long: `List all named people from Immich. Useful for finding the exact
names to put into the frame URL.`,
	RunE: runPeople,
}

func init() {
	rootCmd.AddCommand(peopleCmd)

	peopleCmd.Flags().String("match", "", "Only show people whose name contains this text (ignores case and diacritics)")
}

func runPeople(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	match := mustGetString(cmd, "match")

	im, err := immich.New(cfg.Immich)
	if err != nil {
		return fmt.Errorf("failed to create Immich client: %w", err)
	}

	people, err := im.GetAllPeople(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get people: %w", err)
	}

	if match != "" {
		var filtered []immich.Person
		for _, p := range people {
			if immich.MatchesName(p.Name, match) {
				filtered = append(filtered, p)
			}
		}
		people = filtered
	}

	if len(people) == 0 {
		fmt.Println("No people found.")
		return nil
	}

	sort.Slice(people, func(i, j int) bool {
		return strings.ToLower(people[i].Name) < strings.ToLower(people[j].Name)
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	fmt.Fprintln(w, "--\t----")

	for _, p := range people {
		fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Name)
	}

	w.Flush()

	fmt.Printf("\nTotal: %d people\n", len(people))

	return nil
}
