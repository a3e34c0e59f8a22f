package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/immich-frame/internal/config"
	"github.com/kozaktomas/immich-frame/internal/dedupe"
	"github.com/kozaktomas/immich-frame/internal/immich"
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Delete duplicate phone uploads",
	Long: `Find duplicates reported by Immich and delete phone uploads that also
exist as imports from the external photo library.

With --check-manual, additionally scan the whole library for assets
sharing file size and original file name that Immich did not flag, and
delete all but the best copy of each group.`,
	RunE: runDuplicates,
}

func init() {
	rootCmd.AddCommand(duplicatesCmd)

	duplicatesCmd.Flags().Bool("dry-run", false, "Only list duplicates without deleting")
	duplicatesCmd.Flags().Bool("check-manual", false, "Also scan for assets with the same file size and original file name")
	duplicatesCmd.Flags().Bool("yes", false, "Skip confirmation prompt")
}

func runDuplicates(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	dryRun := mustGetBool(cmd, "dry-run")
	checkManual := mustGetBool(cmd, "check-manual")
	skipConfirm := mustGetBool(cmd, "yes")

	im, err := immich.New(cfg.Immich)
	if err != nil {
		return fmt.Errorf("failed to create Immich client: %w", err)
	}

	ctx := cmd.Context()
	scanner := dedupe.NewScanner()

	groups, err := im.GetDuplicates(ctx)
	if err != nil {
		return fmt.Errorf("failed to get duplicates: %w", err)
	}

	idsToDelete := scanner.PhoneUploadDuplicates(groups)
	fmt.Printf("Duplicate API found %d duplicate phone uploads to delete\n", len(idsToDelete))

	if checkManual {
		manualIDs, err := manualDuplicateIDs(cmd, im, scanner)
		if err != nil {
			return err
		}
		idsToDelete = append(idsToDelete, manualIDs...)
	}

	if len(idsToDelete) == 0 {
		fmt.Println("No duplicates to delete.")
		return nil
	}

	if dryRun {
		fmt.Printf("Dry run, not deleting %d asset(s)\n", len(idsToDelete))
		return nil
	}

	if !skipConfirm {
		fmt.Printf("\nDelete %d asset(s)? [y/N]: ", len(idsToDelete))
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := im.DeleteAssets(ctx, idsToDelete); err != nil {
		return fmt.Errorf("failed to delete assets: %w", err)
	}

	fmt.Printf("Deleted %d duplicate(s)\n", len(idsToDelete))
	return nil
}

// manualDuplicateIDs scans all assets for groups sharing file size and
// original file name and returns the IDs of everything but the best copy
// of each group.
func manualDuplicateIDs(cmd *cobra.Command, im *immich.Immich, scanner *dedupe.Scanner) ([]string, error) {
	fmt.Println("Checking for assets with same file size and original file name")

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Fetching asset metadata"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionSpinnerType(14),
	)

	assets, err := im.GetAllAssets(cmd.Context(), func(page int) {
		bar.Add(1)
	})
	bar.Finish()
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}

	var ids []string
	groups := scanner.ManualCandidates(assets)

	if verbose && len(groups) > 0 {
		fmt.Println("would delete:")
	}

	for _, group := range groups {
		for _, asset := range dedupe.Deletable(group) {
			if verbose {
				fmt.Printf("%s %s\n", asset.ID, asset.OriginalFileName)
			}
			ids = append(ids, asset.ID)
		}
	}

	fmt.Printf("Found %d dupes with the same file size and original filename\n", len(ids))
	return ids, nil
}
