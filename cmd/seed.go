package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediaseed/internal/core/services"
	"mediaseed/pkg/ui"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert one media record per cataloged bucket file",
	Long: `Seed the media collection from the storage bucket.

For every catalog entry the seeder:
  1. HEAD-probes the folder-qualified object URL, falling back to the
     bare filename at the bucket root.
  2. Upserts a media record keyed by filename, pointing at the reachable
     URL with placeholder dimensions and sizes.

Unreachable or rejected assets are skipped; the run always continues.
Running seed twice never duplicates records.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	baseURL, err := resolveBaseURL()
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatRocket("Seeding media from " + baseURL))
	fmt.Println()

	resp, err := seedService.Execute(ctx, services.SeedRequest{
		BaseURL: baseURL,
		Catalog: catalog,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	table := ui.NewTable([]ui.TableColumn{
		{Header: "FILE"},
		{Header: "OUTCOME"},
		{Header: "RECORD ID"},
	})
	for _, outcome := range resp.Outcomes {
		id := outcome.RecordID
		if id == "" {
			id = "-"
		}
		table.AddRow([]string{outcome.Filename, string(outcome.Status), id})
	}
	fmt.Println(table.Render())

	if succeeded := resp.Succeeded(); succeeded == resp.Total {
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("All %d assets seeded", resp.Total)))
	} else {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Partial: %d/%d assets seeded", succeeded, resp.Total)))
	}

	return nil
}
