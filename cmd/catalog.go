package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediaseed/internal/core/domain"
	"mediaseed/pkg/ui"
)

var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Aliases: []string{"ls"},
	Short:   "List the asset catalog (alias: ls)",
	Long: `Print every asset the seeder expects to find in the bucket, with its
object path and derived MIME type.`,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	table := ui.NewTable([]ui.TableColumn{
		{Header: "OBJECT PATH"},
		{Header: "ALT TEXT"},
		{Header: "MIME TYPE"},
	})
	for _, asset := range catalog {
		table.AddRow([]string{
			asset.ObjectPath(),
			asset.Alt,
			domain.MimeTypeFor(asset.Filename),
		})
	}
	fmt.Println(table.Render())
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d assets", len(catalog))))
	return nil
}
