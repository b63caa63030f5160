package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"mediaseed/internal/core/domain"
	"mediaseed/pkg/ui"
)

var urlCopy bool

var urlCmd = &cobra.Command{
	Use:   "url [query]",
	Short: "Print the public URL of one cataloged asset",
	Long: `Resolve the public object URL for a single catalog asset.

With a query, the first filename containing it is used. Without one, an
interactive fuzzy finder opens. Use --copy to place the URL on the
clipboard.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runURL,
}

func init() {
	urlCmd.Flags().BoolVarP(&urlCopy, "copy", "c", false, "Copy the URL to the clipboard")
}

func runURL(cmd *cobra.Command, args []string) error {
	baseURL, err := resolveBaseURL()
	if err != nil {
		return err
	}

	var selected *domain.AssetDescriptor
	if len(args) > 0 {
		query := strings.ToLower(args[0])
		for i, asset := range catalog {
			if strings.Contains(strings.ToLower(asset.Filename), query) {
				selected = &catalog[i]
				break
			}
		}
		if selected == nil {
			fmt.Println(ui.FormatWarning("No catalog asset matching: " + args[0]))
			return nil
		}
	} else {
		idx, err := fuzzyfinder.Find(
			catalog,
			func(i int) string { return catalog[i].ObjectPath() },
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				asset := catalog[i]
				return fmt.Sprintf("Alt: %s\nFolder: %s\nMIME: %s\n\n%s",
					asset.Alt, asset.Folder, domain.MimeTypeFor(asset.Filename),
					baseURL+"/"+asset.ObjectPath())
			}),
		)
		if err != nil {
			fmt.Println(ui.FormatInfo("Operation cancelled."))
			return nil
		}
		selected = &catalog[idx]
	}

	url := baseURL + "/" + selected.ObjectPath()
	fmt.Println(url)

	if urlCopy {
		if err := clipboard.WriteAll(url); err != nil {
			fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
		} else {
			fmt.Println(ui.FormatSuccess("Copied to clipboard"))
		}
	}

	return nil
}
