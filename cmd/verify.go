package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"mediaseed/internal/core/domain"
	"mediaseed/internal/core/services"
	"mediaseed/pkg/ui"
)

var (
	verifyWatch  bool
	verifyReport string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Audit bucket reachability without touching any records",
	Long: `Read-only sweep over the catalog: every asset's folder-qualified URL
is HEAD-probed and reported as reachable or not. No fallback probing, no
record writes.

Use --watch to re-run the sweep whenever the configured catalog file
changes, or --report to write an HTML reachability chart.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVarP(&verifyWatch, "watch", "w", false, "Re-run when the catalog file changes")
	verifyCmd.Flags().StringVarP(&verifyReport, "report", "r", "", "Write an HTML reachability report to this file")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	baseURL, err := resolveBaseURL()
	if err != nil {
		return err
	}

	sweep := func(cat []domain.AssetDescriptor) *services.VerifyResponse {
		fmt.Println(ui.FormatInfo(fmt.Sprintf("Verifying %d assets against %s", len(cat), baseURL)))
		return verifyService.Execute(ctx, services.VerifyRequest{
			BaseURL: baseURL,
			Catalog: cat,
		})
	}

	resp := sweep(catalog)
	if verifyReport != "" {
		if err := writeReachabilityReport(verifyReport, resp); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Println(ui.FormatSuccess("Report written to " + verifyReport))
	}

	if !verifyWatch {
		return nil
	}
	return watchCatalog(sweep)
}

// watchCatalog re-runs the sweep whenever the configured catalog file is
// rewritten. Requires a catalog file (the built-in catalog cannot change).
func watchCatalog(sweep func([]domain.AssetDescriptor) *services.VerifyResponse) error {
	if appConfig.CatalogPath == "" {
		return fmt.Errorf("--watch requires catalog_path to be configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which would
	// invalidate a watch on the file itself.
	catalogDir := filepath.Dir(appConfig.CatalogPath)
	if err := watcher.Add(catalogDir); err != nil {
		return fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	fmt.Println()
	fmt.Println(ui.FormatRocket("Watching " + appConfig.CatalogPath))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))

	var debounceTimer *time.Timer
	debounce := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond

	rerun := func() {
		cat, err := domain.LoadCatalog(appConfig.CatalogPath)
		if err != nil {
			fmt.Println(ui.FormatError("Catalog reload failed: " + err.Error()))
			return
		}
		fmt.Println()
		sweep(cat)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(appConfig.CatalogPath) {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounce, rerun)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(ui.FormatError("Watcher error: " + err.Error()))
		}
	}
}

// writeReachabilityReport renders the sweep result as an HTML bar chart.
func writeReachabilityReport(path string, resp *services.VerifyResponse) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Media bucket reachability",
			Subtitle: fmt.Sprintf("%d of %d assets reachable", resp.Reachable, resp.Total),
		}),
	)

	var names []string
	var values []opts.BarData
	for _, result := range resp.Results {
		names = append(names, result.Filename)
		value := 0
		if result.Reachable {
			value = 1
		}
		values = append(values, opts.BarData{Value: value})
	}
	bar.SetXAxis(names).AddSeries("reachable", values)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bar.Render(f)
}
