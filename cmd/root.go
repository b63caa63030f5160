package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mediaseed/internal/adapters/probe"
	"mediaseed/internal/adapters/repository"
	"mediaseed/internal/core/domain"
	"mediaseed/internal/core/services"
	"mediaseed/pkg/config"
	"mediaseed/pkg/storageurl"
	"mediaseed/pkg/ui"
)

var (
	// Global config and catalog
	appConfig *config.Config
	catalog   []domain.AssetDescriptor

	// Adapters
	mediaRepo  *repository.FileMediaRepository
	httpProber *probe.HTTPProber

	// Services
	seedService   *services.SeedService
	verifyService *services.VerifyService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mediaseed",
	Short: "Seed CMS media records from an existing storage bucket",
	Long: ui.StyleTitle.Render("MEDIASEED") + " - Media Collection Seeder\n\n" +
		"Points media records at files already uploaded to a Supabase storage\n" +
		"bucket: resolves the bucket's public URL from the environment, verifies\n" +
		"each cataloged file with a HEAD probe, and upserts one record per file.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	ui.SetTheme(cfg.ColorTheme)

	// Load the asset catalog (built-in unless a catalog file is configured)
	if cfg.CatalogPath != "" {
		catalog, err = domain.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
	} else {
		catalog = domain.DefaultCatalog()
	}

	// Initialize adapters
	mediaRepo = repository.NewFileMediaRepository(cfg.StorePath)
	httpProber = probe.NewHTTPProber(time.Duration(cfg.RequestTimeoutMS) * time.Millisecond)

	// Initialize services
	reporter := consoleReporter{}
	seedService = services.NewSeedService(mediaRepo, httpProber, reporter)
	verifyService = services.NewVerifyService(httpProber, reporter)

	return nil
}

// resolveBaseURL derives the public storage base URL from the environment,
// printing variable diagnostics (names only) when resolution fails.
func resolveBaseURL() (string, error) {
	baseURL, err := storageurl.ResolveEnv()
	if err != nil {
		fmt.Println(ui.FormatError("Could not derive the storage base URL"))
		for _, status := range storageurl.Diagnose(os.LookupEnv) {
			switch {
			case status.Set && status.Matches:
				fmt.Println("  " + ui.FormatSuccess(status.Name+" set"))
			case status.Set:
				fmt.Println("  " + ui.FormatWarning(status.Name+" set but unrecognized"))
			default:
				fmt.Println("  " + ui.FormatMuted(status.Name+" not set"))
			}
		}
		return "", err
	}
	return baseURL, nil
}

// consoleReporter adapts the styled ui helpers to the services Reporter port.
type consoleReporter struct{}

func (consoleReporter) Infof(format string, args ...any) {
	fmt.Println(ui.FormatInfo(fmt.Sprintf(format, args...)))
}

func (consoleReporter) Warnf(format string, args ...any) {
	fmt.Println(ui.FormatWarning(fmt.Sprintf(format, args...)))
}

func (consoleReporter) Errorf(format string, args ...any) {
	fmt.Println(ui.FormatError(fmt.Sprintf(format, args...)))
}

func (consoleReporter) Successf(format string, args ...any) {
	fmt.Println(ui.FormatSuccess(fmt.Sprintf(format, args...)))
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
