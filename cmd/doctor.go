package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mediaseed/internal/core/domain"
	"mediaseed/pkg/storageurl"
	"mediaseed/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your mediaseed configuration",
	Long: `Diagnose issues with your mediaseed setup.

Checks for:
  - Recognized environment variables (names only, values never printed)
  - Base URL resolution
  - Catalog validity
  - Store directory writability`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("🩺 Mediaseed Doctor"))
	fmt.Println()

	// 1. Environment variables
	fmt.Println(ui.FormatInfo("Environment:"))
	for _, status := range storageurl.Diagnose(os.LookupEnv) {
		switch {
		case status.Set && status.Matches:
			fmt.Printf("  %s %s\n", ui.StyleSuccess.Render(ui.IconSuccess), status.Name)
		case status.Set:
			fmt.Printf("  %s %s %s\n", ui.StyleWarning.Render(ui.IconWarning), status.Name,
				ui.FormatMuted("(set but does not match the expected shape)"))
		default:
			fmt.Printf("  %s %s %s\n", ui.StyleMuted.Render("·"), status.Name, ui.FormatMuted("(not set)"))
		}
	}
	fmt.Println()

	// 2. Resolution
	checkStep("Base URL resolution", func() error {
		baseURL, err := storageurl.ResolveEnv()
		if err != nil {
			return err
		}
		fmt.Printf("    %s\n", ui.FormatMuted(baseURL))
		return nil
	})

	// 3. Catalog
	checkStep("Catalog", func() error {
		if err := domain.ValidateCatalog(catalog); err != nil {
			return err
		}
		fmt.Printf("    %s\n", ui.FormatMuted(fmt.Sprintf("%d assets", len(catalog))))
		return nil
	})

	// 4. Store
	checkStep("Store directory writable", func() error {
		if err := os.MkdirAll(appConfig.StorePath, 0755); err != nil {
			return err
		}
		marker := filepath.Join(appConfig.StorePath, ".doctor")
		if err := os.WriteFile(marker, []byte("ok"), 0644); err != nil {
			return err
		}
		return os.Remove(marker)
	})
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.FormatSuccess("✔"), name)
	} else {
		fmt.Printf("%s %s\n", ui.FormatError("✘"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}
