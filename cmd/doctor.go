package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/ytclip-cli/deps"
	"github.com/user/ytclip-cli/styles"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that the required dependencies (yt-dlp, ffmpeg) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allAvailable, statuses := deps.CheckAll(cmd.Context())
		printStatuses(statuses)

		fmt.Println()
		if allAvailable {
			fmt.Println(styles.Success.Render("All dependencies are installed!"))
		} else {
			fmt.Println(styles.Error.Render("Some dependencies are missing. Please install them to use all features."))
			os.Exit(1)
		}
	},
}

// printStatuses prints one check-mark line per dependency.
func printStatuses(statuses []deps.Status) {
	for _, status := range statuses {
		if status.Available {
			line := styles.Success.Render("✓ " + status.Name + ": OK")
			if status.Detail != "" {
				line += " " + styles.Dim.Render("("+status.Detail+")")
			}
			fmt.Println(line)
		} else {
			fmt.Println(styles.Error.Render("✗ " + status.Name + ": " + status.Detail))
			fmt.Println(styles.Dim.Render("  Install from: " + status.InstallURL))
		}
	}
}
