package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var forceImport bool

var importCmd = &cobra.Command{
	Use:   "import [file.json]",
	Short: "Replace all courses with a JSON backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println("❌ Error reading file:", err)
			return
		}

		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			if n := len(svc.Courses(true)); n > 0 && !forceImport &&
				!confirm(fmt.Sprintf("This replaces your %d existing courses. Continue?", n)) {
				fmt.Println("❌ Cancelled.")
				return
			}

			count, err := svc.Import(ctx, data)
			if err != nil {
				fmt.Println("❌ Import failed:", err)
				return
			}
			fmt.Printf("✅ Imported %d courses.\n", count)
		})
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&forceImport, "force", "f", false, "Skip confirmation")
}
