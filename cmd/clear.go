package cmd

import (
	"context"
	"fmt"

	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var forceClear bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every course and reset preferences",
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			n := len(svc.Courses(true))
			if !forceClear && !confirm(fmt.Sprintf("This removes %d courses and all their history. Continue?", n)) {
				fmt.Println("❌ Cancelled.")
				return
			}

			svc.ClearData(ctx)
			fmt.Println("✅ All data cleared.")
		})
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&forceClear, "force", "f", false, "Skip confirmation")
}
