package cmd

import (
	"context"
	"fmt"

	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	editName     string
	editRequired int
)

var editCmd = &cobra.Command{
	Use:   "edit [course id]",
	Short: "Edit a course name or required attendance",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			target, ok := svc.Course(args[0])
			if !ok {
				fmt.Println("❌ Course not found with ID:", args[0])
				return
			}

			if cmd.Flags().Changed("name") {
				target.Name = editName
			}
			if cmd.Flags().Changed("required") {
				target.RequiredAttendance = editRequired
			}

			if err := svc.Update(ctx, target); err != nil {
				fmt.Println("❌ Error updating course:", err)
				return
			}

			fmt.Println("✅ Course updated successfully!")
		})
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editName, "name", "", "New name")
	editCmd.Flags().IntVar(&editRequired, "required", 0, "New required attendance (0-100)")
}
