package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete [course id]",
	Short: "Delete a course and its history",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			course, ok := svc.Course(args[0])
			if !ok {
				fmt.Println("❌ Course not found with ID:", args[0])
				return
			}

			if !forceDelete && !confirm(fmt.Sprintf("Are you sure you want to delete %s (%d records)?", course.ID, len(course.AttendanceRecords))) {
				fmt.Println("❌ Cancelled.")
				return
			}

			svc.Delete(ctx, course.ID)
			fmt.Println("✅ Course deleted.")
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&forceDelete, "force", "f", false, "Skip confirmation")
}

func confirm(question string) bool {
	fmt.Printf("⚠️  %s (y/N): ", question)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
