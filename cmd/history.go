package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/LavenderBridge/attend/internal/algorithm"
	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [course id]",
	Short: "Show the attendance records of a course",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			course, ok := svc.Course(args[0])
			if !ok {
				fmt.Println("❌ Course not found with ID:", args[0])
				return
			}
			if len(course.AttendanceRecords) == 0 {
				fmt.Println("No classes marked yet.")
				return
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			writeHistory(w, course.AttendanceRecords)
			w.Flush()
		})
	},
}

var historySetCmd = &cobra.Command{
	Use:   "set [course id] [record id] [present|absent|cancelled]",
	Short: "Change the outcome of an earlier record",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		status, ok := models.ParseStatus(args[2])
		if !ok {
			fmt.Println("❌ Status must be present, absent or cancelled")
			return
		}

		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			if !svc.ChangeRecordStatus(ctx, args[0], args[1], status) {
				fmt.Printf("❌ No record %s in course %s\n", args[1], args[0])
				return
			}
			course, _ := svc.Course(args[0])
			stats := algorithm.Summarize(course)
			fmt.Printf("✅ Record updated. Attendance %d%% (%s)\n", stats.Percentage, algorithm.Describe(stats.Delta))
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historySetCmd)
}
