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

var archiveCmd = &cobra.Command{
	Use:   "archive [course id]",
	Short: "Archive a finished course",
	Long: `Archive a course. Archived courses keep their history but no longer
appear in today's classes or reminders. Without an id, list archived
courses.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			if len(args) == 0 {
				printArchived(svc.Archived())
				return
			}
			if _, ok := svc.Course(args[0]); !ok {
				fmt.Println("❌ Course not found with ID:", args[0])
				return
			}
			svc.Archive(ctx, args[0])
			fmt.Println("✅ Course archived.")
		})
	},
}

var unarchiveCmd = &cobra.Command{
	Use:   "unarchive [course id]",
	Short: "Restore an archived course",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			if _, ok := svc.Course(args[0]); !ok {
				fmt.Println("❌ Course not found with ID:", args[0])
				return
			}
			svc.Unarchive(ctx, args[0])
			fmt.Println("✅ Course restored.")
		})
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(unarchiveCmd)
}

var bandMarks = map[models.Band]string{
	models.BandOK:      "✅",
	models.BandWarning: "⚠️",
	models.BandDanger:  "🔥",
}

func printArchived(courses []models.Course) {
	if len(courses) == 0 {
		fmt.Println("No archived courses.")
		return
	}

	fmt.Printf("🗄  %d archived courses:\n\n", len(courses))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCourse\tAttendance\tRequired\t")
	fmt.Fprintln(w, "--\t------\t----------\t--------\t")
	for _, c := range courses {
		stats := algorithm.Summarize(c)
		fmt.Fprintf(w, "%s\t%s\t%d%%\t%d%%\t%s\n", c.ID, c.Name, stats.Percentage, stats.Required, bandMarks[stats.Band])
	}
	w.Flush()
}
