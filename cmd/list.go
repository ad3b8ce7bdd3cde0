package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/LavenderBridge/attend/internal/algorithm"
	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked courses",
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			courses := svc.Courses(listAll)
			if len(courses) == 0 {
				fmt.Println("No courses yet. Add one with: attend add CS101 \"Intro to CS\"")
				return
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			writeCourseTable(w, courses)
			w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include archived courses")
}

func writeCourseTable(w io.Writer, courses []models.Course) {
	fmt.Fprintln(w, "ID\tCourse\tP/A/C\tAttendance\tRequired\tStatus")
	fmt.Fprintln(w, "--\t------\t-----\t----------\t--------\t------")

	for _, c := range courses {
		stats := algorithm.Summarize(c)
		name := c.Name
		if c.IsArchived {
			name += " (archived)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d/%d/%d\t%d%%\t%d%%\t%s\n",
			c.ID, name, c.Presents, c.Absents, c.Cancelled,
			stats.Percentage, stats.Required, algorithm.Describe(stats.Delta))
	}
}
