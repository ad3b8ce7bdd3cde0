package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/LavenderBridge/attend/internal/algorithm"
	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the classes held today",
	Run: func(cmd *cobra.Command, args []string) {
		date, err := parseDateFlag(todayDate)
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			occurrences := svc.Today(date)
			if len(occurrences) == 0 {
				fmt.Printf("✅ No classes on %s.\n", date.Format("Monday, 2006-01-02"))
				return
			}

			fmt.Printf("📅 %d classes on %s:\n\n", len(occurrences), date.Format("Monday, 2006-01-02"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Time\tCourse\tSlot\tAttendance\tStatus")
			fmt.Fprintln(w, "----\t------\t----\t----------\t------")

			for _, o := range occurrences {
				slot := o.SlotID
				if o.IsExtraClass {
					slot += " (extra)"
				}
				fmt.Fprintf(w, "%s-%s\t%s %s\t%s\t%d%% / %d%%\t%s\n",
					o.TimeStart, o.TimeEnd, o.CourseID, o.CourseName, slot,
					o.CurrentAttendance, o.RequiredAttendance, algorithm.Describe(o.NeedToAttend))
			}
			w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVarP(&todayDate, "date", "d", "", "Date to show (YYYY-MM-DD, default today)")
}

// parseDateFlag reads a calendar day in local time; empty means today.
func parseDateFlag(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	date, err := time.ParseInLocation(models.DateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}
