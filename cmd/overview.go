package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/LavenderBridge/attend/internal/algorithm"
	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview [course id]",
	Short: "Show attendance bars, or the full detail of one course",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			if len(args) == 1 {
				course, ok := svc.Course(args[0])
				if !ok {
					fmt.Println("❌ Course not found with ID:", args[0])
					return
				}
				printCourseDetail(course)
				return
			}
			printOverview(svc.Courses(false))
		})
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func printOverview(courses []models.Course) {
	fmt.Println("\n📊 Attendance Overview")
	fmt.Println("======================")

	if len(courses) == 0 {
		fmt.Println("No active courses.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Course\tAttendance\t")
	fmt.Fprintln(w, "------\t----------\t")
	for _, c := range courses {
		stats := algorithm.Summarize(c)
		fmt.Fprintf(w, "%s\t%3d%%\t%s %s\n", c.ID, stats.Percentage, bar(stats.Percentage), bandMarks[stats.Band])
	}
	w.Flush()
	fmt.Println()
}

// bar draws one block per ten percent.
func bar(pct int) string {
	return strings.Repeat("█", pct/10) + strings.Repeat("░", 10-pct/10)
}

func printCourseDetail(c models.Course) {
	stats := algorithm.Summarize(c)

	fmt.Printf("\n📘 %s  %s", c.ID, c.Name)
	if c.IsArchived {
		fmt.Print("  (archived)")
	}
	fmt.Println()
	fmt.Println("========================================")
	fmt.Printf("Attendance:   %d%% (required %d%%)\n", stats.Percentage, stats.Required)
	fmt.Printf("Present:      %d\n", c.Presents)
	fmt.Printf("Absent:       %d\n", c.Absents)
	fmt.Printf("Cancelled:    %d\n", c.Cancelled)
	fmt.Printf("Outlook:      %s\n", algorithm.Describe(stats.Delta))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Println("\n🗓  Weekly schedule")
	if len(c.WeeklySchedule) == 0 {
		fmt.Println("   (none)")
	} else {
		fmt.Fprintln(w, "Slot\tDay\tTime")
		for _, item := range c.WeeklySchedule {
			fmt.Fprintf(w, "%s\t%s\t%s-%s\n", item.ID, item.Day, item.TimeStart, item.TimeEnd)
		}
		w.Flush()
	}

	if len(c.ExtraClasses) > 0 {
		fmt.Println("\n➕ Extra classes")
		fmt.Fprintln(w, "Slot\tDate\tTime")
		for _, extra := range c.ExtraClasses {
			fmt.Fprintf(w, "%s\t%s\t%s-%s\n", extra.ID, extra.Date, extra.TimeStart, extra.TimeEnd)
		}
		w.Flush()
	}

	fmt.Println("\n🕑 History")
	if len(c.AttendanceRecords) == 0 {
		fmt.Println("   (no classes marked yet)")
		fmt.Println()
		return
	}
	writeHistory(w, c.AttendanceRecords)
	w.Flush()
	fmt.Println()
}

// writeHistory lists records newest first.
func writeHistory(w *tabwriter.Writer, records []models.AttendanceRecord) {
	sorted := append([]models.AttendanceRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time().After(sorted[j].Time())
	})

	fmt.Fprintln(w, "Record\tDate\tStatus\tClass")
	for _, r := range sorted {
		kind := "weekly"
		if r.IsExtraClass {
			kind = "extra"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\n",
			r.ID, r.Time().In(time.Local).Format("Mon 2006-01-02 15:04"), r.Status, kind, r.ScheduleItemID)
	}
}
