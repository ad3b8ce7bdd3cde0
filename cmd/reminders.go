package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	remindersLead  time.Duration
	remindersLimit int
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Show the upcoming class reminders",
	Run: func(cmd *cobra.Command, args []string) {
		lead := cfg.Tracker.ReminderLead
		if cmd.Flags().Changed("lead") {
			lead = remindersLead
		}

		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			reminders := svc.Reminders(lead)
			if len(reminders) == 0 {
				fmt.Println("✅ No upcoming classes.")
				return
			}
			if remindersLimit > 0 && len(reminders) > remindersLimit {
				reminders = reminders[:remindersLimit]
			}

			fmt.Printf("🔔 Next %d reminders (%s before class):\n\n", len(reminders), lead)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Remind At\tClass Starts\tCourse\tSlot")
			fmt.Fprintln(w, "---------\t------------\t------\t----")
			for _, r := range reminders {
				slot := r.SlotID
				if r.IsExtraClass {
					slot += " (extra)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\n",
					r.RemindAt.Format("Mon 01-02 15:04"), r.ClassStart.Format("15:04"), r.CourseID, r.CourseName, slot)
			}
			w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(remindersCmd)
	remindersCmd.Flags().DurationVar(&remindersLead, "lead", 15*time.Minute, "How long before class to remind")
	remindersCmd.Flags().IntVarP(&remindersLimit, "limit", "n", 0, "Show at most n reminders")
}
