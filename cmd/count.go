package cmd

import (
	"context"
	"fmt"

	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var countRecount bool

var countCmd = &cobra.Command{
	Use:   "count [course id] [presents|absents|cancelled] [value]",
	Short: "Overwrite an attendance counter",
	Long: `Overwrite one counter by hand, for example to carry over attendance
from before you started tracking. Later marks add to the counters you set.

With --recount, rebuild all three counters from the recorded history
instead:
  attend count CS101 --recount`,
	Args: func(cmd *cobra.Command, args []string) error {
		if countRecount {
			return cobra.ExactArgs(1)(cmd, args)
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if countRecount {
			withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
				if !svc.Recount(ctx, args[0]) {
					fmt.Println("❌ Course not found with ID:", args[0])
					return
				}
				printCounts(svc, args[0])
			})
			return
		}

		value, err := tracker.ParseCount(args[2])
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			if _, ok := svc.Course(args[0]); !ok {
				fmt.Println("❌ Course not found with ID:", args[0])
				return
			}
			if err := svc.SetCount(ctx, args[0], args[1], value); err != nil {
				fmt.Println("❌", err)
				return
			}
			printCounts(svc, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().BoolVar(&countRecount, "recount", false, "Rebuild the counters from the attendance history")
}

func printCounts(svc *tracker.Service, courseID string) {
	course, _ := svc.Course(courseID)
	fmt.Printf("✅ %s: %d present, %d absent, %d cancelled (%d%%)\n",
		course.ID, course.Presents, course.Absents, course.Cancelled, course.AttendancePercentage)
}
