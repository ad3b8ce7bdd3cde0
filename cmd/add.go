package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	addRequired int
	addSlots    []string
)

var addCmd = &cobra.Command{
	Use:   "add [course id] [name]",
	Short: "Add a new course to track",
	Long: `Add a new course. The id must be letters and digits only, and is
matched case-insensitively by every other command.

Weekly slots can be given up front:
  attend add CS101 "Intro to CS" -r 80 -s "Monday 09:00-10:00" -s "Wed 14:00-15:30"`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		name := strings.Join(args[1:], " ")

		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			required := svc.DefaultRequired()
			if cmd.Flags().Changed("required") {
				required = addRequired
			}

			course := models.Course{
				ID:                 id,
				Name:               name,
				RequiredAttendance: required,
			}
			if err := svc.Add(ctx, course); err != nil {
				fmt.Println("❌ Error adding course:", err)
				return
			}
			fmt.Printf("✅ Added '%s' (%s), required %d%%\n", name, id, required)

			for _, raw := range addSlots {
				item, err := parseSlot(raw)
				if err != nil {
					fmt.Println("⚠️ Skipping slot:", err)
					continue
				}
				added, err := svc.AddScheduleItem(ctx, id, item)
				if err != nil {
					fmt.Printf("⚠️ Skipping slot %q: %v\n", raw, err)
					continue
				}
				fmt.Printf("   + %s %s-%s [%s]\n", added.Day, added.TimeStart, added.TimeEnd, added.ID)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().IntVarP(&addRequired, "required", "r", 0, "Required attendance percentage (default from config, 75)")
	addCmd.Flags().StringArrayVarP(&addSlots, "slot", "s", nil, `Weekly slot as "Day HH:MM-HH:MM" (repeatable)`)
}
