package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage weekly slots and extra classes",
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add [course id] [day] [HH:MM-HH:MM]",
	Short: "Add a weekly slot",
	Example: `  attend schedule add CS101 Monday 09:00-10:00
  attend schedule add CS101 wed 14:00-15:30`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		item, err := parseSlot(args[1] + " " + args[2])
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			if _, ok := svc.Course(args[0]); !ok {
				fmt.Println("❌ Course not found with ID:", args[0])
				return
			}
			added, err := svc.AddScheduleItem(ctx, args[0], item)
			if err != nil {
				fmt.Println("❌ Error adding slot:", err)
				return
			}
			fmt.Printf("✅ Added %s %s-%s [%s]\n", added.Day, added.TimeStart, added.TimeEnd, added.ID)
		})
	},
}

var scheduleExtraCmd = &cobra.Command{
	Use:     "extra [course id] [YYYY-MM-DD] [HH:MM-HH:MM]",
	Short:   "Add a one-off extra class",
	Example: `  attend schedule extra CS101 2026-10-17 10:00-12:00`,
	Args:    cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		start, end, err := splitRange(args[2])
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			if _, ok := svc.Course(args[0]); !ok {
				fmt.Println("❌ Course not found with ID:", args[0])
				return
			}
			extra, err := svc.AddExtraClass(ctx, args[0], args[1], start, end)
			if err != nil {
				fmt.Println("❌ Error adding extra class:", err)
				return
			}
			fmt.Printf("✅ Extra class on %s %s-%s [%s]\n", extra.Date, extra.TimeStart, extra.TimeEnd, extra.ID)
		})
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleExtraCmd)
}

// parseSlot reads "Day HH:MM-HH:MM". Day and range checks happen in the
// tracker.
func parseSlot(raw string) (models.ScheduleItem, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return models.ScheduleItem{}, fmt.Errorf("slot %q must look like \"Monday 09:00-10:00\"", raw)
	}
	start, end, err := splitRange(fields[1])
	if err != nil {
		return models.ScheduleItem{}, err
	}
	return models.ScheduleItem{Day: fields[0], TimeStart: start, TimeEnd: end}, nil
}

func splitRange(raw string) (string, string, error) {
	start, end, ok := strings.Cut(raw, "-")
	if !ok {
		return "", "", fmt.Errorf("time range %q must look like 09:00-10:00", raw)
	}
	return strings.TrimSpace(start), strings.TrimSpace(end), nil
}
