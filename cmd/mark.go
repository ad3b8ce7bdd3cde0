package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LavenderBridge/attend/internal/algorithm"
	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/schedule"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	markSlot  string
	markExtra bool
)

var markCmd = &cobra.Command{
	Use:   "mark [course id] [present|absent|cancelled]",
	Short: "Mark today's attendance",
	Long: `Mark a class as present, absent or cancelled for today. Marking the
same class again replaces the earlier outcome.

With no arguments, walk through every class held today and prompt for
each one.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			if len(args) == 0 {
				markSession(ctx, svc)
				return
			}

			status, ok := models.ParseStatus(args[1])
			if !ok {
				fmt.Println("❌ Status must be present, absent or cancelled")
				return
			}
			course, ok := svc.Course(args[0])
			if !ok {
				fmt.Println("❌ Course not found with ID:", args[0])
				return
			}

			occurrence, err := pickOccurrence(svc, course)
			if err != nil {
				fmt.Println("❌", err)
				return
			}

			if !svc.MarkAttendance(ctx, course.ID, status, occurrence.IsExtraClass, occurrence.ID) {
				fmt.Println("❌ Nothing was marked.")
				return
			}
			printMarked(svc, course.ID, status)
		})
	},
}

func init() {
	rootCmd.AddCommand(markCmd)
	markCmd.Flags().StringVarP(&markSlot, "slot", "s", "", "Slot id (see 'attend today'); required when the course meets more than once today")
	markCmd.Flags().BoolVarP(&markExtra, "extra", "x", false, "The slot is an extra class")
}

// pickOccurrence resolves which class the mark applies to. An explicit
// --slot wins; otherwise the course must meet exactly once today.
func pickOccurrence(svc *tracker.Service, course models.Course) (models.ClassOccurrence, error) {
	if markSlot != "" {
		return models.ClassOccurrence{
			ID:           schedule.OccurrenceID(course.ID, markSlot, markExtra),
			SlotID:       markSlot,
			CourseID:     course.ID,
			IsExtraClass: markExtra,
		}, nil
	}

	var today []models.ClassOccurrence
	for _, o := range svc.Today(time.Now()) {
		if o.CourseID == course.ID {
			today = append(today, o)
		}
	}

	switch len(today) {
	case 1:
		return today[0], nil
	case 0:
		return models.ClassOccurrence{}, fmt.Errorf("%s has no class today, pass --slot", course.ID)
	default:
		var slots []string
		for _, o := range today {
			slots = append(slots, fmt.Sprintf("%s (%s)", o.SlotID, o.TimeStart))
		}
		return models.ClassOccurrence{}, fmt.Errorf("%s meets %d times today, pass --slot: %s",
			course.ID, len(today), strings.Join(slots, ", "))
	}
}

func printMarked(svc *tracker.Service, courseID string, status models.Status) {
	course, _ := svc.Course(courseID)
	stats := algorithm.Summarize(course)
	fmt.Printf("✅ %s marked %s. Attendance %d%% (%s)\n",
		course.ID, status, stats.Percentage, algorithm.Describe(stats.Delta))
}

func markSession(ctx context.Context, svc *tracker.Service) {
	occurrences := svc.Today(time.Now())
	if len(occurrences) == 0 {
		fmt.Println("✅ No classes today!")
		return
	}

	reader := bufio.NewReader(os.Stdin)

	for i, o := range occurrences {
		fmt.Println("\n========================================")
		fmt.Printf("Class [%d/%d]: %s %s\n", i+1, len(occurrences), o.CourseID, o.CourseName)
		fmt.Printf("Time: %s-%s", o.TimeStart, o.TimeEnd)
		if o.IsExtraClass {
			fmt.Print(" (extra class)")
		}
		fmt.Println()
		fmt.Printf("Attendance: %d%% of %d%% required. %s\n",
			o.CurrentAttendance, o.RequiredAttendance, algorithm.Describe(o.NeedToAttend))
		fmt.Println("========================================")

		fmt.Print("Outcome (p: present, a: absent, c: cancelled, Enter: skip): ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if input == "" {
			fmt.Println("⏭  Skipped.")
			continue
		}

		status, ok := sessionStatus(input)
		if !ok {
			fmt.Println("⚠️ Invalid input, skipping this class.")
			continue
		}

		if svc.MarkAttendance(ctx, o.CourseID, status, o.IsExtraClass, o.ID) {
			printMarked(svc, o.CourseID, status)
		}
	}

	fmt.Println("\n🎉 All classes for today reviewed!")
}

func sessionStatus(input string) (models.Status, bool) {
	switch input {
	case "p":
		return models.StatusPresent, true
	case "a":
		return models.StatusAbsent, true
	case "c":
		return models.StatusCancelled, true
	}
	return models.ParseStatus(input)
}
