package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	notifyAction  tracker.NotificationAction
	notifySlot    string
	notifyPayload string
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Apply a reminder action (present, absent or cancelled)",
	Long: `Apply the action chosen on a class reminder. The class is either given
with --course/--slot/--extra, or as the reminder's JSON payload:

  attend notify --payload '{"courseId":"CS101","scheduleItemId":"a1b2","isExtraClass":false,"action":"present"}'`,
	Run: func(cmd *cobra.Command, args []string) {
		action := notifyAction
		if notifyPayload != "" {
			if err := json.Unmarshal([]byte(notifyPayload), &action); err != nil {
				fmt.Println("❌ Invalid payload:", err)
				return
			}
		} else if notifySlot != "" {
			action.OccurrenceID = notifySlot
		}

		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			marked, err := svc.HandleNotificationAction(ctx, action)
			if err != nil {
				fmt.Println("❌", err)
				return
			}
			if !marked {
				fmt.Println("⚠️ Nothing to mark for", action.CourseID)
				return
			}
			status, _ := models.ParseStatus(action.Action)
			printMarked(svc, action.CourseID, status)
		})
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)

	notifyCmd.Flags().StringVar(&notifyAction.CourseID, "course", "", "Course id")
	notifyCmd.Flags().StringVar(&notifySlot, "slot", "", "Slot id")
	notifyCmd.Flags().BoolVar(&notifyAction.IsExtraClass, "extra", false, "The slot is an extra class")
	notifyCmd.Flags().StringVar(&notifyAction.Action, "action", "", "present, absent or cancelled")
	notifyCmd.Flags().StringVar(&notifyPayload, "payload", "", "Reminder payload as JSON")
}
