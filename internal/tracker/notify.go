package tracker

import (
	"context"
	"strings"

	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/schedule"
	apperrors "github.com/LavenderBridge/attend/pkg/errors"
)

// NotificationAction is the payload a class reminder reports back when one
// of its action buttons is pressed.
type NotificationAction struct {
	CourseID     string `json:"courseId"`
	OccurrenceID string `json:"scheduleItemId"`
	IsExtraClass bool   `json:"isExtraClass"`
	Action       string `json:"action"`
}

// HandleNotificationAction applies a reminder action through the same path
// as a manual mark. Only an unrecognised action is an error; unknown
// courses or occurrences are absorbed. Reminders may carry the bare slot id;
// it is expanded to the occurrence id a manual mark records.
func (s *Service) HandleNotificationAction(ctx context.Context, a NotificationAction) (bool, error) {
	status, ok := models.ParseStatus(a.Action)
	if !ok {
		s.log.Warn().Str("action", a.Action).Str("course", a.CourseID).Msg("Ignoring notification with unknown action")
		return false, apperrors.NewValidationError(apperrors.ErrInvalidStatus, "action", a.Action)
	}
	s.log.Info().
		Str("course", a.CourseID).
		Str("occurrence", a.OccurrenceID).
		Bool("extra", a.IsExtraClass).
		Str("status", string(status)).
		Msg("Notification action received")
	course, ok := s.Course(a.CourseID)
	if !ok {
		return false, nil
	}
	occurrenceID := canonicalOccurrenceID(course.ID, a.OccurrenceID, a.IsExtraClass)
	return s.MarkAttendance(ctx, course.ID, status, a.IsExtraClass, occurrenceID), nil
}

// canonicalOccurrenceID returns the occurrence id for raw, which is either
// already "<course>-..." in any casing or a bare slot id.
func canonicalOccurrenceID(courseID, raw string, isExtraClass bool) string {
	prefix := courseID + "-"
	if len(raw) > len(prefix) && strings.EqualFold(raw[:len(prefix)], prefix) {
		return prefix + raw[len(prefix):]
	}
	return schedule.OccurrenceID(courseID, raw, isExtraClass)
}
