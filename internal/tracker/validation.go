package tracker

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/schedule"
	apperrors "github.com/LavenderBridge/attend/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var courseIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]*$`)

// IsValidCourseID reports whether id contains only ASCII letters and
// digits. The empty string matches; callers that need a value reject it
// separately.
func IsValidCourseID(id string) bool {
	return courseIDPattern.MatchString(id)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateCourse checks the id rule first so a bad id always reports
// ErrInvalidCourseID, then the remaining struct tags.
func validateCourse(c models.Course) error {
	if c.ID == "" || !IsValidCourseID(c.ID) {
		return apperrors.NewValidationError(apperrors.ErrInvalidCourseID, "id", c.ID)
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	kind := apperrors.ErrInvalidCourse
	if fe.Field() == "id" {
		kind = apperrors.ErrInvalidCourseID
	}
	return apperrors.ValidationError{
		Field:   fe.Field(),
		Value:   fe.Value(),
		Message: "failed '" + fe.Tag() + "' rule",
		Kind:    kind,
	}
}

// checkTimetable applies the slot rules of AddScheduleItem and
// AddExtraClass to a whole course, returning it with canonical days and
// times. It guards Update and Import, which replace slots wholesale.
func checkTimetable(c models.Course) (models.Course, error) {
	ids := make(map[string]bool, len(c.WeeklySchedule)+len(c.ExtraClasses))
	claim := func(id string) error {
		if id == "" {
			return nil
		}
		if ids[id] {
			return apperrors.NewValidationError(apperrors.ErrDuplicateSlotID, "id", id)
		}
		ids[id] = true
		return nil
	}

	weekly := make([]models.ScheduleItem, 0, len(c.WeeklySchedule))
	for _, item := range c.WeeklySchedule {
		_, day, ok := models.ParseWeekday(item.Day)
		if !ok {
			return c, apperrors.NewValidationError(apperrors.ErrInvalidDay, "day", item.Day)
		}
		item.Day = day
		start, end, err := schedule.NormalizeSlot(item.TimeStart, item.TimeEnd)
		if err != nil {
			return c, err
		}
		item.TimeStart, item.TimeEnd = start, end
		if err := claim(item.ID); err != nil {
			return c, err
		}
		if other, clash := schedule.Overlaps(weekly, item); clash {
			return c, overlapError(item, other)
		}
		weekly = append(weekly, item)
	}

	extras := make([]models.ExtraClass, 0, len(c.ExtraClasses))
	for _, extra := range c.ExtraClasses {
		extra.Date = strings.TrimSpace(extra.Date)
		if err := schedule.ValidateDate(extra.Date); err != nil {
			return c, err
		}
		start, end, err := schedule.NormalizeSlot(extra.TimeStart, extra.TimeEnd)
		if err != nil {
			return c, err
		}
		extra.TimeStart, extra.TimeEnd = start, end
		if err := claim(extra.ID); err != nil {
			return c, err
		}
		extras = append(extras, extra)
	}

	c.WeeklySchedule = weekly
	c.ExtraClasses = extras
	return c, nil
}

func overlapError(item, other models.ScheduleItem) error {
	return apperrors.ValidationError{
		Field:   "timeStart",
		Value:   item.TimeStart,
		Message: "overlaps " + other.Day + " " + other.TimeStart + "-" + other.TimeEnd,
		Kind:    apperrors.ErrScheduleOverlap,
	}
}

// ParseCount parses a manual counter value.
func ParseCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, apperrors.NewValidationError(apperrors.ErrInvalidCountValue, "value", raw)
	}
	return n, nil
}
