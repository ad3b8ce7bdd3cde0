package schedule

import (
	"time"

	"github.com/LavenderBridge/attend/internal/models"
	apperrors "github.com/LavenderBridge/attend/pkg/errors"
)

// ValidateSlot checks both times parse and start is before end.
func ValidateSlot(start, end string) error {
	_, _, err := NormalizeSlot(start, end)
	return err
}

// NormalizeSlot validates a time range and returns both ends in canonical
// "HH:MM" form.
func NormalizeSlot(start, end string) (string, string, error) {
	s, err := models.CanonicalClock(start)
	if err != nil {
		return "", "", apperrors.NewValidationError(apperrors.ErrInvalidTimeRange, "timeStart", start)
	}
	e, err := models.CanonicalClock(end)
	if err != nil {
		return "", "", apperrors.NewValidationError(apperrors.ErrInvalidTimeRange, "timeEnd", end)
	}
	if s >= e {
		return "", "", apperrors.NewValidationError(apperrors.ErrInvalidTimeRange, "timeEnd", end)
	}
	return s, e, nil
}

// Overlaps returns the first existing slot on the candidate's day whose
// [start, end) interval intersects the candidate's.
func Overlaps(items []models.ScheduleItem, candidate models.ScheduleItem) (models.ScheduleItem, bool) {
	cs, err1 := models.ParseClock(candidate.TimeStart)
	ce, err2 := models.ParseClock(candidate.TimeEnd)
	if err1 != nil || err2 != nil {
		return models.ScheduleItem{}, false
	}

	for _, item := range items {
		if item.Day != candidate.Day {
			continue
		}
		s, err1 := models.ParseClock(item.TimeStart)
		e, err2 := models.ParseClock(item.TimeEnd)
		if err1 != nil || err2 != nil {
			continue
		}
		if cs < e && s < ce {
			return item, true
		}
	}
	return models.ScheduleItem{}, false
}

// ValidateDate checks an extra-class date.
func ValidateDate(date string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return apperrors.NewValidationError(apperrors.ErrInvalidDate, "date", date)
	}
	return nil
}
