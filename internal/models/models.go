package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is the outcome of one class occurrence.
type Status string

const (
	StatusPresent   Status = "present"
	StatusAbsent    Status = "absent"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the three known outcomes.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusCancelled:
		return true
	}
	return false
}

// ParseStatus accepts any casing of present/absent/cancelled.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// DateLayout is the calendar-day form used for extra classes and
// record-day comparison.
const DateLayout = "2006-01-02"

// Course is one tracked subject. JSON names match the stored snapshot.
type Course struct {
	ID                   string             `json:"id" validate:"required,alphanum"`
	Name                 string             `json:"name" validate:"required"`
	RequiredAttendance   int                `json:"requiredAttendance" validate:"min=0,max=100"`
	Presents             int                `json:"presents" validate:"min=0"`
	Absents              int                `json:"absents" validate:"min=0"`
	Cancelled            int                `json:"cancelled" validate:"min=0"`
	AttendancePercentage int                `json:"attendancePercentage"`
	WeeklySchedule       []ScheduleItem     `json:"weeklySchedule"`
	ExtraClasses         []ExtraClass       `json:"extraClasses"`
	AttendanceRecords    []AttendanceRecord `json:"attendanceRecords"`
	IsArchived           bool               `json:"isArchived"`
}

// ScheduleItem is a recurring weekly slot.
type ScheduleItem struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	TimeStart string `json:"timeStart"`
	TimeEnd   string `json:"timeEnd"`
}

// ExtraClass is a one-off slot on a specific date.
type ExtraClass struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	TimeStart string `json:"timeStart"`
	TimeEnd   string `json:"timeEnd"`
}

// AttendanceRecord is one outcome for one occurrence on one calendar day.
// Data holds an RFC 3339 timestamp; the field name is kept for
// compatibility with existing snapshots.
type AttendanceRecord struct {
	ID             string `json:"id"`
	Data           string `json:"data"`
	Status         Status `json:"Status"`
	IsExtraClass   bool   `json:"isExtraClass"`
	ScheduleItemID string `json:"scheduleItemId,omitempty"`
}

// Day returns the record's calendar day in loc, or "" if Data is not a
// parseable timestamp.
func (r AttendanceRecord) Day(loc *time.Location) string {
	t, err := time.Parse(time.RFC3339Nano, r.Data)
	if err != nil {
		if len(r.Data) >= len(DateLayout) {
			if _, derr := time.Parse(DateLayout, r.Data[:len(DateLayout)]); derr == nil {
				return r.Data[:len(DateLayout)]
			}
		}
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateLayout)
}

// Time parses Data, falling back to the zero time.
func (r AttendanceRecord) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, r.Data)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ClassOccurrence is one concrete meeting of a course on one day.
type ClassOccurrence struct {
	ID                 string `json:"id"`
	SlotID             string `json:"slotId"`
	CourseID           string `json:"courseId"`
	CourseName         string `json:"courseName"`
	TimeStart          string `json:"timeStart"`
	TimeEnd            string `json:"timeEnd"`
	IsExtraClass       bool   `json:"isExtraClass"`
	RequiredAttendance int    `json:"requiredAttendance"`
	CurrentAttendance  int    `json:"currentAttendance"`
	NeedToAttend       int    `json:"needToAttend"`
}

// Weekdays in time.Weekday order.
var Weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ParseWeekday matches a weekday name case-insensitively and returns its
// canonical spelling.
func ParseWeekday(raw string) (time.Weekday, string, bool) {
	raw = strings.TrimSpace(raw)
	for i, name := range Weekdays {
		if strings.EqualFold(name, raw) || (len(raw) == 3 && strings.EqualFold(name[:3], raw)) {
			return time.Weekday(i), name, true
		}
	}
	return 0, "", false
}

// ClockLayout is the 24-hour form slot times are stored in.
const ClockLayout = "15:04"

// ParseClock converts "HH:MM" into minutes since midnight. The whole input
// must be a clock time; a one-digit hour is accepted.
func ParseClock(hhmm string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(hhmm))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// CanonicalClock rewrites a clock time as zero-padded "HH:MM" so stored
// times compare correctly as strings.
func CanonicalClock(hhmm string) (string, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(hhmm))
	if err != nil {
		return "", fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return t.Format(ClockLayout), nil
}

// SameID compares course identifiers case-insensitively.
func SameID(a, b string) bool {
	return strings.EqualFold(a, b)
}

// CourseStats is the per-course summary shown by stats and archived views.
type CourseStats struct {
	CourseID   string
	Name       string
	Percentage int
	Required   int
	Delta      int
	Band       Band
}

// Band classifies a percentage against the required threshold.
type Band string

const (
	BandOK      Band = "ok"
	BandWarning Band = "warning"
	BandDanger  Band = "danger"
)
