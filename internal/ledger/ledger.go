package ledger

import (
	"time"

	"github.com/LavenderBridge/attend/internal/algorithm"
	"github.com/LavenderBridge/attend/internal/models"
	"github.com/google/uuid"
)

// Ledger applies attendance outcomes to a course collection. It never
// modifies its input; every change produces a new collection.
//
// Lookups that miss (unknown course, unknown record) are silent no-ops.
// Notification callbacks drive the same entry points and have nowhere to
// report an error.
type Ledger struct {
	now   func() time.Time
	newID func() string
}

func New() *Ledger {
	return &Ledger{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// WithClock returns a copy of l reading the current time from now.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	cp := *l
	cp.now = now
	return &cp
}

// MarkAttendance records status for the occurrence identified by
// (today, isExtraClass, occurrenceID) on courseID. Re-marking an occurrence
// on the same day updates its record in place; re-marking with the same
// status changes nothing. changed reports whether a new collection was
// produced.
func (l *Ledger) MarkAttendance(courses []models.Course, courseID string, status models.Status, isExtraClass bool, occurrenceID string) (result []models.Course, changed bool) {
	if !status.Valid() {
		return courses, false
	}
	idx := indexOf(courses, courseID)
	if idx < 0 {
		return courses, false
	}

	now := l.now()
	today := now.Format(models.DateLayout)
	course := courses[idx]
	records := append([]models.AttendanceRecord(nil), course.AttendanceRecords...)

	found := -1
	for i, r := range records {
		if r.Day(now.Location()) == today && r.IsExtraClass == isExtraClass && r.ScheduleItemID == occurrenceID {
			found = i
			break
		}
	}

	if found >= 0 {
		old := records[found].Status
		if old == status {
			return courses, false
		}
		records[found].Status = status
		course = tally(course, old, -1)
	} else {
		records = append(records, models.AttendanceRecord{
			ID:             l.newID(),
			Data:           now.Format(time.RFC3339),
			Status:         status,
			IsExtraClass:   isExtraClass,
			ScheduleItemID: occurrenceID,
		})
	}

	course.AttendanceRecords = records
	course = tally(course, status, 1)
	return replace(courses, idx, course), true
}

// ChangeRecordStatus corrects one historical record by its own id.
func (l *Ledger) ChangeRecordStatus(courses []models.Course, courseID, recordID string, status models.Status) (result []models.Course, changed bool) {
	if !status.Valid() {
		return courses, false
	}
	idx := indexOf(courses, courseID)
	if idx < 0 {
		return courses, false
	}

	course := courses[idx]
	found := -1
	for i, r := range course.AttendanceRecords {
		if r.ID == recordID {
			found = i
			break
		}
	}
	if found < 0 || course.AttendanceRecords[found].Status == status {
		return courses, false
	}

	records := append([]models.AttendanceRecord(nil), course.AttendanceRecords...)
	old := records[found].Status
	records[found].Status = status
	course.AttendanceRecords = records
	course = tally(tally(course, old, -1), status, 1)
	return replace(courses, idx, course), true
}

// tally moves one counter by d on top of whatever the course already holds,
// so counts entered by hand survive later marks. Counters never go below
// zero.
func tally(c models.Course, status models.Status, d int) models.Course {
	switch status {
	case models.StatusPresent:
		c.Presents = max(c.Presents+d, 0)
	case models.StatusAbsent:
		c.Absents = max(c.Absents+d, 0)
	case models.StatusCancelled:
		c.Cancelled = max(c.Cancelled+d, 0)
	}
	c.AttendancePercentage = algorithm.Percentage(c.Presents, c.Absents)
	return c
}

// Recount derives the counters and percentage from the record set alone,
// discarding any hand-entered counts.
func Recount(c models.Course) models.Course {
	c.Presents, c.Absents, c.Cancelled = 0, 0, 0
	for _, r := range c.AttendanceRecords {
		switch r.Status {
		case models.StatusPresent:
			c.Presents++
		case models.StatusAbsent:
			c.Absents++
		case models.StatusCancelled:
			c.Cancelled++
		}
	}
	c.AttendancePercentage = algorithm.Percentage(c.Presents, c.Absents)
	return c
}

func indexOf(courses []models.Course, courseID string) int {
	for i, c := range courses {
		if models.SameID(c.ID, courseID) {
			return i
		}
	}
	return -1
}

func replace(courses []models.Course, idx int, c models.Course) []models.Course {
	out := make([]models.Course, len(courses))
	copy(out, courses)
	out[idx] = c
	return out
}
