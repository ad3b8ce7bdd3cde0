package schedule

import (
	"sort"
	"time"

	"github.com/LavenderBridge/attend/internal/algorithm"
	"github.com/LavenderBridge/attend/internal/models"
)

// ResolveOccurrencesForDate lists the classes held on date, ordered by start
// time. Archived courses are skipped. Ties keep collection order, weekly
// slots before extra classes within a course.
func ResolveOccurrencesForDate(courses []models.Course, date time.Time) []models.ClassOccurrence {
	dayName := models.Weekdays[date.Weekday()]
	dateString := date.Format(models.DateLayout)

	var occurrences []models.ClassOccurrence
	for _, c := range courses {
		if c.IsArchived {
			continue
		}

		pct := algorithm.Percentage(c.Presents, c.Absents)
		delta := algorithm.Delta(c.Presents, c.Absents, c.RequiredAttendance)

		for _, item := range c.WeeklySchedule {
			if item.Day != dayName {
				continue
			}
			occurrences = append(occurrences, models.ClassOccurrence{
				ID:                 OccurrenceID(c.ID, item.ID, false),
				SlotID:             item.ID,
				CourseID:           c.ID,
				CourseName:         c.Name,
				TimeStart:          item.TimeStart,
				TimeEnd:            item.TimeEnd,
				RequiredAttendance: c.RequiredAttendance,
				CurrentAttendance:  pct,
				NeedToAttend:       delta,
			})
		}

		for _, extra := range c.ExtraClasses {
			if extra.Date != dateString {
				continue
			}
			occurrences = append(occurrences, models.ClassOccurrence{
				ID:                 OccurrenceID(c.ID, extra.ID, true),
				SlotID:             extra.ID,
				CourseID:           c.ID,
				CourseName:         c.Name,
				TimeStart:          extra.TimeStart,
				TimeEnd:            extra.TimeEnd,
				IsExtraClass:       true,
				RequiredAttendance: c.RequiredAttendance,
				CurrentAttendance:  pct,
				NeedToAttend:       delta,
			})
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return startMinutes(occurrences[i].TimeStart) < startMinutes(occurrences[j].TimeStart)
	})
	return occurrences
}

// OccurrenceID names one slot of one course. Attendance records carry it
// so a weekly slot and an extra class on the same day stay distinct.
func OccurrenceID(courseID, slotID string, isExtraClass bool) string {
	if isExtraClass {
		return courseID + "-extra-" + slotID
	}
	return courseID + "-" + slotID
}

// startMinutes sorts unparseable times last.
func startMinutes(hhmm string) int {
	m, err := models.ParseClock(hhmm)
	if err != nil {
		return 24 * 60
	}
	return m
}
