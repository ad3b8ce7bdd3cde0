package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/LavenderBridge/attend/internal/models"
)

// DefaultReminderLead is how long before a class starts its reminder fires.
const DefaultReminderLead = 15 * time.Minute

// Reminder is one planned class reminder. Delivering it is up to the caller;
// its action reply goes back through the notification entry point.
type Reminder struct {
	Identifier   string
	CourseID     string
	CourseName   string
	SlotID       string
	IsExtraClass bool
	ClassStart   time.Time
	RemindAt     time.Time
}

// UpcomingReminders plans the next reminder for every weekly slot and every
// future extra class of non-archived courses. Reminders whose time has
// already passed are dropped. Result is ordered by reminder time.
func UpcomingReminders(courses []models.Course, now time.Time, lead time.Duration) []Reminder {
	if lead <= 0 {
		lead = DefaultReminderLead
	}

	seen := make(map[string]bool)
	var reminders []Reminder
	add := func(r Reminder) {
		if !r.RemindAt.After(now) || seen[r.Identifier] {
			return
		}
		seen[r.Identifier] = true
		reminders = append(reminders, r)
	}

	for _, c := range courses {
		if c.IsArchived {
			continue
		}

		for _, item := range c.WeeklySchedule {
			start, ok := nextWeekly(item, now, lead)
			if !ok {
				continue
			}
			remindAt := start.Add(-lead)
			add(Reminder{
				Identifier: fmt.Sprintf("%s-weekly-%s-%s", c.ID, item.ID, remindAt.UTC().Format(time.RFC3339)),
				CourseID:   c.ID,
				CourseName: c.Name,
				SlotID:     item.ID,
				ClassStart: start,
				RemindAt:   remindAt,
			})
		}

		for _, extra := range c.ExtraClasses {
			start, ok := extraStart(extra, now.Location())
			if !ok {
				continue
			}
			remindAt := start.Add(-lead)
			add(Reminder{
				Identifier:   fmt.Sprintf("%s-extra-%s-%s", c.ID, extra.ID, remindAt.UTC().Format(time.RFC3339)),
				CourseID:     c.ID,
				CourseName:   c.Name,
				SlotID:       extra.ID,
				IsExtraClass: true,
				ClassStart:   start,
				RemindAt:     remindAt,
			})
		}
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].RemindAt.Before(reminders[j].RemindAt)
	})
	return reminders
}

// nextWeekly finds the next start of a weekly slot whose reminder is still
// ahead of now.
func nextWeekly(item models.ScheduleItem, now time.Time, lead time.Duration) (time.Time, bool) {
	day, _, ok := models.ParseWeekday(item.Day)
	if !ok {
		return time.Time{}, false
	}
	minutes, err := models.ParseClock(item.TimeStart)
	if err != nil {
		return time.Time{}, false
	}

	offset := (int(day) - int(now.Weekday()) + 7) % 7
	y, m, d := now.Date()
	start := time.Date(y, m, d+offset, minutes/60, minutes%60, 0, 0, now.Location())
	if !start.Add(-lead).After(now) {
		start = start.AddDate(0, 0, 7)
	}
	return start, true
}

func extraStart(extra models.ExtraClass, loc *time.Location) (time.Time, bool) {
	date, err := time.ParseInLocation(models.DateLayout, extra.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	minutes, err := models.ParseClock(extra.TimeStart)
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc), true
}
