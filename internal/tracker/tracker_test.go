package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/LavenderBridge/attend/internal/db"
	"github.com/LavenderBridge/attend/internal/models"
	apperrors "github.com/LavenderBridge/attend/pkg/errors"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestService(t *testing.T) (*Service, *db.MemoryStore, *clock) {
	t.Helper()
	kv := db.NewMemoryStore()
	// Monday
	clk := &clock{t: time.Date(2026, 10, 12, 9, 0, 0, 0, time.Local)}
	s := NewService(kv, WithClock(clk.now))
	s.Load(context.Background())
	return s, kv, clk
}

func mustAdd(t *testing.T, s *Service, c models.Course) {
	t.Helper()
	if err := s.Add(context.Background(), c); err != nil {
		t.Fatalf("Add(%s): %v", c.ID, err)
	}
}

func TestAddDefaults(t *testing.T) {
	s, kv, _ := newTestService(t)
	mustAdd(t, s, models.Course{ID: " CS101 ", Name: "Intro", RequiredAttendance: 75})

	c, ok := s.Course("cs101")
	if !ok {
		t.Fatal("course not found case-insensitively")
	}
	if c.ID != "CS101" || c.Presents != 0 || c.AttendancePercentage != 100 {
		t.Errorf("added course = %+v", c)
	}
	if c.WeeklySchedule == nil || c.ExtraClasses == nil || c.AttendanceRecords == nil {
		t.Error("slices not defaulted to empty")
	}

	raw, err := kv.Get(context.Background(), KeyCourses)
	if err != nil {
		t.Fatalf("courses not persisted: %v", err)
	}
	var stored []map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatal(err)
	}
	if _, ok := stored[0]["attendanceRecords"].([]interface{}); !ok {
		t.Errorf("attendanceRecords persisted as %v", stored[0]["attendanceRecords"])
	}
}

func TestAddValidation(t *testing.T) {
	s, _, _ := newTestService(t)
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})

	tests := []struct {
		name   string
		course models.Course
		want   error
	}{
		{"duplicate differing in case", models.Course{ID: "cs101", Name: "Again", RequiredAttendance: 75}, apperrors.ErrDuplicateCourseID},
		{"empty id", models.Course{ID: "", Name: "X", RequiredAttendance: 75}, apperrors.ErrInvalidCourseID},
		{"id with space", models.Course{ID: "CS 102", Name: "X", RequiredAttendance: 75}, apperrors.ErrInvalidCourseID},
		{"id with dash", models.Course{ID: "CS-102", Name: "X", RequiredAttendance: 75}, apperrors.ErrInvalidCourseID},
		{"missing name", models.Course{ID: "CS102", RequiredAttendance: 75}, apperrors.ErrInvalidCourse},
		{"threshold over 100", models.Course{ID: "CS102", Name: "X", RequiredAttendance: 101}, apperrors.ErrInvalidCourse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Add(context.Background(), tt.course)
			if !errors.Is(err, tt.want) {
				t.Errorf("Add() error = %v, want %v", err, tt.want)
			}
			var verr apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error %T is not a ValidationError", err)
			}
		})
	}

	if got := len(s.Courses(true)); got != 1 {
		t.Errorf("collection has %d courses after rejected adds, want 1", got)
	}
}

func TestIsValidCourseID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"CS101", true},
		{"abc", true},
		{"", true},
		{"cs_101", false},
		{"ünï", false},
	}
	for _, tt := range tests {
		if got := IsValidCourseID(tt.id); got != tt.want {
			t.Errorf("IsValidCourseID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestUpdate(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})
	mustAdd(t, s, models.Course{ID: "MATH", Name: "Maths", RequiredAttendance: 75})

	c, _ := s.Course("cs101")
	c.ID = "cs101"
	c.Name = "Intro to CS"
	c.RequiredAttendance = 80
	if err := s.Update(ctx, c); err != nil {
		t.Fatalf("Update keeping own id: %v", err)
	}
	got, _ := s.Course("CS101")
	if got.Name != "Intro to CS" || got.RequiredAttendance != 80 {
		t.Errorf("updated course = %+v", got)
	}

	bad := got
	bad.ID = "CS 101"
	if err := s.Update(ctx, bad); !errors.Is(err, apperrors.ErrInvalidCourseID) {
		t.Errorf("Update with bad id: %v", err)
	}

	if err := s.Update(ctx, models.Course{ID: "NOPE", Name: "x"}); err != nil {
		t.Errorf("Update of unknown course should be a no-op, got %v", err)
	}
	if len(s.Courses(true)) != 2 {
		t.Error("unknown update changed the collection size")
	}
}

func TestUpdateChecksTimetable(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})
	base, _ := s.Course("CS101")

	tests := []struct {
		name   string
		weekly []models.ScheduleItem
		extras []models.ExtraClass
		want   error
	}{
		{"junk time", []models.ScheduleItem{{ID: "a", Day: "Monday", TimeStart: "09:00junk", TimeEnd: "10:00"}}, nil, apperrors.ErrInvalidTimeRange},
		{"reversed", []models.ScheduleItem{{ID: "a", Day: "Monday", TimeStart: "11:00", TimeEnd: "10:00"}}, nil, apperrors.ErrInvalidTimeRange},
		{"bad day", []models.ScheduleItem{{ID: "a", Day: "Someday", TimeStart: "09:00", TimeEnd: "10:00"}}, nil, apperrors.ErrInvalidDay},
		{"overlap", []models.ScheduleItem{
			{ID: "a", Day: "Monday", TimeStart: "09:00", TimeEnd: "10:00"},
			{ID: "b", Day: "Monday", TimeStart: "09:30", TimeEnd: "10:30"},
		}, nil, apperrors.ErrScheduleOverlap},
		{"duplicate slot id", []models.ScheduleItem{{ID: "a", Day: "Monday", TimeStart: "09:00", TimeEnd: "10:00"}},
			[]models.ExtraClass{{ID: "a", Date: "2026-10-14", TimeStart: "09:00", TimeEnd: "10:00"}}, apperrors.ErrDuplicateSlotID},
		{"bad extra date", nil, []models.ExtraClass{{ID: "x", Date: "14/10/2026", TimeStart: "09:00", TimeEnd: "10:00"}}, apperrors.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			c.WeeklySchedule = tt.weekly
			c.ExtraClasses = tt.extras
			if err := s.Update(ctx, c); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	c := base
	c.WeeklySchedule = []models.ScheduleItem{{ID: "a", Day: "mon", TimeStart: "9:00", TimeEnd: "10:00"}}
	if err := s.Update(ctx, c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := s.Course("CS101")
	if item := got.WeeklySchedule[0]; item.Day != "Monday" || item.TimeStart != "09:00" {
		t.Errorf("stored slot = %+v", item)
	}
}

func TestDeleteArchiveUnarchive(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{
		ID: "CS101", Name: "Intro", RequiredAttendance: 75,
		WeeklySchedule: []models.ScheduleItem{{ID: "a", Day: "Monday", TimeStart: "09:00", TimeEnd: "10:00"}},
	})
	mustAdd(t, s, models.Course{ID: "MATH", Name: "Maths", RequiredAttendance: 75})

	s.Archive(ctx, "cs101")
	if len(s.Courses(false)) != 1 || len(s.Archived()) != 1 {
		t.Fatalf("archive: active=%d archived=%d", len(s.Courses(false)), len(s.Archived()))
	}
	if occ := s.Today(time.Date(2026, 10, 12, 0, 0, 0, 0, time.Local)); len(occ) != 0 {
		t.Errorf("archived course still scheduled: %v", occ)
	}
	c, _ := s.Course("CS101")
	if c.Name != "Intro" || len(c.WeeklySchedule) != 1 {
		t.Error("archive touched other fields")
	}

	s.Unarchive(ctx, "CS101")
	if occ := s.Today(time.Date(2026, 10, 12, 0, 0, 0, 0, time.Local)); len(occ) != 1 {
		t.Errorf("unarchived course not scheduled: %v", occ)
	}

	s.Archive(ctx, "NOPE")
	s.Delete(ctx, "NOPE")
	if len(s.Courses(true)) != 2 {
		t.Error("unknown ids changed the collection")
	}

	s.Delete(ctx, "math")
	if _, ok := s.Course("MATH"); ok {
		t.Error("course not deleted")
	}
}

func TestSetCount(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})

	if err := s.SetCount(ctx, "CS101", FieldPresents, 3); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCount(ctx, "CS101", FieldAbsents, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCount(ctx, "CS101", FieldCancelled, 7); err != nil {
		t.Fatal(err)
	}
	c, _ := s.Course("CS101")
	if c.Presents != 3 || c.Absents != 1 || c.Cancelled != 7 || c.AttendancePercentage != 75 {
		t.Errorf("counts = %d/%d/%d %d%%", c.Presents, c.Absents, c.Cancelled, c.AttendancePercentage)
	}

	if err := s.SetCount(ctx, "CS101", FieldPresents, -1); !errors.Is(err, apperrors.ErrInvalidCountValue) {
		t.Errorf("negative value: %v", err)
	}
	if err := s.SetCount(ctx, "CS101", "late", 1); !errors.Is(err, apperrors.ErrInvalidCountField) {
		t.Errorf("bad field: %v", err)
	}
	c, _ = s.Course("CS101")
	if c.Presents != 3 {
		t.Error("rejected SetCount mutated the course")
	}
}

func TestSetCountCarriesIntoLaterMarks(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})

	_ = s.SetCount(ctx, "CS101", FieldPresents, 20)
	_ = s.SetCount(ctx, "CS101", FieldAbsents, 5)
	s.MarkAttendance(ctx, "CS101", models.StatusPresent, false, "CS101-a")

	c, _ := s.Course("CS101")
	if c.Presents != 21 || c.Absents != 5 || c.AttendancePercentage != 81 {
		t.Errorf("after mark: %d/%d %d%%", c.Presents, c.Absents, c.AttendancePercentage)
	}

	if !s.Recount(ctx, "cs101") {
		t.Fatal("Recount reported unknown course")
	}
	c, _ = s.Course("CS101")
	if c.Presents != 1 || c.Absents != 0 || c.AttendancePercentage != 100 {
		t.Errorf("after recount: %d/%d %d%%", c.Presents, c.Absents, c.AttendancePercentage)
	}
	if s.Recount(ctx, "NOPE") {
		t.Error("Recount of unknown course reported a change")
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"4", 4, true},
		{" 12 ", 12, true},
		{"-1", 0, false},
		{"four", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseCount(tt.raw)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseCount(%q) = %d, %v", tt.raw, got, err)
		}
		if !tt.ok && !errors.Is(err, apperrors.ErrInvalidCountValue) {
			t.Errorf("ParseCount(%q) error = %v, want ErrInvalidCountValue", tt.raw, err)
		}
	}
}

func TestAddScheduleItemAndExtraClass(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})

	item, err := s.AddScheduleItem(ctx, "CS101", models.ScheduleItem{Day: "monday", TimeStart: "14:00", TimeEnd: "15:00"})
	if err != nil {
		t.Fatalf("AddScheduleItem: %v", err)
	}
	if item.ID == "" || item.Day != "Monday" {
		t.Errorf("item = %+v", item)
	}
	if _, err := s.AddScheduleItem(ctx, "CS101", models.ScheduleItem{Day: "Monday", TimeStart: "09:00", TimeEnd: "10:00"}); err != nil {
		t.Fatalf("AddScheduleItem: %v", err)
	}

	tests := []struct {
		name string
		item models.ScheduleItem
		want error
	}{
		{"overlap", models.ScheduleItem{Day: "Monday", TimeStart: "14:30", TimeEnd: "15:30"}, apperrors.ErrScheduleOverlap},
		{"bad day", models.ScheduleItem{Day: "Funday", TimeStart: "08:00", TimeEnd: "09:00"}, apperrors.ErrInvalidDay},
		{"reversed", models.ScheduleItem{Day: "Tuesday", TimeStart: "10:00", TimeEnd: "09:00"}, apperrors.ErrInvalidTimeRange},
		{"duplicate id", models.ScheduleItem{ID: item.ID, Day: "Friday", TimeStart: "08:00", TimeEnd: "09:00"}, apperrors.ErrDuplicateSlotID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.AddScheduleItem(ctx, "CS101", tt.item); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	extra, err := s.AddExtraClass(ctx, "CS101", "2026-10-12", "11:00", "12:00")
	if err != nil {
		t.Fatalf("AddExtraClass: %v", err)
	}
	if extra.ID == "" {
		t.Error("extra class has no id")
	}
	if _, err := s.AddExtraClass(ctx, "CS101", "2026-10-13", "11:00junk", "12:00"); !errors.Is(err, apperrors.ErrInvalidTimeRange) {
		t.Errorf("junk time: %v", err)
	}
	short, err := s.AddScheduleItem(ctx, "CS101", models.ScheduleItem{Day: "Thu", TimeStart: "9:30", TimeEnd: "10:00"})
	if err != nil {
		t.Fatalf("AddScheduleItem: %v", err)
	}
	if short.TimeStart != "09:30" || short.Day != "Thursday" {
		t.Errorf("stored slot = %+v", short)
	}
	if _, err := s.AddExtraClass(ctx, "CS101", "12-10-2026", "11:00", "12:00"); !errors.Is(err, apperrors.ErrInvalidDate) {
		t.Errorf("bad date: %v", err)
	}

	occ := s.Today(time.Date(2026, 10, 12, 0, 0, 0, 0, time.Local))
	if len(occ) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(occ))
	}
	for i, want := range []string{"09:00", "11:00", "14:00"} {
		if occ[i].TimeStart != want {
			t.Errorf("occurrence %d starts %s, want %s", i, occ[i].TimeStart, want)
		}
	}
}

func TestMarkAttendanceScenario(t *testing.T) {
	s, kv, clk := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})

	if !s.MarkAttendance(ctx, "CS101", models.StatusPresent, false, "A") {
		t.Fatal("first mark reported no change")
	}
	if s.MarkAttendance(ctx, "CS101", models.StatusPresent, false, "A") {
		t.Error("repeat mark reported a change")
	}
	clk.t = clk.t.AddDate(0, 0, 1)
	s.MarkAttendance(ctx, "cs101", models.StatusAbsent, false, "B")

	c, _ := s.Course("CS101")
	if c.Presents != 1 || c.Absents != 1 || c.AttendancePercentage != 50 || len(c.AttendanceRecords) != 2 {
		t.Errorf("course = %d/%d %d%% records=%d", c.Presents, c.Absents, c.AttendancePercentage, len(c.AttendanceRecords))
	}

	// A fresh service over the same store sees the same state.
	reloaded := NewService(kv)
	reloaded.Load(ctx)
	rc, ok := reloaded.Course("CS101")
	if !ok || rc.Presents != 1 || rc.Absents != 1 || len(rc.AttendanceRecords) != 2 {
		t.Errorf("reloaded course = %+v", rc)
	}

	if s.MarkAttendance(ctx, "NOPE", models.StatusPresent, false, "A") {
		t.Error("mark on unknown course reported a change")
	}
}

func TestChangeRecordStatusThroughService(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})
	s.MarkAttendance(ctx, "CS101", models.StatusPresent, false, "A")

	c, _ := s.Course("CS101")
	if !s.ChangeRecordStatus(ctx, "CS101", c.AttendanceRecords[0].ID, models.StatusCancelled) {
		t.Fatal("expected change")
	}
	c, _ = s.Course("CS101")
	if c.Presents != 0 || c.Cancelled != 1 || c.AttendancePercentage != 100 {
		t.Errorf("course = %d/%d/%d %d%%", c.Presents, c.Absents, c.Cancelled, c.AttendancePercentage)
	}
	if s.ChangeRecordStatus(ctx, "CS101", "missing", models.StatusAbsent) {
		t.Error("unknown record reported a change")
	}
}

func TestHandleNotificationAction(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})

	changed, err := s.HandleNotificationAction(ctx, NotificationAction{CourseID: "CS101", OccurrenceID: "x1", IsExtraClass: true, Action: "absent"})
	if err != nil || !changed {
		t.Fatalf("HandleNotificationAction = %v, %v", changed, err)
	}
	c, _ := s.Course("CS101")
	if c.Absents != 1 || !c.AttendanceRecords[0].IsExtraClass || c.AttendanceRecords[0].ScheduleItemID != "CS101-extra-x1" {
		t.Errorf("course = %+v", c)
	}

	if _, err := s.HandleNotificationAction(ctx, NotificationAction{CourseID: "CS101", Action: "snooze"}); !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("unknown action: %v", err)
	}
	if changed, err := s.HandleNotificationAction(ctx, NotificationAction{CourseID: "GONE", Action: "present"}); changed || err != nil {
		t.Errorf("unknown course: %v, %v", changed, err)
	}
}

func TestNotificationAndManualMarkShareOneRecord(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})

	s.MarkAttendance(ctx, "CS101", models.StatusPresent, false, "CS101-a1")

	tests := []struct {
		name string
		id   string
	}{
		{"bare slot id", "a1"},
		{"occurrence id", "CS101-a1"},
		{"occurrence id other casing", "cs101-a1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.HandleNotificationAction(ctx, NotificationAction{CourseID: "cs101", OccurrenceID: tt.id, Action: "absent"}); err != nil {
				t.Fatal(err)
			}
			c, _ := s.Course("CS101")
			if len(c.AttendanceRecords) != 1 || c.Presents != 0 || c.Absents != 1 {
				t.Errorf("records=%d counters=%d/%d", len(c.AttendanceRecords), c.Presents, c.Absents)
			}
			s.MarkAttendance(ctx, "CS101", models.StatusPresent, false, "CS101-a1")
		})
	}
}

type failingKV struct{ *db.MemoryStore }

func (failingKV) Set(context.Context, string, string) error { return errors.New("disk full") }

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	s := NewService(failingKV{db.NewMemoryStore()})
	s.Load(context.Background())

	if err := s.Add(context.Background(), models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75}); err != nil {
		t.Fatalf("persistence failure surfaced from Add: %v", err)
	}
	if _, ok := s.Course("CS101"); !ok {
		t.Error("in-memory change rolled back after failed save")
	}
}

func TestLoadCorruptSnapshotStartsEmpty(t *testing.T) {
	kv := db.NewMemoryStore()
	ctx := context.Background()
	_ = kv.Set(ctx, KeyCourses, "{not json")
	_ = kv.Set(ctx, KeyTheme, ThemeDark)

	s := NewService(kv)
	s.Load(ctx)
	if len(s.Courses(true)) != 0 {
		t.Error("expected empty collection")
	}
	if s.Theme() != ThemeDark {
		t.Errorf("theme = %q", s.Theme())
	}
}

func TestThemeAndClearData(t *testing.T) {
	s, kv, _ := newTestService(t)
	ctx := context.Background()
	mustAdd(t, s, models.Course{ID: "CS101", Name: "Intro", RequiredAttendance: 75})

	if got := s.ToggleTheme(ctx); got != ThemeDark {
		t.Errorf("ToggleTheme = %q", got)
	}
	if v, _ := kv.Get(ctx, KeyTheme); v != ThemeDark {
		t.Errorf("stored theme = %q", v)
	}

	s.ClearData(ctx)
	if len(s.Courses(true)) != 0 || s.Theme() != ThemeLight {
		t.Error("ClearData did not reset state")
	}
	for _, key := range []string{KeyCourses, KeyTheme} {
		if _, err := kv.Get(ctx, key); !errors.Is(err, db.ErrNotFound) {
			t.Errorf("key %s still present: %v", key, err)
		}
	}
}

func TestImport(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	legacy := `[{"id":"CS101","name":"Intro","requiredAttendance":75,"presents":2,"absents":1,"cancelled":0,
		"weeklySchedule":[{"id":"1","day":"Monday","timeStart":"09:00","timeEnd":"10:00"}],
		"attendanceRecords":[{"id":"1","data":"2026-10-05T09:00:00.000Z","Status":"present","isExtraClass":false,"scheduleItemId":"1"}]},
		{"id":"PHY","name":"Physics","presents":0,"absents":0,"cancelled":0}]`

	n, err := s.Import(ctx, []byte(legacy))
	if err != nil || n != 2 {
		t.Fatalf("Import = %d, %v", n, err)
	}
	c, _ := s.Course("CS101")
	if c.Presents != 2 || c.Absents != 1 || c.AttendancePercentage != 67 || c.ExtraClasses == nil {
		t.Errorf("imported counters should be kept as given: %+v", c)
	}
	p, _ := s.Course("PHY")
	if p.RequiredAttendance != 75 {
		t.Errorf("missing threshold imported as %d", p.RequiredAttendance)
	}

	if _, err := s.Import(ctx, []byte(`[{"id":"A","name":"a"},{"id":"a","name":"b"}]`)); !errors.Is(err, apperrors.ErrDuplicateCourseID) {
		t.Errorf("duplicate import: %v", err)
	}
	badSlots := `[{"id":"A","name":"a","weeklySchedule":[{"id":"1","day":"Monday","timeStart":"+9:00","timeEnd":"10:00"}]}]`
	if _, err := s.Import(ctx, []byte(badSlots)); !errors.Is(err, apperrors.ErrInvalidTimeRange) {
		t.Errorf("bad slot import: %v", err)
	}
	if len(s.Courses(true)) != 2 {
		t.Error("failed import changed the collection")
	}
}
