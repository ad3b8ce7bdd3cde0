package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/LavenderBridge/attend/internal/algorithm"
	"github.com/LavenderBridge/attend/internal/db"
	"github.com/LavenderBridge/attend/internal/ledger"
	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/schedule"
	apperrors "github.com/LavenderBridge/attend/pkg/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	KeyCourses = "courses"
	KeyTheme   = "theme"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Count fields accepted by SetCount.
const (
	FieldPresents  = "presents"
	FieldAbsents   = "absents"
	FieldCancelled = "cancelled"
)

// Service owns the course collection. Every mutation swaps in a new
// snapshot and then writes it to the KV; a failed write is logged and the
// in-memory snapshot stays authoritative.
type Service struct {
	mu              sync.Mutex
	kv              db.KV
	ledger          *ledger.Ledger
	log             zerolog.Logger
	now             func() time.Time
	newID           func() string
	defaultRequired int

	courses []models.Course
	theme   string
}

type Option func(*Service)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock sets the time source for marking and for Today.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithDefaultRequired sets the threshold given to courses added without one.
func WithDefaultRequired(pct int) Option {
	return func(s *Service) { s.defaultRequired = pct }
}

func NewService(kv db.KV, opts ...Option) *Service {
	s := &Service{
		kv:              kv,
		log:             zerolog.Nop(),
		now:             time.Now,
		newID:           shortID,
		defaultRequired: algorithm.DefaultRequiredAttendance,
		theme:           ThemeLight,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ledger = ledger.New().WithClock(s.now)
	return s
}

// Load replaces the in-memory state with what the KV holds. A missing key
// means an empty collection; read or decode failures are logged and leave
// the collection empty.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.courses = nil
	s.theme = ThemeLight

	raw, err := s.kv.Get(ctx, KeyCourses)
	switch {
	case errors.Is(err, db.ErrNotFound):
	case err != nil:
		s.log.Error().Err(apperrors.NewPersistenceError("load", KeyCourses, err)).Msg("Failed to load courses")
	default:
		var courses []models.Course
		if err := json.Unmarshal([]byte(raw), &courses); err != nil {
			s.log.Error().Err(apperrors.NewPersistenceError("decode", KeyCourses, err)).Msg("Failed to decode courses")
		} else {
			for i := range courses {
				courses[i] = normalize(courses[i])
			}
			s.courses = courses
		}
	}

	theme, err := s.kv.Get(ctx, KeyTheme)
	switch {
	case errors.Is(err, db.ErrNotFound):
	case err != nil:
		s.log.Error().Err(apperrors.NewPersistenceError("load", KeyTheme, err)).Msg("Failed to load theme")
	default:
		s.theme = theme
	}

	s.log.Debug().Int("courses", len(s.courses)).Str("theme", s.theme).Msg("State loaded")
}

// Courses returns the collection, without archived courses unless asked.
func (s *Service) Courses(includeArchived bool) []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		if c.IsArchived && !includeArchived {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Archived returns only archived courses.
func (s *Service) Archived() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Course
	for _, c := range s.courses {
		if c.IsArchived {
			out = append(out, c)
		}
	}
	return out
}

// Course finds a course by id, case-insensitively.
func (s *Service) Course(id string) (models.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Course{}, false
	}
	return s.courses[idx], true
}

// Today lists the occurrences held on date.
func (s *Service) Today(date time.Time) []models.ClassOccurrence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return schedule.ResolveOccurrencesForDate(s.courses, date)
}

// Reminders plans upcoming class reminders from now.
func (s *Service) Reminders(lead time.Duration) []schedule.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return schedule.UpcomingReminders(s.courses, s.now(), lead)
}

// Add inserts a new course. Missing slices default to empty and the
// percentage is derived from the given counters, so a fresh course starts
// at zero counts and 100%.
func (s *Service) Add(ctx context.Context, c models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if err := validateCourse(c); err != nil {
		return err
	}
	if s.indexOf(c.ID) >= 0 {
		return apperrors.NewValidationError(apperrors.ErrDuplicateCourseID, "id", c.ID)
	}

	c = normalize(c)
	c.AttendancePercentage = algorithm.Percentage(c.Presents, c.Absents)

	next := make([]models.Course, 0, len(s.courses)+1)
	next = append(next, s.courses...)
	next = append(next, c)
	s.commit(ctx, next)

	s.log.Info().Str("course", c.ID).Msg("Course added")
	return nil
}

// Update replaces the course whose id matches c.ID case-insensitively.
// Unknown ids are ignored.
func (s *Service) Update(ctx context.Context, c models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if err := validateCourse(c); err != nil {
		return err
	}
	c, err := checkTimetable(c)
	if err != nil {
		return err
	}

	idx := s.indexOf(c.ID)
	if idx < 0 {
		s.log.Debug().Str("course", c.ID).Msg("Update skipped, course not found")
		return nil
	}
	for i, other := range s.courses {
		if i != idx && models.SameID(other.ID, c.ID) {
			return apperrors.NewValidationError(apperrors.ErrDuplicateCourseID, "id", c.ID)
		}
	}

	c = normalize(c)
	c.AttendancePercentage = algorithm.Percentage(c.Presents, c.Absents)
	s.commit(ctx, s.replaced(idx, c))
	return nil
}

// Delete removes a course. Unknown ids are ignored.
func (s *Service) Delete(ctx context.Context, courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(courseID)
	if idx < 0 {
		s.log.Debug().Str("course", courseID).Msg("Delete skipped, course not found")
		return
	}

	next := make([]models.Course, 0, len(s.courses)-1)
	next = append(next, s.courses[:idx]...)
	next = append(next, s.courses[idx+1:]...)
	s.commit(ctx, next)
}

func (s *Service) Archive(ctx context.Context, courseID string) {
	s.setArchived(ctx, courseID, true)
}

func (s *Service) Unarchive(ctx context.Context, courseID string) {
	s.setArchived(ctx, courseID, false)
}

func (s *Service) setArchived(ctx context.Context, courseID string, archived bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(courseID)
	if idx < 0 {
		s.log.Debug().Str("course", courseID).Bool("archived", archived).Msg("Archive flag skipped, course not found")
		return
	}
	c := s.courses[idx]
	c.IsArchived = archived
	s.commit(ctx, s.replaced(idx, c))
}

// SetCount overwrites one counter as a manual correction and recomputes the
// percentage. Later marks adjust the counters from there.
func (s *Service) SetCount(ctx context.Context, courseID, field string, value int) error {
	if value < 0 {
		return apperrors.NewValidationError(apperrors.ErrInvalidCountValue, field, value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(courseID)
	if idx < 0 {
		return nil
	}
	c := s.courses[idx]
	switch field {
	case FieldPresents:
		c.Presents = value
	case FieldAbsents:
		c.Absents = value
	case FieldCancelled:
		c.Cancelled = value
	default:
		return apperrors.NewValidationError(apperrors.ErrInvalidCountField, "field", field)
	}
	c.AttendancePercentage = algorithm.Percentage(c.Presents, c.Absents)
	s.commit(ctx, s.replaced(idx, c))
	return nil
}

// AddScheduleItem appends a weekly slot. The day is canonicalised, the time
// range and same-day overlap are checked, and an id is generated when
// empty.
func (s *Service) AddScheduleItem(ctx context.Context, courseID string, item models.ScheduleItem) (models.ScheduleItem, error) {
	_, day, ok := models.ParseWeekday(item.Day)
	if !ok {
		return item, apperrors.NewValidationError(apperrors.ErrInvalidDay, "day", item.Day)
	}
	item.Day = day
	start, end, err := schedule.NormalizeSlot(item.TimeStart, item.TimeEnd)
	if err != nil {
		return item, err
	}
	item.TimeStart, item.TimeEnd = start, end

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(courseID)
	if idx < 0 {
		return item, nil
	}
	c := s.courses[idx]

	if item.ID == "" {
		item.ID = s.uniqueSlotID(c)
	} else if slotIDTaken(c, item.ID) {
		return item, apperrors.NewValidationError(apperrors.ErrDuplicateSlotID, "id", item.ID)
	}
	if other, clash := schedule.Overlaps(c.WeeklySchedule, item); clash {
		return item, overlapError(item, other)
	}

	c.WeeklySchedule = append(append([]models.ScheduleItem(nil), c.WeeklySchedule...), item)
	s.commit(ctx, s.replaced(idx, c))
	return item, nil
}

// AddExtraClass appends a one-off class on date.
func (s *Service) AddExtraClass(ctx context.Context, courseID, date, timeStart, timeEnd string) (models.ExtraClass, error) {
	extra := models.ExtraClass{Date: strings.TrimSpace(date), TimeStart: timeStart, TimeEnd: timeEnd}
	if err := schedule.ValidateDate(extra.Date); err != nil {
		return extra, err
	}
	start, end, err := schedule.NormalizeSlot(timeStart, timeEnd)
	if err != nil {
		return extra, err
	}
	extra.TimeStart, extra.TimeEnd = start, end

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(courseID)
	if idx < 0 {
		return extra, nil
	}
	c := s.courses[idx]
	extra.ID = s.uniqueSlotID(c)
	c.ExtraClasses = append(append([]models.ExtraClass(nil), c.ExtraClasses...), extra)
	s.commit(ctx, s.replaced(idx, c))
	return extra, nil
}

// MarkAttendance records today's outcome for one occurrence. See
// ledger.MarkAttendance; unknown courses are a silent no-op.
func (s *Service) MarkAttendance(ctx context.Context, courseID string, status models.Status, isExtraClass bool, occurrenceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := s.ledger.MarkAttendance(s.courses, courseID, status, isExtraClass, occurrenceID)
	if !changed {
		s.log.Debug().Str("course", courseID).Str("occurrence", occurrenceID).Str("status", string(status)).Msg("Mark left attendance unchanged")
		return false
	}
	s.commit(ctx, next)
	return true
}

// ChangeRecordStatus corrects a historical record by its id.
func (s *Service) ChangeRecordStatus(ctx context.Context, courseID, recordID string, status models.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := s.ledger.ChangeRecordStatus(s.courses, courseID, recordID, status)
	if !changed {
		s.log.Debug().Str("course", courseID).Str("record", recordID).Msg("Record status unchanged")
		return false
	}
	s.commit(ctx, next)
	return true
}

// Recount rebuilds a course's counters from its attendance history,
// dropping counts entered with SetCount or carried in by Import. Unknown ids
// are ignored.
func (s *Service) Recount(ctx context.Context, courseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(courseID)
	if idx < 0 {
		return false
	}
	s.commit(ctx, s.replaced(idx, ledger.Recount(s.courses[idx])))
	return true
}

// ClearData removes both persisted keys and resets to defaults.
func (s *Service) ClearData(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyCourses, KeyTheme} {
		if err := s.kv.Delete(ctx, key); err != nil {
			s.log.Error().Err(apperrors.NewPersistenceError("delete", key, err)).Msg("Failed to clear data")
		}
	}
	s.courses = nil
	s.theme = ThemeLight
}

func (s *Service) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme stores an opaque theme preference.
func (s *Service) SetTheme(ctx context.Context, theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.save(ctx, KeyTheme, theme)
}

// ToggleTheme flips between light and dark and returns the new value.
func (s *Service) ToggleTheme(ctx context.Context) string {
	next := ThemeDark
	if s.Theme() == ThemeDark {
		next = ThemeLight
	}
	s.SetTheme(ctx, next)
	return next
}

// Snapshot returns the collection in its persisted JSON form.
func (s *Service) Snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.courses == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.courses)
}

// Import replaces the collection with a JSON snapshot, such as the
// "courses" value exported from the mobile app. Every course and slot is
// validated and course ids must be unique; on any error nothing changes.
// Imported counters are kept as given even when they disagree with the
// records, since they may include attendance from before tracking began.
// Recount rebuilds them from the records.
func (s *Service) Import(ctx context.Context, data []byte) (int, error) {
	var courses []models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(courses))
	for i, c := range courses {
		c.ID = strings.TrimSpace(c.ID)
		if c.RequiredAttendance == 0 {
			c.RequiredAttendance = s.defaultRequired
		}
		if err := validateCourse(c); err != nil {
			return 0, err
		}
		checked, err := checkTimetable(c)
		if err != nil {
			return 0, err
		}
		c = checked
		key := strings.ToLower(c.ID)
		if seen[key] {
			return 0, apperrors.NewValidationError(apperrors.ErrDuplicateCourseID, "id", c.ID)
		}
		seen[key] = true
		c = normalize(c)
		c.AttendancePercentage = algorithm.Percentage(c.Presents, c.Absents)
		courses[i] = c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, courses)
	return len(courses), nil
}

// DefaultRequired is the threshold used by Add callers that have none.
func (s *Service) DefaultRequired() int {
	return s.defaultRequired
}

// commit swaps the snapshot and persists it. Callers hold s.mu.
func (s *Service) commit(ctx context.Context, next []models.Course) {
	s.courses = next

	for i := range next {
		next[i] = normalize(next[i])
	}
	data, err := json.Marshal(next)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to encode courses")
		return
	}
	s.save(ctx, KeyCourses, string(data))
}

func (s *Service) save(ctx context.Context, key, value string) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.log.Error().Err(apperrors.NewPersistenceError("save", key, err)).Msg("Failed to save data")
	}
}

func (s *Service) indexOf(courseID string) int {
	courseID = strings.TrimSpace(courseID)
	for i, c := range s.courses {
		if models.SameID(c.ID, courseID) {
			return i
		}
	}
	return -1
}

func (s *Service) replaced(idx int, c models.Course) []models.Course {
	next := make([]models.Course, len(s.courses))
	copy(next, s.courses)
	next[idx] = c
	return next
}

func (s *Service) uniqueSlotID(c models.Course) string {
	for {
		id := s.newID()
		if !slotIDTaken(c, id) {
			return id
		}
	}
}

func slotIDTaken(c models.Course, id string) bool {
	for _, item := range c.WeeklySchedule {
		if item.ID == id {
			return true
		}
	}
	for _, extra := range c.ExtraClasses {
		if extra.ID == id {
			return true
		}
	}
	return false
}

// normalize replaces nil slices so snapshots always carry arrays.
func normalize(c models.Course) models.Course {
	if c.WeeklySchedule == nil {
		c.WeeklySchedule = []models.ScheduleItem{}
	}
	if c.ExtraClasses == nil {
		c.ExtraClasses = []models.ExtraClass{}
	}
	if c.AttendanceRecords == nil {
		c.AttendanceRecords = []models.AttendanceRecord{}
	}
	return c
}

// shortID is the first block of a random UUID; short enough to type on the
// command line.
func shortID() string {
	return strings.SplitN(uuid.New().String(), "-", 2)[0]
}
