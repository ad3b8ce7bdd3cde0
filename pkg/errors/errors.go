package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCourseID   = errors.New("course ID must contain only letters and numbers")
	ErrDuplicateCourseID = errors.New("a course with this ID already exists")
	ErrInvalidCountValue = errors.New("count must be a non-negative whole number")
	ErrInvalidCountField = errors.New("count field must be presents, absents or cancelled")
	ErrInvalidStatus     = errors.New("status must be present, absent or cancelled")
	ErrInvalidTimeRange  = errors.New("class must start before it ends (HH:MM)")
	ErrScheduleOverlap   = errors.New("class overlaps another class on the same day")
	ErrInvalidDay        = errors.New("day must be a weekday name like Monday")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
	ErrDuplicateSlotID   = errors.New("a class with this ID already exists in the course")
	ErrInvalidCourse     = errors.New("invalid course")
	ErrPersistence       = errors.New("persistence failure")
)

// ValidationError describes a rejected field. Kind is the sentinel it
// matches with errors.Is.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
	Kind    error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s",
		e.Field, e.Value, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Kind
}

func NewValidationError(kind error, field string, value interface{}) error {
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: kind.Error(),
		Kind:    kind,
	}
}

type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %s", e.Op, e.Key, e.Err.Error())
}

func (e PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

func NewPersistenceError(op, key string, err error) error {
	return PersistenceError{Op: op, Key: key, Err: err}
}
