package algorithm

import (
	"fmt"
	"math"

	"github.com/LavenderBridge/attend/internal/models"
)

const (
	// DefaultRequiredAttendance is used when a course is added without a
	// threshold.
	DefaultRequiredAttendance = 75

	// Unreachable is returned by Delta when the threshold can never be met
	// again (100% required with at least one absence).
	Unreachable = math.MaxInt32

	// Unlimited is returned by Delta when nothing is required, so every
	// remaining class can be skipped.
	Unlimited = math.MinInt32

	// warningMargin is how many points below the threshold still counts as
	// a warning rather than danger.
	warningMargin = 10
)

// Percentage returns round(presents/(presents+absents)*100), or 100 when no
// class has been counted yet.
func Percentage(presents, absents int) int {
	presents, absents = nonNegative(presents), nonNegative(absents)
	total := presents + absents
	if total == 0 {
		return 100
	}
	// round half up in integers
	return (200*presents + total) / (2 * total)
}

// Delta returns the compensatory class count for a threshold in percent.
// Positive: consecutive presents needed to reach the threshold.
// Negative: absences that can be taken while staying at or above it.
// Zero: exactly at the threshold, or nothing counted yet.
func Delta(presents, absents, required int) int {
	presents, absents = nonNegative(presents), nonNegative(absents)
	total := presents + absents
	if total == 0 {
		return 0
	}
	if required <= 0 {
		return Unlimited
	}
	if required > 100 {
		required = 100
	}

	// presents/total >= required/100
	if presents*100 >= required*total {
		// largest k with presents*100 >= required*(total+k)
		return -((presents*100 - required*total) / required)
	}
	if required == 100 {
		return Unreachable
	}
	// smallest n with (presents+n)*100 >= required*(total+n)
	num := required*total - presents*100
	den := 100 - required
	return (num + den - 1) / den
}

// Describe renders a delta the way the course views print it.
func Describe(delta int) string {
	switch {
	case delta == Unreachable:
		return "Cannot reach required attendance"
	case delta == Unlimited:
		return "No attendance requirement"
	case delta > 0:
		return fmt.Sprintf("Need to attend: %d %s", delta, plural(delta))
	case delta < 0:
		return fmt.Sprintf("Can bunk: %d %s", -delta, plural(-delta))
	default:
		return "At required attendance"
	}
}

// Summarize recomputes the derived numbers for a course.
func Summarize(c models.Course) models.CourseStats {
	pct := Percentage(c.Presents, c.Absents)
	return models.CourseStats{
		CourseID:   c.ID,
		Name:       c.Name,
		Percentage: pct,
		Required:   c.RequiredAttendance,
		Delta:      Delta(c.Presents, c.Absents, c.RequiredAttendance),
		Band:       Classify(pct, c.RequiredAttendance),
	}
}

// Classify bands a percentage: ok at or above required, warning within ten
// points below it, danger otherwise.
func Classify(percentage, required int) models.Band {
	switch {
	case percentage >= required:
		return models.BandOK
	case percentage >= required-warningMargin:
		return models.BandWarning
	default:
		return models.BandDanger
	}
}

func plural(n int) string {
	if n == 1 {
		return "class"
	}
	return "classes"
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
