package model

import "time"

// DateLayout is the wire format for all schedule dates
const DateLayout = "2006-01-02"

// Shift type names recognised by the scheduler
const (
	ShiftMorning   = "Morning"
	ShiftAfternoon = "Afternoon"
	ShiftNight     = "Night"
)

// weekdayNames is the set of valid work pattern entries
var weekdayNames = map[string]bool{
	"Sunday":    true,
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
}

// IsWeekdayName reports whether name is one of the seven weekday names
func IsWeekdayName(name string) bool {
	return weekdayNames[name]
}

// DateKey formats a time as a schedule date key
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Employee represents a schedulable employee.
// WorkPattern holds weekday names; UnavailableDates holds date keys.
// Phone and SkillLevel are carried for downstream views and are opaque
// to the scheduling core.
type Employee struct {
	ID                 string
	Name               string
	Phone              string
	SkillLevel         string
	HireDate           time.Time
	WorkPattern        map[string]bool
	PreferredLocations map[string]bool
	PreferredShifts    map[string]bool
	UnavailableDates   map[string]bool
}

// AvailableOn reports whether the employee's work pattern includes the weekday
func (e *Employee) AvailableOn(weekday string) bool {
	return e.WorkPattern[weekday]
}

// UnavailableOn reports whether the employee has blocked out the given date
func (e *Employee) UnavailableOn(dateKey string) bool {
	return e.UnavailableDates[dateKey]
}

// PrefersLocation reports whether the location is in the employee's preferred set
func (e *Employee) PrefersLocation(location string) bool {
	return e.PreferredLocations[location]
}

// PrefersShift reports whether the shift type is in the employee's preferred set
func (e *Employee) PrefersShift(shift string) bool {
	return e.PreferredShifts[shift]
}

// Assignment is a single scheduled (employee, date) entry.
// A locked assignment is frozen: neither the engine nor the rebalancer
// may touch it, only explicit user action.
type Assignment struct {
	EmployeeID string
	Date       string
	Shift      string
	Location   string
	Locked     bool
}

// NewSet builds a membership set from a list of strings
func NewSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
