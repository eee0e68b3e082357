package employeegen

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/mworkman/scheduleme/pkg/core/model"
	"github.com/mworkman/scheduleme/pkg/db"
)

// Options controls synthetic roster generation
type Options struct {
	// Count is the number of employees to generate
	Count int

	// Locations each employee picks one preferred location from
	Locations []string

	// WorkPatterns are the selectable weekday sets; each employee is
	// assigned one whole pattern
	WorkPatterns [][]string

	// ShiftTypes each employee picks one preferred shift from
	ShiftTypes []string

	// Seed makes generation reproducible when non-zero
	Seed uint64
}

// DefaultWorkPatterns mirrors the stock Tue-Sat / Sun-Thu rotations
var DefaultWorkPatterns = [][]string{
	{"Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"},
}

// Generate produces a synthetic employee roster: sequential IDs
// (E001, E002, ...), fake names and phone numbers, hire dates within
// the last three years, and one preferred location, work pattern and
// shift each.
func Generate(opts Options) ([]db.EmployeeRow, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("employee count must be at least 1, got %d", opts.Count)
	}
	if len(opts.Locations) == 0 {
		return nil, fmt.Errorf("at least one location is required")
	}
	if len(opts.ShiftTypes) == 0 {
		return nil, fmt.Errorf("at least one shift type is required")
	}
	patterns := opts.WorkPatterns
	if len(patterns) == 0 {
		patterns = DefaultWorkPatterns
	}
	for _, pattern := range patterns {
		for _, day := range pattern {
			if !model.IsWeekdayName(day) {
				return nil, fmt.Errorf("invalid weekday name %q in work pattern", day)
			}
		}
	}

	faker := gofakeit.New(opts.Seed)

	// Midnight-anchored so same-seed runs on the same day agree
	now := time.Now()
	latestHire := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	earliestHire := latestHire.AddDate(-3, 0, 0)

	employees := make([]db.EmployeeRow, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		pattern := patterns[faker.IntRange(0, len(patterns)-1)]
		workPattern := make([]string, len(pattern))
		copy(workPattern, pattern)

		employees = append(employees, db.EmployeeRow{
			EmployeeID:         fmt.Sprintf("E%03d", i+1),
			Name:               faker.Name(),
			Phone:              faker.Phone(),
			DateHired:          faker.DateRange(earliestHire, latestHire).Format(model.DateLayout),
			WorkPattern:        workPattern,
			PreferredLocations: []string{opts.Locations[faker.IntRange(0, len(opts.Locations)-1)]},
			PreferredShifts:    []string{opts.ShiftTypes[faker.IntRange(0, len(opts.ShiftTypes)-1)]},
			UnavailableDates:   []string{},
			SkillLevel:         faker.RandomString([]string{"Junior", "Mid", "Senior"}),
		})
	}

	return employees, nil
}
