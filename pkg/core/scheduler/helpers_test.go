package scheduler

import (
	"time"

	"github.com/mworkman/scheduleme/pkg/core/model"
)

var allWeekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// mustDate parses a date key, panicking on bad test input
func mustDate(key string) time.Time {
	t, err := time.Parse(model.DateLayout, key)
	if err != nil {
		panic(err)
	}
	return t
}

// newEmployee builds a fully-available employee preferring ZoneA mornings
func newEmployee(id, hired string) *model.Employee {
	return &model.Employee{
		ID:                 id,
		Name:               "Employee " + id,
		HireDate:           mustDate(hired),
		WorkPattern:        model.NewSet(allWeekdays),
		PreferredLocations: model.NewSet([]string{"ZoneA"}),
		PreferredShifts:    model.NewSet([]string{model.ShiftMorning}),
		UnavailableDates:   map[string]bool{},
	}
}

// testRules returns a permissive baseline rule set for constraint tests
func testRules() RuleSet {
	rules := DefaultRules()
	rules.ActiveLocations = []string{"ZoneA", "ZoneB"}
	rules.ShiftTypes = []string{model.ShiftMorning, model.ShiftAfternoon, model.ShiftNight}
	return rules
}
