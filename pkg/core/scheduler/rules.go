package scheduler

import "github.com/mworkman/scheduleme/pkg/core/model"

// PreferenceMode controls how an employee preference is applied during
// constraint evaluation and scoring.
type PreferenceMode string

const (
	// PreferenceStrict excludes candidates whose preference set does not
	// contain the slot's value
	PreferenceStrict PreferenceMode = "strict"

	// PreferenceSoft never excludes, but penalises mismatches in scoring
	PreferenceSoft PreferenceMode = "soft"

	// PreferenceIgnore neither excludes nor affects scoring
	PreferenceIgnore PreferenceMode = "ignore"
)

// RuleSet is the complete scheduling policy for one run. It is plain
// data: callers build one (normally from config), hand it to the engine,
// and must not mutate it while a run is in flight.
type RuleSet struct {
	// Horizon and catalogs
	ScheduleDays    int
	ShiftTypes      []string
	ActiveLocations []string

	// Staffing thresholds
	MinStaffThreshold    int
	MaxStaffPerShift     int
	MaxShiftsPerEmployee int

	// Enforcement toggles
	EnforceWorkPattern         bool
	EnforceMaxOneShiftPerDay   bool
	EnforceNoMorningAfterNight bool
	EnforceConsecutiveDayLimit bool
	EnforceShiftCooldown       bool

	// Preference handling
	ShiftPreferenceMode    PreferenceMode
	LocationPreferenceMode PreferenceMode
	UseSeniorityWeighting  bool

	// Constraint thresholds
	MaxConsecutiveDays    int
	MinHoursBetweenShifts int

	// Calendar exclusions, keyed by date key and location name
	HolidayDates    map[string]bool
	LockedLocations map[string]bool

	// Rebalancing
	BalanceEnabled         bool
	BalancePreferSeniority bool
}

// DefaultRules returns the stock rule set used when no configuration
// overrides are supplied.
func DefaultRules() RuleSet {
	return RuleSet{
		ScheduleDays:               7,
		ShiftTypes:                 []string{model.ShiftMorning, model.ShiftAfternoon},
		ActiveLocations:            []string{"ZoneA", "ZoneB", "ZoneC"},
		MinStaffThreshold:          2,
		MaxStaffPerShift:           5,
		MaxShiftsPerEmployee:       5,
		EnforceWorkPattern:         true,
		EnforceMaxOneShiftPerDay:   true,
		EnforceNoMorningAfterNight: true,
		EnforceConsecutiveDayLimit: true,
		EnforceShiftCooldown:       true,
		ShiftPreferenceMode:        PreferenceSoft,
		LocationPreferenceMode:     PreferenceSoft,
		UseSeniorityWeighting:      true,
		MaxConsecutiveDays:         5,
		MinHoursBetweenShifts:      10,
		HolidayDates:               map[string]bool{},
		LockedLocations:            map[string]bool{},
		BalanceEnabled:             true,
		BalancePreferSeniority:     true,
	}
}

// shiftStartHour maps shift types to their start-of-shift hour of day.
// The cooldown rule measures the gap between these markers on
// consecutive days.
var shiftStartHour = map[string]int{
	model.ShiftMorning:   8,
	model.ShiftAfternoon: 16,
	model.ShiftNight:     22,
}

// ShiftStartHour returns the start hour for a shift type. Unknown shift
// types report ok=false and are exempt from cooldown checks.
func ShiftStartHour(shift string) (int, bool) {
	h, ok := shiftStartHour[shift]
	return h, ok
}

// SchedulableLocations returns the active locations with locked
// locations filtered out, preserving catalog order.
func (r *RuleSet) SchedulableLocations() []string {
	locations := make([]string, 0, len(r.ActiveLocations))
	for _, loc := range r.ActiveLocations {
		if r.LockedLocations[loc] {
			continue
		}
		locations = append(locations, loc)
	}
	return locations
}

// IsHoliday reports whether the date is blocked company-wide
func (r *RuleSet) IsHoliday(dateKey string) bool {
	return r.HolidayDates[dateKey]
}
