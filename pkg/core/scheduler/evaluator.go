package scheduler

import (
	"time"

	"github.com/mworkman/scheduleme/pkg/core/model"
)

// Rule identifies the constraint that rejected a candidate
type Rule string

const (
	RuleLockedAssignment    Rule = "locked_assignment"
	RuleWorkPattern         Rule = "work_pattern"
	RuleUnavailableDate     Rule = "unavailable_date"
	RuleMaxOneShiftPerDay   Rule = "max_one_shift_per_day"
	RuleWeeklyShiftCap      Rule = "max_shifts_per_employee"
	RuleLocationPreference  Rule = "location_preference"
	RuleShiftPreference     Rule = "shift_preference"
	RuleMorningAfterNight   Rule = "no_morning_after_night"
	RuleConsecutiveDayLimit Rule = "consecutive_day_limit"
	RuleShiftCooldown       Rule = "shift_cooldown"

	// RuleNone is reported for eligible candidates
	RuleNone Rule = ""
)

// Candidacy is one employee/date/shift/location combination under test
type Candidacy struct {
	Employee *model.Employee
	Date     time.Time
	Shift    string
	Location string
}

// Evaluate tests a candidacy for a fresh assignment against the rule
// set and the current schedule state. Checks run in a fixed order and
// the first failure short-circuits; the failing rule is returned so
// callers can report why a candidate was excluded.
//
// Holiday dates and locked locations are slot-level exclusions and are
// filtered by the engine before evaluation, not here.
func Evaluate(rules RuleSet, sched *Schedule, c Candidacy) (bool, Rule) {
	return evaluate(rules, sched, c, false)
}

// EvaluateMove tests a candidacy for relocating an existing assignment
// to a new slot on the same date. The single-shift-per-day and weekly
// cap checks are skipped: a move neither adds a day nor changes the
// employee's shift count.
func EvaluateMove(rules RuleSet, sched *Schedule, c Candidacy) (bool, Rule) {
	return evaluate(rules, sched, c, true)
}

func evaluate(rules RuleSet, sched *Schedule, c Candidacy, move bool) (bool, Rule) {
	emp := c.Employee
	dateKey := model.DateKey(c.Date)

	// 1. A locked entry at (employee, date) freezes that day entirely
	if existing, ok := sched.Lookup(emp.ID, dateKey); ok && existing.Locked {
		return false, RuleLockedAssignment
	}

	// 2. Work pattern
	if rules.EnforceWorkPattern && !emp.AvailableOn(c.Date.Weekday().String()) {
		return false, RuleWorkPattern
	}

	// 3. Specific unavailable dates override the work pattern
	if emp.UnavailableOn(dateKey) {
		return false, RuleUnavailableDate
	}

	if !move {
		// 4. One shift per day
		if rules.EnforceMaxOneShiftPerDay {
			if _, ok := sched.Lookup(emp.ID, dateKey); ok {
				return false, RuleMaxOneShiftPerDay
			}
		}

		// 5. Weekly cap counts unlocked assignments only
		if sched.CountForEmployee(emp.ID, false) >= rules.MaxShiftsPerEmployee {
			return false, RuleWeeklyShiftCap
		}
	}

	// 6. Location preference excludes only in strict mode
	if rules.LocationPreferenceMode == PreferenceStrict && !emp.PrefersLocation(c.Location) {
		return false, RuleLocationPreference
	}

	// 7. Shift preference, same policy
	if rules.ShiftPreferenceMode == PreferenceStrict && !emp.PrefersShift(c.Shift) {
		return false, RuleShiftPreference
	}

	prevDateKey := model.DateKey(c.Date.AddDate(0, 0, -1))
	nextDateKey := model.DateKey(c.Date.AddDate(0, 0, 1))

	// 8. No morning shift directly after a night shift. Checked in both
	// directions: the next day may already hold an assignment, either a
	// locked seed or an earlier commitment the rebalancer is working
	// around.
	if rules.EnforceNoMorningAfterNight {
		if c.Shift == model.ShiftMorning {
			if prev, ok := sched.Lookup(emp.ID, prevDateKey); ok && prev.Shift == model.ShiftNight {
				return false, RuleMorningAfterNight
			}
		}
		if c.Shift == model.ShiftNight {
			if next, ok := sched.Lookup(emp.ID, nextDateKey); ok && next.Shift == model.ShiftMorning {
				return false, RuleMorningAfterNight
			}
		}
	}

	// 9. Consecutive day limit: count the unbroken run of prior working days
	if rules.EnforceConsecutiveDayLimit {
		consecutive := 0
		for d := c.Date.AddDate(0, 0, -1); ; d = d.AddDate(0, 0, -1) {
			if _, ok := sched.Lookup(emp.ID, model.DateKey(d)); !ok {
				break
			}
			consecutive++
		}
		if consecutive >= rules.MaxConsecutiveDays {
			return false, RuleConsecutiveDayLimit
		}
	}

	// 10. Cooldown against the adjacent days' shifts, both sides: a
	// candidate shift must keep enough distance from yesterday's start
	// and must not shrink the gap to a shift already held tomorrow
	if rules.EnforceShiftCooldown {
		if prev, ok := sched.Lookup(emp.ID, prevDateKey); ok {
			if !cooldownSatisfied(rules, prev.Shift, c.Shift, c.Date) {
				return false, RuleShiftCooldown
			}
		}
		if next, ok := sched.Lookup(emp.ID, nextDateKey); ok {
			if !cooldownSatisfied(rules, c.Shift, next.Shift, c.Date.AddDate(0, 0, 1)) {
				return false, RuleShiftCooldown
			}
		}
	}

	return true, RuleNone
}

// cooldownSatisfied compares the wall-clock gap between the previous
// day's shift marker and the candidate shift's start. Shift types
// without a known start hour are exempt.
func cooldownSatisfied(rules RuleSet, prevShift, nextShift string, date time.Time) bool {
	prevHour, ok := ShiftStartHour(prevShift)
	if !ok {
		return true
	}
	nextHour, ok := ShiftStartHour(nextShift)
	if !ok {
		return true
	}

	prevDay := date.AddDate(0, 0, -1)
	prevStart := time.Date(prevDay.Year(), prevDay.Month(), prevDay.Day(), prevHour, 0, 0, 0, date.Location())
	nextStart := time.Date(date.Year(), date.Month(), date.Day(), nextHour, 0, 0, 0, date.Location())

	return nextStart.Sub(prevStart).Hours() >= float64(rules.MinHoursBetweenShifts)
}
