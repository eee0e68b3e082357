package scheduler

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mworkman/scheduleme/pkg/core/model"
)

// Engine runs one scheduling pass over the horizon: for every
// (date, location, shift) slot it gathers eligible candidates, ranks
// them and commits assignments up to the slot's capacity.
//
// Slots are visited date ascending, then location, then shift, in
// catalog order. That nesting is policy, not accident: committing an
// assignment immediately narrows eligibility for later slots, so the
// iteration order decides who wins contested employees.
type Engine struct {
	rules  RuleSet
	logger *zap.Logger
}

// NewEngine creates an engine for one rule set. The rule set must not
// change while Run is in flight; runs against the same horizon must be
// serialized by the caller.
func NewEngine(rules RuleSet, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{rules: rules, logger: logger}
}

// Result is the outcome of one scheduling run
type Result struct {
	Schedule *Schedule
	Report   *CoverageReport
}

// Run builds a fresh schedule for the horizon starting at start.
//
// Only locked entries from the seed survive into the new schedule;
// unlocked assignments from previous runs are discarded. Every slot is
// filled up to MaxStaffPerShift; MinStaffThreshold is a reporting
// threshold and the rebalancer's target, not a fill bound.
//
// A missing roster or an empty horizon is not an error: the run
// completes with an empty schedule and the report carries the full
// deficit.
func (e *Engine) Run(roster []*model.Employee, seed []*model.Assignment, start time.Time) *Result {
	sched := NewSchedule()

	// Seed locked assignments. Values are copied so the caller's seed
	// slice stays untouched whatever the rebalancer does later.
	for _, a := range seed {
		if !a.Locked {
			continue
		}
		entry := *a
		if !sched.Insert(&entry) {
			e.logger.Warn("dropping conflicting locked seed entry",
				zap.String("employee_id", a.EmployeeID),
				zap.String("date", a.Date))
		}
	}

	// Seniority semantics require a hire-date ascending roster even
	// when weighting is off, so candidates enter ranking in that order.
	ordered := make([]*model.Employee, len(roster))
	copy(ordered, roster)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].HireDate.Before(ordered[j].HireDate)
	})

	horizon := e.horizonDates(start)
	locations := e.rules.SchedulableLocations()

	for _, date := range horizon {
		dateKey := model.DateKey(date)
		if e.rules.IsHoliday(dateKey) {
			continue
		}
		for _, location := range locations {
			for _, shift := range e.rules.ShiftTypes {
				e.fillSlot(sched, ordered, date, Slot{dateKey, location, shift})
			}
		}
	}

	moves := 0
	if e.rules.BalanceEnabled {
		moves = e.rebalance(sched, ordered, horizon)
	}

	report := e.buildReport(sched, ordered, horizon, moves)

	e.logger.Info("scheduling run complete",
		zap.Int("assignments", sched.Len()),
		zap.Int("under_covered_slots", len(report.UnderCovered)),
		zap.Int("rebalance_moves", moves))

	return &Result{Schedule: sched, Report: report}
}

// fillSlot commits ranked eligible candidates into a slot until it
// reaches capacity or candidates run out. Committed assignments are
// final for the engine; only the rebalancer may relocate them.
func (e *Engine) fillSlot(sched *Schedule, roster []*model.Employee, date time.Time, slot Slot) {
	capacity := e.rules.MaxStaffPerShift - sched.Headcount(slot)
	if capacity <= 0 {
		return
	}

	var eligible []*model.Employee
	for _, emp := range roster {
		c := Candidacy{Employee: emp, Date: date, Shift: slot.Shift, Location: slot.Location}
		if ok, _ := Evaluate(e.rules, sched, c); ok {
			eligible = append(eligible, emp)
		}
	}
	if len(eligible) == 0 {
		return
	}

	ranked := RankCandidates(e.rules, eligible, slot.Shift, slot.Location)
	if len(ranked) > capacity {
		ranked = ranked[:capacity]
	}

	for _, emp := range ranked {
		sched.Insert(&model.Assignment{
			EmployeeID: emp.ID,
			Date:       slot.Date,
			Shift:      slot.Shift,
			Location:   slot.Location,
		})
	}
}

// horizonDates expands the configured horizon length into midnight-
// anchored dates starting at start's calendar day.
func (e *Engine) horizonDates(start time.Time) []time.Time {
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dates := make([]time.Time, 0, e.rules.ScheduleDays)
	for i := 0; i < e.rules.ScheduleDays; i++ {
		dates = append(dates, first.AddDate(0, 0, i))
	}
	return dates
}
