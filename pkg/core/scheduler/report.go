package scheduler

import (
	"sort"
	"time"

	"github.com/mworkman/scheduleme/pkg/core/model"
)

// SlotCount is a per-slot headcount entry for coverage views
type SlotCount struct {
	Date     string
	Location string
	Shift    string
	Count    int
}

// EmployeeShiftCount pairs an employee with their assignment count
type EmployeeShiftCount struct {
	EmployeeID string
	Count      int
}

// CoverageReport is the diagnostics surface of a scheduling run: the
// statistics collaborators render it, and infeasibility shows up here
// rather than as an error.
type CoverageReport struct {
	// SlotCounts covers every schedulable slot in the horizon,
	// including empty ones, in date/location/shift order
	SlotCounts []SlotCount

	// UnderCovered lists slots whose headcount is below MinStaffThreshold
	UnderCovered []SlotCount

	// UnderAssigned lists employees below the per-employee shift target,
	// fewest shifts first; OverAssigned lists cap violations
	UnderAssigned []EmployeeShiftCount
	OverAssigned  []EmployeeShiftCount

	// RebalanceMoves is the number of donor moves the rebalancer made
	RebalanceMoves int
}

// buildReport computes coverage and per-employee statistics for the
// final schedule. Holiday dates and locked locations are not
// schedulable, so they are not counted as deficits.
func (e *Engine) buildReport(sched *Schedule, roster []*model.Employee, horizon []time.Time, moves int) *CoverageReport {
	report := &CoverageReport{
		SlotCounts:     []SlotCount{},
		UnderCovered:   []SlotCount{},
		UnderAssigned:  []EmployeeShiftCount{},
		OverAssigned:   []EmployeeShiftCount{},
		RebalanceMoves: moves,
	}

	for _, date := range horizon {
		dateKey := model.DateKey(date)
		if e.rules.IsHoliday(dateKey) {
			continue
		}
		for _, location := range e.rules.SchedulableLocations() {
			for _, shift := range e.rules.ShiftTypes {
				entry := SlotCount{
					Date:     dateKey,
					Location: location,
					Shift:    shift,
					Count:    sched.Headcount(Slot{dateKey, location, shift}),
				}
				report.SlotCounts = append(report.SlotCounts, entry)
				if entry.Count < e.rules.MinStaffThreshold {
					report.UnderCovered = append(report.UnderCovered, entry)
				}
			}
		}
	}

	for _, emp := range roster {
		count := sched.CountForEmployee(emp.ID, true)
		entry := EmployeeShiftCount{EmployeeID: emp.ID, Count: count}
		if count < e.rules.MaxShiftsPerEmployee {
			report.UnderAssigned = append(report.UnderAssigned, entry)
		} else if count > e.rules.MaxShiftsPerEmployee {
			report.OverAssigned = append(report.OverAssigned, entry)
		}
	}

	sort.SliceStable(report.UnderAssigned, func(i, j int) bool {
		return report.UnderAssigned[i].Count < report.UnderAssigned[j].Count
	})
	sort.SliceStable(report.OverAssigned, func(i, j int) bool {
		return report.OverAssigned[i].Count > report.OverAssigned[j].Count
	})

	return report
}
