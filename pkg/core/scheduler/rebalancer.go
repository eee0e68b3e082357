package scheduler

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mworkman/scheduleme/pkg/core/model"
)

// rebalance closes staffing deficits after the main pass by moving
// assignments from over-staffed slots ("donors") into under-staffed
// slots ("acceptors") on the same date.
//
// A donor is any same-date slot whose headcount is strictly above
// MinStaffThreshold, so a donation can never push the donor into a
// deficit of its own. Donors are tried surplus-descending. Every move
// re-runs the full constraint set against the acceptor slot (minus the
// already-scheduled and weekly-cap checks, since a move changes neither)
// and mutates the assignment's shift and location in place.
//
// Passes repeat until one completes without a move, which bounds the
// loop: acceptors stop at the threshold and donors only shrink, so the
// supply of legal moves is finite. Residual deficits are left for the
// coverage report. Re-running on a converged schedule moves nothing.
func (e *Engine) rebalance(sched *Schedule, roster []*model.Employee, horizon []time.Time) int {
	rosterByID := make(map[string]*model.Employee, len(roster))
	for _, emp := range roster {
		rosterByID[emp.ID] = emp
	}

	totalMoves := 0
	for {
		moves := e.rebalancePass(sched, rosterByID, horizon)
		totalMoves += moves
		if moves == 0 {
			break
		}
	}
	return totalMoves
}

// rebalancePass walks the horizon's slots once in engine order and
// attempts to fill each acceptor up to the threshold.
func (e *Engine) rebalancePass(sched *Schedule, rosterByID map[string]*model.Employee, horizon []time.Time) int {
	moves := 0
	locations := e.rules.SchedulableLocations()

	for _, date := range horizon {
		dateKey := model.DateKey(date)
		if e.rules.IsHoliday(dateKey) {
			continue
		}

		for _, location := range locations {
			for _, shift := range e.rules.ShiftTypes {
				acceptor := Slot{dateKey, location, shift}
				for sched.Headcount(acceptor) < e.rules.MinStaffThreshold {
					if !e.moveOneDonor(sched, rosterByID, date, acceptor) {
						break
					}
					moves++
				}
			}
		}
	}
	return moves
}

// moveOneDonor finds one assignment that can legally relocate into the
// acceptor slot and moves it. Returns false when no donor can serve.
func (e *Engine) moveOneDonor(sched *Schedule, rosterByID map[string]*model.Employee, date time.Time, acceptor Slot) bool {
	for _, donor := range e.donorSlots(sched, acceptor) {
		for _, candidate := range e.donorCandidates(sched, rosterByID, donor) {
			emp := rosterByID[candidate.EmployeeID]
			c := Candidacy{Employee: emp, Date: date, Shift: acceptor.Shift, Location: acceptor.Location}
			if ok, _ := EvaluateMove(e.rules, sched, c); !ok {
				continue
			}
			sched.Move(candidate, acceptor.Shift, acceptor.Location)
			e.logger.Debug("rebalanced assignment",
				zap.String("employee_id", candidate.EmployeeID),
				zap.String("date", acceptor.Date),
				zap.String("from", donor.Location+"/"+donor.Shift),
				zap.String("to", acceptor.Location+"/"+acceptor.Shift))
			return true
		}
	}
	return false
}

// donorSlots lists the same-date slots able to give up an assignment,
// largest surplus first.
func (e *Engine) donorSlots(sched *Schedule, acceptor Slot) []Slot {
	var donors []Slot
	for _, location := range e.rules.SchedulableLocations() {
		for _, shift := range e.rules.ShiftTypes {
			slot := Slot{acceptor.Date, location, shift}
			if slot == acceptor {
				continue
			}
			if sched.Headcount(slot) > e.rules.MinStaffThreshold {
				donors = append(donors, slot)
			}
		}
	}
	sort.SliceStable(donors, func(i, j int) bool {
		return sched.Headcount(donors[i]) > sched.Headcount(donors[j])
	})
	return donors
}

// donorCandidates returns the donor slot's movable assignments. With
// seniority preference on, the least senior employee is offered first;
// otherwise the slot's original order stands. Locked entries and
// employees missing from the roster never move.
func (e *Engine) donorCandidates(sched *Schedule, rosterByID map[string]*model.Employee, donor Slot) []*model.Assignment {
	var movable []*model.Assignment
	for _, a := range sched.SlotAssignments(donor) {
		if a.Locked {
			continue
		}
		if _, known := rosterByID[a.EmployeeID]; !known {
			continue
		}
		movable = append(movable, a)
	}

	if e.rules.BalancePreferSeniority {
		sort.SliceStable(movable, func(i, j int) bool {
			hireI := rosterByID[movable[i].EmployeeID].HireDate
			hireJ := rosterByID[movable[j].EmployeeID].HireDate
			return hireI.After(hireJ)
		})
	}
	return movable
}
