package scheduler

import (
	"sort"

	"github.com/mworkman/scheduleme/pkg/core/model"
)

// Slot identifies a (date, location, shift) staffing unit
type Slot struct {
	Date     string
	Location string
	Shift    string
}

// Schedule is the mutable assignment state for one scheduling run. It
// maintains two indexes on every mutation: a primary index keyed by
// (employee, date) for conflict checks, and a secondary index keyed by
// slot for headcount queries.
type Schedule struct {
	byEmployeeDate map[employeeDateKey]*model.Assignment
	bySlot         map[Slot][]*model.Assignment
}

type employeeDateKey struct {
	employeeID string
	date       string
}

// NewSchedule creates an empty schedule
func NewSchedule() *Schedule {
	return &Schedule{
		byEmployeeDate: make(map[employeeDateKey]*model.Assignment),
		bySlot:         make(map[Slot][]*model.Assignment),
	}
}

// Insert adds an assignment to both indexes. Inserting a second
// assignment for the same (employee, date) replaces nothing and returns
// false: the caller decides whether that is a rule violation.
func (s *Schedule) Insert(a *model.Assignment) bool {
	key := employeeDateKey{a.EmployeeID, a.Date}
	if _, exists := s.byEmployeeDate[key]; exists {
		return false
	}
	s.byEmployeeDate[key] = a
	slot := Slot{a.Date, a.Location, a.Shift}
	s.bySlot[slot] = append(s.bySlot[slot], a)
	return true
}

// Move reassigns an existing assignment to a new slot on the same date,
// keeping both indexes consistent. Locked assignments are never moved.
func (s *Schedule) Move(a *model.Assignment, shift, location string) bool {
	if a.Locked {
		return false
	}
	oldSlot := Slot{a.Date, a.Location, a.Shift}
	entries := s.bySlot[oldSlot]
	for i, entry := range entries {
		if entry == a {
			s.bySlot[oldSlot] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	a.Shift = shift
	a.Location = location
	newSlot := Slot{a.Date, location, shift}
	s.bySlot[newSlot] = append(s.bySlot[newSlot], a)
	return true
}

// Lookup returns the assignment for (employee, date), if any
func (s *Schedule) Lookup(employeeID, date string) (*model.Assignment, bool) {
	a, ok := s.byEmployeeDate[employeeDateKey{employeeID, date}]
	return a, ok
}

// SlotAssignments returns the assignments in a slot, in insertion order
func (s *Schedule) SlotAssignments(slot Slot) []*model.Assignment {
	return s.bySlot[slot]
}

// Headcount returns the number of assignments in a slot
func (s *Schedule) Headcount(slot Slot) int {
	return len(s.bySlot[slot])
}

// CountForEmployee returns the number of assignments held by an
// employee. With includeLocked false it counts only unlocked entries,
// which is what the weekly cap constraint measures.
func (s *Schedule) CountForEmployee(employeeID string, includeLocked bool) int {
	count := 0
	for key, a := range s.byEmployeeDate {
		if key.employeeID != employeeID {
			continue
		}
		if !includeLocked && a.Locked {
			continue
		}
		count++
	}
	return count
}

// Len returns the total number of assignments
func (s *Schedule) Len() int {
	return len(s.byEmployeeDate)
}

// Assignments returns every assignment ordered by date, location, shift
// and employee, the stable order used for persistence and display.
func (s *Schedule) Assignments() []*model.Assignment {
	all := make([]*model.Assignment, 0, len(s.byEmployeeDate))
	for _, a := range s.byEmployeeDate {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date < all[j].Date
		}
		if all[i].Location != all[j].Location {
			return all[i].Location < all[j].Location
		}
		if all[i].Shift != all[j].Shift {
			return all[i].Shift < all[j].Shift
		}
		return all[i].EmployeeID < all[j].EmployeeID
	})
	return all
}
