package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/mworkman/scheduleme/pkg/core/model"
	"github.com/mworkman/scheduleme/pkg/db"
)

// employeesFromRows maps stored roster rows into domain employees.
//
// Malformed field values are handled with a default-deny posture: an
// invalid weekday or date entry is dropped, leaving the employee
// matching fewer slots, never more. A row with an unparseable hire date
// is skipped outright because seniority ordering has no sane fallback
// for it.
func employeesFromRows(rows []db.EmployeeRow, logger *zap.Logger) []*model.Employee {
	employees := make([]*model.Employee, 0, len(rows))
	for _, row := range rows {
		hireDate, err := time.Parse(model.DateLayout, row.DateHired)
		if err != nil {
			logger.Warn("skipping employee with invalid hire date",
				zap.String("employee_id", row.EmployeeID),
				zap.String("date_hired", row.DateHired))
			continue
		}

		workPattern := make(map[string]bool, len(row.WorkPattern))
		for _, day := range row.WorkPattern {
			if !model.IsWeekdayName(day) {
				logger.Warn("dropping invalid weekday from work pattern",
					zap.String("employee_id", row.EmployeeID),
					zap.String("weekday", day))
				continue
			}
			workPattern[day] = true
		}

		unavailable := make(map[string]bool, len(row.UnavailableDates))
		for _, date := range row.UnavailableDates {
			parsed, err := time.Parse(model.DateLayout, date)
			if err != nil {
				logger.Warn("dropping invalid unavailable date",
					zap.String("employee_id", row.EmployeeID),
					zap.String("date", date))
				continue
			}
			unavailable[model.DateKey(parsed)] = true
		}

		employees = append(employees, &model.Employee{
			ID:                 row.EmployeeID,
			Name:               row.Name,
			Phone:              row.Phone,
			SkillLevel:         row.SkillLevel,
			HireDate:           hireDate,
			WorkPattern:        workPattern,
			PreferredLocations: model.NewSet(row.PreferredLocations),
			PreferredShifts:    model.NewSet(row.PreferredShifts),
			UnavailableDates:   unavailable,
		})
	}
	return employees
}

// assignmentsFromRows maps stored schedule rows into assignments
func assignmentsFromRows(rows []db.ScheduleRow) []*model.Assignment {
	assignments := make([]*model.Assignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, &model.Assignment{
			EmployeeID: row.EmployeeID,
			Date:       row.Date,
			Shift:      row.Shift,
			Location:   row.Location,
			Locked:     row.Locked,
		})
	}
	return assignments
}

// rowsFromAssignments maps assignments into storable schedule rows
func rowsFromAssignments(assignments []*model.Assignment) []db.ScheduleRow {
	rows := make([]db.ScheduleRow, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, db.ScheduleRow{
			EmployeeID: a.EmployeeID,
			Date:       a.Date,
			Shift:      a.Shift,
			Location:   a.Location,
			Locked:     a.Locked,
		})
	}
	return rows
}
