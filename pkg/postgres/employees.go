package postgres

import (
	"context"
	"fmt"

	"github.com/mworkman/scheduleme/pkg/db"
)

// GetEmployees retrieves the full roster, hire date ascending
func (d *DB) GetEmployees(ctx context.Context) ([]db.EmployeeRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT employee_id, name, phone, to_char(date_hired, 'YYYY-MM-DD'),
		       work_pattern, preferred_locations, preferred_shifts,
		       unavailable_dates, skill_level
		FROM employee
		ORDER BY date_hired, employee_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.EmployeeRow
	for rows.Next() {
		var e db.EmployeeRow
		if err := rows.Scan(&e.EmployeeID, &e.Name, &e.Phone, &e.DateHired,
			&e.WorkPattern, &e.PreferredLocations, &e.PreferredShifts,
			&e.UnavailableDates, &e.SkillLevel); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// ReplaceEmployees swaps the stored roster for the given rows in one
// transaction.
func (d *DB) ReplaceEmployees(ctx context.Context, employees []db.EmployeeRow) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM employee`); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}

	for _, e := range employees {
		_, err := tx.Exec(ctx, `
			INSERT INTO employee (employee_id, name, phone, date_hired,
				work_pattern, preferred_locations, preferred_shifts,
				unavailable_dates, skill_level)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, e.EmployeeID, e.Name, e.Phone, e.DateHired,
			e.WorkPattern, e.PreferredLocations, e.PreferredShifts,
			e.UnavailableDates, e.SkillLevel)
		if err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", e.EmployeeID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
