package postgres

import (
	"context"
	"fmt"

	"github.com/mworkman/scheduleme/pkg/db"
)

// GetSchedule retrieves all stored assignments in slot order
func (d *DB) GetSchedule(ctx context.Context) ([]db.ScheduleRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT employee_id, to_char(date, 'YYYY-MM-DD'), shift, location, locked
		FROM schedule
		ORDER BY date, location, shift, employee_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	defer rows.Close()

	var schedule []db.ScheduleRow
	for rows.Next() {
		var r db.ScheduleRow
		if err := rows.Scan(&r.EmployeeID, &r.Date, &r.Shift, &r.Location, &r.Locked); err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		schedule = append(schedule, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule: %w", err)
	}

	return schedule, nil
}

// ReplaceSchedule swaps the stored schedule for the given rows in one
// transaction. Callers are expected to carry locked rows through
// unchanged; the store does not re-derive them.
func (d *DB) ReplaceSchedule(ctx context.Context, schedule []db.ScheduleRow) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM schedule`); err != nil {
		return fmt.Errorf("failed to clear schedule: %w", err)
	}

	for _, r := range schedule {
		_, err := tx.Exec(ctx, `
			INSERT INTO schedule (employee_id, date, shift, location, locked)
			VALUES ($1, $2, $3, $4, $5)
		`, r.EmployeeID, r.Date, r.Shift, r.Location, r.Locked)
		if err != nil {
			return fmt.Errorf("failed to insert schedule row for %s on %s: %w", r.EmployeeID, r.Date, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
