package db

import "context"

// EmployeeStore defines the roster persistence operations
type EmployeeStore interface {
	GetEmployees(ctx context.Context) ([]EmployeeRow, error)
	ReplaceEmployees(ctx context.Context, rows []EmployeeRow) error
}

// ScheduleStore defines the schedule persistence operations. Replace
// semantics match the scheduler's lifecycle: each run writes a complete
// fresh horizon.
type ScheduleStore interface {
	GetSchedule(ctx context.Context) ([]ScheduleRow, error)
	ReplaceSchedule(ctx context.Context, rows []ScheduleRow) error
}

// Store combines the persistence surfaces the CLI wires up
type Store interface {
	EmployeeStore
	ScheduleStore
}
