package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mworkman/scheduleme/pkg/core/scheduler"
	"github.com/mworkman/scheduleme/pkg/db"
)

// RunSchedulerResult contains one scheduling run's persisted output and
// its diagnostics report.
type RunSchedulerResult struct {
	HorizonStart  string
	EmployeeCount int
	Rows          []db.ScheduleRow
	Report        *scheduler.CoverageReport
}

// RunScheduler executes a full scheduling run: load the roster and the
// locked remnant of the previous schedule, run the engine (and the
// rebalancer, when enabled), and persist the resulting horizon.
//
// An empty roster is not an error; the run completes and the report
// carries the full coverage deficit. If dryRun is set the result is
// computed but not persisted.
func RunScheduler(
	ctx context.Context,
	store db.Store,
	rules scheduler.RuleSet,
	start time.Time,
	logger *zap.Logger,
	dryRun bool,
) (*RunSchedulerResult, error) {
	logger.Debug("starting scheduling run",
		zap.String("horizon_start", start.Format("2006-01-02")),
		zap.Int("horizon_days", rules.ScheduleDays),
		zap.Bool("dry_run", dryRun))

	employeeRows, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	roster := employeesFromRows(employeeRows, logger)
	logger.Debug("loaded roster",
		zap.Int("rows", len(employeeRows)),
		zap.Int("usable", len(roster)))

	priorRows, err := store.GetSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing schedule: %w", err)
	}
	seed := assignmentsFromRows(priorRows)

	engine := scheduler.NewEngine(rules, logger)
	result := engine.Run(roster, seed, start)

	rows := rowsFromAssignments(result.Schedule.Assignments())
	if !dryRun {
		if err := store.ReplaceSchedule(ctx, rows); err != nil {
			return nil, fmt.Errorf("failed to persist schedule: %w", err)
		}
	}

	return &RunSchedulerResult{
		HorizonStart:  start.Format("2006-01-02"),
		EmployeeCount: len(roster),
		Rows:          rows,
		Report:        result.Report,
	}, nil
}

// NextHorizonStart returns the default horizon anchor: the upcoming
// Sunday, or today when today already is one.
func NextHorizonStart(now time.Time) time.Time {
	daysUntilSunday := (7 - int(now.Weekday())) % 7
	start := now.AddDate(0, 0, daysUntilSunday)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
}
