package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mworkman/scheduleme/pkg/core/model"
	"github.com/mworkman/scheduleme/pkg/core/scheduler"
	"github.com/mworkman/scheduleme/pkg/db"
)

type fakeStore struct {
	employees    []db.EmployeeRow
	schedule     []db.ScheduleRow
	employeesErr error
	scheduleErr  error

	replacedEmployees [][]db.EmployeeRow
	replacedSchedules [][]db.ScheduleRow
}

func (f *fakeStore) GetEmployees(ctx context.Context) ([]db.EmployeeRow, error) {
	return f.employees, f.employeesErr
}

func (f *fakeStore) ReplaceEmployees(ctx context.Context, rows []db.EmployeeRow) error {
	f.replacedEmployees = append(f.replacedEmployees, rows)
	f.employees = rows
	return nil
}

func (f *fakeStore) GetSchedule(ctx context.Context) ([]db.ScheduleRow, error) {
	return f.schedule, f.scheduleErr
}

func (f *fakeStore) ReplaceSchedule(ctx context.Context, rows []db.ScheduleRow) error {
	f.replacedSchedules = append(f.replacedSchedules, rows)
	f.schedule = rows
	return nil
}

var allWeekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func employeeRow(id, hired string) db.EmployeeRow {
	return db.EmployeeRow{
		EmployeeID:         id,
		Name:               "Employee " + id,
		Phone:              "07000000000",
		DateHired:          hired,
		WorkPattern:        allWeekdays,
		PreferredLocations: []string{"ZoneA"},
		PreferredShifts:    []string{model.ShiftMorning},
		UnavailableDates:   []string{},
		SkillLevel:         "Mid",
	}
}

func runRules() scheduler.RuleSet {
	rules := scheduler.DefaultRules()
	rules.ScheduleDays = 1
	rules.ActiveLocations = []string{"ZoneA"}
	rules.ShiftTypes = []string{model.ShiftMorning}
	rules.MinStaffThreshold = 1
	rules.MaxStaffPerShift = 2
	return rules
}

func mustDate(key string) time.Time {
	t, err := time.Parse(model.DateLayout, key)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRunScheduler_PersistsHorizon(t *testing.T) {
	store := &fakeStore{employees: []db.EmployeeRow{
		employeeRow("E001", "2020-05-01"),
		employeeRow("E002", "2022-08-01"),
	}}

	result, err := RunScheduler(context.Background(), store, runRules(), mustDate("2025-06-01"), zap.NewNop(), false)

	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", result.HorizonStart)
	assert.Equal(t, 2, result.EmployeeCount)
	require.Len(t, result.Rows, 2)

	require.Len(t, store.replacedSchedules, 1)
	assert.Equal(t, result.Rows, store.replacedSchedules[0])
}

func TestRunScheduler_LockedRowsSeedNextRun(t *testing.T) {
	store := &fakeStore{
		employees: []db.EmployeeRow{employeeRow("E001", "2020-05-01")},
		schedule: []db.ScheduleRow{
			{EmployeeID: "E002", Date: "2025-06-01", Shift: model.ShiftMorning, Location: "ZoneA", Locked: true},
			{EmployeeID: "E003", Date: "2025-06-01", Shift: model.ShiftMorning, Location: "ZoneA"},
		},
	}

	result, err := RunScheduler(context.Background(), store, runRules(), mustDate("2025-06-01"), zap.NewNop(), false)

	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	byID := map[string]db.ScheduleRow{}
	for _, row := range result.Rows {
		byID[row.EmployeeID] = row
	}
	// The locked row carried over, the unlocked one did not, and the
	// rostered employee filled the remaining seat
	assert.True(t, byID["E002"].Locked)
	assert.False(t, byID["E001"].Locked)
	assert.NotContains(t, byID, "E003")
}

func TestRunScheduler_DryRunSkipsPersistence(t *testing.T) {
	store := &fakeStore{employees: []db.EmployeeRow{employeeRow("E001", "2020-05-01")}}

	result, err := RunScheduler(context.Background(), store, runRules(), mustDate("2025-06-01"), zap.NewNop(), true)

	require.NoError(t, err)
	assert.Len(t, result.Rows, 1)
	assert.Empty(t, store.replacedSchedules)
}

func TestRunScheduler_EmptyRosterIsNotAnError(t *testing.T) {
	store := &fakeStore{}

	result, err := RunScheduler(context.Background(), store, runRules(), mustDate("2025-06-01"), zap.NewNop(), false)

	require.NoError(t, err)
	assert.Equal(t, 0, result.EmployeeCount)
	assert.Empty(t, result.Rows)
	assert.Len(t, result.Report.UnderCovered, 1)
}

func TestRunScheduler_StoreErrorsPropagate(t *testing.T) {
	store := &fakeStore{employeesErr: errors.New("connection refused")}

	_, err := RunScheduler(context.Background(), store, runRules(), mustDate("2025-06-01"), zap.NewNop(), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load employees")
}

func TestNextHorizonStart(t *testing.T) {
	// 2025-06-01 is a Sunday
	sundayNoon := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), NextHorizonStart(sundayNoon))

	monday := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), NextHorizonStart(monday))

	saturday := time.Date(2025, 6, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), NextHorizonStart(saturday))
}
