package csvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/mworkman/scheduleme/pkg/db"
)

// Store persists the roster and schedule as session-keyed CSV files
// under a data directory: <session>_employees.csv and
// <session>_schedule.csv. Missing files read back as empty tables so a
// fresh session needs no setup step.
type Store struct {
	dataDir   string
	sessionID string
}

// NewStore creates a CSV store for the given session. An empty session
// ID starts a new session.
func NewStore(dataDir, sessionID string) *Store {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return &Store{dataDir: dataDir, sessionID: sessionID}
}

// SessionID returns the session key the store's files are named under
func (s *Store) SessionID() string {
	return s.sessionID
}

func (s *Store) employeePath() string {
	return filepath.Join(s.dataDir, s.sessionID+"_employees.csv")
}

func (s *Store) schedulePath() string {
	return filepath.Join(s.dataDir, s.sessionID+"_schedule.csv")
}

// jsonList is a list-valued CSV cell encoded as a JSON array. A cell
// that fails to parse decodes as an empty list, never as a wildcard:
// an employee with an unreadable preference field matches nothing.
type jsonList []string

func (l jsonList) MarshalCSV() (string, error) {
	data, err := json.Marshal([]string(l))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (l *jsonList) UnmarshalCSV(cell string) error {
	if cell == "" {
		*l = nil
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(cell), &values); err != nil {
		*l = nil
		return nil
	}
	*l = values
	return nil
}

type employeeRecord struct {
	EmployeeID         string   `csv:"EmployeeID"`
	Name               string   `csv:"Name"`
	Phone              string   `csv:"Phone"`
	DateHired          string   `csv:"DateHired"`
	WorkPattern        jsonList `csv:"WorkPattern"`
	PreferredLocations jsonList `csv:"PreferredLocations"`
	PreferredShifts    jsonList `csv:"PreferredShifts"`
	UnavailableDates   jsonList `csv:"UnavailableDates"`
	SkillLevel         string   `csv:"SkillLevel"`
}

type scheduleRecord struct {
	EmployeeID string `csv:"EmployeeID"`
	Date       string `csv:"Date"`
	Shift      string `csv:"Shift"`
	Location   string `csv:"Location"`
	Locked     bool   `csv:"Locked"`
}

// GetEmployees reads the session's roster file
func (s *Store) GetEmployees(ctx context.Context) ([]db.EmployeeRow, error) {
	var records []employeeRecord
	if err := s.readCSV(s.employeePath(), &records); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	rows := make([]db.EmployeeRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, db.EmployeeRow{
			EmployeeID:         r.EmployeeID,
			Name:               r.Name,
			Phone:              r.Phone,
			DateHired:          r.DateHired,
			WorkPattern:        r.WorkPattern,
			PreferredLocations: r.PreferredLocations,
			PreferredShifts:    r.PreferredShifts,
			UnavailableDates:   r.UnavailableDates,
			SkillLevel:         r.SkillLevel,
		})
	}
	return rows, nil
}

// ReplaceEmployees overwrites the session's roster file
func (s *Store) ReplaceEmployees(ctx context.Context, rows []db.EmployeeRow) error {
	records := make([]employeeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, employeeRecord{
			EmployeeID:         row.EmployeeID,
			Name:               row.Name,
			Phone:              row.Phone,
			DateHired:          row.DateHired,
			WorkPattern:        jsonList(row.WorkPattern),
			PreferredLocations: jsonList(row.PreferredLocations),
			PreferredShifts:    jsonList(row.PreferredShifts),
			UnavailableDates:   jsonList(row.UnavailableDates),
			SkillLevel:         row.SkillLevel,
		})
	}
	if err := s.writeCSV(s.employeePath(), &records); err != nil {
		return fmt.Errorf("failed to write employees: %w", err)
	}
	return nil
}

// GetSchedule reads the session's schedule file
func (s *Store) GetSchedule(ctx context.Context) ([]db.ScheduleRow, error) {
	var records []scheduleRecord
	if err := s.readCSV(s.schedulePath(), &records); err != nil {
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}

	rows := make([]db.ScheduleRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, db.ScheduleRow{
			EmployeeID: r.EmployeeID,
			Date:       r.Date,
			Shift:      r.Shift,
			Location:   r.Location,
			Locked:     r.Locked,
		})
	}
	return rows, nil
}

// ReplaceSchedule overwrites the session's schedule file
func (s *Store) ReplaceSchedule(ctx context.Context, rows []db.ScheduleRow) error {
	records := make([]scheduleRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, scheduleRecord{
			EmployeeID: row.EmployeeID,
			Date:       row.Date,
			Shift:      row.Shift,
			Location:   row.Location,
			Locked:     row.Locked,
		})
	}
	if err := s.writeCSV(s.schedulePath(), &records); err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}
	return nil
}

func (s *Store) readCSV(path string, out interface{}) error {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, out); err != nil && err != gocsv.ErrEmptyCSVFile {
		return err
	}
	return nil
}

func (s *Store) writeCSV(path string, records interface{}) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(records, file)
}
