package db

// EmployeeRow is the persisted employee record. List-valued fields
// round-trip as JSON arrays inside text columns or CSV cells.
type EmployeeRow struct {
	EmployeeID         string
	Name               string
	Phone              string
	DateHired          string
	WorkPattern        []string
	PreferredLocations []string
	PreferredShifts    []string
	UnavailableDates   []string
	SkillLevel         string
}

// ScheduleRow is the persisted assignment record, one row per
// (employee, date). Locked rows survive scheduling runs untouched.
type ScheduleRow struct {
	EmployeeID string
	Date       string
	Shift      string
	Location   string
	Locked     bool
}
