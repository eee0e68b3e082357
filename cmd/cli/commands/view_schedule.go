package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// ViewScheduleCmd creates the view-schedule command
func ViewScheduleCmd(app AppRef) *cobra.Command {
	var employeeID string

	cmd := &cobra.Command{
		Use:   "view-schedule",
		Short: "View the stored schedule",
		Long:  "Display the stored schedule, either the full horizon or a single employee's shifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()

			rows, err := a.Store.GetSchedule(a.Ctx)
			if err != nil {
				return fmt.Errorf("failed to load schedule: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No schedule found. Run run-scheduler first.")
				return nil
			}

			sort.SliceStable(rows, func(i, j int) bool {
				if rows[i].Date != rows[j].Date {
					return rows[i].Date < rows[j].Date
				}
				if rows[i].Location != rows[j].Location {
					return rows[i].Location < rows[j].Location
				}
				return rows[i].Shift < rows[j].Shift
			})

			fmt.Printf("\n%-12s %-10s %-10s %-8s %s\n", "Date", "Location", "Shift", "Emp", "Locked")
			shown := 0
			for _, row := range rows {
				if employeeID != "" && row.EmployeeID != employeeID {
					continue
				}
				locked := ""
				if row.Locked {
					locked = "yes"
				}
				fmt.Printf("%-12s %-10s %-10s %-8s %s\n", row.Date, row.Location, row.Shift, row.EmployeeID, locked)
				shown++
			}
			if shown == 0 {
				fmt.Printf("No shifts assigned to employee %s.\n", employeeID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "Show only this employee's shifts")
	return cmd
}
