package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ListEmployeesCmd creates the list-employees command
func ListEmployeesCmd(app AppRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-employees",
		Short: "List the stored employee roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()

			rows, err := a.Store.GetEmployees(a.Ctx)
			if err != nil {
				return fmt.Errorf("failed to load employees: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No employees found. Run generate-employees first.")
				return nil
			}

			fmt.Printf("\n%-6s %-24s %-12s %-20s %-12s %s\n",
				"ID", "Name", "Hired", "Locations", "Shifts", "Pattern")
			for _, row := range rows {
				fmt.Printf("%-6s %-24s %-12s %-20s %-12s %s\n",
					row.EmployeeID,
					row.Name,
					row.DateHired,
					strings.Join(row.PreferredLocations, ","),
					strings.Join(row.PreferredShifts, ","),
					strings.Join(row.WorkPattern, ","))
			}
			fmt.Printf("\n%d employees\n", len(rows))
			return nil
		},
	}

	return cmd
}
