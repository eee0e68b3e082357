package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mworkman/scheduleme/pkg/db"
)

// ViewCoverageCmd creates the view-coverage command
func ViewCoverageCmd(app AppRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view-coverage",
		Short: "View per-slot headcounts for the stored schedule",
		Long:  "Display per-(date, location, shift) headcounts and flag slots below the configured minimum staffing",
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

			type slot struct{ date, location, shift string }
			counts := make(map[slot]int)
			for _, row := range rows {
				counts[slot{row.Date, row.Location, row.Shift}]++
			}

			slots := make([]slot, 0, len(counts))
			for s := range counts {
				slots = append(slots, s)
			}
			sort.Slice(slots, func(i, j int) bool {
				if slots[i].date != slots[j].date {
					return slots[i].date < slots[j].date
				}
				if slots[i].location != slots[j].location {
					return slots[i].location < slots[j].location
				}
				return slots[i].shift < slots[j].shift
			})

			minStaff := a.Cfg.Rules.MinStaffThreshold
			deficits := 0
			fmt.Printf("\n%-12s %-10s %-10s %s\n", "Date", "Location", "Shift", "Count")
			for _, s := range slots {
				marker := ""
				if counts[s] < minStaff {
					marker = "  << below minimum"
					deficits++
				}
				fmt.Printf("%-12s %-10s %-10s %d%s\n", s.date, s.location, s.shift, counts[s], marker)
			}

			fmt.Println()
			if deficits == 0 {
				fmt.Println("All staffed slots meet minimum coverage.")
			} else {
				fmt.Printf("%d slots are below minimum coverage (%d).\n", deficits, minStaff)
			}

			printAssignmentSummary(rows, a.Cfg.Rules.MaxShiftsPerEmployee)
			return nil
		},
	}

	return cmd
}

// printAssignmentSummary lists employees above or below the per-
// employee shift target.
func printAssignmentSummary(rows []db.ScheduleRow, maxShifts int) {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.EmployeeID]++
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	over := 0
	for _, id := range ids {
		if counts[id] > maxShifts {
			if over == 0 {
				fmt.Printf("\nOver-assigned employees (cap %d):\n", maxShifts)
			}
			fmt.Printf("  %-8s %d shifts\n", id, counts[id])
			over++
		}
	}
	if over == 0 {
		fmt.Println("No employee exceeds the shift cap.")
	}
}
