package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mworkman/scheduleme/pkg/core/model"
	"github.com/mworkman/scheduleme/pkg/core/services"
)

// RunSchedulerCmd creates the run-scheduler command
func RunSchedulerCmd(app AppRef) *cobra.Command {
	var startFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run-scheduler",
		Short: "Build a schedule for the configured horizon",
		Long:  "Run the assignment engine (and rebalancer, when enabled) over the horizon and persist the resulting schedule. Locked entries from the previous schedule are preserved.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()

			start := services.NextHorizonStart(time.Now())
			if startFlag != "" {
				parsed, err := time.Parse(model.DateLayout, startFlag)
				if err != nil {
					return fmt.Errorf("invalid --start date %q: %w", startFlag, err)
				}
				start = parsed
			}

			rules, err := a.Cfg.BuildRuleSet(start)
			if err != nil {
				return fmt.Errorf("failed to build rule set: %w", err)
			}

			a.Logger.Debug("run-scheduler command",
				zap.String("start", start.Format(model.DateLayout)),
				zap.Bool("dry_run", dryRun))

			result, err := services.RunScheduler(a.Ctx, a.Store, rules, start, a.Logger, dryRun)
			if err != nil {
				return fmt.Errorf("scheduling failed: %w", err)
			}

			fmt.Printf("\nSchedule Run\n\n")
			fmt.Printf("Horizon start:   %s (%d days)\n", result.HorizonStart, rules.ScheduleDays)
			fmt.Printf("Employees:       %d\n", result.EmployeeCount)
			fmt.Printf("Assignments:     %d\n", len(result.Rows))
			fmt.Printf("Rebalance moves: %d\n", result.Report.RebalanceMoves)
			if dryRun {
				fmt.Printf("Mode:            DRY RUN (not saved)\n")
			}
			fmt.Println()

			if len(result.Report.UnderCovered) > 0 {
				fmt.Printf("Under-covered slots (%d):\n", len(result.Report.UnderCovered))
				for _, slot := range result.Report.UnderCovered {
					fmt.Printf("  %s  %-10s %-10s %d/%d\n",
						slot.Date, slot.Location, slot.Shift, slot.Count, rules.MinStaffThreshold)
				}
				fmt.Println()
			} else {
				fmt.Println("All slots meet minimum coverage.")
			}

			if len(result.Report.OverAssigned) > 0 {
				fmt.Printf("Over-assigned employees (%d):\n", len(result.Report.OverAssigned))
				for _, entry := range result.Report.OverAssigned {
					fmt.Printf("  %-6s %d shifts (cap %d)\n", entry.EmployeeID, entry.Count, rules.MaxShiftsPerEmployee)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "Horizon start date (YYYY-MM-DD, default: upcoming Sunday)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute the schedule without saving it")
	return cmd
}
