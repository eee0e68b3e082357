package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mworkman/scheduleme/pkg/core/services"
	"github.com/mworkman/scheduleme/pkg/employeegen"
)

// GenerateEmployeesCmd creates the generate-employees command
func GenerateEmployeesCmd(app AppRef) *cobra.Command {
	var count int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generate-employees",
		Short: "Generate a synthetic employee roster",
		Long:  "Generate randomized employee records with work patterns, preferences and hire dates, replacing the stored roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			a.Logger.Debug("generate-employees command", zap.Int("count", count))

			rows, err := services.GenerateEmployees(a.Ctx, a.Store, employeegen.Options{
				Count:      count,
				Locations:  a.Cfg.Rules.ActiveLocations,
				ShiftTypes: a.Cfg.Rules.ShiftTypes,
				Seed:       seed,
			}, a.Logger)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Printf("\nGenerated %d employees\n\n", len(rows))
			for _, row := range rows {
				fmt.Printf("  %-6s %-24s hired %s  prefers %s / %s\n",
					row.EmployeeID,
					row.Name,
					row.DateHired,
					strings.Join(row.PreferredLocations, ","),
					strings.Join(row.PreferredShifts, ","))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 30, "Number of employees to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 = non-deterministic)")
	return cmd
}
