package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mworkman/scheduleme/pkg/db"
	"github.com/mworkman/scheduleme/pkg/employeegen"
)

// GenerateEmployees creates a synthetic roster and replaces the stored
// one with it.
func GenerateEmployees(
	ctx context.Context,
	store db.EmployeeStore,
	opts employeegen.Options,
	logger *zap.Logger,
) ([]db.EmployeeRow, error) {
	rows, err := employeegen.Generate(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate employees: %w", err)
	}

	if err := store.ReplaceEmployees(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to persist employees: %w", err)
	}

	logger.Info("generated employee roster", zap.Int("count", len(rows)))
	return rows, nil
}
