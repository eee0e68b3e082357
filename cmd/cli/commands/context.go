package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/mworkman/scheduleme/internal/config"
	"github.com/mworkman/scheduleme/pkg/db"
)

// AppContext holds the dependencies shared by all commands
type AppContext struct {
	Cfg    *config.Config
	Store  db.Store
	Logger *zap.Logger
	Ctx    context.Context

	// Close releases the store, when it holds external resources
	Close func()
}

// AppRef resolves the AppContext lazily, after root command setup
type AppRef func() *AppContext
