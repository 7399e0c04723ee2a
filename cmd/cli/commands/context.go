package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/hady-salama/hr-portal/internal/config"
	"github.com/hady-salama/hr-portal/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database *postgres.DB
	Logger   *zap.Logger
	Ctx      context.Context
}
