package main

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"shift-payroll/config"
	"shift-payroll/internal/app/service"
	"shift-payroll/internal/payroll"
	"shift-payroll/internal/repository/sqlite"
	"shift-payroll/pkg/logger"
)

// app holds what every command needs: configuration, a logger and a migrated store.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	db     *sql.DB
	shifts *service.ShiftServiceImpl
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := sqlite.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug("database ready", zap.String("path", cfg.DBPath))

	shifts := service.NewShiftService(sqlite.NewSqliteShiftRepo(db), payroll.NewAggregator(payroll.DefaultRates()))
	return &app{cfg: cfg, log: log, db: db, shifts: shifts}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("close database", zap.Error(err))
	}
	_ = a.log.Sync()
}
