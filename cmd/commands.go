package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shift-payroll/internal/app/service"
	"shift-payroll/internal/delivery/telegram"
	"shift-payroll/internal/delivery/web"
	"shift-payroll/pkg/workerpool"
)

const shutdownTimeout = 5 * time.Second

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "shift-payroll",
		Short:        "Record work shifts and compute the 26th-to-25th payroll",
		SilenceUsage: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web form and report; also runs the Telegram bot when TELEGRAM_TOKEN is set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, serve)
		},
	}

	botCmd := &cobra.Command{
		Use:   "bot",
		Short: "Run only the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.cfg.RequireTelegram(); err != nil {
					return err
				}
				pool := workerpool.NewWorkerPool(a.cfg.WorkerCount, a.cfg.WorkerQueue)
				defer pool.Close()
				stop, err := startBot(a, pool)
				if err != nil {
					return err
				}
				<-ctx.Done()
				stop()
				return nil
			})
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				a.log.Info("schema is up to date", zap.String("path", a.cfg.DBPath))
				return nil
			})
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the payroll report of the current pay period",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				report, err := a.shifts.Report(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), report.Text())
				return err
			})
		},
	}

	var confirmed bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every recorded shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to delete all shifts without --yes")
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.shifts.Reset(ctx); err != nil {
					return err
				}
				a.log.Warn("all shifts deleted")
				return nil
			})
		},
	}
	resetCmd.Flags().BoolVar(&confirmed, "yes", false, "confirm deleting all data")

	rootCmd.AddCommand(serveCmd, botCmd, migrateCmd, reportCmd, resetCmd)
	return rootCmd
}

func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func serve(ctx context.Context, a *app) error {
	if a.cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := web.NewRouter(a.shifts, a.log)
	if err != nil {
		return err
	}

	pool := workerpool.NewWorkerPool(a.cfg.WorkerCount, a.cfg.WorkerQueue)
	defer pool.Close()

	if a.cfg.RequireTelegram() == nil {
		stop, err := startBot(a, pool)
		if err != nil {
			return err
		}
		defer stop()
	} else {
		a.log.Info("telegram bot disabled: TELEGRAM_TOKEN not set")
	}

	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("addr", a.cfg.HTTPAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// startBot begins long polling in the background and returns a func that stops it.
func startBot(a *app, pool *workerpool.WorkerPool) (func(), error) {
	bot, err := telegram.NewBot(a.cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("start telegram bot: %w", err)
	}
	handler := &telegram.Handler{
		Bot:    bot,
		Shifts: a.shifts,
		Async:  service.NewAsyncService(pool),
		Log:    a.log,
	}
	handler.Register()

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.log.Info("telegram bot started", zap.String("username", bot.Me.Username))
		bot.Start()
	}()
	return func() {
		bot.Stop()
		<-done
	}, nil
}
