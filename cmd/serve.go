package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "task-list.com/task-list/internal/configs"
	httpapi "task-list.com/task-list/internal/http"
	"task-list.com/task-list/internal/ratelimit"
	repository "task-list.com/task-list/internal/repositories"
	"task-list.com/task-list/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Opens the task store and serves the task list HTTP API until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		loadDotEnv()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		level, err := config.ParseLogLevel(cfg.DBLogLevel)
		if err != nil {
			return err
		}

		database, err := config.NewDatabase(cfg.DatabaseDSN, level)
		if err != nil {
			return err
		}
		log.Printf("database ready at %s", cfg.DatabaseDSN)

		limiter, closeLimiter, err := newLimiter(cfg)
		if err != nil {
			_ = config.CloseDatabase(database)
			return err
		}
		defer closeLimiter()

		taskRepo := repository.NewTaskRepository(database)
		taskService := services.NewTaskService(taskRepo)

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, httpapi.NewHandler(taskService), limiter)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serverErr := make(chan error, 1)
		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		var runErr error
		select {
		case <-ctx.Done():
		case err := <-serverErr:
			runErr = fmt.Errorf("server stopped: %w", err)
		}

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown: %v", err)
		}

		if err := config.CloseDatabase(database); err != nil {
			log.Printf("failed to close database: %v", err)
		} else {
			log.Println("database connection closed")
		}

		return runErr
	},
}

// newLimiter picks the rate limiter for cfg. A zero rate limit disables it;
// a Redis address moves the counters out of process.
func newLimiter(cfg config.Config) (ratelimit.Limiter, func(), error) {
	noop := func() {}
	if cfg.RateLimit == 0 {
		return nil, noop, nil
	}

	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute), noop, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, noop, err
	}

	limiter := ratelimit.NewRedisLimiter(redisClient, cfg.RedisKeyPrefix, cfg.RateLimit, time.Minute)
	return limiter, redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
