package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themebuilder/internal/auth"
	"github.com/thatcatcamp/themebuilder/internal/backup"
	"github.com/thatcatcamp/themebuilder/internal/config"
	"github.com/thatcatcamp/themebuilder/internal/db"
	"github.com/thatcatcamp/themebuilder/internal/handlers"
	"github.com/thatcatcamp/themebuilder/internal/logging"
	"github.com/thatcatcamp/themebuilder/internal/middleware"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the Themebuilder HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitWithError(err)
		}

		logger := logging.Setup(config.GetString("log.level"), config.GetString("log.format"), os.Stderr)

		switch mode := config.GetString("server.mode"); mode {
		case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
			gin.SetMode(mode)
		default:
			warn("Warning: unknown server.mode %q, using release\n", mode)
			gin.SetMode(gin.ReleaseMode)
		}

		gen, err := newGenerator()
		if err != nil {
			exitWithError(err)
		}
		handlers.SetGenerator(gen)
		if err := auth.CheckSecret(); err != nil {
			warn("Warning: %v; the theme write API is disabled\n", err)
		}

		// Library snapshots
		if config.GetBool("backups.enabled") {
			manager := backup.NewBackupManager(db.GetDB(), config.GetString("backups.path"), config.GetInt("backups.keep"))
			scheduler := backup.NewScheduler(manager, config.GetDuration("backups.interval"))
			schedulerDone := scheduler.Start()
			defer func() {
				scheduler.Stop()
				<-schedulerDone
			}()
		}

		// Write API protection
		limiter := middleware.NewRateLimiter(config.GetInt("ratelimit.capacity"), config.GetDuration("ratelimit.interval"))
		defer limiter.Stop()

		r := handlers.NewRouter(handlers.RouterOptions{
			Logger:      logger,
			Limiter:     limiter,
			Blocklist:   config.GetStringSlice("security.blocked_ips"),
			BehindProxy: config.GetBool("server.behind_proxy"),
		})

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = config.GetString("server.http_port")
		}
		httpAddr := fmt.Sprintf(":%s", port)

		server := &http.Server{
			Addr:              httpAddr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serverErr := make(chan error, 1)
		go func() {
			success("Starting HTTP server on %s\n", httpAddr)
			logger.Info("server starting", "addr", httpAddr, "mode", gin.Mode())
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case err := <-serverErr:
			if err != nil {
				exitWithError(fmt.Errorf("server error: %w", err))
			}
		case <-ctx.Done():
			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				exitWithError(fmt.Errorf("shutdown: %w", err))
			}
		}
	},
}

func init() {
	serverStartCmd.Flags().String("port", "", "HTTP port (overrides server.http_port)")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
