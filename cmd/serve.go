package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/shival-gupta/portfolio/internal/analytics"
	"github.com/shival-gupta/portfolio/internal/config"
	"github.com/shival-gupta/portfolio/internal/contact"
	"github.com/shival-gupta/portfolio/internal/content"
	"github.com/shival-gupta/portfolio/internal/server"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server.

The content is read from content.path (the built-in content when unset) and,
with content.watch, reloaded whenever the file changes. Visitor analytics and
the admin dashboard are enabled when analytics.db_path is set.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("starting portfolio", slog.String("env", cfg.Env))

	store, err := content.NewStore(cfg.Content.Path, log)
	if err != nil {
		return err
	}
	if cfg.Content.Watch && cfg.Content.Path != "" {
		go func() {
			if err := store.Watch(ctx); err != nil {
				log.Error("content watcher stopped", slog.String("error", err.Error()))
			}
		}()
	}

	tracker, closeAnalytics, err := openAnalytics(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeAnalytics()

	srv, err := server.New(server.Options{
		Config:  cfg,
		Content: store,
		Sender:  newSender(cfg),
		Tracker: tracker,
		Logger:  log,
	})
	if err != nil {
		return err
	}
	engine, err := srv.Engine()
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTP.Address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.Info("shutdown signal received, stopping server")
	case err := <-serveErr:
		return errors.Wrap(err, "server encountered an error")
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shutdown server gracefully")
	}
	if tracker != nil {
		tracker.Wait()
	}

	log.Info("server stopped gracefully")
	return nil
}

// newSender picks the contact delivery for the configured driver.
func newSender(cfg *config.Config) contact.Sender {
	if cfg.Contact.Driver == config.DriverSMTP {
		return contact.NewMailer(contact.SMTPConfig{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			User: cfg.SMTP.User,
			Pass: cfg.SMTP.Pass,
			To:   cfg.SMTP.To,
		})
	}

	if cfg.Contact.AccessKey == "" {
		log.Warn("contact form relay has no access key, submissions will fail")
	}
	return contact.NewRelay(cfg.Contact.Endpoint, cfg.Contact.AccessKey, cfg.Contact.Timeout)
}

// openAnalytics opens the visitor store and purges expired rows. It returns a
// nil tracker when analytics are disabled.
func openAnalytics(ctx context.Context, cfg *config.Config) (*analytics.Tracker, func(), error) {
	noop := func() {}
	if cfg.Analytics.DBPath == "" {
		return nil, noop, nil
	}

	store, err := analytics.Open(ctx, cfg.Analytics.DBPath)
	if err != nil {
		return nil, noop, err
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close analytics store", slog.String("error", err.Error()))
		}
	}

	tracker, err := analytics.NewTracker(store, log)
	if err != nil {
		closeStore()
		return nil, noop, err
	}
	tracker.Purge(ctx, cfg.Analytics.Retention)

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Warn("admin credentials not set, dashboard login is disabled")
	} else {
		log.Info("admin access available at /admin/login")
	}
	log.Info("visitor tracking enabled with hashed IP addresses", slog.String("path", cfg.Analytics.DBPath))

	return tracker, closeStore, nil
}
