package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Jasch-M/asyncmuseum/internal/api"
	"github.com/Jasch-M/asyncmuseum/internal/auth"
	"github.com/Jasch-M/asyncmuseum/internal/config"
	"github.com/Jasch-M/asyncmuseum/internal/database"
	"github.com/Jasch-M/asyncmuseum/internal/kafka"
	"github.com/Jasch-M/asyncmuseum/internal/logger"
	"github.com/Jasch-M/asyncmuseum/internal/metrics"
	"github.com/Jasch-M/asyncmuseum/internal/museum"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.bootstrap("museum-api")
			if err != nil {
				return err
			}
			defer log.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

type contactPublisher interface {
	museum.ContactPublisher
	Close() error
}

func newContactPublisher(ctx context.Context, cfg config.KafkaConfig, log *logger.Logger) contactPublisher {
	if !cfg.Enabled {
		log.Info("KAFKA", "Kafka disabled, contact events are not published")
		return kafka.NopPublisher{}
	}
	if err := kafka.EnsureTopicsExist(ctx, cfg.Brokers, []string{cfg.ContactTopic}, log); err != nil {
		log.Warn("KAFKA", fmt.Sprintf("could not ensure topic %s: %v", cfg.ContactTopic, err))
	}
	return kafka.NewProducer(cfg.Brokers, cfg.ContactTopic, log)
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, cfg.Database.Driver, log); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	m := metrics.New()
	m.RegisterDB(db.DB, "museum")

	publisher := newContactPublisher(ctx, cfg.Kafka, log)
	defer publisher.Close()

	handler := api.NewFromDB(api.Dependencies{
		DB:        db,
		Tokens:    auth.NewIssuer(cfg.JWT),
		Publisher: publisher,
		Logger:    log,
		Metrics:   m,
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      handler.Routes(cfg.CORS),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("SERVER", fmt.Sprintf("🚀 Museum API listening on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("SERVER", "Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("SERVER", "✅ Museum API shutdown complete")
	return nil
}
