package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"med-reconciliation/internal/adapters/extraction/ocrhttp"
	"med-reconciliation/internal/adapters/messaging/kafka"
	pg "med-reconciliation/internal/adapters/storage/postgres"
	rds "med-reconciliation/internal/adapters/storage/redis"
	"med-reconciliation/internal/adapters/translation/translatehttp"
	"med-reconciliation/internal/config"
	"med-reconciliation/internal/domain/catalog"
	"med-reconciliation/internal/platform/httpclient"
	"med-reconciliation/internal/platform/logger"
	"med-reconciliation/internal/router"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "med-reconciliation",
		Short: "Medication reconciliation API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create Postgres tables (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DBDSN == "" {
				return errors.New("DB_DSN is required for migrate")
			}

			db, err := pg.Open(cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("open postgres: %w", err)
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Println("Schema is up to date.")
			return nil
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	ctx := context.Background()
	opts := router.Options{
		Catalog:        cat,
		Logger:         log,
		ExtractTimeout: cfg.ExtractTimeout,
		SessionTTL:     cfg.SessionTTL,
	}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()
		opts.DB = db
	}

	if cfg.RedisAddr != "" {
		client, err := rds.Open(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer client.Close()
		opts.Redis = client
	}

	if brokers := cfg.Brokers(); len(brokers) > 0 {
		pub, err := kafka.NewPublisher(brokers, cfg.KafkaTopic, log)
		if err != nil {
			return err
		}
		defer pub.Close()
		opts.Publisher = pub
	}

	if cfg.OCRBaseURL != "" {
		hc, err := httpclient.New(httpclient.Config{
			BaseURL: cfg.OCRBaseURL,
			APIKey:  cfg.OCRAPIKey,
			Timeout: cfg.OCRTimeout,
		}, log)
		if err != nil {
			return fmt.Errorf("ocr client: %w", err)
		}
		opts.Extractor = ocrhttp.New(hc)
	} else {
		log.Warn("OCR_BASE_URL not set; analysis requests will fail", nil)
	}

	if cfg.TranslateBaseURL != "" {
		hc, err := httpclient.New(httpclient.Config{
			BaseURL: cfg.TranslateBaseURL,
			APIKey:  cfg.TranslateAPIKey,
			Timeout: cfg.TranslateTimeout,
		}, log)
		if err != nil {
			return fmt.Errorf("translate client: %w", err)
		}
		opts.Translator = translatehttp.New(hc)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		// uploads grandes + extracción lenta
		WriteTimeout: cfg.ExtractTimeout + 30*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":     srv.Addr,
			"env":      cfg.Env,
			"postgres": opts.DB != nil,
			"redis":    opts.Redis != nil,
			"kafka":    opts.Publisher != nil,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-quit:
		log.Info("shutting down", map[string]any{"signal": sig.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
