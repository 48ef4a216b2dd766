package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/config"
	v1 "github.com/KirkDiggler/rpg-chargen/internal/handlers/api/v1"
	characterorch "github.com/KirkDiggler/rpg-chargen/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/logging"
	"github.com/KirkDiggler/rpg-chargen/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
)

var configPath string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long: `Start the rpg-chargen HTTP server.

Every setting can also be given as an RPG_ environment variable,
e.g. RPG_STORAGE_DRIVER=redis or RPG_HTTP_PORT=9000.`,
	RunE: runServer,
}

// serverFlags maps flag names to config keys
var serverFlags = map[string]string{
	"host":        "http.host",
	"port":        "http.port",
	"storage":     "storage.driver",
	"sqlite-path": "storage.sqlite_path",
	"redis-addr":  "storage.redis_addr",
	"redis-db":    "storage.redis_db",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

func init() {
	f := serverCmd.Flags()
	f.StringVar(&configPath, "config", "", "Optional config file (yaml, json or toml)")
	f.String("host", "0.0.0.0", "HTTP listen host")
	f.Int("port", 8000, "HTTP listen port")
	f.String("storage", config.DriverSQLite, "Character store: sqlite or redis")
	f.String("sqlite-path", "characters.db", "SQLite database file")
	f.String("redis-addr", "localhost:6379", "Redis address")
	f.Int("redis-db", 0, "Redis database index")
	f.String("log-level", "info", "Log level: debug, info, warn, error")
	f.String("log-format", "json", "Log format: json or text")
}

func runServer(cmd *cobra.Command, _ []string) error {
	v := config.NewViper()
	if err := config.BindFlags(v, cmd.Flags(), serverFlags); err != nil {
		return err
	}

	cfg, err := config.Load(v, configPath)
	if err != nil {
		return err
	}

	if _, err := logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := openRepository(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo.Close(); err != nil {
			slog.Error("Failed to close character store", "error", err)
		}
	}()

	characterService, err := characterorch.NewOrchestrator(&characterorch.Config{
		CharacterRepo: repo,
		Roller:        toolkitdice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{Roller: toolkitdice.DefaultRoller})
	if err != nil {
		return fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		CharacterService: characterService,
		DiceService:      diceService,
		RequestIDs:       idgen.NewUUID(""),
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler.Routes(),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting",
			"addr", srv.Addr,
			"storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop", "error", err)
			_ = srv.Close()
			return nil
		}
		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// openRepository builds the configured character store. The returned
// closer releases its connection.
func openRepository(ctx context.Context, cfg config.StorageConfig) (characterrepo.Repository, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			DB:          cfg.RedisDB,
			DialTimeout: 5 * time.Second,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redis.Ping(pingCtx, client); err != nil {
			_ = client.Close()
			return nil, nil, err
		}

		repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create redis repository: %w", err)
		}
		return repo, client, nil

	default:
		repo, err := characterrepo.NewSQLite(ctx, &characterrepo.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite repository: %w", err)
		}
		return repo, repo, nil
	}
}
