package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/config"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/controller"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/logger"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/storage"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/storage/file"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/storage/postgres"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/tasklist"
	"github.com/satriaananda257-stack/To-do-list---Gotta-Do-Em-All/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gottado:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("config.yml")
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Development, cfg.Logging.File); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	store, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.HealthCheck(ctx); err != nil {
		logger.Warn("Startup: storage health check failed", zap.Error(err))
	}

	list := tasklist.New(store)
	if err := list.Load(ctx); err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	ui := tui.New(cfg.UI.NoticeTTL, cfg.Features.InlineEdit)
	ctrl := controller.New(list, ui.Confirmer(), ui, ui)
	ui.Bind(ctrl)

	logger.Info("Startup: ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.Int("tasks", list.Len()))

	if _, err := tea.NewProgram(ui, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func newStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		store, err := postgres.New(ctx, cfg.Storage.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil
	case "file", "":
		return file.New(cfg.Storage.Dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
