package bootstrap

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	contentinadapter "rightsdaily/internal/modules/content/adapter/in"
	contentoutadapter "rightsdaily/internal/modules/content/adapter/out"
	contentservice "rightsdaily/internal/modules/content/service"
	contentusecase "rightsdaily/internal/modules/content/usecase"
	progressinadapter "rightsdaily/internal/modules/progress/adapter/in"
	progressoutadapter "rightsdaily/internal/modules/progress/adapter/out"
	progressout "rightsdaily/internal/modules/progress/port/out"
	progressservice "rightsdaily/internal/modules/progress/service"
	progressusecase "rightsdaily/internal/modules/progress/usecase"
	"rightsdaily/internal/platform/clock"
	"rightsdaily/internal/platform/config"
	"rightsdaily/internal/platform/logging"
	uiapp "rightsdaily/internal/ui/app"
)

type App struct {
	ProgressCLI progressinadapter.CLIHandler
	ContentCLI  contentinadapter.CLIHandler
	Logger      hclog.Logger

	closers []io.Closer
}

func New(cfg config.Config, logger hclog.Logger) (*App, error) {
	clk := clock.SystemClock{}
	logger = logging.OrDiscard(logger)

	contentUC := contentusecase.NewInteractor(contentservice.NewContentService(
		contentoutadapter.NewVaultArticleStore(cfg.ContentPath),
		contentoutadapter.NewYAMLQuizStore(cfg.ContentPath),
		logger,
	))

	app := &App{Logger: logger}
	var storage progressout.Storage
	switch cfg.Storage {
	case config.StorageSQLite:
		sqliteStorage, err := progressoutadapter.NewSQLiteStorage(cfg.DBPath, clk)
		if err != nil {
			return nil, fmt.Errorf("new sqlite storage: %w", err)
		}
		app.closers = append(app.closers, sqliteStorage)
		storage = sqliteStorage
	default:
		storage = progressoutadapter.NewFileStorage(cfg.StatePath)
	}
	logger.Debug("storage selected", "backend", cfg.Storage, "state", cfg.StatePath)

	progressUC := progressusecase.NewInteractor(
		progressservice.NewProgressService(
			clk,
			progressoutadapter.NewKVProgressStore(storage, logger),
			progressoutadapter.NewContentLookupAdapter(contentUC),
			logger,
		),
		progressoutadapter.NewMarkdownJournal(cfg.JournalPath, clk),
	)

	app.ProgressCLI = progressinadapter.NewCLIHandler(progressUC)
	app.ContentCLI = contentinadapter.NewCLIHandler(contentUC)
	return app, nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.ProgressCLI, app.ContentCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
