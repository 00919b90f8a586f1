package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/service"
	"github.com/MKhiriev/go-docs-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// DocumentReader loads the document shown by the preview screen.
type DocumentReader interface {
	Read(ctx context.Context, path string) (models.DocFile, error)
}

type TUI struct {
	preferences service.PreferencesService
	documents   DocumentReader
	buildInfo   models.AppBuildInfo

	logger *logger.Logger
}

func New(preferences service.PreferencesService, documents DocumentReader, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		preferences: preferences,
		documents:   documents,
		buildInfo:   buildInfo,
		logger:      logger,
	}
}

// Run shows the settings screen until the user quits. With a non-empty
// previewPath the preview screen is available as well. Every preference
// change, whoever made it, is pushed to the open screens.
func (t *TUI) Run(ctx context.Context, previewPath string) error {
	pages := map[string]tea.Model{
		pageSettings: newSettingsModel(ctx, t.preferences, previewPath != ""),
	}
	if previewPath != "" {
		pages[pagePreview] = newPreviewModel(ctx, t.documents, t.preferences, previewPath)
	}

	program := tea.NewProgram(NewRootModel(pages, pageSettings, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))

	cancel := t.preferences.Subscribe(func(view models.ConfigView) {
		program.Send(configChangedMsg{view: view})
	})
	defer cancel()

	t.logger.Info().Str("preview", previewPath).Msg("starting settings screen")

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
