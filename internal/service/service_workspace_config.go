package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/models"
)

// WorkspaceConfigFile is the workspace file name inside [WorkspaceMetaDir].
const WorkspaceConfigFile = "config.json"

type workspaceConfigService struct {
	root   string
	logger *logger.Logger
}

func NewWorkspaceConfigService(cfg config.Workspace, logger *logger.Logger) WorkspaceConfigService {
	return &workspaceConfigService{
		root:   workspaceRoot(cfg.Root),
		logger: logger,
	}
}

func (s *workspaceConfigService) configPath(folder string) (string, error) {
	dir, err := resolvePath(s.root, folder)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", mapNotExist(err)
	}
	if !info.IsDir() {
		return "", ErrInvalidPath
	}

	return filepath.Join(dir, WorkspaceMetaDir, WorkspaceConfigFile), nil
}

// Get reads the workspace file of folder. A missing file is created with an
// empty template first.
func (s *workspaceConfigService) Get(ctx context.Context, folder string) (models.WorkspaceConfig, error) {
	log := logger.FromContext(ctx)

	path, err := s.configPath(folder)
	if err != nil {
		return models.WorkspaceConfig{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("func", "*workspaceConfigService.Get").Str("path", path).Msg("creating workspace config")
		if err := writeWorkspaceConfig(path, models.WorkspaceConfig{}); err != nil {
			return models.WorkspaceConfig{}, err
		}
		return models.WorkspaceConfig{}, nil
	}
	if err != nil {
		return models.WorkspaceConfig{}, fmt.Errorf("error reading workspace config: %w", err)
	}

	var cfg models.WorkspaceConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Err(err).Str("func", "*workspaceConfigService.Get").Str("path", path).Msg("error decoding workspace config")
		return models.WorkspaceConfig{}, fmt.Errorf("error decoding workspace config: %w", err)
	}
	return cfg, nil
}

func (s *workspaceConfigService) Set(ctx context.Context, folder string, cfg models.WorkspaceConfig) error {
	path, err := s.configPath(folder)
	if err != nil {
		return err
	}
	return writeWorkspaceConfig(path, cfg)
}

func writeWorkspaceConfig(path string, cfg models.WorkspaceConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating workspace dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding workspace config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing workspace config: %w", err)
	}
	return nil
}
