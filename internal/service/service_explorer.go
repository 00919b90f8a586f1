package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/models"
)

// WorkspaceMetaDir holds per-folder metadata and is hidden from the tree.
const WorkspaceMetaDir = ".ahriknow"

type explorerService struct {
	// root confines every path when non-empty. It is absolute and clean.
	root   string
	logger *logger.Logger
}

// NewExplorerService returns an [ExplorerService] confined to cfg.Root when
// it is set.
func NewExplorerService(cfg config.Workspace, logger *logger.Logger) ExplorerService {
	return &explorerService{
		root:   workspaceRoot(cfg.Root),
		logger: logger,
	}
}

func workspaceRoot(root string) string {
	if root == "" {
		return ""
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return filepath.Clean(root)
}

// WorkspacePath resolves path the way the explorer does: absolute, and
// inside cfg.Root when a root is configured.
func WorkspacePath(cfg config.Workspace, path string) (string, error) {
	return resolvePath(workspaceRoot(cfg.Root), path)
}

// resolvePath makes path absolute. With a workspace root, relative paths are
// taken from the root and anything escaping it is rejected.
func resolvePath(root, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrInvalidPath
	}

	if root == "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidPath, err)
		}
		return abs, nil
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path = filepath.Clean(path)

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsideWorkspace
	}
	return path, nil
}

func (s *explorerService) Open(ctx context.Context, dir string) ([]models.FileTree, error) {
	path, err := resolvePath(s.root, dir)
	if err != nil {
		return nil, err
	}

	tree, err := readTree(ctx, path, 0)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*explorerService.Open").Str("path", path).Msg("error reading folder")
		return nil, mapNotExist(err)
	}
	return tree, nil
}

// readTree lists documents under dir. Directories come first; within a type
// the order of os.ReadDir (by name) is kept.
func readTree(ctx context.Context, dir string, depth int) ([]models.FileTree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := make([]models.FileTree, 0, len(entries))
	for _, entry := range entries {
		if depth == 0 && entry.Name() == WorkspaceMetaDir {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			// dangling symlink or removed meanwhile
			continue
		}

		node := models.FileTree{
			Name:    entry.Name(),
			Path:    path,
			Updated: info.ModTime().UnixMicro(),
		}

		if info.IsDir() {
			node.Type = models.FileTypeDir
			node.Children, err = readTree(ctx, path, depth+1)
			if err != nil {
				return nil, err
			}
		} else {
			node.Type = models.FileTypeOf(entry.Name())
			if node.Type == models.FileTypeUnknown {
				continue
			}
		}

		result = append(result, node)
	}

	slices.SortStableFunc(result, func(a, b models.FileTree) int {
		return cmp.Compare(a.Type, b.Type)
	})

	return result, nil
}

func (s *explorerService) Read(ctx context.Context, path string) (models.DocFile, error) {
	abs, err := resolvePath(s.root, path)
	if err != nil {
		return models.DocFile{}, err
	}
	return readDocFile(abs)
}

func (s *explorerService) ReadMany(ctx context.Context, paths []string) ([]models.DocFile, error) {
	files := make([]models.DocFile, 0, len(paths))
	for _, path := range paths {
		abs, err := resolvePath(s.root, path)
		if err != nil {
			return nil, err
		}

		file, err := readDocFile(abs)
		if errors.Is(err, ErrFileNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

func (s *explorerService) Write(ctx context.Context, path, content string) (models.DocFile, error) {
	abs, err := resolvePath(s.root, path)
	if err != nil {
		return models.DocFile{}, err
	}

	if _, err := statFile(abs); err != nil {
		return models.DocFile{}, err
	}

	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*explorerService.Write").Str("path", abs).Msg("error writing file")
		return models.DocFile{}, fmt.Errorf("error writing file: %w", err)
	}

	return readDocFile(abs)
}

func (s *explorerService) Create(ctx context.Context, dir, name string, isDir bool) (models.DocFile, error) {
	if !validEntryName(name) {
		return models.DocFile{}, ErrInvalidPath
	}

	parent, err := resolvePath(s.root, dir)
	if err != nil {
		return models.DocFile{}, err
	}
	path := filepath.Join(parent, name)

	if isDir {
		err = os.Mkdir(path, 0o755)
	} else {
		var f *os.File
		f, err = os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			err = f.Close()
		}
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*explorerService.Create").Str("path", path).Msg("error creating entry")
		switch {
		case errors.Is(err, fs.ErrExist):
			return models.DocFile{}, ErrAlreadyExists
		case errors.Is(err, fs.ErrNotExist):
			return models.DocFile{}, ErrFileNotFound
		}
		return models.DocFile{}, fmt.Errorf("error creating entry: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.DocFile{}, mapNotExist(err)
	}

	file := models.DocFile{
		Type:    models.FileTypeDir,
		Name:    name,
		Path:    path,
		Updated: info.ModTime().UnixMicro(),
	}
	if !isDir {
		file.Type = models.FileTypeOf(name)
	}
	return file, nil
}

func (s *explorerService) Delete(ctx context.Context, path string, isDir bool) error {
	abs, err := resolvePath(s.root, path)
	if err != nil {
		return err
	}
	if abs == s.root {
		return ErrOutsideWorkspace
	}

	info, err := os.Stat(abs)
	if err != nil {
		return mapNotExist(err)
	}
	if info.IsDir() != isDir {
		return ErrFileNotFound
	}

	if isDir {
		err = os.RemoveAll(abs)
	} else {
		err = os.Remove(abs)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*explorerService.Delete").Str("path", abs).Msg("error deleting entry")
		return fmt.Errorf("error deleting entry: %w", err)
	}
	return nil
}

// Rename moves path to newName inside the same directory and returns the
// new path.
func (s *explorerService) Rename(ctx context.Context, path, newName string) (string, error) {
	if !validEntryName(newName) {
		return "", ErrInvalidPath
	}

	abs, err := resolvePath(s.root, path)
	if err != nil {
		return "", err
	}
	if abs == s.root {
		return "", ErrOutsideWorkspace
	}

	target := filepath.Join(filepath.Dir(abs), newName)
	if _, err := os.Lstat(target); err == nil {
		return "", ErrAlreadyExists
	}

	if err := os.Rename(abs, target); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*explorerService.Rename").Str("path", abs).Msg("error renaming entry")
		return "", mapNotExist(err)
	}
	return target, nil
}

func readDocFile(path string) (models.DocFile, error) {
	info, err := statFile(path)
	if err != nil {
		return models.DocFile{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.DocFile{}, mapNotExist(err)
	}

	return models.DocFile{
		Type:    models.FileTypeOf(path),
		Name:    filepath.Base(path),
		Path:    path,
		Updated: info.ModTime().UnixMicro(),
		Content: string(content),
	}, nil
}

// statFile returns ErrFileNotFound for missing paths and directories.
func statFile(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, mapNotExist(err)
	}
	if info.IsDir() {
		return nil, ErrFileNotFound
	}
	return info, nil
}

func validEntryName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func mapNotExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrFileNotFound
	}
	return err
}
