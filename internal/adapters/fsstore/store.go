package fsstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvbarbosa/session-sweep/internal/domain"
	"github.com/mvbarbosa/session-sweep/internal/ports"
)

const sessionFileExt = ".json"

// Always excluded, regardless of configuration: these two files are
// live state for the capture extension, not session snapshots.
var fixedExclusions = []string{"current-session.json", "active-session-config.json"}

type Store struct {
	dir      string
	excluded map[string]struct{}
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(dir string, extraExclusions []string) (*Store, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve sessions directory: %w", err)
	}

	excluded := make(map[string]struct{}, len(fixedExclusions)+len(extraExclusions))
	for _, name := range fixedExclusions {
		excluded[name] = struct{}{}
	}
	for _, name := range extraExclusions {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		excluded[name] = struct{}{}
	}

	return &Store{dir: filepath.Clean(absDir), excluded: excluded}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) List(ctx context.Context) ([]domain.SessionFile, []ports.SkippedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	info, err := os.Stat(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrSessionsDirNotFound, s.dir)
		}
		return nil, nil, fmt.Errorf("stat sessions directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s is not a directory", domain.ErrSessionsDirNotFound, s.dir)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read sessions directory: %w", err)
	}

	var (
		files   []domain.SessionFile
		skipped []ports.SkippedFile
	)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, sessionFileExt) {
			continue
		}
		if _, ok := s.excluded[name]; ok {
			continue
		}

		file, err := s.readSessionFile(entry)
		if err != nil {
			skipped = append(skipped, ports.SkippedFile{Name: name, Reason: err.Error()})
			continue
		}

		files = append(files, file)
	}

	return files, skipped, nil
}

func (s *Store) Remove(ctx context.Context, file domain.SessionFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, ok := s.excluded[file.Name]; ok {
		return fmt.Errorf("refusing to remove excluded file %q", file.Name)
	}

	if err := os.Remove(filepath.Join(s.dir, file.Name)); err != nil {
		return fmt.Errorf("remove session file %q: %w", file.Name, err)
	}

	return nil
}

func (s *Store) readSessionFile(entry os.DirEntry) (domain.SessionFile, error) {
	name := entry.Name()
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SessionFile{}, fmt.Errorf("read session file: %w", err)
	}

	id, fields, err := extractSessionFields(data)
	if err != nil {
		return domain.SessionFile{}, err
	}

	fileInfo, err := entry.Info()
	if err != nil {
		return domain.SessionFile{}, fmt.Errorf("stat session file: %w", err)
	}

	timestamp, fromModTime, err := domain.ResolveTimestamp(fields, fileInfo.ModTime())
	if err != nil {
		return domain.SessionFile{}, err
	}

	return domain.SessionFile{
		Path:        path,
		Name:        name,
		ID:          id,
		Timestamp:   timestamp,
		FromModTime: fromModTime,
	}, nil
}
