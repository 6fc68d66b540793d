package filestore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
	"github.com/riskibarqy/standings-gopher/internal/platform/logging"
	"github.com/riskibarqy/standings-gopher/internal/usecase"
)

// IndexFileName is the menu file a gopher server serves for a directory.
const IndexFileName = "gophermap"

const filePerm = 0o644

// Store writes rendered pages into one directory, replacing existing files.
type Store struct {
	dir    string
	logger *logging.Logger
}

func NewStore(dir string, logger *logging.Logger) *Store {
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{dir: dir, logger: logger}
}

func (s *Store) Dir() string {
	return s.dir
}

// WriteIndex writes the gophermap index.
func (s *Store) WriteIndex(ctx context.Context, content string) error {
	return s.write(ctx, IndexFileName, content)
}

// WriteTable writes the page of one competition as <id>.txt.
func (s *Store) WriteTable(ctx context.Context, c competition.Competition, content string) error {
	return s.write(ctx, c.FileName(), content)
}

func (s *Store) write(ctx context.Context, name, content string) error {
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "create %s", path), usecase.ErrIO)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return errors.Mark(errors.Wrapf(err, "write %s", path), usecase.ErrIO)
	}
	if err := f.Close(); err != nil {
		return errors.Mark(errors.Wrapf(err, "close %s", path), usecase.ErrIO)
	}

	s.logger.DebugContext(ctx, "file written", "path", path, "bytes", len(content))
	return nil
}
