package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
	"github.com/riskibarqy/standings-gopher/internal/usecase"
)

func TestStore_WriteTableAndIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore(dir, nil)
	ctx := context.Background()

	require.NoError(t, store.WriteTable(ctx, competition.Competition{ID: 2021, Name: "Premier League"}, "table"))
	require.NoError(t, store.WriteIndex(ctx, "0Premier League\t2021.txt\n"))

	got, err := os.ReadFile(filepath.Join(dir, "2021.txt"))
	require.NoError(t, err)
	assert.Equal(t, "table", string(got))

	got, err = os.ReadFile(filepath.Join(dir, "gophermap"))
	require.NoError(t, err)
	assert.Equal(t, "0Premier League\t2021.txt\n", string(got))
}

func TestStore_OverwritesExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "2002.txt")
	require.NoError(t, os.WriteFile(path, []byte("an older and much longer page"), 0o644))

	store := NewStore(dir, nil)
	require.NoError(t, store.WriteTable(context.Background(), competition.Competition{ID: 2002, Name: "Bundesliga"}, "new"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestStore_MissingDirectoryIsIOError(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "missing"), nil)
	err := store.WriteIndex(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrIO), "expected ErrIO, got %v", err)
}

func TestNewStore_DefaultsToWorkingDirectory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".", NewStore("", nil).Dir())
}
