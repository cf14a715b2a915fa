package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_StagePromote(t *testing.T) {
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	staged, err := local.Stage([]byte("image-bytes"), "boat.jpeg")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d{9}\.jpeg$`), staged.Name)
	assert.Equal(t, "/uploads/media/"+staged.Name, staged.URL)

	_, err = os.Stat(filepath.Join(local.Dir(), staged.Name))
	assert.True(t, os.IsNotExist(err), "file must not be public before promote")

	require.NoError(t, local.Promote(staged))
	data, err := os.ReadFile(filepath.Join(local.Dir(), staged.Name))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestLocalStore_Discard(t *testing.T) {
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	staged, err := local.Stage([]byte("x"), "a.png")
	require.NoError(t, err)
	require.NoError(t, local.Discard(staged))
	require.NoError(t, local.Discard(staged))

	entries, err := os.ReadDir(local.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_DiscardAfterPromote(t *testing.T) {
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	staged, err := local.Stage([]byte("x"), "a.png")
	require.NoError(t, err)
	require.NoError(t, local.Promote(staged))
	require.NoError(t, local.Discard(staged))

	entries, err := os.ReadDir(local.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_SweepStaging(t *testing.T) {
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	stale, err := local.Stage([]byte("old"), "old.png")
	require.NoError(t, err)
	fresh, err := local.Stage([]byte("new"), "new.png")
	require.NoError(t, err)
	published, err := local.Stage([]byte("kept"), "kept.png")
	require.NoError(t, err)
	require.NoError(t, local.Promote(published))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale.stagingPath, old, old))

	removed, err := local.SweepStaging(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(fresh.stagingPath)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(local.Dir(), published.Name))
	assert.NoError(t, err)
}
