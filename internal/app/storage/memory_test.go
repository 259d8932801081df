package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGist(id string) Gist {
	return Gist{
		ID:        id,
		Owner:     "username",
		Files:     map[string]string{"foo.txt": "foo is here\n"},
		CreatedAt: time.Date(2010, 4, 14, 2, 15, 15, 0, time.UTC),
	}
}

func TestInMemoryStorage(t *testing.T) {
	s, err := NewInMemoryStorage("")
	require.NoError(t, err)

	require.NoError(t, s.Save(testGist("abc")))
	assert.Error(t, s.Save(testGist("abc")))
	assert.Equal(t, 1, s.Len())

	got, err := s.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, testGist("abc"), got)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete("abc"))
	assert.ErrorIs(t, s.Delete("abc"), ErrNotFound)
	assert.Equal(t, 0, s.Len())

	assert.NoError(t, s.Backup())
}

func TestInMemoryStorage_Backup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gists.json")

	s, err := NewInMemoryStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(testGist("b")))
	require.NoError(t, s.Save(testGist("a")))
	require.NoError(t, s.Backup())

	restored, err := NewInMemoryStorage(path)
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Len())

	got, err := restored.Get("a")
	require.NoError(t, err)
	assert.Equal(t, testGist("a"), got)
}

func TestFileBackup_LoadGists(t *testing.T) {
	dir := t.TempDir()

	gists, err := NewFileBackup(filepath.Join(dir, "missing.json")).LoadGists()
	require.NoError(t, err)
	assert.Empty(t, gists)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	gists, err = NewFileBackup(empty).LoadGists()
	require.NoError(t, err)
	assert.Empty(t, gists)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o600))
	_, err = NewInMemoryStorage(broken)
	assert.Error(t, err)
}
