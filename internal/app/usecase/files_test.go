package usecase

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileReader_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foo.txt")
	require.NoError(t, os.WriteFile(path, []byte("foo is here\n"), 0o600))

	content, err := OSFileReader{}.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "foo is here\n", string(content))

	_, err = OSFileReader{}.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = OSFileReader{}.ReadFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
