package usecase

import (
	"context"
	"os"
)

// OSFileReader читает файлы с локального диска
type OSFileReader struct{}

func (OSFileReader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
