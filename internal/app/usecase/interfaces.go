// Package usecase управляет жизненным циклом временного gist:
// создание, ожидание сигнала завершения и удаление.
package usecase

import (
	"context"

	"github.com/m-molecula741/quist/internal/app/gist"
)

// GistClient определяет интерфейс для работы с GitHub Gist API
type GistClient interface {
	Create(ctx context.Context, g *gist.Gist) (gist.Response[gist.Created], error)
	Delete(ctx context.Context, id string) (gist.Response[gist.Deleted], error)
}

// FileReader определяет интерфейс для чтения загружаемых файлов
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
