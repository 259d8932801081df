package controller

import "github.com/m-molecula741/quist/internal/app/storage"

// GistStore определяет интерфейс для хранилища gist эмулятора
type GistStore interface {
	Save(g storage.Gist) error
	Get(id string) (storage.Gist, error)
	Delete(id string) error
}
