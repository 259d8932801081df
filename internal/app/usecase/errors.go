package usecase

import (
	"errors"
	"fmt"
)

// ErrNoFiles возвращается когда список файлов пуст
var ErrNoFiles = errors.New("no files to upload")

// ErrDuplicateFileName возвращается когда два пути дают одно и то же имя файла
var ErrDuplicateFileName = errors.New("duplicate file name")

// ErrInterruptedBeforeDelete возвращается когда контекст завершился раньше сигнала,
// gist при этом остается на сервере
var ErrInterruptedBeforeDelete = errors.New("interrupted before the gist was deleted")

var (
	ErrCreationFailed = errors.New("remote paste creation failed")
	ErrDeletionFailed = errors.New("remote paste deletion failed")
)

// Stage этап жизненного цикла, на котором API вернул ошибку
type Stage string

const (
	StageCreate Stage = "create"
	StageDelete Stage = "delete"
)

// RemotePasteError ошибка, которую вернул сам GitHub API
type RemotePasteError struct {
	Stage   Stage
	PasteID string
	Message string
}

func (e *RemotePasteError) Error() string {
	if e.Stage == StageDelete {
		return fmt.Sprintf("%s: %s (gist %q may still exist)", ErrDeletionFailed, e.Message, e.PasteID)
	}
	return fmt.Sprintf("%s: %s", ErrCreationFailed, e.Message)
}

func (e *RemotePasteError) Is(target error) bool {
	switch target {
	case ErrCreationFailed:
		return e.Stage == StageCreate
	case ErrDeletionFailed:
		return e.Stage == StageDelete
	}
	return false
}

// IsRemotePasteError проверяет, является ли ошибка ошибкой API
func IsRemotePasteError(err error) (*RemotePasteError, bool) {
	var pasteErr *RemotePasteError
	if errors.As(err, &pasteErr) {
		return pasteErr, true
	}
	return nil, false
}

// ReadError ошибка чтения локального файла
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
