package usecase

import "io"

// FileEntry содержимое одного файла и имя, под которым он попадет в gist
type FileEntry struct {
	Name    string
	Content []byte
}

// Request запрос на публикацию файлов
type Request struct {
	Paths       []string
	Description string
}

// Output потоки вывода. В Stdout пишется только URL созданного gist,
// все остальные сообщения идут в Stderr.
type Output struct {
	Stdout io.Writer
	Stderr io.Writer
}
