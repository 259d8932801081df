package gist

import (
	"sort"
	"strings"
)

// File содержимое одного файла в gist.
type File struct {
	Content string `json:"content"`
}

// NewFile декодирует байты как UTF-8. Некорректные последовательности
// заменяются символом U+FFFD.
func NewFile(content []byte) File {
	return File{Content: strings.ToValidUTF8(string(content), "\uFFFD")}
}

// FileMap файлы gist по имени. encoding/json пишет ключи map в отсортированном
// порядке, поэтому тело запроса не зависит от порядка добавления файлов.
type FileMap map[string]File

// Names возвращает имена файлов по алфавиту.
func (m FileMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Gist тело запроса на создание gist.
type Gist struct {
	Description *string `json:"description,omitempty"`
	Files       FileMap `json:"files"`
}
