package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

type FileBackup struct {
	filePath string
}

func NewFileBackup(filePath string) *FileBackup {
	return &FileBackup{filePath: filePath}
}

// SaveGists перезаписывает файл целиком, gist упорядочены по id
func (fb *FileBackup) SaveGists(gists []Gist) error {
	sort.Slice(gists, func(i, j int) bool {
		return gists[i].ID < gists[j].ID
	})

	file, err := os.Create(fb.filePath)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(gists); err != nil {
		return fmt.Errorf("cannot encode gists: %w", err)
	}

	return file.Close()
}

func (fb *FileBackup) LoadGists() ([]Gist, error) {
	data, err := os.ReadFile(fb.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var gists []Gist
	if err := json.Unmarshal(data, &gists); err != nil {
		return nil, fmt.Errorf("cannot unmarshal gists: %w", err)
	}

	return gists, nil
}
