package storage

import (
	"errors"
	"fmt"
	"sync"
)

var ErrNotFound = errors.New("gist not found")

type InMemoryStorage struct {
	mu     sync.Mutex
	gists  map[string]Gist
	backup *FileBackup
}

// NewInMemoryStorage создает хранилище. Если filePath не пуст, gist
// загружаются из файла и сохраняются в него при вызове Backup.
func NewInMemoryStorage(filePath string) (*InMemoryStorage, error) {
	s := &InMemoryStorage{
		gists: make(map[string]Gist),
	}
	if filePath == "" {
		return s, nil
	}

	s.backup = NewFileBackup(filePath)
	gists, err := s.backup.LoadGists()
	if err != nil {
		return nil, err
	}
	for _, g := range gists {
		s.gists[g.ID] = g
	}

	return s, nil
}

func (s *InMemoryStorage) Save(g Gist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.gists[g.ID]; exists {
		return fmt.Errorf("gist %s already exists", g.ID)
	}
	s.gists[g.ID] = g
	return nil
}

func (s *InMemoryStorage) Get(id string) (Gist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, exists := s.gists[id]
	if !exists {
		return Gist{}, ErrNotFound
	}
	return g, nil
}

func (s *InMemoryStorage) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.gists[id]; !exists {
		return ErrNotFound
	}
	delete(s.gists, id)
	return nil
}

func (s *InMemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.gists)
}

// Backup сохраняет все gist в файл. Без файла ничего не делает.
func (s *InMemoryStorage) Backup() error {
	if s.backup == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gists := make([]Gist, 0, len(s.gists))
	for _, g := range s.gists {
		gists = append(gists, g)
	}

	if err := s.backup.SaveGists(gists); err != nil {
		return fmt.Errorf("cannot backup gists: %w", err)
	}
	return nil
}
