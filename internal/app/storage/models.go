package storage

import "time"

// Gist сохраненный в эмуляторе gist
type Gist struct {
	ID          string            `json:"id"`
	Owner       string            `json:"owner"`
	Description *string           `json:"description,omitempty"`
	Public      bool              `json:"public"`
	Files       map[string]string `json:"files"`
	CreatedAt   time.Time         `json:"created_at"`
}
