package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// bestScoreRecord is the on-disk format of the best-score file
type bestScoreRecord struct {
	BestScore int `json:"best_score"`
}

// FileStore keeps the best score in a small JSON file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path. The file is created on the
// first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadBestScore reads the stored best score. A missing file loads as 0.
func (store *FileStore) LoadBestScore() (int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.read()
}

func (store *FileStore) read() (int, error) {
	data, err := os.ReadFile(store.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read best score: %w", err)
	}

	var rec bestScoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("decode best score %s: %w", store.path, err)
	}
	return max(rec.BestScore, 0), nil
}

// SaveBestScore writes score when it beats the stored value, replacing the
// previous file atomically. An unreadable file is overwritten.
func (store *FileStore) SaveBestScore(score int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if current, err := store.read(); err == nil && score <= current {
		return nil
	}

	if dir := filepath.Dir(store.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create score directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(bestScoreRecord{BestScore: score}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode best score: %w", err)
	}

	tmp := store.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write best score: %w", err)
	}
	if err := os.Rename(tmp, store.path); err != nil {
		return fmt.Errorf("replace best score: %w", err)
	}
	return nil
}

// MemoryStore keeps the best score for the lifetime of the process. It backs
// servers started without a score file.
type MemoryStore struct {
	mu    sync.Mutex
	best  int
	saves int
}

// NewMemoryStore creates a store preloaded with best
func NewMemoryStore(best int) *MemoryStore {
	return &MemoryStore{best: best}
}

func (m *MemoryStore) LoadBestScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SaveBestScore keeps score only when it beats the held value
func (m *MemoryStore) SaveBestScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score <= m.best {
		return nil
	}
	m.best = score
	m.saves++
	return nil
}

// Saves returns how many scores replaced the held best
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
