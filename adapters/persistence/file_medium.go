package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileMedium stores each collection as a JSON file under dataDir. Writes go
// to a temp file first and are renamed into place, so a crash mid-write
// never corrupts the previous state.
type FileMedium struct {
	mu      sync.RWMutex
	dataDir string
}

func NewFileMedium(dataDir string) (*FileMedium, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileMedium{dataDir: dataDir}, nil
}

func (m *FileMedium) path(name string) string {
	return filepath.Join(m.dataDir, name+".json")
}

func (m *FileMedium) ReadCollection(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", name, err)
	}
	return data, nil
}

func (m *FileMedium) WriteCollection(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tempFile := m.path(name) + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	if err := os.Rename(tempFile, m.path(name)); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("commit collection %s: %w", name, err)
	}
	return nil
}
