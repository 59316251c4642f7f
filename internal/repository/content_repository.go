package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// ContentRepository holds the admin-editable CMS blob in a single JSON
// file. The blob is opaque to the server; it is stored and served verbatim.
type ContentRepository struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

func NewContentRepository(dataDir string, logger *zap.Logger) *ContentRepository {
	return &ContentRepository{
		path:   filepath.Join(dataDir, "content.json"),
		logger: logger,
	}
}

func (r *ContentRepository) Load() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return data, nil
}

func (r *ContentRepository) Save(blob []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := marshalPretty(json.RawMessage(blob))
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write content: %w", err)
	}
	return nil
}
