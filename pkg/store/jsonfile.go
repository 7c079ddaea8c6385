package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// JSONFile is a Collection backed by a single JSON array file. A mutex
// serializes every operation: the read-modify-write pattern is only safe
// because no two operations on the same collection ever overlap.
type JSONFile[T Record] struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

// NewJSONFile creates a collection stored at path. A nil logger is
// replaced with a no-op logger.
func NewJSONFile[T Record](path string, logger *zap.Logger) *JSONFile[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONFile[T]{path: path, logger: logger}
}

// Path returns the location of the backing file.
func (c *JSONFile[T]) Path() string { return c.path }

// Initialize creates the parent directory and seeds the backing file with
// an empty array when it does not exist.
func (c *JSONFile[T]) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if _, err := os.Stat(c.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat store file: %w", err)
	}

	if err := writeFileAtomic(c.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("failed to seed store file: %w", err)
	}
	return nil
}

// Read returns every record. Missing and corrupt files degrade to an
// empty slice so a broken store never takes listing down with it.
func (c *JSONFile[T]) Read(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.readLocked()
	if err != nil {
		c.logger.Warn("store read degraded to empty collection",
			zap.String("path", c.path), zap.Error(err))
		return []T{}, nil
	}
	return records, nil
}

// Write replaces the whole collection. Write failures propagate.
func (c *JSONFile[T]) Write(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(records)
}

// FindByID returns the record at id. An unreadable backing file is an
// error here, unlike Read.
func (c *JSONFile[T]) FindByID(ctx context.Context, id string) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records, err := c.readLocked()
	if err != nil {
		return zero, false, fmt.Errorf("failed to find record %s: %w", id, err)
	}
	for _, r := range records {
		if r.RecordID() == id {
			return r, true, nil
		}
	}
	return zero, false, nil
}

// Create appends a record.
func (c *JSONFile[T]) Create(ctx context.Context, record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.readLocked()
	if err != nil {
		return err
	}
	return c.writeLocked(append(records, record))
}

// Update replaces the record at id, reporting whether it existed.
func (c *JSONFile[T]) Update(ctx context.Context, id string, record T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.readLocked()
	if err != nil {
		return false, err
	}

	for i, r := range records {
		if r.RecordID() == id {
			records[i] = record
			return true, c.writeLocked(records)
		}
	}
	return false, nil
}

// Delete removes the record at id, reporting whether it existed.
func (c *JSONFile[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.readLocked()
	if err != nil {
		return false, err
	}

	kept := records[:0]
	found := false
	for _, r := range records {
		if r.RecordID() == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return false, nil
	}
	return true, c.writeLocked(kept)
}

// readLocked loads and decodes the backing file. Caller holds mu. A
// missing file reads as an empty collection.
func (c *JSONFile[T]) readLocked() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode store file %s: %w", c.path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// writeLocked encodes and atomically writes the collection. Caller holds mu.
func (c *JSONFile[T]) writeLocked(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}
	if err := writeFileAtomic(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
