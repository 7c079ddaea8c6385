package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Collection with the same contract as JSONFile.
// It backs tests and ephemeral runs; records keep insertion order.
type Memory[T Record] struct {
	mu      sync.Mutex
	records []T
}

// NewMemory creates an empty in-memory collection.
func NewMemory[T Record]() *Memory[T] {
	return &Memory[T]{records: []T{}}
}

func (c *Memory[T]) Initialize(ctx context.Context) error { return nil }

func (c *Memory[T]) Read(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out, nil
}

func (c *Memory[T]) Write(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = make([]T, len(records))
	copy(c.records, records)
	return nil
}

func (c *Memory[T]) FindByID(ctx context.Context, id string) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	for _, r := range c.records {
		if r.RecordID() == id {
			return r, true, nil
		}
	}
	return zero, false, nil
}

func (c *Memory[T]) Create(ctx context.Context, record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, record)
	return nil
}

func (c *Memory[T]) Update(ctx context.Context, id string, record T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.records {
		if r.RecordID() == id {
			c.records[i] = record
			return true, nil
		}
	}
	return false, nil
}

func (c *Memory[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.records {
		if r.RecordID() == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
