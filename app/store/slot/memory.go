package slot

import (
	"context"
	"slices"
	"sync"
)

// Memory keeps the value in memory only, nothing survives restart
type Memory struct {
	mu     sync.Mutex
	data   []byte
	set    bool
	writes int
}

// NewMemory makes memory slot, optionally pre-filled with data
func NewMemory(data []byte) *Memory {
	if data == nil {
		return &Memory{}
	}
	return &Memory{data: slices.Clone(data), set: true}
}

// Read returns a copy of the last written value
func (m *Memory) Read(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, ErrEmpty
	}
	return slices.Clone(m.data), nil
}

// Write stores a copy of data
func (m *Memory) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data, m.set = slices.Clone(data), true
	m.writes++
	return nil
}

// Writes returns number of writes so far
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Close does nothing
func (m *Memory) Close() error { return nil }

func (m *Memory) String() string { return "memory" }
