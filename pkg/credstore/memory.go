package credstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store. The credential does not survive a restart,
// which makes it suitable for tests and for hosts that deliberately want a
// fresh login on every run.
type Memory struct {
	mu         sync.Mutex
	credential string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential, nil
}

func (m *Memory) Set(_ context.Context, credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	return nil
}
