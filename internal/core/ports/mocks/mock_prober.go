package mocks

import (
	"context"
	"sync"
)

// MockProber is a scripted implementation of the Prober port. Each URL can
// be marked reachable, unreachable, or failing with an error.
type MockProber struct {
	mu        sync.Mutex
	reachable map[string]bool
	errs      map[string]error
	probed    []string
}

// NewMockProber creates a prober where every URL is unreachable until marked.
func NewMockProber() *MockProber {
	return &MockProber{
		reachable: make(map[string]bool),
		errs:      make(map[string]error),
	}
}

// MarkReachable marks URLs as answering with an ok status.
func (m *MockProber) MarkReachable(urls ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range urls {
		m.reachable[u] = true
	}
}

// FailWith makes probing the URL return the given error.
func (m *MockProber) FailWith(url string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[url] = err
}

// Reachable implements the Prober port.
func (m *MockProber) Reachable(ctx context.Context, url string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probed = append(m.probed, url)
	if err, ok := m.errs[url]; ok {
		return false, err
	}
	return m.reachable[url], nil
}

// Probed returns every URL probed, in order.
func (m *MockProber) Probed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.probed...)
}

// ProbeCount returns how many times the URL was probed.
func (m *MockProber) ProbeCount(url string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, u := range m.probed {
		if u == url {
			count++
		}
	}
	return count
}
