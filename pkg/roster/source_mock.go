package roster

import (
	"context"
	"sync"
)

// MockSource is a mock implementation of Source for testing
type MockSource struct {
	mu sync.Mutex

	// Control behavior
	MembersFunc func(ctx context.Context) ([]Member, error)

	// Track calls for assertions
	MembersCalls int
}

// Members implements Source
func (m *MockSource) Members(ctx context.Context) ([]Member, error) {
	m.mu.Lock()
	m.MembersCalls++
	m.mu.Unlock()

	if m.MembersFunc != nil {
		return m.MembersFunc(ctx)
	}

	return nil, nil
}
