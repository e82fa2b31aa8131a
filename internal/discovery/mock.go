package discovery

import "sync"

// MockClient is a mock implementation of the DiscoveryClient interface for
// testing. It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	FindOpenMatchesFunc func(params *SearchParams) ([]NetworkMatch, error)

	// Call records
	FindOpenMatchesCalls []*SearchParams
}

// NewMock creates a new mock instance.
func NewMock() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindOpenMatchesCalls = nil
}

func (m *MockClient) FindOpenMatches(params *SearchParams) ([]NetworkMatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindOpenMatchesCalls = append(m.FindOpenMatchesCalls, params)
	if m.FindOpenMatchesFunc != nil {
		return m.FindOpenMatchesFunc(params)
	}
	return nil, nil
}
