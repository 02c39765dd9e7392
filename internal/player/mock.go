package player

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a testify mock of Runner.
//
//	r := new(MockRunner)
//	r.On("Start", "mpv", []string{"--no-video", "https://radio.example"}).Return(nil)
type MockRunner struct {
	mock.Mock
}

// Run returns the configured stdout, stderr and error.
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	a := m.Called(name, args)
	return a.String(0), a.String(1), a.Error(2)
}

// Start returns the configured error.
func (m *MockRunner) Start(name string, args ...string) error {
	a := m.Called(name, args)
	return a.Error(0)
}
