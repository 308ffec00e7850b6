package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// GetMessage implements the GitClient interface.
func (m *MockGitClient) GetMessage(ctx context.Context, repoPath string, ref string) (string, error) {
	ret := m.Called(ctx, repoPath, ref)
	msg, _ := ret.Get(0).(string)
	return msg, ret.Error(1)
}

// GetSubject implements the GitClient interface.
func (m *MockGitClient) GetSubject(ctx context.Context, repoPath string, ref string) string {
	ret := m.Called(ctx, repoPath, ref)
	return ret.String(0)
}

// GetRecentHashes implements the GitClient interface.
func (m *MockGitClient) GetRecentHashes(ctx context.Context, repoPath string, limit int) ([]string, error) {
	ret := m.Called(ctx, repoPath, limit)
	hashes, _ := ret.Get(0).([]string)
	return hashes, ret.Error(1)
}
