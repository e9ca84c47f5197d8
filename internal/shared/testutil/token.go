package testutil

import (
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/token"
)

// MockTokenManager is a mock implementation of token.Manager for testing
type MockTokenManager struct {
	GenerateAccessTokenFunc func(staffID, role string) (string, error)
	ValidateTokenFunc       func(tokenString string) (*token.Claims, error)
}

func (m *MockTokenManager) GenerateAccessToken(staffID, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(staffID, role)
	}
	return "mock-access-token", nil
}

// ValidateToken accepts any token as staff 1 unless ValidateTokenFunc is set
func (m *MockTokenManager) ValidateToken(tokenString string) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	return &token.Claims{StaffID: "1", Role: token.RoleStaff}, nil
}

// Ensure MockTokenManager implements token.Manager
var _ token.Manager = (*MockTokenManager)(nil)

func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}
