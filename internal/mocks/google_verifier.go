package mocks

import (
	"context"

	"github.com/salmansheikhutk/readarabicbackend/internal/service/auth"
)

// MockGoogleVerifier implements auth.GoogleVerifier for testing.
type MockGoogleVerifier struct {
	// VerifyFn allows custom verification logic in tests.
	VerifyFn func(ctx context.Context, idToken string) (*auth.GoogleIdentity, error)

	// Default values used when VerifyFn isn't defined
	Identity *auth.GoogleIdentity
	Err      error
}

var _ auth.GoogleVerifier = (*MockGoogleVerifier)(nil)

// Verify implements the auth.GoogleVerifier interface.
func (m *MockGoogleVerifier) Verify(ctx context.Context, idToken string) (*auth.GoogleIdentity, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, idToken)
	}
	return m.Identity, m.Err
}
