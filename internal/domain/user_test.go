package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("reader@example.com", "a-long-enough-password")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "reader@example.com", user.Email)
	assert.Empty(t, user.GoogleID)
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "a-long-enough-password", ErrEmptyEmail},
		{"malformed email", "not-an-email", "a-long-enough-password", ErrInvalidEmail},
		{"short password", "reader@example.com", "short", ErrPasswordTooShort},
		{
			"long password",
			"reader@example.com",
			"ppppppppppppppppppppppppppppppppppppppppppppppppppppppppppppppppppppppppp",
			ErrPasswordTooLong,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.email, tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewGoogleUser(t *testing.T) {
	user, err := NewGoogleUser("reader@example.com", "google-subject-123")
	require.NoError(t, err)

	assert.Equal(t, "google-subject-123", user.GoogleID)
	assert.Empty(t, user.HashedPassword)
	assert.NoError(t, user.Validate(), "federated users need no password")

	_, err = NewGoogleUser("reader@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestUserValidateStoredUser(t *testing.T) {
	user := &User{
		ID:             uuid.New(),
		Email:          "reader@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
