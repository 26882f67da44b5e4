package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/mocks"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/auth"
)

func postJSON(t *testing.T, handler http.HandlerFunc, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func newTestAuthHandler(userStore *mocks.MockUserStore) *AuthHandler {
	return NewAuthHandler(
		userStore,
		&mocks.MockJWTService{Token: "test-token", RefreshToken: "test-refresh"},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
		&mocks.MockGoogleVerifier{},
	)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantToken  bool
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"email":    "reader@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusCreated,
			wantToken:  true,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"email":    "invalid-email",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"email":    "reader@example.com",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			handler := newTestAuthHandler(userStore)

			w := postJSON(t, handler.Register, tt.payload)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantToken {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "test-token", resp.AccessToken)
				assert.Equal(t, "test-refresh", resp.RefreshToken)

				stored := userStore.Users["reader@example.com"]
				require.NotNil(t, stored)
				assert.Empty(t, stored.Password, "plaintext password must not be retained")
				assert.NotEmpty(t, stored.HashedPassword)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := newTestAuthHandler(userStore)

	payload := map[string]interface{}{
		"email":    "reader@example.com",
		"password": "password1234567",
	}

	w := postJSON(t, handler.Register, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, handler.Register, payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user, err := domain.NewUser("reader@example.com", "password1234567")
	require.NoError(t, err)
	user.HashedPassword = "hashed:password1234567"
	userStore.Users[user.Email] = user

	t.Run("valid credentials", func(t *testing.T) {
		handler := newTestAuthHandler(userStore)
		w := postJSON(t, handler.Login, map[string]interface{}{
			"email":    "reader@example.com",
			"password": "password1234567",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		handler := NewAuthHandler(
			userStore,
			&mocks.MockJWTService{Token: "test-token"},
			&mocks.MockPasswordVerifier{ShouldSucceed: false},
			&mocks.MockGoogleVerifier{},
		)
		w := postJSON(t, handler.Login, map[string]interface{}{
			"email":    "reader@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		handler := newTestAuthHandler(userStore)
		w := postJSON(t, handler.Login, map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "password1234567",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLogin_FederatedAccountHasNoPassword(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user, err := domain.NewGoogleUser("reader@example.com", "google-subject-1")
	require.NoError(t, err)
	userStore.Users[user.Email] = user

	handler := newTestAuthHandler(userStore)
	w := postJSON(t, handler.Login, map[string]interface{}{
		"email":    "reader@example.com",
		"password": "password1234567",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGoogleLogin_FirstSignInCreatesUser(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := NewAuthHandler(
		userStore,
		&mocks.MockJWTService{Token: "test-token", RefreshToken: "test-refresh"},
		&mocks.MockPasswordVerifier{},
		&mocks.MockGoogleVerifier{Identity: &auth.GoogleIdentity{
			Subject: "google-subject-1",
			Email:   "reader@example.com",
		}},
	)

	w := postJSON(t, handler.GoogleLogin, map[string]interface{}{"id_token": "valid"})
	require.Equal(t, http.StatusOK, w.Code)

	stored := userStore.Users["reader@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, "google-subject-1", stored.GoogleID)
	assert.Empty(t, stored.HashedPassword)

	// Second sign-in reuses the account.
	w = postJSON(t, handler.GoogleLogin, map[string]interface{}{"id_token": "valid"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, userStore.Users, 1)
}

func TestGoogleLogin_InvalidToken(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(
		mocks.NewMockUserStore(),
		&mocks.MockJWTService{},
		&mocks.MockPasswordVerifier{},
		&mocks.MockGoogleVerifier{Err: auth.ErrGoogleTokenInvalid},
	)

	w := postJSON(t, handler.GoogleLogin, map[string]interface{}{"id_token": "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid refresh token", func(t *testing.T) {
		handler := NewAuthHandler(
			mocks.NewMockUserStore(),
			&mocks.MockJWTService{
				Token:        "new-access",
				RefreshToken: "new-refresh",
				Claims:       &auth.Claims{UserID: userID, TokenType: "refresh"},
			},
			&mocks.MockPasswordVerifier{},
			&mocks.MockGoogleVerifier{},
		)

		w := postJSON(t, handler.RefreshToken, map[string]interface{}{"refresh_token": "valid"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp RefreshTokenResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "new-access", resp.AccessToken)
		assert.Equal(t, "new-refresh", resp.RefreshToken)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		handler := NewAuthHandler(
			mocks.NewMockUserStore(),
			&mocks.MockJWTService{ValidateErr: auth.ErrExpiredRefreshToken},
			&mocks.MockPasswordVerifier{},
			&mocks.MockGoogleVerifier{},
		)

		w := postJSON(t, handler.RefreshToken, map[string]interface{}{"refresh_token": "expired"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing refresh token", func(t *testing.T) {
		handler := newTestAuthHandler(mocks.NewMockUserStore())
		w := postJSON(t, handler.RefreshToken, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
