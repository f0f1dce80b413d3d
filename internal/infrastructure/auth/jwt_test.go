package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	apperrors "github.com/artsoul-app/artsoul/internal/shared/errors"
)

func testAccount(t *testing.T) *account.Account {
	birthdate := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	a, err := account.NewAccount("Ada", "ada@example.com", "hash", &birthdate, account.Preferences{})
	require.NoError(t, err)
	return a
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 365)
	a := testAccount(t)

	token, err := svc.Issue(a)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, a.SID(), claims.AccountRef)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "1990-05-17", claims.Birthdate)
	assert.Empty(t, claims.PersonalityProfileRef)
}

func TestJWTService_ExternalAccountWithoutOptionalFields(t *testing.T) {
	svc := NewJWTService("secret", 365)
	a, err := account.NewExternalAccount("Grace", "grace@example.com")
	require.NoError(t, err)

	token, err := svc.Issue(a)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Birthdate)
	assert.Equal(t, a.SID(), claims.Subject)
}

func TestJWTService_Expired(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := issuedAt
	svc := NewJWTService("secret", 1).WithClock(func() time.Time { return now })

	token, err := svc.Issue(testAccount(t))
	require.NoError(t, err)

	now = issuedAt.Add(25 * time.Hour)
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeTokenExpired))
}

func TestJWTService_Invalid(t *testing.T) {
	svc := NewJWTService("secret", 365)
	other := NewJWTService("other-secret", 365)

	token, err := other.Issue(testAccount(t))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"foreign signature", token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			require.Error(t, err)
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeTokenInvalid))
		})
	}
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(4)

	digest, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", digest)

	assert.True(t, h.Verify("correct horse", digest))
	assert.False(t, h.Verify("wrong", digest))
	assert.False(t, h.Verify("correct horse", "not-a-hash"))
}
