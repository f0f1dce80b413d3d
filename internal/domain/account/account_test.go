package account

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExternalAccountHasNoPassword(t *testing.T) {
	a, err := NewExternalAccount("  Ada Lovelace ", " Ada@Example.COM ")
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", a.Name())
	assert.Equal(t, "ada@example.com", a.Email())
	assert.False(t, a.HasPassword())
	assert.True(t, strings.HasPrefix(a.SID(), "acc_"))
}

func TestNewAccountRequiresEmailAndHash(t *testing.T) {
	_, err := NewAccount("Ada", "", "hash", nil, Preferences{})
	assert.Error(t, err)

	_, err = NewAccount("Ada", "ada@example.com", "", nil, Preferences{})
	assert.Error(t, err)

	a, err := NewAccount("Ada", "ada@example.com", "hash", nil, Preferences{FavoriteTypes: []string{"cine"}})
	require.NoError(t, err)
	assert.True(t, a.HasPassword())
	assert.Equal(t, []string{"cine"}, a.Preferences().FavoriteTypes)
}

func TestPasswordResetLifecycle(t *testing.T) {
	a, err := NewExternalAccount("Ada", "ada@example.com")
	require.NoError(t, err)

	now := time.Now()
	assert.True(t, a.ResetTokenExpired(now), "no token issued yet")

	a.IssueResetToken("digest", now.Add(30*time.Minute))
	assert.False(t, a.ResetTokenExpired(now))
	assert.True(t, a.ResetTokenExpired(now.Add(31*time.Minute)))

	a.CompletePasswordReset("new-hash")
	assert.True(t, a.HasPassword())
	assert.Nil(t, a.State().ResetTokenHash)
	assert.True(t, a.ResetTokenExpired(now))
}

func TestParseListKind(t *testing.T) {
	k, err := ParseListKind("pending")
	require.NoError(t, err)
	assert.Equal(t, ListPending, k)

	_, err = ParseListKind("wishlist")
	assert.Error(t, err)
}
