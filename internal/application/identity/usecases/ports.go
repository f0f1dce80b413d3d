package usecases

import (
	"context"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/infrastructure/cache"
)

// IdentityProvider is the consent and profile side of an OAuth provider
type IdentityProvider interface {
	AuthURL(state string) string
	FetchProfile(ctx context.Context, code string) (*account.ExternalProfile, error)
}

type CredentialIssuer interface {
	Issue(a *account.Account) (string, error)
}

// SessionCodeStore keeps one-time codes that redeem to a credential
type SessionCodeStore interface {
	Put(ctx context.Context, grant cache.SessionGrant) (string, error)
	Take(ctx context.Context, code string) (*cache.SessionGrant, error)
}

// CallbackObserver records how each provider callback ended
type CallbackObserver interface {
	RecordOAuthCallback(outcome string)
}
