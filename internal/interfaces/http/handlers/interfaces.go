package handlers

import (
	"context"
	"encoding/json"

	accountusecases "github.com/artsoul-app/artsoul/internal/application/account/usecases"
	catalogusecases "github.com/artsoul-app/artsoul/internal/application/catalog/usecases"
	collectionusecases "github.com/artsoul-app/artsoul/internal/application/collection/usecases"
	identityusecases "github.com/artsoul-app/artsoul/internal/application/identity/usecases"
	personalityusecases "github.com/artsoul-app/artsoul/internal/application/personality/usecases"
	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/domain/personality"
	"github.com/artsoul-app/artsoul/internal/infrastructure/upstream"
)

// Use case interfaces for the handlers - enables unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd accountusecases.RegisterCommand) (*accountusecases.SessionResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd accountusecases.LoginCommand) (*accountusecases.SessionResult, error)
}

type getAccountUseCase interface {
	Execute(ctx context.Context, accountRef string) (*account.Account, error)
}

type updateAccountUseCase interface {
	Execute(ctx context.Context, cmd accountusecases.UpdateAccountCommand) (*account.Account, error)
}

type deleteAccountUseCase interface {
	Execute(ctx context.Context, accountRef string) error
}

type requestPasswordResetUseCase interface {
	Execute(ctx context.Context, cmd accountusecases.RequestPasswordResetCommand) error
}

type resetPasswordUseCase interface {
	Execute(ctx context.Context, cmd accountusecases.ResetPasswordCommand) error
}

type startOAuthUseCase interface {
	Execute(redirectURI string) (string, error)
}

type handleCallbackUseCase interface {
	Execute(ctx context.Context, cmd identityusecases.CallbackCommand) (*identityusecases.Delivery, error)
}

type exchangeSessionCodeUseCase interface {
	Execute(ctx context.Context, code string) (*accountusecases.SessionResult, error)
}

type listArtworksUseCase interface {
	Execute(ctx context.Context, q catalogusecases.ListArtworksQuery) (*catalogusecases.ListArtworksResult, error)
}

type getArtworkUseCase interface {
	Execute(ctx context.Context, ref string) (*catalog.Artwork, error)
}

type searchGamesUseCase interface {
	Execute(ctx context.Context, term string) (json.RawMessage, error)
}

type musicTokenUseCase interface {
	Execute(ctx context.Context) (*upstream.AppToken, error)
}

type addToCollectionUseCase interface {
	Execute(ctx context.Context, cmd collectionusecases.AddToCollectionCommand) (*collectionusecases.AddToCollectionResult, error)
}

type removeFromCollectionUseCase interface {
	Execute(ctx context.Context, cmd collectionusecases.RemoveFromCollectionCommand) error
}

type listCollectionUseCase interface {
	Execute(ctx context.Context, accountRef string, list account.ListKind) ([]*catalog.Artwork, error)
}

type saveProfileUseCase interface {
	Execute(ctx context.Context, cmd personalityusecases.SaveProfileCommand) (*personalityusecases.SaveProfileResult, error)
}

type getProfileUseCase interface {
	Execute(ctx context.Context, entityType, entityID string) (*personality.Profile, error)
}

type listUserProfilesUseCase interface {
	Execute(ctx context.Context, accountRef string) ([]*personality.Profile, error)
}

type deleteProfileUseCase interface {
	Execute(ctx context.Context, callerRef, entityType, entityID string) error
}
