package http

import (
	"time"

	accountUsecases "github.com/artsoul-app/artsoul/internal/application/account/usecases"
	catalogUsecases "github.com/artsoul-app/artsoul/internal/application/catalog/usecases"
	collectionUsecases "github.com/artsoul-app/artsoul/internal/application/collection/usecases"
	identityUsecases "github.com/artsoul-app/artsoul/internal/application/identity/usecases"
	personalityUsecases "github.com/artsoul-app/artsoul/internal/application/personality/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Account
	registerUC      *accountUsecases.RegisterUseCase
	loginUC         *accountUsecases.LoginUseCase
	getAccountUC    *accountUsecases.GetAccountUseCase
	updateAccountUC *accountUsecases.UpdateAccountUseCase
	deleteAccountUC *accountUsecases.DeleteAccountUseCase
	requestResetUC  *accountUsecases.RequestPasswordResetUseCase
	resetPasswordUC *accountUsecases.ResetPasswordUseCase

	// Identity
	startOAuthUC   *identityUsecases.StartOAuthUseCase
	reconcileUC    *identityUsecases.ReconcileIdentityUseCase
	callbackUC     *identityUsecases.HandleCallbackUseCase
	exchangeCodeUC *identityUsecases.ExchangeSessionCodeUseCase

	// Catalog
	upsertArtworkUC *catalogUsecases.UpsertArtworkUseCase
	listArtworksUC  *catalogUsecases.ListArtworksUseCase
	getArtworkUC    *catalogUsecases.GetArtworkUseCase
	searchGamesUC   *catalogUsecases.SearchGamesUseCase
	musicTokenUC    *catalogUsecases.MusicTokenUseCase

	// Collections
	addToCollectionUC      *collectionUsecases.AddToCollectionUseCase
	removeFromCollectionUC *collectionUsecases.RemoveFromCollectionUseCase
	listCollectionUC       *collectionUsecases.ListCollectionUseCase

	// Personality
	saveProfileUC      *personalityUsecases.SaveProfileUseCase
	getProfileUC       *personalityUsecases.GetProfileUseCase
	listUserProfilesUC *personalityUsecases.ListUserProfilesUseCase
	deleteProfileUC    *personalityUsecases.DeleteProfileUseCase
}

// ============================================================
// Section 3: Use cases
// ============================================================

func (c *Container) initUseCases() {
	r := c.repos
	s := c.svcs
	log := c.log
	u := &allUseCases{}

	// Account
	u.registerUC = accountUsecases.NewRegisterUseCase(r.accountRepo, s.hasher, s.jwtSvc, log)
	u.loginUC = accountUsecases.NewLoginUseCase(r.accountRepo, s.hasher, s.jwtSvc, log)
	u.getAccountUC = accountUsecases.NewGetAccountUseCase(r.accountRepo, log)
	u.updateAccountUC = accountUsecases.NewUpdateAccountUseCase(r.accountRepo, s.hasher, log)
	u.deleteAccountUC = accountUsecases.NewDeleteAccountUseCase(r.accountRepo, log)
	u.requestResetUC = accountUsecases.NewRequestPasswordResetUseCase(
		r.accountRepo,
		s.resetTokens,
		s.mailer,
		time.Duration(c.cfg.Auth.ResetExpiresMinutes)*time.Minute,
		log,
	)
	u.resetPasswordUC = accountUsecases.NewResetPasswordUseCase(r.accountRepo, s.resetTokens, s.hasher, log)

	// Identity
	u.startOAuthUC = identityUsecases.NewStartOAuthUseCase(s.google, c.cfg.OAuth.AllowedRedirects, log)
	u.reconcileUC = identityUsecases.NewReconcileIdentityUseCase(r.accountRepo, log)
	u.callbackUC = identityUsecases.NewHandleCallbackUseCase(
		s.google,
		u.reconcileUC,
		s.jwtSvc,
		s.sessionCodes,
		c.metrics,
		identityUsecases.HandleCallbackOptions{
			AllowedRedirects:   c.cfg.OAuth.AllowedRedirects,
			DeliverSessionCode: c.cfg.OAuth.DeliverSessionCode,
		},
		log,
	)
	u.exchangeCodeUC = identityUsecases.NewExchangeSessionCodeUseCase(s.sessionCodes, r.accountRepo, log)

	// Catalog
	u.upsertArtworkUC = catalogUsecases.NewUpsertArtworkUseCase(r.artworkRepo, s.markdown, c.metrics, log)
	u.listArtworksUC = catalogUsecases.NewListArtworksUseCase(r.artworkRepo, log)
	u.getArtworkUC = catalogUsecases.NewGetArtworkUseCase(r.artworkRepo, log)
	u.searchGamesUC = catalogUsecases.NewSearchGamesUseCase(s.gameSearcher(), log)
	u.musicTokenUC = catalogUsecases.NewMusicTokenUseCase(s.musicTokens(), log)

	// Collections
	u.addToCollectionUC = collectionUsecases.NewAddToCollectionUseCase(
		s.txManager,
		u.upsertArtworkUC,
		r.accountRepo,
		r.collectionRepo,
		c.metrics,
		log,
	)
	u.removeFromCollectionUC = collectionUsecases.NewRemoveFromCollectionUseCase(r.accountRepo, r.artworkRepo, r.collectionRepo, log)
	u.listCollectionUC = collectionUsecases.NewListCollectionUseCase(r.accountRepo, r.collectionRepo, log)

	// Personality
	subjects := personalityUsecases.NewSubjectResolvers(r.accountRepo, r.artworkRepo, r.genreRepo)
	u.saveProfileUC = personalityUsecases.NewSaveProfileUseCase(s.txManager, r.personalityRepo, subjects, c.metrics, log)
	u.getProfileUC = personalityUsecases.NewGetProfileUseCase(r.personalityRepo, log)
	u.listUserProfilesUC = personalityUsecases.NewListUserProfilesUseCase(r.accountRepo, r.personalityRepo, log)
	u.deleteProfileUC = personalityUsecases.NewDeleteProfileUseCase(r.personalityRepo, log)

	c.ucs = u
}

