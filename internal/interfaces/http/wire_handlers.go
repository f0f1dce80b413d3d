package http

import (
	identityUsecases "github.com/artsoul-app/artsoul/internal/application/identity/usecases"
	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	accountHandler     *handlers.AccountHandler
	identityHandler    *handlers.IdentityHandler
	catalogHandler     *handlers.CatalogHandler
	favoritesHandler   *handlers.CollectionHandler
	pendingHandler     *handlers.CollectionHandler
	personalityHandler *handlers.PersonalityHandler
	healthHandler      *handlers.HealthHandler
}

// ============================================================
// Section 4: Handlers and middlewares
// ============================================================

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwtSvc, c.repos.accountRepo, log)
	if c.svcs.rateLimiter != nil {
		c.rateLimit = middleware.RateLimit(c.svcs.rateLimiter, log)
	}

	h := &allHandlers{}
	h.accountHandler = handlers.NewAccountHandler(
		u.registerUC,
		u.loginUC,
		u.getAccountUC,
		u.updateAccountUC,
		u.deleteAccountUC,
		u.requestResetUC,
		u.resetPasswordUC,
		log,
	)
	h.identityHandler = handlers.NewIdentityHandler(u.startOAuthUC, u.callbackUC, u.exchangeCodeUC,
		identityUsecases.NewReturnAddressPolicy(c.cfg.OAuth.AllowedRedirects), log)
	h.catalogHandler = handlers.NewCatalogHandler(u.listArtworksUC, u.getArtworkUC, u.searchGamesUC, u.musicTokenUC, log)
	h.favoritesHandler = handlers.NewCollectionHandler(account.ListFavorites, u.addToCollectionUC, u.removeFromCollectionUC, u.listCollectionUC, log)
	h.pendingHandler = handlers.NewCollectionHandler(account.ListPending, u.addToCollectionUC, u.removeFromCollectionUC, u.listCollectionUC, log)
	h.personalityHandler = handlers.NewPersonalityHandler(u.saveProfileUC, u.getProfileUC, u.listUserProfilesUC, u.deleteProfileUC, log)

	h.healthHandler = handlers.NewHealthHandler(c.pinger(), log)

	c.hdlrs = h
}
