package http

import (
	"fmt"

	accountUsecases "github.com/artsoul-app/artsoul/internal/application/account/usecases"
	catalogUsecases "github.com/artsoul-app/artsoul/internal/application/catalog/usecases"
	identityUsecases "github.com/artsoul-app/artsoul/internal/application/identity/usecases"
	"github.com/artsoul-app/artsoul/internal/infrastructure/auth"
	"github.com/artsoul-app/artsoul/internal/infrastructure/config"
	"github.com/artsoul-app/artsoul/internal/infrastructure/email"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/services/markdown"
)

// The helpers below return untyped nil interfaces for providers that are not
// configured, so the use cases can tell "disabled" apart from a broken client.

func newGoogleProvider(cfg *config.Config) identityUsecases.IdentityProvider {
	if !cfg.OAuth.Google.Enabled() {
		return nil
	}
	return auth.NewGoogleOAuthClient(auth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.Google.ClientID,
		ClientSecret: cfg.OAuth.Google.ClientSecret,
		RedirectURL:  cfg.OAuth.Google.RedirectURL,
		Timeout:      seconds(cfg.OAuth.TimeoutSeconds),
	})
}

func newMailer(cfg *config.Config, md markdown.Service, log logger.Interface) accountUsecases.PasswordResetMailer {
	if !cfg.Email.Enabled() {
		log.Warnw("SMTP is not configured, password reset mail will not be delivered")
		return email.NewDisabledEmailService(log)
	}
	return email.NewSMTPEmailService(email.SMTPConfig{
		Host:          cfg.Email.SMTPHost,
		Port:          cfg.Email.SMTPPort,
		Username:      cfg.Email.SMTPUser,
		Password:      cfg.Email.SMTPPassword,
		FromAddress:   cfg.Email.FromAddress,
		FromName:      cfg.Email.FromName,
		LinkBaseURL:   cfg.Server.FrontendURL,
		ResetValidity: fmt.Sprintf("%d minutes", cfg.Auth.ResetExpiresMinutes),
	}, md, log)
}

func (s *services) gameSearcher() catalogUsecases.GameSearcher {
	if s.igdb == nil {
		return nil
	}
	return s.igdb
}

func (s *services) musicTokens() catalogUsecases.AppTokenSource {
	if s.spotifyTokens == nil {
		return nil
	}
	return s.spotifyTokens
}
