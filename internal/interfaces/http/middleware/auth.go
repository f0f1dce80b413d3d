package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/infrastructure/auth"
	"github.com/artsoul-app/artsoul/internal/shared/constants"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/utils"
)

// CredentialVerifier checks a bearer credential and returns its claims
type CredentialVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier    CredentialVerifier
	accountRepo account.Repository
	logger      logger.Interface
}

func NewAuthMiddleware(verifier CredentialVerifier, accountRepo account.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:    verifier,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// RequireAuth admits requests carrying a valid credential for a live account.
// A soft-deleted account is reported as not found.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			m.logger.Warnw("failed to verify credential", "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		a, err := m.accountRepo.GetBySID(c.Request.Context(), claims.AccountRef)
		if err != nil {
			m.logger.Errorw("failed to load account for credential", "error", err, "account_id", claims.AccountRef)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}
		if a == nil {
			utils.ErrorResponse(c, http.StatusNotFound, "account not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAccountID, a.SID())
		c.Set(constants.ContextKeyAccountClaim, claims)

		c.Next()
	}
}

// AccountRef returns the authenticated account reference, or "" outside RequireAuth.
func AccountRef(c *gin.Context) string {
	return c.GetString(constants.ContextKeyAccountID)
}
