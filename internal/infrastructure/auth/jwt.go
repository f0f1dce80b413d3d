package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	apperrors "github.com/artsoul-app/artsoul/internal/shared/errors"
)

const credentialTokenType = "credential"

// Claims is the signed claim set of a session credential. Optional fields
// are omitted when the account does not carry them.
type Claims struct {
	AccountRef            string `json:"id"`
	Name                  string `json:"name,omitempty"`
	Email                 string `json:"email"`
	Birthdate             string `json:"birthdate,omitempty"`
	PersonalityProfileRef string `json:"personality_profile,omitempty"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 session credentials.
type JWTService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewJWTService(secret string, expDays int) *JWTService {
	if expDays <= 0 {
		expDays = 365
	}
	return &JWTService{
		secret:   []byte(secret),
		validity: time.Duration(expDays) * 24 * time.Hour,
		now:      time.Now,
	}
}

// WithClock replaces the time source; used by tests to age credentials.
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

func (s *JWTService) Issue(a *account.Account) (string, error) {
	now := s.now().UTC()
	claims := &Claims{
		AccountRef: a.SID(),
		Name:       a.Name(),
		Email:      a.Email(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.SID(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if b := a.Birthdate(); b != nil {
		claims.Birthdate = b.UTC().Format(time.DateOnly)
	}
	if ref := a.PersonalityProfileRef(); ref != nil {
		claims.PersonalityProfileRef = *ref
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign credential: %w", err)
	}
	return token, nil
}

// Verify checks signature and expiry. An elapsed credential yields a
// token_expired AuthError; anything else unusable yields token_invalid.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewTokenExpiredError(credentialTokenType)
		}
		return nil, apperrors.NewTokenInvalidError(credentialTokenType)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AccountRef == "" {
		return nil, apperrors.NewTokenInvalidError(credentialTokenType)
	}
	return claims, nil
}
