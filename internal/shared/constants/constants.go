package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyAccountID    = "account_id"
	ContextKeyAccountClaim = "account_claims"
	ContextKeyRequestID    = "request_id"

	// Database table names
	TableAccounts            = "accounts"
	TableArtworks            = "artworks"
	TableAccountArtworks     = "account_artworks"
	TableGenres              = "genres"
	TablePersonalityProfiles = "personality_profiles"

	// Bcrypt cost used when none is configured
	DefaultBcryptCost = 10

	// Credential validity when none is configured
	DefaultCredentialDays = 365

	// PlaceholderAuthorizationCode is the literal that documentation examples use in place of a real code.
	PlaceholderAuthorizationCode = "AUTHORIZATION_CODE"

	// ActivationPath serves the custom scheme activation page.
	ActivationPath = "/identity/redirect-activation"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
)
