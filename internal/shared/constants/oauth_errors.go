package constants

// OAuthErrorCode represents errors returned by the provider on the callback URL
type OAuthErrorCode string

const (
	OAuthErrorAccessDenied       OAuthErrorCode = "access_denied"
	OAuthErrorInvalidRequest     OAuthErrorCode = "invalid_request"
	OAuthErrorUnauthorizedClient OAuthErrorCode = "unauthorized_client"
	OAuthErrorServerError        OAuthErrorCode = "server_error"
)

var oauthErrorMessages = map[OAuthErrorCode]string{
	OAuthErrorAccessDenied:       "You denied the authorization request. Please try again if you wish to continue.",
	OAuthErrorInvalidRequest:     "Invalid OAuth request.",
	OAuthErrorUnauthorizedClient: "OAuth application is not authorized.",
	OAuthErrorServerError:        "OAuth provider encountered an error. Please try again later.",
}

// GetOAuthErrorMessage returns a user-facing message for a provider error code
func GetOAuthErrorMessage(code OAuthErrorCode) string {
	if msg, ok := oauthErrorMessages[code]; ok {
		return msg
	}
	return "Authentication failed. Please try again."
}
