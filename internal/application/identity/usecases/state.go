package usecases

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

type oauthState struct {
	RedirectURI string `json:"redirect_uri"`
}

// EncodeState wraps the return address into the opaque provider state.
// An empty address produces no state.
func EncodeState(redirectURI string) string {
	if redirectURI == "" {
		return ""
	}
	raw, _ := json.Marshal(oauthState{RedirectURI: redirectURI})
	return base64.RawURLEncoding.EncodeToString(raw)
}

var stateEncodings = []*base64.Encoding{
	base64.RawURLEncoding,
	base64.URLEncoding,
	base64.StdEncoding,
	base64.RawStdEncoding,
}

// DecodeState recovers the return address. Anything it cannot decode is
// treated as no return address.
func DecodeState(state string) string {
	state = strings.TrimSpace(state)
	if state == "" {
		return ""
	}
	for _, enc := range stateEncodings {
		raw, err := enc.DecodeString(state)
		if err != nil {
			continue
		}
		var s oauthState
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		return strings.TrimSpace(s.RedirectURI)
	}
	return ""
}
