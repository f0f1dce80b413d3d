package account

import "strings"

// ExternalProfile is the verified profile an identity provider returns.
type ExternalProfile struct {
	Provider   string
	ProviderID string
	Email      string
	Name       string
	GivenName  string
	FamilyName string
}

// DisplayName prefers the provider's full name, then given and family name.
func (p ExternalProfile) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	if name := strings.TrimSpace(strings.TrimSpace(p.GivenName) + " " + strings.TrimSpace(p.FamilyName)); name != "" {
		return name
	}
	return "User"
}
