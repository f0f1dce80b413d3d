package usecases

import (
	"net/url"
	"strings"
)

// Schemes that would run script if handed to a browser.
var blockedReturnSchemes = map[string]bool{
	"javascript": true,
	"data":       true,
	"vbscript":   true,
	"file":       true,
}

// ReturnAddressPolicy decides which client return addresses may receive a
// credential. Allow-list entries match on scheme and host exactly; a path in
// the entry matches on segment boundaries. A custom-scheme entry without a
// host (e.g. "app://") admits every address of that scheme. An empty list
// admits any usable address.
type ReturnAddressPolicy struct {
	allowed []*url.URL
}

func NewReturnAddressPolicy(entries []string) *ReturnAddressPolicy {
	p := &ReturnAddressPolicy{}
	for _, entry := range entries {
		u, err := url.Parse(strings.TrimSpace(entry))
		if err != nil || u.Scheme == "" {
			continue
		}
		p.allowed = append(p.allowed, u)
	}
	return p
}

// Usable reports whether uri is an absolute address a credential can be sent to.
func (p *ReturnAddressPolicy) Usable(uri string) bool {
	_, ok := parseReturnAddress(uri)
	return ok
}

// Allowed reports whether uri is usable and matches the allow-list.
func (p *ReturnAddressPolicy) Allowed(uri string) bool {
	u, ok := parseReturnAddress(uri)
	if !ok {
		return false
	}
	if len(p.allowed) == 0 {
		return true
	}
	for _, entry := range p.allowed {
		if entryMatches(entry, u) {
			return true
		}
	}
	return false
}

func parseReturnAddress(uri string) (*url.URL, bool) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, false
	}
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	if blockedReturnSchemes[strings.ToLower(u.Scheme)] {
		return nil, false
	}
	if isWebScheme(u.Scheme) && (u.Host == "" || u.User != nil) {
		return nil, false
	}
	return u, true
}

func entryMatches(entry, u *url.URL) bool {
	if !strings.EqualFold(entry.Scheme, u.Scheme) {
		return false
	}
	if entry.Host == "" {
		// web entries must name a host
		return !isWebScheme(entry.Scheme)
	}
	if !strings.EqualFold(entry.Host, u.Host) {
		return false
	}

	prefix := strings.TrimSuffix(entry.Path, "/")
	if prefix == "" {
		return true
	}
	return u.Path == prefix || strings.HasPrefix(u.Path, prefix+"/")
}

func isWebScheme(scheme string) bool {
	scheme = strings.ToLower(scheme)
	return scheme == "http" || scheme == "https"
}

// IsWebAddress reports whether uri is delivered by a plain redirect rather
// than through the activation page.
func IsWebAddress(uri string) bool {
	u, err := url.Parse(uri)
	if err != nil {
		return false
	}
	return isWebScheme(u.Scheme)
}
