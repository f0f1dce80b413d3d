package account

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/catalog"
)

// ListKind names one of the two artwork sets an account keeps.
type ListKind string

const (
	ListFavorites ListKind = "favorites"
	ListPending   ListKind = "pending"
)

// ParseListKind validates a list name from a route.
func ParseListKind(s string) (ListKind, error) {
	switch ListKind(s) {
	case ListFavorites, ListPending:
		return ListKind(s), nil
	default:
		return "", fmt.Errorf("unknown list %q", s)
	}
}

func (k ListKind) String() string {
	return string(k)
}

// CollectionRepository stores the set-valued relation between accounts and artworks.
// Membership is unique per (account, artwork, list).
type CollectionRepository interface {
	Contains(ctx context.Context, accountID, artworkID uint, list ListKind) (bool, error)

	// Add inserts the membership; an existing one is left untouched and reported as not added
	Add(ctx context.Context, accountID, artworkID uint, list ListKind) (added bool, err error)

	// Remove deletes the membership if present
	Remove(ctx context.Context, accountID, artworkID uint, list ListKind) error

	// List returns the artworks of a set, most recently added first
	List(ctx context.Context, accountID uint, list ListKind) ([]*catalog.Artwork, error)
}
