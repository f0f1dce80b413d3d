package catalog

import "context"

// ListFilter represents filtering and pagination options for the artwork listing
type ListFilter struct {
	Page     int
	Limit    int
	Category Category
	Source   Source
}

// ArtworkRepository persists artworks. Lookups return (nil, nil) when nothing matches.
type ArtworkRepository interface {
	GetByGlobalID(ctx context.Context, globalID string) (*Artwork, error)

	// GetCommittedByGlobalID sees rows committed by other writers after the
	// caller's unit of work began. Used to resolve an insert conflict.
	GetCommittedByGlobalID(ctx context.Context, globalID string) (*Artwork, error)

	// GetBySID retrieves an artwork by its internal reference
	GetBySID(ctx context.Context, sid string) (*Artwork, error)

	// CreateIfAbsent inserts the artwork unless one with the same global ID exists.
	// created is false when another writer got there first; the artwork is left unsaved.
	CreateIfAbsent(ctx context.Context, a *Artwork) (created bool, err error)

	List(ctx context.Context, filter ListFilter) ([]*Artwork, int64, error)
}

// GenreRepository persists genres. Lookups return (nil, nil) when nothing matches.
type GenreRepository interface {
	GetBySID(ctx context.Context, sid string) (*Genre, error)
	GetByName(ctx context.Context, name string) (*Genre, error)
	CreateIfAbsent(ctx context.Context, g *Genre) (created bool, err error)
	Update(ctx context.Context, g *Genre) error
}
