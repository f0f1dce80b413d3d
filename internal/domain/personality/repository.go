package personality

import "context"

// Repository persists profiles. Only live (not soft-deleted) profiles are returned.
type Repository interface {
	// GetLive returns the live profile of a subject or (nil, nil)
	GetLive(ctx context.Context, subject Subject) (*Profile, error)

	// ListLive returns every live profile of a subject, newest first
	ListLive(ctx context.Context, subject Subject) ([]*Profile, error)

	Create(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error

	// SoftDelete flags the live profile of a subject; deleted is false when none was live
	SoftDelete(ctx context.Context, subject Subject) (deleted bool, err error)
}
