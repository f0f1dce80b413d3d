package repository

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/mappers"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/models"
	"github.com/artsoul-app/artsoul/internal/shared/db"
	apperrors "github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// ArtworkRepository implements catalog.ArtworkRepository with gorm
type ArtworkRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewArtworkRepository(db *gorm.DB, logger logger.Interface) *ArtworkRepository {
	return &ArtworkRepository{db: db, logger: logger}
}

func (r *ArtworkRepository) first(ctx context.Context, column, value string) (*catalog.Artwork, error) {
	return r.firstWith(db.GetTxFromContext(ctx, r.db), column, value)
}

func (r *ArtworkRepository) firstWith(query *gorm.DB, column, value string) (*catalog.Artwork, error) {
	var model models.ArtworkModel
	err := query.Where(column+" = ?", value).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get artwork", column, value, "error", err)
		return nil, fmt.Errorf("failed to get artwork by %s: %w", column, err)
	}
	return mappers.ArtworkToEntity(&model), nil
}

func (r *ArtworkRepository) GetByGlobalID(ctx context.Context, globalID string) (*catalog.Artwork, error) {
	return r.first(ctx, "global_id", globalID)
}

// GetCommittedByGlobalID reads the latest committed row. Inside a unit of
// work on MySQL or PostgreSQL a plain read is served from the transaction's
// snapshot, which predates a row a concurrent writer committed after it, so
// the read takes a shared lock there instead.
func (r *ArtworkRepository) GetCommittedByGlobalID(ctx context.Context, globalID string) (*catalog.Artwork, error) {
	query := db.GetTxFromContext(ctx, r.db)
	if db.InUnitOfWork(ctx) {
		query = withSharedLock(query)
	}
	return r.firstWith(query, "global_id", globalID)
}

// withSharedLock adds FOR SHARE where the dialect has it. SQLite serialises
// writers, so its reads already see committed rows.
func withSharedLock(query *gorm.DB) *gorm.DB {
	switch query.Dialector.Name() {
	case "mysql", "postgres":
		return query.Clauses(clause.Locking{Strength: "SHARE"})
	default:
		return query
	}
}

func (r *ArtworkRepository) GetBySID(ctx context.Context, sid string) (*catalog.Artwork, error) {
	return r.first(ctx, "sid", sid)
}

// CreateIfAbsent inserts with ON CONFLICT DO NOTHING so that a concurrent
// insert of the same global ID never surfaces as an error.
func (r *ArtworkRepository) CreateIfAbsent(ctx context.Context, a *catalog.Artwork) (bool, error) {
	model := mappers.ArtworkToModel(a)

	result := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "global_id"}}, DoNothing: true}).
		Create(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return false, nil
		}
		r.logger.Errorw("failed to create artwork", "global_id", model.GlobalID, "error", result.Error)
		return false, fmt.Errorf("failed to create artwork: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	a.SetID(model.ID)
	return true, nil
}

// List returns a page of artworks, newest first, with the total matching count.
// It never joins a unit of work; count and page are queried concurrently.
func (r *ArtworkRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Artwork, int64, error) {
	filtered := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Model(&models.ArtworkModel{})
		if filter.Category != "" {
			tx = tx.Where("category = ?", string(filter.Category))
		}
		if filter.Source != "" {
			tx = tx.Where("source = ?", string(filter.Source))
		}
		return tx
	}

	var (
		total int64
		rows  []*models.ArtworkModel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.db.WithContext(gctx).Scopes(filtered).Count(&total).Error; err != nil {
			r.logger.Errorw("failed to count artworks", "error", err)
			return fmt.Errorf("failed to count artworks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		offset := (filter.Page - 1) * filter.Limit
		err := r.db.WithContext(gctx).Scopes(filtered).
			Order("created_at DESC, id DESC").Offset(offset).Limit(filter.Limit).
			Find(&rows).Error
		if err != nil {
			r.logger.Errorw("failed to list artworks", "error", err)
			return fmt.Errorf("failed to list artworks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return mappers.ArtworksToEntities(rows), total, nil
}
