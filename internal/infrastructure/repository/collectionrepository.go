package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/mappers"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/models"
	"github.com/artsoul-app/artsoul/internal/shared/constants"
	"github.com/artsoul-app/artsoul/internal/shared/db"
	apperrors "github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// CollectionRepository implements account.CollectionRepository on the
// account_artworks set table.
type CollectionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCollectionRepository(db *gorm.DB, logger logger.Interface) *CollectionRepository {
	return &CollectionRepository{db: db, logger: logger}
}

func (r *CollectionRepository) Contains(ctx context.Context, accountID, artworkID uint, list account.ListKind) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountArtworkModel{}).
		Where("account_id = ? AND artwork_id = ? AND list = ?", accountID, artworkID, list.String()).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check collection membership", "account_id", accountID, "artwork_id", artworkID, "list", list, "error", err)
		return false, fmt.Errorf("failed to check collection membership: %w", err)
	}
	return count > 0, nil
}

func (r *CollectionRepository) Add(ctx context.Context, accountID, artworkID uint, list account.ListKind) (bool, error) {
	row := &models.AccountArtworkModel{
		AccountID: accountID,
		ArtworkID: artworkID,
		List:      list.String(),
	}

	result := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return false, nil
		}
		r.logger.Errorw("failed to add to collection", "account_id", accountID, "artwork_id", artworkID, "list", list, "error", result.Error)
		return false, fmt.Errorf("failed to add to collection: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *CollectionRepository) Remove(ctx context.Context, accountID, artworkID uint, list account.ListKind) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ? AND artwork_id = ? AND list = ?", accountID, artworkID, list.String()).
		Delete(&models.AccountArtworkModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to remove from collection", "account_id", accountID, "artwork_id", artworkID, "list", list, "error", err)
		return fmt.Errorf("failed to remove from collection: %w", err)
	}
	return nil
}

func (r *CollectionRepository) List(ctx context.Context, accountID uint, list account.ListKind) ([]*catalog.Artwork, error) {
	var rows []*models.ArtworkModel
	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableArtworks).
		Select(constants.TableArtworks+".*").
		Joins("JOIN "+constants.TableAccountArtworks+" ON "+constants.TableAccountArtworks+".artwork_id = "+constants.TableArtworks+".id").
		Where(constants.TableAccountArtworks+".account_id = ? AND "+constants.TableAccountArtworks+".list = ?", accountID, list.String()).
		Order(constants.TableAccountArtworks + ".created_at DESC").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list collection", "account_id", accountID, "list", list, "error", err)
		return nil, fmt.Errorf("failed to list collection: %w", err)
	}
	return mappers.ArtworksToEntities(rows), nil
}
