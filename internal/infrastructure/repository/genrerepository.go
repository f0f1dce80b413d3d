package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/mappers"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/models"
	"github.com/artsoul-app/artsoul/internal/shared/db"
	apperrors "github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// GenreRepository implements catalog.GenreRepository with gorm
type GenreRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewGenreRepository(db *gorm.DB, logger logger.Interface) *GenreRepository {
	return &GenreRepository{db: db, logger: logger}
}

func (r *GenreRepository) first(ctx context.Context, column, value string) (*catalog.Genre, error) {
	var model models.GenreModel
	err := db.GetTxFromContext(ctx, r.db).Where(column+" = ?", value).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get genre", column, value, "error", err)
		return nil, fmt.Errorf("failed to get genre by %s: %w", column, err)
	}
	return mappers.GenreToEntity(&model), nil
}

func (r *GenreRepository) GetBySID(ctx context.Context, sid string) (*catalog.Genre, error) {
	return r.first(ctx, "sid", sid)
}

func (r *GenreRepository) GetByName(ctx context.Context, name string) (*catalog.Genre, error) {
	return r.first(ctx, "name", name)
}

func (r *GenreRepository) CreateIfAbsent(ctx context.Context, g *catalog.Genre) (bool, error) {
	model := mappers.GenreToModel(g)

	result := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return false, nil
		}
		r.logger.Errorw("failed to create genre", "name", model.Name, "error", result.Error)
		return false, fmt.Errorf("failed to create genre: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	g.SetID(model.ID)
	return true, nil
}

func (r *GenreRepository) Update(ctx context.Context, g *catalog.Genre) error {
	model := mappers.GenreToModel(g)
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.GenreModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"description":             model.Description,
			"personality_profile_sid": model.PersonalityProfileSID,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update genre", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update genre: %w", err)
	}
	return nil
}
