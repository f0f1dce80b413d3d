package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/artsoul-app/artsoul/internal/domain/personality"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/mappers"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/models"
	"github.com/artsoul-app/artsoul/internal/shared/db"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// PersonalityProfileRepository implements personality.Repository with gorm.
// Soft-deleted rows are excluded by gorm's default scope.
type PersonalityProfileRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPersonalityProfileRepository(db *gorm.DB, logger logger.Interface) *PersonalityProfileRepository {
	return &PersonalityProfileRepository{db: db, logger: logger}
}

func (r *PersonalityProfileRepository) bySubject(ctx context.Context, subject personality.Subject) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Where("entity_type = ? AND entity_ref = ?", string(subject.Kind()), subject.Ref())
}

func (r *PersonalityProfileRepository) GetLive(ctx context.Context, subject personality.Subject) (*personality.Profile, error) {
	var model models.PersonalityProfileModel
	err := r.bySubject(ctx, subject).Order("created_at DESC, id DESC").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get personality profile", "entity_type", subject.Kind(), "entity_ref", subject.Ref(), "error", err)
		return nil, fmt.Errorf("failed to get personality profile: %w", err)
	}
	return mappers.ProfileToEntity(&model)
}

func (r *PersonalityProfileRepository) ListLive(ctx context.Context, subject personality.Subject) ([]*personality.Profile, error) {
	var rows []*models.PersonalityProfileModel
	if err := r.bySubject(ctx, subject).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list personality profiles", "entity_type", subject.Kind(), "entity_ref", subject.Ref(), "error", err)
		return nil, fmt.Errorf("failed to list personality profiles: %w", err)
	}

	profiles := make([]*personality.Profile, 0, len(rows))
	for _, row := range rows {
		p, err := mappers.ProfileToEntity(row)
		if err != nil {
			r.logger.Warnw("skipping unreadable personality profile", "sid", row.SID, "error", err)
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *PersonalityProfileRepository) Create(ctx context.Context, p *personality.Profile) error {
	model := mappers.ProfileToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create personality profile", "sid", model.SID, "error", err)
		return fmt.Errorf("failed to create personality profile: %w", err)
	}
	p.SetID(model.ID)
	return nil
}

func (r *PersonalityProfileRepository) Update(ctx context.Context, p *personality.Profile) error {
	model := mappers.ProfileToModel(p)
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PersonalityProfileModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"scores":      model.Scores,
			"total_score": model.TotalScore,
			"test_type":   model.TestType,
			"updated_at":  model.UpdatedAt,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update personality profile", "sid", model.SID, "error", err)
		return fmt.Errorf("failed to update personality profile: %w", err)
	}
	return nil
}

func (r *PersonalityProfileRepository) SoftDelete(ctx context.Context, subject personality.Subject) (bool, error) {
	result := r.bySubject(ctx, subject).
		Model(&models.PersonalityProfileModel{}).
		Update("deleted_at", time.Now().UTC())
	if result.Error != nil {
		r.logger.Errorw("failed to delete personality profile", "entity_type", subject.Kind(), "entity_ref", subject.Ref(), "error", result.Error)
		return false, fmt.Errorf("failed to delete personality profile: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
