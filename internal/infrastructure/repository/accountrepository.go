package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/mappers"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/models"
	"github.com/artsoul-app/artsoul/internal/shared/db"
	apperrors "github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// AccountRepository implements account.Repository with gorm
type AccountRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAccountRepository(db *gorm.DB, logger logger.Interface) *AccountRepository {
	return &AccountRepository{db: db, logger: logger}
}

// Create inserts the account. A uniqueness violation on email becomes account.ErrEmailTaken.
func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	model := mappers.AccountToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return account.ErrEmailTaken
		}
		r.logger.Errorw("failed to create account", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create account: %w", err)
	}

	a.SetID(model.ID)
	r.logger.Infow("account created", "sid", model.SID, "external", model.PasswordHash == nil)
	return nil
}

func (r *AccountRepository) first(ctx context.Context, what string, query any, args ...any) (*account.Account, error) {
	var model models.AccountModel
	err := db.GetTxFromContext(ctx, r.db).Where(query, args...).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get account", "by", what, "error", err)
		return nil, fmt.Errorf("failed to get account by %s: %w", what, err)
	}
	return mappers.AccountToEntity(&model), nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	return r.first(ctx, "id", "id = ?", id)
}

func (r *AccountRepository) GetBySID(ctx context.Context, sid string) (*account.Account, error) {
	return r.first(ctx, "sid", "sid = ?", sid)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.first(ctx, "email", "email = ?", account.NormalizeEmail(email))
}

func (r *AccountRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*account.Account, error) {
	return r.first(ctx, "reset token", "reset_token_hash = ?", tokenHash)
}

// EmailHeldByDeleted reports whether a soft-deleted account still owns email.
func (r *AccountRepository) EmailHeldByDeleted(ctx context.Context, email string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Unscoped().
		Model(&models.AccountModel{}).
		Where("email = ? AND deleted_at IS NOT NULL", account.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check deleted accounts", "error", err)
		return false, fmt.Errorf("failed to check deleted accounts: %w", err)
	}
	return count > 0, nil
}

// Update saves every mutable column of the account.
func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	model := mappers.AccountToModel(a)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":                    model.Name,
			"email":                   model.Email,
			"password_hash":           model.PasswordHash,
			"birthdate":               model.Birthdate,
			"preferences":             model.Preferences,
			"personality_profile_sid": model.PersonalityProfileSID,
			"reset_token_hash":        model.ResetTokenHash,
			"reset_token_expires_at":  model.ResetTokenExpiresAt,
			"updated_at":              model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return account.ErrEmailTaken
		}
		r.logger.Errorw("failed to update account", "sid", model.SID, "error", result.Error)
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	return nil
}

// SoftDelete sets deleted_at; the row and its email stay in place.
func (r *AccountRepository) SoftDelete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AccountModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete account", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Account not found")
	}
	r.logger.Infow("account soft deleted", "id", id)
	return nil
}
