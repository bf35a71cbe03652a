package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
	"github.com/charanreddy9081/sports-vision-trainer/internal/types"
)

type UserTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.UserToken) (*types.UserToken, error)
	GetActiveByToken(ctx context.Context, tx *gorm.DB, token string) (*types.UserToken, error)
	Revoke(ctx context.Context, tx *gorm.DB, token string) error
	RevokeAllForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx *gorm.DB) error
}

type userTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return &userTokenRepo{db: db, log: baseLog.With("repo", "UserTokenRepo")}
}

func (r *userTokenRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *userTokenRepo) Create(ctx context.Context, tx *gorm.DB, row *types.UserToken) (*types.UserToken, error) {
	if row == nil {
		return nil, nil
	}
	if err := r.conn(tx).WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *userTokenRepo) GetActiveByToken(ctx context.Context, tx *gorm.DB, token string) (*types.UserToken, error) {
	var row types.UserToken
	if err := r.conn(tx).WithContext(ctx).
		Where("token = ? AND revoked = ? AND expires_at > ?", token, false, time.Now().UTC()).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *userTokenRepo) Revoke(ctx context.Context, tx *gorm.DB, token string) error {
	return r.conn(tx).WithContext(ctx).
		Model(&types.UserToken{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}

func (r *userTokenRepo) RevokeAllForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Model(&types.UserToken{}).
		Where("user_id = ?", userID).
		Update("revoked", true).Error
}

func (r *userTokenRepo) DeleteExpired(ctx context.Context, tx *gorm.DB) error {
	return r.conn(tx).WithContext(ctx).
		Where("expires_at <= ?", time.Now().UTC()).
		Delete(&types.UserToken{}).Error
}
