package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
	"github.com/charanreddy9081/sports-vision-trainer/internal/types"
)

type SubscriptionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Subscription) (*types.Subscription, error)
	GetLatestActive(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Subscription, error)
}

type subscriptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubscriptionRepo(db *gorm.DB, baseLog *logger.Logger) SubscriptionRepo {
	return &subscriptionRepo{db: db, log: baseLog.With("repo", "SubscriptionRepo")}
}

func (r *subscriptionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *subscriptionRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Subscription) (*types.Subscription, error) {
	if row == nil {
		return nil, nil
	}
	if err := r.conn(tx).WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// GetLatestActive returns the newest record whose end date has not passed.
// Open-ended records (no end date) never expire.
func (r *subscriptionRepo) GetLatestActive(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Subscription, error) {
	var row types.Subscription
	if err := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Where("end_date IS NULL OR end_date >= ?", time.Now().UTC()).
		Order("created_at DESC").
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
