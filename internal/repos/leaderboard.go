package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
	"github.com/charanreddy9081/sports-vision-trainer/internal/types"
)

type LeaderboardRepo interface {
	// AddScore folds delta into the user's running total, creating the entry
	// with total = delta on first sight. The increment happens inside the
	// database (ON CONFLICT DO UPDATE), so concurrent sessions for the same
	// user cannot lose an update.
	AddScore(ctx context.Context, tx *gorm.DB, userID uuid.UUID, delta int) error
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.LeaderboardEntry, error)
	Top(ctx context.Context, tx *gorm.DB, n int) ([]*types.LeaderboardEntry, error)
	CountWithScoreAbove(ctx context.Context, tx *gorm.DB, score int) (int64, error)
}

type leaderboardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLeaderboardRepo(db *gorm.DB, baseLog *logger.Logger) LeaderboardRepo {
	return &leaderboardRepo{db: db, log: baseLog.With("repo", "LeaderboardRepo")}
}

func (r *leaderboardRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *leaderboardRepo) AddScore(ctx context.Context, tx *gorm.DB, userID uuid.UUID, delta int) error {
	now := time.Now().UTC()
	row := &types.LeaderboardEntry{
		ID:         uuid.New(),
		UserID:     userID,
		TotalScore: delta,
		UpdatedAt:  now,
	}
	return r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_score": gorm.Expr("leaderboard_entry.total_score + ?", delta),
				"updated_at":  now,
			}),
		}).
		Create(row).Error
}

func (r *leaderboardRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.LeaderboardEntry, error) {
	var row types.LeaderboardEntry
	if err := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Top orders by total score descending, ties by user id so pagination is
// reproducible.
func (r *leaderboardRepo) Top(ctx context.Context, tx *gorm.DB, n int) ([]*types.LeaderboardEntry, error) {
	var results []*types.LeaderboardEntry
	if n <= 0 {
		return results, nil
	}
	if err := r.conn(tx).WithContext(ctx).
		Order("total_score DESC").
		Order("user_id ASC").
		Limit(n).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *leaderboardRepo) CountWithScoreAbove(ctx context.Context, tx *gorm.DB, score int) (int64, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.LeaderboardEntry{}).
		Where("total_score > ?", score).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
