package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
	"github.com/charanreddy9081/sports-vision-trainer/internal/types"
)

type ModuleCount struct {
	ModuleType string `json:"module_type"`
	Count      int64  `json:"count"`
}

type TrainingSessionRepo interface {
	// Insert appends one session row. The session id doubles as the
	// deduplication key: re-inserting an id that already exists is a no-op
	// and Insert reports inserted=false so the caller can skip the
	// leaderboard increment on retry.
	Insert(ctx context.Context, tx *gorm.DB, row *types.TrainingSession) (inserted bool, err error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.TrainingSession, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.TrainingSession, error)
	GetRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.TrainingSession, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	CountByModule(ctx context.Context, tx *gorm.DB) ([]ModuleCount, error)
	CountPerUser(ctx context.Context, tx *gorm.DB) (map[uuid.UUID]int64, error)
}

type trainingSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrainingSessionRepo(db *gorm.DB, baseLog *logger.Logger) TrainingSessionRepo {
	return &trainingSessionRepo{db: db, log: baseLog.With("repo", "TrainingSessionRepo")}
}

func (r *trainingSessionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *trainingSessionRepo) Insert(ctx context.Context, tx *gorm.DB, row *types.TrainingSession) (bool, error) {
	if row == nil {
		return false, nil
	}
	res := r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *trainingSessionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.TrainingSession, error) {
	var row types.TrainingSession
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByUserID returns newest first. limit <= 0 fetches the full history.
func (r *trainingSessionRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.TrainingSession, error) {
	var results []*types.TrainingSession
	if userID == uuid.Nil {
		return results, nil
	}
	q := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *trainingSessionRepo) GetRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.TrainingSession, error) {
	var results []*types.TrainingSession
	if limit <= 0 {
		limit = 10
	}
	if err := r.conn(tx).WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *trainingSessionRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.TrainingSession{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *trainingSessionRepo) CountPerUser(ctx context.Context, tx *gorm.DB) (map[uuid.UUID]int64, error) {
	var rows []struct {
		UserID uuid.UUID
		Count  int64
	}
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.TrainingSession{}).
		Select("user_id, COUNT(*) as count").
		Group("user_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		out[row.UserID] = row.Count
	}
	return out, nil
}

func (r *trainingSessionRepo) CountByModule(ctx context.Context, tx *gorm.DB) ([]ModuleCount, error) {
	var results []ModuleCount
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.TrainingSession{}).
		Select("module_type, COUNT(*) as count").
		Group("module_type").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
