package types

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry holds one user's running total. Invariant: TotalScore
// equals the sum of that user's training_session scores.
type LeaderboardEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	TotalScore int       `gorm:"not null;default:0;column:total_score" json:"total_score"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (LeaderboardEntry) TableName() string { return "leaderboard_entry" }
