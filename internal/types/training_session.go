package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ModuleReaction   = "REACTION"
	ModuleTracking   = "TRACKING"
	ModuleColorMatch = "COLOR_MATCH"
	ModuleTargetHit  = "TARGET_HIT"
)

// ModuleTypes lists the exercise categories in stable display order.
var ModuleTypes = []string{ModuleReaction, ModuleTracking, ModuleColorMatch, ModuleTargetHit}

func ValidModuleType(mt string) bool {
	switch mt {
	case ModuleReaction, ModuleTracking, ModuleColorMatch, ModuleTargetHit:
		return true
	default:
		return false
	}
}

// TrainingSession is one completed mini-game run. Rows are append-only:
// nothing in the service updates or deletes them.
type TrainingSession struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_training_session_user_created" json:"user_id"`
	User            *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	ModuleType      string         `gorm:"not null;index;column:module_type" json:"module_type"`
	Score           int            `gorm:"not null" json:"score"`
	Accuracy        float64        `gorm:"not null" json:"accuracy"`
	ReactionTime    *float64       `gorm:"column:reaction_time" json:"reaction_time,omitempty"`
	DurationSeconds int            `gorm:"not null;column:duration_seconds" json:"duration_seconds"`
	Details         datatypes.JSON `gorm:"type:jsonb;column:details" json:"details,omitempty"`
	CreatedAt       time.Time      `gorm:"not null;index:idx_training_session_user_created" json:"created_at"`
}

func (TrainingSession) TableName() string { return "training_session" }
