package types

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is one plan-change record. The user's current plan lives on
// the User row; these rows are history. No payment processing here.
type Subscription struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Plan      string     `gorm:"not null" json:"plan"`
	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

func (Subscription) TableName() string { return "subscription" }
