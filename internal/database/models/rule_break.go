package models

import (
	"time"

	"github.com/google/uuid"
)

// RuleBreak records that a member broke a rule. The debt it represents is the
// referenced rule's amount; it is not snapshotted on the break itself.
// RuleID is deliberately not a foreign key: breaks outlive deleted rules and
// are then priced at zero.
type RuleBreak struct {
	BaseModel
	TeamID      uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	RuleID      uuid.UUID `json:"rule_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID      string    `json:"user_id" gorm:"not null;size:64" validate:"required,max=64"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`
	Date        time.Time `json:"date" gorm:"not null"`

	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RuleBreak
func (RuleBreak) TableName() string {
	return "rule_breaks"
}
