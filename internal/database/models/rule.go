package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rule defines a team rule and the penalty charged per break.
// Breaks reference the rule and are priced with its current amount at read
// time, so editing the amount re-prices all historical breaks.
type Rule struct {
	BaseModel
	TeamID      uuid.UUID       `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string          `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string          `json:"description" gorm:"size:500" validate:"max=500"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`

	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Rule
func (Rule) TableName() string {
	return "rules"
}
