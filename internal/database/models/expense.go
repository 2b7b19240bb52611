package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense records money spent from the team pool. It reduces the available
// pool but not the collected pool.
type Expense struct {
	BaseModel
	TeamID      uuid.UUID       `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Description string          `json:"description" gorm:"not null;size:500" validate:"required,max=500"`
	Date        time.Time       `json:"date" gorm:"not null"`

	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
