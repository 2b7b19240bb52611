package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records money a member paid into the team pool. It reduces the
// member's net debt and increases the collected pool.
type Payment struct {
	BaseModel
	TeamID      uuid.UUID       `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID      string          `json:"user_id" gorm:"not null;size:64" validate:"required,max=64"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Description string          `json:"description" gorm:"size:500" validate:"max=500"`
	Date        time.Time       `json:"date" gorm:"not null"`

	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
