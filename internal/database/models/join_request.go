package models

import (
	"github.com/google/uuid"
)

// JoinRequest tracks a user's request to join a team via join code.
// Lifecycle: pending (both flags nil) -> approved or rejected, terminal
// either way.
type JoinRequest struct {
	BaseModel
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID   string    `json:"user_id" gorm:"not null;size:64" validate:"required,max=64"`
	Name     string    `json:"name" gorm:"size:200"`
	Email    string    `json:"email" gorm:"size:255"`
	Approved *bool     `json:"approved"`
	Rejected *bool     `json:"rejected"`

	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// IsPending reports whether the request has not been resolved yet
func (r *JoinRequest) IsPending() bool {
	return r.Approved == nil && r.Rejected == nil
}

// TableName returns the table name for JoinRequest
func (JoinRequest) TableName() string {
	return "team_join_requests"
}
