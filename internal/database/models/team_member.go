package models

import (
	"github.com/google/uuid"
)

// MemberRole represents the role of a user within a team
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
	// RoleNone is never persisted; it marks the absence of a membership row.
	RoleNone MemberRole = ""
)

// IsAdmin reports whether the role carries admin privileges.
// Owners are admins; the legacy is_admin boolean collapses into this derivation.
func (r MemberRole) IsAdmin() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Valid reports whether the role is one of the persisted values
func (r MemberRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// TeamMember represents a user's membership in a team.
// UserID is the identity provider's stable user identifier; name and email are
// captured from the identity claims so admin views can label members.
type TeamMember struct {
	BaseModel
	TeamID uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user" validate:"required"`
	UserID string     `json:"user_id" gorm:"not null;size:64;uniqueIndex:idx_team_members_team_user" validate:"required,max=64"`
	Name   string     `json:"name" gorm:"size:200"`
	Email  string     `json:"email" gorm:"size:255"`
	Role   MemberRole `json:"role" gorm:"type:varchar(20);not null;default:'member'" validate:"required,oneof=owner admin member"`

	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
