package service_test

import (
	"context"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// passthroughRunner runs the callback without a real transaction so the
// services can be exercised against gomock repositories.
type passthroughRunner struct{}

func (passthroughRunner) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func memberWithRole(teamID uuid.UUID, userID string, role models.MemberRole) *models.TeamMember {
	return &models.TeamMember{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	}
}
