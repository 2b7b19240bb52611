package service

import (
	"errors"
	"fmt"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"
	"github.com/dkueng01/team-rule-tracker/internal/permissions"
	"github.com/dkueng01/team-rule-tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipStatus describes the caller's relationship to a team. Non-members
// get the zero value plus RoleNone; the endpoint answers 200 either way.
type MembershipStatus struct {
	IsMember bool              `json:"is_member"`
	IsAdmin  bool              `json:"is_admin"`
	Role     models.MemberRole `json:"role"`
}

// MembershipResolver answers the single question every guarded operation
// starts with: what is this user to this team?
type MembershipResolver struct {
	memberRepo repository.TeamMemberRepositoryInterface
}

// NewMembershipResolver creates a new membership resolver
func NewMembershipResolver(memberRepo repository.TeamMemberRepositoryInterface) *MembershipResolver {
	return &MembershipResolver{memberRepo: memberRepo}
}

// Resolve looks up the caller's membership. An absent row is not an error.
func (r *MembershipResolver) Resolve(teamID uuid.UUID, userID string) (*MembershipStatus, error) {
	member, err := r.memberRepo.GetByTeamAndUser(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &MembershipStatus{Role: models.RoleNone}, nil
		}
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}
	return &MembershipStatus{
		IsMember: true,
		IsAdmin:  member.Role.IsAdmin(),
		Role:     member.Role,
	}, nil
}

// resolveRole returns the caller's role in the team, RoleNone when the caller
// is not a member. Used inside transactions so the role read and the guarded
// write see the same snapshot.
func resolveRole(memberRepo repository.TeamMemberRepositoryInterface, teamID uuid.UUID, userID string) (models.MemberRole, error) {
	member, err := memberRepo.GetByTeamAndUser(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoleNone, nil
		}
		return models.RoleNone, fmt.Errorf("failed to resolve membership: %w", err)
	}
	return member.Role, nil
}

// authorize resolves the caller's role and checks it against the policy.
// It runs before any validation or entity lookup so a failed check reveals
// nothing about what exists inside the team.
func authorize(memberRepo repository.TeamMemberRepositoryInterface, teamID uuid.UUID, userID string, op permissions.Operation) (models.MemberRole, error) {
	role, err := resolveRole(memberRepo, teamID, userID)
	if err != nil {
		return models.RoleNone, err
	}
	if !permissions.CanPerform(role, op) {
		return models.RoleNone, apperrors.ErrForbidden
	}
	return role, nil
}
