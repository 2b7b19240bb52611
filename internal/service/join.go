package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkueng01/team-rule-tracker/internal/auth"
	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"
	"github.com/dkueng01/team-rule-tracker/internal/logger"
	"github.com/dkueng01/team-rule-tracker/internal/permissions"
	"github.com/dkueng01/team-rule-tracker/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinService handles the join workflow: requesting by code, and admins
// approving or rejecting pending requests.
type JoinService struct {
	runner     TxRunner
	teamRepo   repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	joinRepo   repository.JoinRequestRepositoryInterface
	validator  *validator.Validate
	capacity   int
}

// NewJoinService creates a new join service. capacity is the team member
// limit; requests and approvals both check it.
func NewJoinService(
	runner TxRunner,
	teamRepo repository.TeamRepositoryInterface,
	memberRepo repository.TeamMemberRepositoryInterface,
	joinRepo repository.JoinRequestRepositoryInterface,
	validator *validator.Validate,
	capacity int,
) *JoinService {
	return &JoinService{
		runner:     runner,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		joinRepo:   joinRepo,
		validator:  validator,
		capacity:   capacity,
	}
}

// JoinTeamRequest represents the request to join a team by code
type JoinTeamRequest struct {
	JoinCode string `json:"join_code" validate:"required"`
}

// RequestToJoin files a pending join request for the team behind the code.
// Preconditions run in order inside one transaction: team exists, joining
// enabled, not already a member, no pending request, capacity not reached.
// Any failure leaves no row behind.
func (s *JoinService) RequestToJoin(ctx context.Context, identity auth.UserProfile, req *JoinTeamRequest) (*models.JoinRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	code, err := NormalizeJoinCode(req.JoinCode)
	if err != nil {
		return nil, err
	}

	var request *models.JoinRequest
	err = s.runner.InTx(ctx, func(tx *gorm.DB) error {
		team, err := s.teamRepo.WithTx(tx).GetByJoinCode(code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to look up join code: %w", err)
		}

		if !team.JoinEnabled {
			return apperrors.ErrJoinDisabled
		}

		members := s.memberRepo.WithTx(tx)
		if _, err := members.GetByTeamAndUser(team.ID, identity.ID); err == nil {
			return apperrors.ErrAlreadyMember
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check membership: %w", err)
		}

		requests := s.joinRepo.WithTx(tx)
		if _, err := requests.GetPendingByTeamAndUser(team.ID, identity.ID); err == nil {
			return apperrors.ErrJoinRequestPending
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check pending requests: %w", err)
		}

		count, err := members.CountByTeamID(team.ID)
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}
		if count >= int64(s.capacity) {
			return apperrors.ErrTeamFull
		}

		request = &models.JoinRequest{
			TeamID: team.ID,
			UserID: identity.ID,
			Name:   identity.Name,
			Email:  identity.Email,
		}
		if err := requests.Create(request); err != nil {
			return fmt.Errorf("failed to create join request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// ListPendingRequests returns the team's pending requests, oldest first
func (s *JoinService) ListPendingRequests(ctx context.Context, teamID uuid.UUID, userID string) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageJoinRequests); err != nil {
			return err
		}

		var err error
		requests, err = s.joinRepo.WithTx(tx).GetPendingByTeamID(teamID)
		if err != nil {
			return fmt.Errorf("failed to list join requests: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// ApproveRequest marks a pending request approved and inserts the member row
// in the same transaction. Capacity is re-checked; requests approved after
// the team filled up fail with Conflict.
func (s *JoinService) ApproveRequest(ctx context.Context, teamID, requestID uuid.UUID, userID string) (*models.JoinRequest, error) {
	return s.resolve(ctx, teamID, requestID, userID, true)
}

// RejectRequest marks a pending request rejected. Terminal.
func (s *JoinService) RejectRequest(ctx context.Context, teamID, requestID uuid.UUID, userID string) (*models.JoinRequest, error) {
	return s.resolve(ctx, teamID, requestID, userID, false)
}

func (s *JoinService) resolve(ctx context.Context, teamID, requestID uuid.UUID, userID string, approve bool) (*models.JoinRequest, error) {
	var request *models.JoinRequest
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		members := s.memberRepo.WithTx(tx)
		if _, err := authorize(members, teamID, userID, permissions.OpManageJoinRequests); err != nil {
			return err
		}

		requests := s.joinRepo.WithTx(tx)
		existing, err := requests.GetByID(teamID, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrJoinRequestNotFound
			}
			return fmt.Errorf("failed to get join request: %w", err)
		}
		if !existing.IsPending() {
			return apperrors.ErrJoinRequestResolved
		}

		if !approve {
			rejected := true
			existing.Rejected = &rejected
			if err := requests.Update(existing); err != nil {
				return fmt.Errorf("failed to reject join request: %w", err)
			}
			request = existing
			return nil
		}

		// The requester may have joined through another approval meanwhile
		if _, err := members.GetByTeamAndUser(teamID, existing.UserID); err == nil {
			return apperrors.ErrAlreadyMember
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check membership: %w", err)
		}

		count, err := members.CountByTeamID(teamID)
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}
		if count >= int64(s.capacity) {
			return apperrors.ErrTeamFull
		}

		approved := true
		existing.Approved = &approved
		if err := requests.Update(existing); err != nil {
			return fmt.Errorf("failed to approve join request: %w", err)
		}

		member := &models.TeamMember{
			TeamID: teamID,
			UserID: existing.UserID,
			Name:   existing.Name,
			Email:  existing.Email,
			Role:   models.RoleMember,
		}
		if err := members.Create(member); err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}
		request = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	if approve {
		logger.WithContext(ctx).Infof("Approved join request %s for team %s", requestID, teamID)
	} else {
		logger.WithContext(ctx).Infof("Rejected join request %s for team %s", requestID, teamID)
	}
	return request, nil
}
