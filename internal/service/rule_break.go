package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"
	"github.com/dkueng01/team-rule-tracker/internal/permissions"
	"github.com/dkueng01/team-rule-tracker/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleBreakService handles business logic for rule breaks
type RuleBreakService struct {
	runner     TxRunner
	memberRepo repository.TeamMemberRepositoryInterface
	ruleRepo   repository.RuleRepositoryInterface
	breakRepo  repository.RuleBreakRepositoryInterface
	validator  *validator.Validate
}

// NewRuleBreakService creates a new rule break service
func NewRuleBreakService(runner TxRunner, memberRepo repository.TeamMemberRepositoryInterface, ruleRepo repository.RuleRepositoryInterface, breakRepo repository.RuleBreakRepositoryInterface, validator *validator.Validate) *RuleBreakService {
	return &RuleBreakService{
		runner:     runner,
		memberRepo: memberRepo,
		ruleRepo:   ruleRepo,
		breakRepo:  breakRepo,
		validator:  validator,
	}
}

// CreateRuleBreakRequest represents the request to record a rule break
type CreateRuleBreakRequest struct {
	RuleID      uuid.UUID  `json:"rule_id" validate:"required"`
	UserID      string     `json:"user_id" validate:"required,max=64"`
	Description string     `json:"description" validate:"max=500"`
	Date        *time.Time `json:"date"`
}

// UpdateRuleBreakRequest represents the request to update a rule break
type UpdateRuleBreakRequest struct {
	RuleID      uuid.UUID  `json:"rule_id" validate:"required"`
	UserID      string     `json:"user_id" validate:"required,max=64"`
	Description string     `json:"description" validate:"max=500"`
	Date        *time.Time `json:"date"`
}

// CreateRuleBreak records that a member broke a rule. The referenced rule
// must exist in the team at creation time; it may be deleted later.
func (s *RuleBreakService) CreateRuleBreak(ctx context.Context, teamID uuid.UUID, userID string, req *CreateRuleBreakRequest) (*models.RuleBreak, error) {
	var ruleBreak *models.RuleBreak
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageRuleBreaks); err != nil {
			return err
		}
		if err := s.validator.Struct(req); err != nil {
			return apperrors.NewValidationError("", err.Error())
		}

		if _, err := s.ruleRepo.WithTx(tx).GetByID(teamID, req.RuleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRuleNotFound
			}
			return fmt.Errorf("failed to verify rule: %w", err)
		}

		date := time.Now()
		if req.Date != nil {
			date = *req.Date
		}
		ruleBreak = &models.RuleBreak{
			TeamID:      teamID,
			RuleID:      req.RuleID,
			UserID:      req.UserID,
			Description: req.Description,
			Date:        date,
		}
		if err := s.breakRepo.WithTx(tx).Create(ruleBreak); err != nil {
			return fmt.Errorf("failed to create rule break: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ruleBreak, nil
}

// UpdateRuleBreak updates a recorded break
func (s *RuleBreakService) UpdateRuleBreak(ctx context.Context, teamID, breakID uuid.UUID, userID string, req *UpdateRuleBreakRequest) (*models.RuleBreak, error) {
	var ruleBreak *models.RuleBreak
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageRuleBreaks); err != nil {
			return err
		}
		if err := s.validator.Struct(req); err != nil {
			return apperrors.NewValidationError("", err.Error())
		}

		if _, err := s.ruleRepo.WithTx(tx).GetByID(teamID, req.RuleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRuleNotFound
			}
			return fmt.Errorf("failed to verify rule: %w", err)
		}

		repo := s.breakRepo.WithTx(tx)
		existing, err := repo.GetByID(teamID, breakID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRuleBreakNotFound
			}
			return fmt.Errorf("failed to get rule break: %w", err)
		}

		existing.RuleID = req.RuleID
		existing.UserID = req.UserID
		existing.Description = req.Description
		if req.Date != nil {
			existing.Date = *req.Date
		}
		if err := repo.Update(existing); err != nil {
			return fmt.Errorf("failed to update rule break: %w", err)
		}
		ruleBreak = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ruleBreak, nil
}

// DeleteRuleBreak deletes a recorded break
func (s *RuleBreakService) DeleteRuleBreak(ctx context.Context, teamID, breakID uuid.UUID, userID string) error {
	return s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageRuleBreaks); err != nil {
			return err
		}
		if err := s.breakRepo.WithTx(tx).Delete(teamID, breakID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRuleBreakNotFound
			}
			return fmt.Errorf("failed to delete rule break: %w", err)
		}
		return nil
	})
}
