package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"
	"github.com/dkueng01/team-rule-tracker/internal/permissions"
	"github.com/dkueng01/team-rule-tracker/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RuleService handles business logic for team rules
type RuleService struct {
	runner     TxRunner
	memberRepo repository.TeamMemberRepositoryInterface
	ruleRepo   repository.RuleRepositoryInterface
	validator  *validator.Validate
}

// NewRuleService creates a new rule service
func NewRuleService(runner TxRunner, memberRepo repository.TeamMemberRepositoryInterface, ruleRepo repository.RuleRepositoryInterface, validator *validator.Validate) *RuleService {
	return &RuleService{
		runner:     runner,
		memberRepo: memberRepo,
		ruleRepo:   ruleRepo,
		validator:  validator,
	}
}

// CreateRuleRequest represents the request to create a rule
type CreateRuleRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Amount      decimal.Decimal `json:"amount"`
}

// UpdateRuleRequest represents the request to update a rule
type UpdateRuleRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Amount      decimal.Decimal `json:"amount"`
}

func validateRuleAmount(amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return apperrors.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

// CreateRule creates a rule in the team. Authorization runs before validation
// so rejected callers learn nothing about the team's contents.
func (s *RuleService) CreateRule(ctx context.Context, teamID uuid.UUID, userID string, req *CreateRuleRequest) (*models.Rule, error) {
	var rule *models.Rule
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageRules); err != nil {
			return err
		}
		if err := s.validator.Struct(req); err != nil {
			return apperrors.NewValidationError("", err.Error())
		}
		if err := validateRuleAmount(req.Amount); err != nil {
			return err
		}

		rule = &models.Rule{
			TeamID:      teamID,
			Name:        req.Name,
			Description: req.Description,
			Amount:      req.Amount,
		}
		if err := s.ruleRepo.WithTx(tx).Create(rule); err != nil {
			return fmt.Errorf("failed to create rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// UpdateRule updates a rule. Editing the amount re-prices every break that
// references the rule, past ones included.
func (s *RuleService) UpdateRule(ctx context.Context, teamID, ruleID uuid.UUID, userID string, req *UpdateRuleRequest) (*models.Rule, error) {
	var rule *models.Rule
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageRules); err != nil {
			return err
		}
		if err := s.validator.Struct(req); err != nil {
			return apperrors.NewValidationError("", err.Error())
		}
		if err := validateRuleAmount(req.Amount); err != nil {
			return err
		}

		repo := s.ruleRepo.WithTx(tx)
		existing, err := repo.GetByID(teamID, ruleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRuleNotFound
			}
			return fmt.Errorf("failed to get rule: %w", err)
		}

		existing.Name = req.Name
		existing.Description = req.Description
		existing.Amount = req.Amount
		if err := repo.Update(existing); err != nil {
			return fmt.Errorf("failed to update rule: %w", err)
		}
		rule = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// DeleteRule deletes a rule. Breaks referencing it remain and price at zero.
func (s *RuleService) DeleteRule(ctx context.Context, teamID, ruleID uuid.UUID, userID string) error {
	return s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageRules); err != nil {
			return err
		}
		if err := s.ruleRepo.WithTx(tx).Delete(teamID, ruleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRuleNotFound
			}
			return fmt.Errorf("failed to delete rule: %w", err)
		}
		return nil
	})
}
