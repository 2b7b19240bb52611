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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseService handles business logic for expenses paid from the pool
type ExpenseService struct {
	runner      TxRunner
	memberRepo  repository.TeamMemberRepositoryInterface
	expenseRepo repository.ExpenseRepositoryInterface
	validator   *validator.Validate
}

// NewExpenseService creates a new expense service
func NewExpenseService(runner TxRunner, memberRepo repository.TeamMemberRepositoryInterface, expenseRepo repository.ExpenseRepositoryInterface, validator *validator.Validate) *ExpenseService {
	return &ExpenseService{
		runner:      runner,
		memberRepo:  memberRepo,
		expenseRepo: expenseRepo,
		validator:   validator,
	}
}

// CreateExpenseRequest represents the request to record an expense
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,max=500"`
	Date        *time.Time      `json:"date"`
}

// UpdateExpenseRequest represents the request to update an expense
type UpdateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,max=500"`
	Date        *time.Time      `json:"date"`
}

func validateExpenseAmount(amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return apperrors.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

// CreateExpense records spending from the team pool. Expenses reduce the
// available pool only; nobody's debt changes.
func (s *ExpenseService) CreateExpense(ctx context.Context, teamID uuid.UUID, userID string, req *CreateExpenseRequest) (*models.Expense, error) {
	var expense *models.Expense
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageExpenses); err != nil {
			return err
		}
		if err := s.validator.Struct(req); err != nil {
			return apperrors.NewValidationError("", err.Error())
		}
		if err := validateExpenseAmount(req.Amount); err != nil {
			return err
		}

		date := time.Now()
		if req.Date != nil {
			date = *req.Date
		}
		expense = &models.Expense{
			TeamID:      teamID,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        date,
		}
		if err := s.expenseRepo.WithTx(tx).Create(expense); err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpense updates a recorded expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, teamID, expenseID uuid.UUID, userID string, req *UpdateExpenseRequest) (*models.Expense, error) {
	var expense *models.Expense
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageExpenses); err != nil {
			return err
		}
		if err := s.validator.Struct(req); err != nil {
			return apperrors.NewValidationError("", err.Error())
		}
		if err := validateExpenseAmount(req.Amount); err != nil {
			return err
		}

		repo := s.expenseRepo.WithTx(tx)
		existing, err := repo.GetByID(teamID, expenseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrExpenseNotFound
			}
			return fmt.Errorf("failed to get expense: %w", err)
		}

		existing.Amount = req.Amount
		existing.Description = req.Description
		if req.Date != nil {
			existing.Date = *req.Date
		}
		if err := repo.Update(existing); err != nil {
			return fmt.Errorf("failed to update expense: %w", err)
		}
		expense = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense deletes a recorded expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, teamID, expenseID uuid.UUID, userID string) error {
	return s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageExpenses); err != nil {
			return err
		}
		if err := s.expenseRepo.WithTx(tx).Delete(teamID, expenseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrExpenseNotFound
			}
			return fmt.Errorf("failed to delete expense: %w", err)
		}
		return nil
	})
}
