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

// PaymentService handles business logic for payments into the team pool
type PaymentService struct {
	runner      TxRunner
	memberRepo  repository.TeamMemberRepositoryInterface
	paymentRepo repository.PaymentRepositoryInterface
	validator   *validator.Validate
}

// NewPaymentService creates a new payment service
func NewPaymentService(runner TxRunner, memberRepo repository.TeamMemberRepositoryInterface, paymentRepo repository.PaymentRepositoryInterface, validator *validator.Validate) *PaymentService {
	return &PaymentService{
		runner:      runner,
		memberRepo:  memberRepo,
		paymentRepo: paymentRepo,
		validator:   validator,
	}
}

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	UserID      string          `json:"user_id" validate:"required,max=64"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"max=500"`
	Date        *time.Time      `json:"date"`
}

// UpdatePaymentRequest represents the request to update a payment
type UpdatePaymentRequest struct {
	UserID      string          `json:"user_id" validate:"required,max=64"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"max=500"`
	Date        *time.Time      `json:"date"`
}

func validatePaymentAmount(amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return apperrors.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

// CreatePayment records money a member paid into the pool
func (s *PaymentService) CreatePayment(ctx context.Context, teamID uuid.UUID, userID string, req *CreatePaymentRequest) (*models.Payment, error) {
	var payment *models.Payment
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManagePayments); err != nil {
			return err
		}
		if err := s.validator.Struct(req); err != nil {
			return apperrors.NewValidationError("", err.Error())
		}
		if err := validatePaymentAmount(req.Amount); err != nil {
			return err
		}

		date := time.Now()
		if req.Date != nil {
			date = *req.Date
		}
		payment = &models.Payment{
			TeamID:      teamID,
			UserID:      req.UserID,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        date,
		}
		if err := s.paymentRepo.WithTx(tx).Create(payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdatePayment updates a recorded payment
func (s *PaymentService) UpdatePayment(ctx context.Context, teamID, paymentID uuid.UUID, userID string, req *UpdatePaymentRequest) (*models.Payment, error) {
	var payment *models.Payment
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManagePayments); err != nil {
			return err
		}
		if err := s.validator.Struct(req); err != nil {
			return apperrors.NewValidationError("", err.Error())
		}
		if err := validatePaymentAmount(req.Amount); err != nil {
			return err
		}

		repo := s.paymentRepo.WithTx(tx)
		existing, err := repo.GetByID(teamID, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPaymentNotFound
			}
			return fmt.Errorf("failed to get payment: %w", err)
		}

		existing.UserID = req.UserID
		existing.Amount = req.Amount
		existing.Description = req.Description
		if req.Date != nil {
			existing.Date = *req.Date
		}
		if err := repo.Update(existing); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}
		payment = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment deletes a recorded payment
func (s *PaymentService) DeletePayment(ctx context.Context, teamID, paymentID uuid.UUID, userID string) error {
	return s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManagePayments); err != nil {
			return err
		}
		if err := s.paymentRepo.WithTx(tx).Delete(teamID, paymentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPaymentNotFound
			}
			return fmt.Errorf("failed to delete payment: %w", err)
		}
		return nil
	})
}
