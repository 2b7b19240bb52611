package service

import (
	"context"

	"github.com/dkueng01/team-rule-tracker/internal/auth"
	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, identity auth.UserProfile, req *CreateTeamRequest) (*TeamResponse, error)
	GetMyTeams(ctx context.Context, userID string) ([]TeamSummaryResponse, error)
	GetMembership(ctx context.Context, teamID uuid.UUID, userID string) (*MembershipStatus, error)
	GetTeamData(ctx context.Context, teamID uuid.UUID, userID string) (*TeamDataResponse, error)
	RotateJoinCode(ctx context.Context, teamID uuid.UUID, userID string) (*JoinCodeResponse, error)
	SetJoinEnabled(ctx context.Context, teamID uuid.UUID, userID string, req *SetJoinEnabledRequest) error
}

// RuleServiceInterface defines the interface for rule service
type RuleServiceInterface interface {
	CreateRule(ctx context.Context, teamID uuid.UUID, userID string, req *CreateRuleRequest) (*models.Rule, error)
	UpdateRule(ctx context.Context, teamID, ruleID uuid.UUID, userID string, req *UpdateRuleRequest) (*models.Rule, error)
	DeleteRule(ctx context.Context, teamID, ruleID uuid.UUID, userID string) error
}

// RuleBreakServiceInterface defines the interface for rule break service
type RuleBreakServiceInterface interface {
	CreateRuleBreak(ctx context.Context, teamID uuid.UUID, userID string, req *CreateRuleBreakRequest) (*models.RuleBreak, error)
	UpdateRuleBreak(ctx context.Context, teamID, breakID uuid.UUID, userID string, req *UpdateRuleBreakRequest) (*models.RuleBreak, error)
	DeleteRuleBreak(ctx context.Context, teamID, breakID uuid.UUID, userID string) error
}

// PaymentServiceInterface defines the interface for payment service
type PaymentServiceInterface interface {
	CreatePayment(ctx context.Context, teamID uuid.UUID, userID string, req *CreatePaymentRequest) (*models.Payment, error)
	UpdatePayment(ctx context.Context, teamID, paymentID uuid.UUID, userID string, req *UpdatePaymentRequest) (*models.Payment, error)
	DeletePayment(ctx context.Context, teamID, paymentID uuid.UUID, userID string) error
}

// ExpenseServiceInterface defines the interface for expense service
type ExpenseServiceInterface interface {
	CreateExpense(ctx context.Context, teamID uuid.UUID, userID string, req *CreateExpenseRequest) (*models.Expense, error)
	UpdateExpense(ctx context.Context, teamID, expenseID uuid.UUID, userID string, req *UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(ctx context.Context, teamID, expenseID uuid.UUID, userID string) error
}

// JoinServiceInterface defines the interface for the join workflow
type JoinServiceInterface interface {
	RequestToJoin(ctx context.Context, identity auth.UserProfile, req *JoinTeamRequest) (*models.JoinRequest, error)
	ListPendingRequests(ctx context.Context, teamID uuid.UUID, userID string) ([]models.JoinRequest, error)
	ApproveRequest(ctx context.Context, teamID, requestID uuid.UUID, userID string) (*models.JoinRequest, error)
	RejectRequest(ctx context.Context, teamID, requestID uuid.UUID, userID string) (*models.JoinRequest, error)
}
