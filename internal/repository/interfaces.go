package repository

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

import (
	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepositoryInterface defines team repository operations
type TeamRepositoryInterface interface {
	WithTx(tx *gorm.DB) TeamRepositoryInterface
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByJoinCode(joinCode string) (*models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	SetJoinCode(teamID uuid.UUID, joinCode string) error
	SetJoinEnabled(teamID uuid.UUID, enabled bool) error
	GetSummariesForUser(userID string) ([]TeamSummary, error)
}

// TeamMemberRepositoryInterface defines team member repository operations
type TeamMemberRepositoryInterface interface {
	WithTx(tx *gorm.DB) TeamMemberRepositoryInterface
	Create(member *models.TeamMember) error
	GetByTeamAndUser(teamID uuid.UUID, userID string) (*models.TeamMember, error)
	GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error)
	CountByTeamID(teamID uuid.UUID) (int64, error)
	CountOwnedTeams(userID string) (int64, error)
	Delete(teamID uuid.UUID, userID string) error
}

// RuleRepositoryInterface defines rule repository operations
type RuleRepositoryInterface interface {
	WithTx(tx *gorm.DB) RuleRepositoryInterface
	Create(rule *models.Rule) error
	GetByID(teamID, id uuid.UUID) (*models.Rule, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Rule, error)
	Update(rule *models.Rule) error
	Delete(teamID, id uuid.UUID) error
}

// RuleBreakRepositoryInterface defines rule break repository operations
type RuleBreakRepositoryInterface interface {
	WithTx(tx *gorm.DB) RuleBreakRepositoryInterface
	Create(ruleBreak *models.RuleBreak) error
	GetByID(teamID, id uuid.UUID) (*models.RuleBreak, error)
	GetByTeamID(teamID uuid.UUID) ([]models.RuleBreak, error)
	Update(ruleBreak *models.RuleBreak) error
	Delete(teamID, id uuid.UUID) error
}

// PaymentRepositoryInterface defines payment repository operations
type PaymentRepositoryInterface interface {
	WithTx(tx *gorm.DB) PaymentRepositoryInterface
	Create(payment *models.Payment) error
	GetByID(teamID, id uuid.UUID) (*models.Payment, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Payment, error)
	Update(payment *models.Payment) error
	Delete(teamID, id uuid.UUID) error
}

// ExpenseRepositoryInterface defines expense repository operations
type ExpenseRepositoryInterface interface {
	WithTx(tx *gorm.DB) ExpenseRepositoryInterface
	Create(expense *models.Expense) error
	GetByID(teamID, id uuid.UUID) (*models.Expense, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Expense, error)
	Update(expense *models.Expense) error
	Delete(teamID, id uuid.UUID) error
}

// JoinRequestRepositoryInterface defines join request repository operations
type JoinRequestRepositoryInterface interface {
	WithTx(tx *gorm.DB) JoinRequestRepositoryInterface
	Create(request *models.JoinRequest) error
	GetByID(teamID, id uuid.UUID) (*models.JoinRequest, error)
	GetPendingByTeamAndUser(teamID uuid.UUID, userID string) (*models.JoinRequest, error)
	GetPendingByTeamID(teamID uuid.UUID) ([]models.JoinRequest, error)
	Update(request *models.JoinRequest) error
}
