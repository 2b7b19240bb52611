package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dkueng01/team-rule-tracker/internal/accounting"
	"github.com/dkueng01/team-rule-tracker/internal/auth"
	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"
	"github.com/dkueng01/team-rule-tracker/internal/logger"
	"github.com/dkueng01/team-rule-tracker/internal/permissions"
	"github.com/dkueng01/team-rule-tracker/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	runner      TxRunner
	teamRepo    repository.TeamRepositoryInterface
	memberRepo  repository.TeamMemberRepositoryInterface
	ruleRepo    repository.RuleRepositoryInterface
	breakRepo   repository.RuleBreakRepositoryInterface
	paymentRepo repository.PaymentRepositoryInterface
	expenseRepo repository.ExpenseRepositoryInterface
	joinRepo    repository.JoinRequestRepositoryInterface
	validator   *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	runner TxRunner,
	teamRepo repository.TeamRepositoryInterface,
	memberRepo repository.TeamMemberRepositoryInterface,
	ruleRepo repository.RuleRepositoryInterface,
	breakRepo repository.RuleBreakRepositoryInterface,
	paymentRepo repository.PaymentRepositoryInterface,
	expenseRepo repository.ExpenseRepositoryInterface,
	joinRepo repository.JoinRequestRepositoryInterface,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		runner:      runner,
		teamRepo:    teamRepo,
		memberRepo:  memberRepo,
		ruleRepo:    ruleRepo,
		breakRepo:   breakRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		joinRepo:    joinRepo,
		validator:   validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// TeamResponse represents the response for team operations. JoinCode and
// JoinEnabled are only populated for callers with admin visibility.
type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	JoinCode    string    `json:"join_code,omitempty"`
	JoinEnabled *bool     `json:"join_enabled,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// TeamSummaryResponse is one row of the caller's team overview
type TeamSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MemberCount int64     `json:"member_count"`
	RuleCount   int64     `json:"rule_count"`
	CreatedAt   string    `json:"created_at"`
}

// MemberResponse is a member row as exposed to other members. Email is
// populated only in the admin view.
type MemberResponse struct {
	UserID string            `json:"user_id"`
	Name   string            `json:"name"`
	Email  string            `json:"email,omitempty"`
	Role   models.MemberRole `json:"role"`
}

// PoolsResponse carries the three derived pool figures
type PoolsResponse struct {
	Expected  decimal.Decimal `json:"expected"`
	Collected decimal.Decimal `json:"collected"`
	Available decimal.Decimal `json:"available"`
}

// TeamDataResponse is the full team page payload. The admin-only fields stay
// empty for plain members.
type TeamDataResponse struct {
	Team         TeamResponse               `json:"team"`
	Members      []MemberResponse           `json:"members"`
	Rules        []models.Rule              `json:"rules"`
	RuleBreaks   []models.RuleBreak         `json:"rule_breaks"`
	Payments     []models.Payment           `json:"payments"`
	Expenses     []models.Expense           `json:"expenses"`
	Totals       []accounting.MemberTotals  `json:"totals"`
	Pools        PoolsResponse              `json:"pools"`
	YourDebt     decimal.Decimal            `json:"your_debt"`
	JoinRequests []models.JoinRequest       `json:"join_requests,omitempty"`
}

// JoinCodeResponse carries a freshly rotated join code
type JoinCodeResponse struct {
	JoinCode string `json:"join_code"`
}

// SetJoinEnabledRequest toggles whether a team accepts join requests.
// The pointer distinguishes an explicit false from an absent field.
type SetJoinEnabledRequest struct {
	JoinEnabled *bool `json:"join_enabled" validate:"required"`
}

// isDuplicateKey reports whether err is a unique constraint violation
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key value")
}

// CreateTeam creates a team and its owner membership in one transaction.
// A user may own at most one team; the count check and the insert share the
// transaction so two concurrent creates cannot both pass.
func (s *TeamService) CreateTeam(ctx context.Context, identity auth.UserProfile, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	var team *models.Team
	// Join codes are random; retry on the unlikely collision
	for attempt := 0; ; attempt++ {
		code, err := GenerateJoinCode()
		if err != nil {
			return nil, err
		}

		err = s.runner.InTx(ctx, func(tx *gorm.DB) error {
			members := s.memberRepo.WithTx(tx)

			owned, err := members.CountOwnedTeams(identity.ID)
			if err != nil {
				return fmt.Errorf("failed to count owned teams: %w", err)
			}
			if owned > 0 {
				return apperrors.ErrAlreadyTeamOwner
			}

			team = &models.Team{
				Name:        req.Name,
				Description: req.Description,
				JoinCode:    code,
				JoinEnabled: true,
			}
			if err := s.teamRepo.WithTx(tx).Create(team); err != nil {
				return err
			}

			owner := &models.TeamMember{
				TeamID: team.ID,
				UserID: identity.ID,
				Name:   identity.Name,
				Email:  identity.Email,
				Role:   models.RoleOwner,
			}
			if err := members.Create(owner); err != nil {
				return fmt.Errorf("failed to create owner membership: %w", err)
			}
			return nil
		})
		if err == nil {
			break
		}
		if isDuplicateKey(err) && attempt < 2 {
			continue
		}
		return nil, err
	}

	logger.WithContext(ctx).Infof("Created team %s", team.ID)

	enabled := team.JoinEnabled
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		JoinCode:    team.JoinCode,
		JoinEnabled: &enabled,
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
	}, nil
}

// GetMyTeams retrieves the caller's teams with member and rule counts
func (s *TeamService) GetMyTeams(ctx context.Context, userID string) ([]TeamSummaryResponse, error) {
	var summaries []repository.TeamSummary
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		var err error
		summaries, err = s.teamRepo.WithTx(tx).GetSummariesForUser(userID)
		if err != nil {
			return fmt.Errorf("failed to get teams: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]TeamSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = TeamSummaryResponse{
			ID:          summary.ID,
			Name:        summary.Name,
			Description: summary.Description,
			MemberCount: summary.MemberCount,
			RuleCount:   summary.RuleCount,
			CreatedAt:   summary.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// GetMembership reports the caller's standing in a team. Answers for
// non-members too; the response then fails closed.
func (s *TeamService) GetMembership(ctx context.Context, teamID uuid.UUID, userID string) (*MembershipStatus, error) {
	var status *MembershipStatus
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		var err error
		status, err = NewMembershipResolver(s.memberRepo.WithTx(tx)).Resolve(teamID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

// GetTeamData assembles the full team page: entities, the derived pools, the
// caller's debt and per-member totals. Admins additionally see member emails,
// the join code and pending join requests.
func (s *TeamService) GetTeamData(ctx context.Context, teamID uuid.UUID, userID string) (*TeamDataResponse, error) {
	var response *TeamDataResponse
	// One transaction so the ledgers and the derived figures come from the
	// same snapshot
	err := s.runner.InTx(ctx, func(tx *gorm.DB) error {
		role, err := resolveRole(s.memberRepo.WithTx(tx), teamID, userID)
		if err != nil {
			return err
		}
		if !permissions.CanPerform(role, permissions.OpViewTeam) {
			return apperrors.ErrForbidden
		}

		team, err := s.teamRepo.WithTx(tx).GetByID(teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to get team: %w", err)
		}

		members, err := s.memberRepo.WithTx(tx).GetByTeamID(teamID)
		if err != nil {
			return fmt.Errorf("failed to get members: %w", err)
		}
		rules, err := s.ruleRepo.WithTx(tx).GetByTeamID(teamID)
		if err != nil {
			return fmt.Errorf("failed to get rules: %w", err)
		}
		ruleBreaks, err := s.breakRepo.WithTx(tx).GetByTeamID(teamID)
		if err != nil {
			return fmt.Errorf("failed to get rule breaks: %w", err)
		}
		payments, err := s.paymentRepo.WithTx(tx).GetByTeamID(teamID)
		if err != nil {
			return fmt.Errorf("failed to get payments: %w", err)
		}
		expenses, err := s.expenseRepo.WithTx(tx).GetByTeamID(teamID)
		if err != nil {
			return fmt.Errorf("failed to get expenses: %w", err)
		}

		ledger := accounting.Ledger{
			Rules:      rules,
			RuleBreaks: ruleBreaks,
			Payments:   payments,
			Expenses:   expenses,
		}

		isAdmin := role.IsAdmin()

		response = &TeamDataResponse{
			Team: TeamResponse{
				ID:          team.ID,
				Name:        team.Name,
				Description: team.Description,
				CreatedAt:   team.CreatedAt.Format(time.RFC3339),
			},
			Members:    make([]MemberResponse, len(members)),
			Rules:      rules,
			RuleBreaks: ruleBreaks,
			Payments:   payments,
			Expenses:   expenses,
			Totals:     memberTotals(&ledger, members),
			Pools: PoolsResponse{
				Expected:  ledger.ExpectedPool(),
				Collected: ledger.CollectedPool(),
				Available: ledger.AvailablePool(),
			},
			YourDebt: ledger.MemberDebt(userID),
		}

		for i, member := range members {
			response.Members[i] = MemberResponse{
				UserID: member.UserID,
				Name:   member.Name,
				Role:   member.Role,
			}
			if isAdmin {
				response.Members[i].Email = member.Email
			}
		}

		if isAdmin {
			response.Team.JoinCode = team.JoinCode
			enabled := team.JoinEnabled
			response.Team.JoinEnabled = &enabled

			pending, err := s.joinRepo.WithTx(tx).GetPendingByTeamID(teamID)
			if err != nil {
				return fmt.Errorf("failed to get join requests: %w", err)
			}
			response.JoinRequests = pending
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// memberTotals seeds a totals row for every current member, overlays the
// ledger figures, and keeps ledger rows of departed users whose history is
// still on the books.
func memberTotals(ledger *accounting.Ledger, members []models.TeamMember) []accounting.MemberTotals {
	byUser := ledger.TotalsByMember()

	totals := make([]accounting.MemberTotals, 0, len(members))
	seen := make(map[string]bool, len(members))
	for _, member := range members {
		seen[member.UserID] = true
		if t, ok := byUser[member.UserID]; ok {
			totals = append(totals, t)
			continue
		}
		totals = append(totals, accounting.MemberTotals{
			UserID:     member.UserID,
			BreakTotal: decimal.Zero,
			Paid:       decimal.Zero,
			Debt:       decimal.Zero,
		})
	}
	for userID, t := range byUser {
		if !seen[userID] {
			totals = append(totals, t)
		}
	}

	sort.Slice(totals, func(i, j int) bool { return totals[i].UserID < totals[j].UserID })
	return totals
}

// RotateJoinCode replaces the team's join code. The previous code stops
// working the moment the transaction commits.
func (s *TeamService) RotateJoinCode(ctx context.Context, teamID uuid.UUID, userID string) (*JoinCodeResponse, error) {
	var code string
	for attempt := 0; ; attempt++ {
		generated, err := GenerateJoinCode()
		if err != nil {
			return nil, err
		}

		err = s.runner.InTx(ctx, func(tx *gorm.DB) error {
			if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageJoinSettings); err != nil {
				return err
			}
			if err := s.teamRepo.WithTx(tx).SetJoinCode(teamID, generated); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrTeamNotFound
				}
				return err
			}
			return nil
		})
		if err == nil {
			code = generated
			break
		}
		if isDuplicateKey(err) && attempt < 2 {
			continue
		}
		return nil, err
	}

	logger.WithContext(ctx).Infof("Rotated join code for team %s", teamID)
	return &JoinCodeResponse{JoinCode: code}, nil
}

// SetJoinEnabled toggles whether the team accepts join requests
func (s *TeamService) SetJoinEnabled(ctx context.Context, teamID uuid.UUID, userID string, req *SetJoinEnabledRequest) error {
	return s.runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := authorize(s.memberRepo.WithTx(tx), teamID, userID, permissions.OpManageJoinSettings); err != nil {
			return err
		}
		if err := s.validator.Struct(req); err != nil {
			return apperrors.NewValidationError("join_enabled", "must be a boolean")
		}
		if err := s.teamRepo.WithTx(tx).SetJoinEnabled(teamID, *req.JoinEnabled); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to update join flag: %w", err)
		}
		return nil
	})
}
