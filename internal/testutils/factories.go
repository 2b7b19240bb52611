package testutils

import (
	"time"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team",
		Description: "A test team for testing purposes",
		// First 8 hex chars of the id keep the unique index happy across fixtures
		JoinCode:    "C" + id.String()[:7],
		JoinEnabled: true,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithJoinCode sets a custom join code for the team
func (f *TeamFactory) WithJoinCode(code string) *models.Team {
	team := f.Create()
	team.JoinCode = code
	return team
}

// WithJoinDisabled creates a team that does not accept join requests
func (f *TeamFactory) WithJoinDisabled() *models.Team {
	team := f.Create()
	team.JoinEnabled = false
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create(teamID uuid.UUID) *models.TeamMember {
	id := uuid.New()
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		UserID: "user-" + id.String()[:8],
		Name:   "John Doe",
		Email:  "john.doe@test.com",
		Role:   models.RoleMember,
	}
}

// WithUser sets a custom user id for the member
func (f *TeamMemberFactory) WithUser(teamID uuid.UUID, userID string) *models.TeamMember {
	member := f.Create(teamID)
	member.UserID = userID
	return member
}

// WithRole sets a custom role for the member
func (f *TeamMemberFactory) WithRole(teamID uuid.UUID, userID string, role models.MemberRole) *models.TeamMember {
	member := f.Create(teamID)
	member.UserID = userID
	member.Role = role
	return member
}

// RuleFactory provides methods to create test Rule data
type RuleFactory struct{}

// NewRuleFactory creates a new RuleFactory
func NewRuleFactory() *RuleFactory {
	return &RuleFactory{}
}

// Create creates a test Rule with default values
func (f *RuleFactory) Create(teamID uuid.UUID) *models.Rule {
	return &models.Rule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      teamID,
		Name:        "Late to standup",
		Description: "Being late to the daily standup",
		Amount:      decimal.RequireFromString("5.00"),
	}
}

// WithAmount sets a custom penalty amount for the rule
func (f *RuleFactory) WithAmount(teamID uuid.UUID, amount string) *models.Rule {
	rule := f.Create(teamID)
	rule.Amount = decimal.RequireFromString(amount)
	return rule
}

// RuleBreakFactory provides methods to create test RuleBreak data
type RuleBreakFactory struct{}

// NewRuleBreakFactory creates a new RuleBreakFactory
func NewRuleBreakFactory() *RuleBreakFactory {
	return &RuleBreakFactory{}
}

// Create creates a test RuleBreak with default values
func (f *RuleBreakFactory) Create(teamID, ruleID uuid.UUID, userID string) *models.RuleBreak {
	return &models.RuleBreak{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      teamID,
		RuleID:      ruleID,
		UserID:      userID,
		Description: "Overslept",
		Date:        time.Now().Truncate(time.Second),
	}
}

// PaymentFactory provides methods to create test Payment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// Create creates a test Payment with default values
func (f *PaymentFactory) Create(teamID uuid.UUID, userID string) *models.Payment {
	return &models.Payment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      teamID,
		UserID:      userID,
		Amount:      decimal.RequireFromString("10.00"),
		Description: "Cash handover",
		Date:        time.Now().Truncate(time.Second),
	}
}

// WithAmount sets a custom amount for the payment
func (f *PaymentFactory) WithAmount(teamID uuid.UUID, userID, amount string) *models.Payment {
	payment := f.Create(teamID, userID)
	payment.Amount = decimal.RequireFromString(amount)
	return payment
}

// ExpenseFactory provides methods to create test Expense data
type ExpenseFactory struct{}

// NewExpenseFactory creates a new ExpenseFactory
func NewExpenseFactory() *ExpenseFactory {
	return &ExpenseFactory{}
}

// Create creates a test Expense with default values
func (f *ExpenseFactory) Create(teamID uuid.UUID) *models.Expense {
	return &models.Expense{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      teamID,
		Amount:      decimal.RequireFromString("25.00"),
		Description: "Team pizza",
		Date:        time.Now().Truncate(time.Second),
	}
}

// JoinRequestFactory provides methods to create test JoinRequest data
type JoinRequestFactory struct{}

// NewJoinRequestFactory creates a new JoinRequestFactory
func NewJoinRequestFactory() *JoinRequestFactory {
	return &JoinRequestFactory{}
}

// Create creates a pending test JoinRequest with default values
func (f *JoinRequestFactory) Create(teamID uuid.UUID) *models.JoinRequest {
	id := uuid.New()
	return &models.JoinRequest{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		UserID: "user-" + id.String()[:8],
		Name:   "Jane Doe",
		Email:  "jane.doe@test.com",
	}
}

// Approved creates a join request that has been approved
func (f *JoinRequestFactory) Approved(teamID uuid.UUID) *models.JoinRequest {
	request := f.Create(teamID)
	approved := true
	request.Approved = &approved
	return request
}

// Rejected creates a join request that has been rejected
func (f *JoinRequestFactory) Rejected(teamID uuid.UUID) *models.JoinRequest {
	request := f.Create(teamID)
	rejected := true
	request.Rejected = &rejected
	return request
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team        *TeamFactory
	TeamMember  *TeamMemberFactory
	Rule        *RuleFactory
	RuleBreak   *RuleBreakFactory
	Payment     *PaymentFactory
	Expense     *ExpenseFactory
	JoinRequest *JoinRequestFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:        NewTeamFactory(),
		TeamMember:  NewTeamMemberFactory(),
		Rule:        NewRuleFactory(),
		RuleBreak:   NewRuleBreakFactory(),
		Payment:     NewPaymentFactory(),
		Expense:     NewExpenseFactory(),
		JoinRequest: NewJoinRequestFactory(),
	}
}

// CreateTeamWithOwner creates a team and its owner membership, unsaved
func (fs *FactorySet) CreateTeamWithOwner(ownerUserID string) (*models.Team, *models.TeamMember) {
	team := fs.Team.Create()
	owner := fs.TeamMember.WithRole(team.ID, ownerUserID, models.RoleOwner)
	return team, owner
}
