package service_test

import (
	"context"
	"testing"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"
	"github.com/dkueng01/team-rule-tracker/internal/mocks"
	"github.com/dkueng01/team-rule-tracker/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RuleServiceTestSuite defines the test suite for RuleService
type RuleServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	memberRepo *mocks.MockTeamMemberRepositoryInterface
	ruleRepo   *mocks.MockRuleRepositoryInterface
	svc        *service.RuleService
}

// SetupTest sets up the test suite
func (suite *RuleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.memberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.ruleRepo = mocks.NewMockRuleRepositoryInterface(suite.ctrl)

	suite.memberRepo.EXPECT().WithTx(gomock.Any()).Return(suite.memberRepo).AnyTimes()
	suite.ruleRepo.EXPECT().WithTx(gomock.Any()).Return(suite.ruleRepo).AnyTimes()

	suite.svc = service.NewRuleService(passthroughRunner{}, suite.memberRepo, suite.ruleRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *RuleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RuleServiceTestSuite) expectRole(teamID uuid.UUID, userID string, role models.MemberRole) {
	suite.memberRepo.EXPECT().GetByTeamAndUser(teamID, userID).
		Return(memberWithRole(teamID, userID, role), nil)
}

func (suite *RuleServiceTestSuite) TestCreateRule() {
	teamID := uuid.New()
	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.ruleRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(rule *models.Rule) error {
		rule.ID = uuid.New()
		return nil
	})

	rule, err := suite.svc.CreateRule(context.Background(), teamID, "admin-1", &service.CreateRuleRequest{
		Name:   "Late to standup",
		Amount: decimal.NewFromFloat(5),
	})

	suite.NoError(err)
	suite.Equal(teamID, rule.TeamID)
	suite.Equal("Late to standup", rule.Name)
	suite.True(rule.Amount.Equal(decimal.NewFromFloat(5)))
}

func (suite *RuleServiceTestSuite) TestCreateRuleMemberForbidden() {
	teamID := uuid.New()
	suite.expectRole(teamID, "member-1", models.RoleMember)

	// Even an invalid request fails with Forbidden: the role check runs first
	rule, err := suite.svc.CreateRule(context.Background(), teamID, "member-1", &service.CreateRuleRequest{})

	suite.Nil(rule)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *RuleServiceTestSuite) TestCreateRuleZeroAmount() {
	teamID := uuid.New()
	suite.expectRole(teamID, "admin-1", models.RoleAdmin)

	rule, err := suite.svc.CreateRule(context.Background(), teamID, "admin-1", &service.CreateRuleRequest{
		Name:   "Free rule",
		Amount: decimal.Zero,
	})

	suite.Nil(rule)
	suite.True(apperrors.IsValidation(err))
}

func (suite *RuleServiceTestSuite) TestUpdateRule() {
	teamID := uuid.New()
	ruleID := uuid.New()
	existing := &models.Rule{TeamID: teamID, Name: "Late", Amount: decimal.NewFromFloat(5)}
	existing.ID = ruleID

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.ruleRepo.EXPECT().GetByID(teamID, ruleID).Return(existing, nil)
	suite.ruleRepo.EXPECT().Update(existing).Return(nil)

	rule, err := suite.svc.UpdateRule(context.Background(), teamID, ruleID, "admin-1", &service.UpdateRuleRequest{
		Name:   "Very late",
		Amount: decimal.NewFromFloat(12),
	})

	suite.NoError(err)
	suite.Equal("Very late", rule.Name)
	suite.True(rule.Amount.Equal(decimal.NewFromFloat(12)))
}

func (suite *RuleServiceTestSuite) TestUpdateRuleNotFound() {
	teamID := uuid.New()
	ruleID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.ruleRepo.EXPECT().GetByID(teamID, ruleID).Return(nil, gorm.ErrRecordNotFound)

	rule, err := suite.svc.UpdateRule(context.Background(), teamID, ruleID, "admin-1", &service.UpdateRuleRequest{
		Name:   "Very late",
		Amount: decimal.NewFromFloat(12),
	})

	suite.Nil(rule)
	suite.ErrorIs(err, apperrors.ErrRuleNotFound)
}

func (suite *RuleServiceTestSuite) TestDeleteRule() {
	teamID := uuid.New()
	ruleID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.ruleRepo.EXPECT().Delete(teamID, ruleID).Return(nil)

	suite.NoError(suite.svc.DeleteRule(context.Background(), teamID, ruleID, "admin-1"))
}

func (suite *RuleServiceTestSuite) TestDeleteRuleNotFound() {
	teamID := uuid.New()
	ruleID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.ruleRepo.EXPECT().Delete(teamID, ruleID).Return(gorm.ErrRecordNotFound)

	err := suite.svc.DeleteRule(context.Background(), teamID, ruleID, "admin-1")

	suite.ErrorIs(err, apperrors.ErrRuleNotFound)
}

// TestRuleServiceTestSuite runs the test suite
func TestRuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RuleServiceTestSuite))
}
