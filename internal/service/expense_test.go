package service_test

import (
	"context"
	"testing"
	"time"

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

// ExpenseServiceTestSuite defines the test suite for ExpenseService
type ExpenseServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	memberRepo  *mocks.MockTeamMemberRepositoryInterface
	expenseRepo *mocks.MockExpenseRepositoryInterface
	svc         *service.ExpenseService
}

// SetupTest sets up the test suite
func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.memberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.expenseRepo = mocks.NewMockExpenseRepositoryInterface(suite.ctrl)

	suite.memberRepo.EXPECT().WithTx(gomock.Any()).Return(suite.memberRepo).AnyTimes()
	suite.expenseRepo.EXPECT().WithTx(gomock.Any()).Return(suite.expenseRepo).AnyTimes()

	suite.svc = service.NewExpenseService(passthroughRunner{}, suite.memberRepo, suite.expenseRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ExpenseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ExpenseServiceTestSuite) expectRole(teamID uuid.UUID, userID string, role models.MemberRole) {
	suite.memberRepo.EXPECT().GetByTeamAndUser(teamID, userID).
		Return(memberWithRole(teamID, userID, role), nil)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense() {
	teamID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.expenseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Expense) error {
		e.ID = uuid.New()
		return nil
	})

	expense, err := suite.svc.CreateExpense(context.Background(), teamID, "admin-1", &service.CreateExpenseRequest{
		Amount:      decimal.NewFromFloat(25),
		Description: "Team pizza",
	})

	suite.NoError(err)
	suite.Equal("Team pizza", expense.Description)
	suite.True(expense.Amount.Equal(decimal.NewFromFloat(25)))
	suite.False(expense.Date.IsZero())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpenseRequiresDescription() {
	teamID := uuid.New()
	suite.expectRole(teamID, "admin-1", models.RoleAdmin)

	expense, err := suite.svc.CreateExpense(context.Background(), teamID, "admin-1", &service.CreateExpenseRequest{
		Amount: decimal.NewFromFloat(25),
	})

	suite.Nil(expense)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ExpenseServiceTestSuite) TestCreateExpenseMemberForbidden() {
	teamID := uuid.New()
	suite.expectRole(teamID, "member-1", models.RoleMember)

	expense, err := suite.svc.CreateExpense(context.Background(), teamID, "member-1", &service.CreateExpenseRequest{
		Amount:      decimal.NewFromFloat(25),
		Description: "Team pizza",
	})

	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense() {
	teamID := uuid.New()
	expenseID := uuid.New()
	existing := &models.Expense{TeamID: teamID, Amount: decimal.NewFromFloat(25), Description: "Team pizza", Date: time.Now()}
	existing.ID = expenseID

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.expenseRepo.EXPECT().GetByID(teamID, expenseID).Return(existing, nil)
	suite.expenseRepo.EXPECT().Update(existing).Return(nil)

	expense, err := suite.svc.UpdateExpense(context.Background(), teamID, expenseID, "admin-1", &service.UpdateExpenseRequest{
		Amount:      decimal.NewFromFloat(30),
		Description: "Team pizza and drinks",
	})

	suite.NoError(err)
	suite.True(expense.Amount.Equal(decimal.NewFromFloat(30)))
	suite.Equal("Team pizza and drinks", expense.Description)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpenseNotFound() {
	teamID := uuid.New()
	expenseID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.expenseRepo.EXPECT().GetByID(teamID, expenseID).Return(nil, gorm.ErrRecordNotFound)

	expense, err := suite.svc.UpdateExpense(context.Background(), teamID, expenseID, "admin-1", &service.UpdateExpenseRequest{
		Amount:      decimal.NewFromFloat(30),
		Description: "Team pizza",
	})

	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrExpenseNotFound)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense() {
	teamID := uuid.New()
	expenseID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.expenseRepo.EXPECT().Delete(teamID, expenseID).Return(nil)

	suite.NoError(suite.svc.DeleteExpense(context.Background(), teamID, expenseID, "admin-1"))
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpenseNotFound() {
	teamID := uuid.New()
	expenseID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.expenseRepo.EXPECT().Delete(teamID, expenseID).Return(gorm.ErrRecordNotFound)

	err := suite.svc.DeleteExpense(context.Background(), teamID, expenseID, "admin-1")

	suite.ErrorIs(err, apperrors.ErrExpenseNotFound)
}

// TestExpenseServiceTestSuite runs the test suite
func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
