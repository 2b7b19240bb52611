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

// PaymentServiceTestSuite defines the test suite for PaymentService
type PaymentServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	memberRepo  *mocks.MockTeamMemberRepositoryInterface
	paymentRepo *mocks.MockPaymentRepositoryInterface
	svc         *service.PaymentService
}

// SetupTest sets up the test suite
func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.memberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.paymentRepo = mocks.NewMockPaymentRepositoryInterface(suite.ctrl)

	suite.memberRepo.EXPECT().WithTx(gomock.Any()).Return(suite.memberRepo).AnyTimes()
	suite.paymentRepo.EXPECT().WithTx(gomock.Any()).Return(suite.paymentRepo).AnyTimes()

	suite.svc = service.NewPaymentService(passthroughRunner{}, suite.memberRepo, suite.paymentRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *PaymentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PaymentServiceTestSuite) expectRole(teamID uuid.UUID, userID string, role models.MemberRole) {
	suite.memberRepo.EXPECT().GetByTeamAndUser(teamID, userID).
		Return(memberWithRole(teamID, userID, role), nil)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment() {
	teamID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.paymentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Payment) error {
		p.ID = uuid.New()
		return nil
	})

	payment, err := suite.svc.CreatePayment(context.Background(), teamID, "admin-1", &service.CreatePaymentRequest{
		UserID: "member-1",
		Amount: decimal.NewFromFloat(10),
	})

	suite.NoError(err)
	suite.Equal("member-1", payment.UserID)
	suite.True(payment.Amount.Equal(decimal.NewFromFloat(10)))
	suite.False(payment.Date.IsZero())
}

func (suite *PaymentServiceTestSuite) TestCreatePaymentMemberForbidden() {
	teamID := uuid.New()
	suite.expectRole(teamID, "member-1", models.RoleMember)

	payment, err := suite.svc.CreatePayment(context.Background(), teamID, "member-1", &service.CreatePaymentRequest{
		UserID: "member-1",
		Amount: decimal.NewFromFloat(10),
	})

	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PaymentServiceTestSuite) TestCreatePaymentNegativeAmount() {
	teamID := uuid.New()
	suite.expectRole(teamID, "admin-1", models.RoleAdmin)

	payment, err := suite.svc.CreatePayment(context.Background(), teamID, "admin-1", &service.CreatePaymentRequest{
		UserID: "member-1",
		Amount: decimal.NewFromFloat(-5),
	})

	suite.Nil(payment)
	suite.True(apperrors.IsValidation(err))
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment() {
	teamID := uuid.New()
	paymentID := uuid.New()
	existing := &models.Payment{TeamID: teamID, UserID: "member-1", Amount: decimal.NewFromFloat(10), Date: time.Now()}
	existing.ID = paymentID

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.paymentRepo.EXPECT().GetByID(teamID, paymentID).Return(existing, nil)
	suite.paymentRepo.EXPECT().Update(existing).Return(nil)

	payment, err := suite.svc.UpdatePayment(context.Background(), teamID, paymentID, "admin-1", &service.UpdatePaymentRequest{
		UserID: "member-1",
		Amount: decimal.NewFromFloat(15),
	})

	suite.NoError(err)
	suite.True(payment.Amount.Equal(decimal.NewFromFloat(15)))
}

func (suite *PaymentServiceTestSuite) TestUpdatePaymentNotFound() {
	teamID := uuid.New()
	paymentID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.paymentRepo.EXPECT().GetByID(teamID, paymentID).Return(nil, gorm.ErrRecordNotFound)

	payment, err := suite.svc.UpdatePayment(context.Background(), teamID, paymentID, "admin-1", &service.UpdatePaymentRequest{
		UserID: "member-1",
		Amount: decimal.NewFromFloat(15),
	})

	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrPaymentNotFound)
}

func (suite *PaymentServiceTestSuite) TestDeletePayment() {
	teamID := uuid.New()
	paymentID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.paymentRepo.EXPECT().Delete(teamID, paymentID).Return(nil)

	suite.NoError(suite.svc.DeletePayment(context.Background(), teamID, paymentID, "admin-1"))
}

func (suite *PaymentServiceTestSuite) TestDeletePaymentNotFound() {
	teamID := uuid.New()
	paymentID := uuid.New()

	suite.expectRole(teamID, "admin-1", models.RoleAdmin)
	suite.paymentRepo.EXPECT().Delete(teamID, paymentID).Return(gorm.ErrRecordNotFound)

	err := suite.svc.DeletePayment(context.Background(), teamID, paymentID, "admin-1")

	suite.ErrorIs(err, apperrors.ErrPaymentNotFound)
}

// TestPaymentServiceTestSuite runs the test suite
func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
