//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	"github.com/dkueng01/team-rule-tracker/internal/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PaymentRepositoryTestSuite tests the PaymentRepository
type PaymentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PaymentRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PaymentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPaymentRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PaymentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PaymentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PaymentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PaymentRepositoryTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.NoError(suite.teamRepo.Create(team))
	return team
}

// TestCreateAndGet tests creating and retrieving a payment
func (suite *PaymentRepositoryTestSuite) TestCreateAndGet() {
	team := suite.createTeam()
	payment := suite.factories.Payment.WithAmount(team.ID, "user-1", "12.34")

	err := suite.repo.Create(payment)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(team.ID, payment.ID)
	suite.NoError(err)
	suite.Equal("user-1", retrieved.UserID)
	suite.True(retrieved.Amount.Equal(decimal.RequireFromString("12.34")))
}

// TestGetByTeamID tests listing payments for a team only
func (suite *PaymentRepositoryTestSuite) TestGetByTeamID() {
	team := suite.createTeam()
	other := suite.createTeam()

	suite.NoError(suite.repo.Create(suite.factories.Payment.Create(team.ID, "user-1")))
	suite.NoError(suite.repo.Create(suite.factories.Payment.Create(team.ID, "user-2")))
	suite.NoError(suite.repo.Create(suite.factories.Payment.Create(other.ID, "user-1")))

	payments, err := suite.repo.GetByTeamID(team.ID)

	suite.NoError(err)
	suite.Len(payments, 2)
}

// TestUpdate tests editing a payment
func (suite *PaymentRepositoryTestSuite) TestUpdate() {
	team := suite.createTeam()
	payment := suite.factories.Payment.Create(team.ID, "user-1")
	suite.NoError(suite.repo.Create(payment))

	payment.Amount = decimal.RequireFromString("3.00")
	suite.NoError(suite.repo.Update(payment))

	updated, err := suite.repo.GetByID(team.ID, payment.ID)
	suite.NoError(err)
	suite.True(updated.Amount.Equal(decimal.RequireFromString("3.00")))
}

// TestDeleteScoped tests scoped delete behavior
func (suite *PaymentRepositoryTestSuite) TestDeleteScoped() {
	teamA := suite.createTeam()
	teamB := suite.createTeam()
	payment := suite.factories.Payment.Create(teamA.ID, "user-1")
	suite.NoError(suite.repo.Create(payment))

	suite.Equal(gorm.ErrRecordNotFound, suite.repo.Delete(teamB.ID, payment.ID))
	suite.NoError(suite.repo.Delete(teamA.ID, payment.ID))

	_, err := suite.repo.GetByID(teamA.ID, payment.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestPaymentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryTestSuite))
}
