//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	"github.com/dkueng01/team-rule-tracker/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RuleRepositoryTestSuite tests the RuleRepository
type RuleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RuleRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *RuleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewRuleRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RuleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RuleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RuleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RuleRepositoryTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.NoError(suite.teamRepo.Create(team))
	return team
}

// TestCreate tests creating a rule
func (suite *RuleRepositoryTestSuite) TestCreate() {
	team := suite.createTeam()
	rule := suite.factories.Rule.WithAmount(team.ID, "7.50")

	err := suite.repo.Create(rule)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, rule.ID)

	retrieved, err := suite.repo.GetByID(team.ID, rule.ID)
	suite.NoError(err)
	// numeric(12,2) survives the round trip exactly
	suite.True(retrieved.Amount.Equal(decimal.RequireFromString("7.50")))
}

// TestGetByIDScopedToTeam tests that lookups never cross team boundaries
func (suite *RuleRepositoryTestSuite) TestGetByIDScopedToTeam() {
	teamA := suite.createTeam()
	teamB := suite.createTeam()

	rule := suite.factories.Rule.Create(teamA.ID)
	suite.NoError(suite.repo.Create(rule))

	// Correct team finds it
	retrieved, err := suite.repo.GetByID(teamA.ID, rule.ID)
	suite.NoError(err)
	suite.Equal(rule.ID, retrieved.ID)

	// Another team's scope does not, even with the right id
	_, err = suite.repo.GetByID(teamB.ID, rule.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByTeamID tests listing rules for a team
func (suite *RuleRepositoryTestSuite) TestGetByTeamID() {
	team := suite.createTeam()
	other := suite.createTeam()

	suite.NoError(suite.repo.Create(suite.factories.Rule.Create(team.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Rule.Create(team.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Rule.Create(other.ID)))

	rules, err := suite.repo.GetByTeamID(team.ID)

	suite.NoError(err)
	suite.Len(rules, 2)
}

// TestUpdate tests editing a rule's amount
func (suite *RuleRepositoryTestSuite) TestUpdate() {
	team := suite.createTeam()
	rule := suite.factories.Rule.WithAmount(team.ID, "5.00")
	suite.NoError(suite.repo.Create(rule))

	rule.Amount = decimal.RequireFromString("12.00")
	rule.Name = "Late to retro"

	err := suite.repo.Update(rule)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(team.ID, rule.ID)
	suite.NoError(err)
	suite.True(updated.Amount.Equal(decimal.RequireFromString("12.00")))
	suite.Equal("Late to retro", updated.Name)
}

// TestDelete tests deleting a rule
func (suite *RuleRepositoryTestSuite) TestDelete() {
	team := suite.createTeam()
	rule := suite.factories.Rule.Create(team.ID)
	suite.NoError(suite.repo.Create(rule))

	err := suite.repo.Delete(team.ID, rule.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(team.ID, rule.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteWrongTeam tests that deletes are scoped like reads
func (suite *RuleRepositoryTestSuite) TestDeleteWrongTeam() {
	teamA := suite.createTeam()
	teamB := suite.createTeam()
	rule := suite.factories.Rule.Create(teamA.ID)
	suite.NoError(suite.repo.Create(rule))

	err := suite.repo.Delete(teamB.ID, rule.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	// Rule still present in its own team
	_, err = suite.repo.GetByID(teamA.ID, rule.ID)
	suite.NoError(err)
}

// TestDeleteKeepsBreaks tests that rule breaks survive the referenced rule
func (suite *RuleRepositoryTestSuite) TestDeleteKeepsBreaks() {
	team := suite.createTeam()
	rule := suite.factories.Rule.Create(team.ID)
	suite.NoError(suite.repo.Create(rule))

	breakRepo := NewRuleBreakRepository(suite.baseTestSuite.DB)
	rb := suite.factories.RuleBreak.Create(team.ID, rule.ID, "user-1")
	suite.NoError(breakRepo.Create(rb))

	suite.NoError(suite.repo.Delete(team.ID, rule.ID))

	// The break keeps its dangling rule reference; pricing treats it as zero
	breaks, err := breakRepo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Len(breaks, 1)
	suite.Equal(rule.ID, breaks[0].RuleID)
}

// Run the test suite
func TestRuleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RuleRepositoryTestSuite))
}
