//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	"github.com/dkueng01/team-rule-tracker/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// JoinRequestRepositoryTestSuite tests the JoinRequestRepository
type JoinRequestRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *JoinRequestRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *JoinRequestRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewJoinRequestRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *JoinRequestRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *JoinRequestRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *JoinRequestRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *JoinRequestRepositoryTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.NoError(suite.teamRepo.Create(team))
	return team
}

// TestCreateAndGet tests creating and retrieving a join request
func (suite *JoinRequestRepositoryTestSuite) TestCreateAndGet() {
	team := suite.createTeam()
	request := suite.factories.JoinRequest.Create(team.ID)

	err := suite.repo.Create(request)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(team.ID, request.ID)
	suite.NoError(err)
	suite.True(retrieved.IsPending())
	suite.Equal(request.UserID, retrieved.UserID)
}

// TestGetPendingByTeamAndUser tests pending lookup ignores resolved requests
func (suite *JoinRequestRepositoryTestSuite) TestGetPendingByTeamAndUser() {
	team := suite.createTeam()

	resolved := suite.factories.JoinRequest.Rejected(team.ID)
	resolved.UserID = "user-1"
	suite.NoError(suite.repo.Create(resolved))

	// Only the rejected request exists, so nothing is pending
	_, err := suite.repo.GetPendingByTeamAndUser(team.ID, "user-1")
	suite.Equal(gorm.ErrRecordNotFound, err)

	pending := suite.factories.JoinRequest.Create(team.ID)
	pending.UserID = "user-1"
	suite.NoError(suite.repo.Create(pending))

	retrieved, err := suite.repo.GetPendingByTeamAndUser(team.ID, "user-1")
	suite.NoError(err)
	suite.Equal(pending.ID, retrieved.ID)
}

// TestGetPendingByTeamID tests the admin queue, oldest first
func (suite *JoinRequestRepositoryTestSuite) TestGetPendingByTeamID() {
	team := suite.createTeam()

	newer := suite.factories.JoinRequest.Create(team.ID)
	older := suite.factories.JoinRequest.Create(team.ID)
	older.CreatedAt = newer.CreatedAt.Add(-time.Hour)
	suite.NoError(suite.repo.Create(newer))
	suite.NoError(suite.repo.Create(older))
	suite.NoError(suite.repo.Create(suite.factories.JoinRequest.Approved(team.ID)))

	requests, err := suite.repo.GetPendingByTeamID(team.ID)

	suite.NoError(err)
	suite.Len(requests, 2)
	suite.Equal(older.ID, requests[0].ID)
	suite.Equal(newer.ID, requests[1].ID)
}

// TestUpdateResolvesRequest tests marking a request approved
func (suite *JoinRequestRepositoryTestSuite) TestUpdateResolvesRequest() {
	team := suite.createTeam()
	request := suite.factories.JoinRequest.Create(team.ID)
	suite.NoError(suite.repo.Create(request))

	approved := true
	request.Approved = &approved
	suite.NoError(suite.repo.Update(request))

	retrieved, err := suite.repo.GetByID(team.ID, request.ID)
	suite.NoError(err)
	suite.False(retrieved.IsPending())
	suite.NotNil(retrieved.Approved)
	suite.True(*retrieved.Approved)

	// Resolved requests drop out of the pending queue
	requests, err := suite.repo.GetPendingByTeamID(team.ID)
	suite.NoError(err)
	suite.Empty(requests)
}

// TestGetByIDScopedToTeam tests that lookups never cross team boundaries
func (suite *JoinRequestRepositoryTestSuite) TestGetByIDScopedToTeam() {
	teamA := suite.createTeam()
	teamB := suite.createTeam()

	request := suite.factories.JoinRequest.Create(teamA.ID)
	suite.NoError(suite.repo.Create(request))

	_, err := suite.repo.GetByID(teamB.ID, request.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestJoinRequestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(JoinRequestRepositoryTestSuite))
}
