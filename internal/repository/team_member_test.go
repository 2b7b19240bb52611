//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	"github.com/dkueng01/team-rule-tracker/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamMemberRepositoryTestSuite tests the TeamMemberRepository
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamMemberRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamMemberRepositoryTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.NoError(suite.teamRepo.Create(team))
	return team
}

// TestCreate tests creating a membership
func (suite *TeamMemberRepositoryTestSuite) TestCreate() {
	team := suite.createTeam()
	member := suite.factories.TeamMember.Create(team.ID)

	err := suite.repo.Create(member)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, member.ID)
	suite.Equal(models.RoleMember, member.Role)
}

// TestCreateDuplicateMembership tests that a user can join a team only once
func (suite *TeamMemberRepositoryTestSuite) TestCreateDuplicateMembership() {
	team := suite.createTeam()

	err := suite.repo.Create(suite.factories.TeamMember.WithUser(team.ID, "user-1"))
	suite.NoError(err)

	err = suite.repo.Create(suite.factories.TeamMember.WithUser(team.ID, "user-1"))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestSameUserDifferentTeams tests that the unique index is per team
func (suite *TeamMemberRepositoryTestSuite) TestSameUserDifferentTeams() {
	teamA := suite.createTeam()
	teamB := suite.createTeam()

	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithUser(teamA.ID, "user-1")))
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithUser(teamB.ID, "user-1")))
}

// TestGetByTeamAndUser tests membership lookup
func (suite *TeamMemberRepositoryTestSuite) TestGetByTeamAndUser() {
	team := suite.createTeam()
	member := suite.factories.TeamMember.WithRole(team.ID, "user-1", models.RoleAdmin)
	suite.NoError(suite.repo.Create(member))

	retrieved, err := suite.repo.GetByTeamAndUser(team.ID, "user-1")

	suite.NoError(err)
	suite.Equal(member.ID, retrieved.ID)
	suite.Equal(models.RoleAdmin, retrieved.Role)
}

// TestGetByTeamAndUserNotFound tests lookup for a non-member
func (suite *TeamMemberRepositoryTestSuite) TestGetByTeamAndUserNotFound() {
	team := suite.createTeam()

	member, err := suite.repo.GetByTeamAndUser(team.ID, "stranger")

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(member)
}

// TestGetByTeamID tests listing members oldest first
func (suite *TeamMemberRepositoryTestSuite) TestGetByTeamID() {
	team := suite.createTeam()
	other := suite.createTeam()

	first := suite.factories.TeamMember.WithUser(team.ID, "user-1")
	second := suite.factories.TeamMember.WithUser(team.ID, "user-2")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithUser(other.ID, "user-3")))

	members, err := suite.repo.GetByTeamID(team.ID)

	suite.NoError(err)
	suite.Len(members, 2)
	suite.Equal("user-1", members[0].UserID)
	suite.Equal("user-2", members[1].UserID)
}

// TestCountByTeamID tests the member count used for capacity checks
func (suite *TeamMemberRepositoryTestSuite) TestCountByTeamID() {
	team := suite.createTeam()
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithUser(team.ID, "user-1")))
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithUser(team.ID, "user-2")))

	count, err := suite.repo.CountByTeamID(team.ID)

	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestCountOwnedTeams tests counting owner memberships for a user
func (suite *TeamMemberRepositoryTestSuite) TestCountOwnedTeams() {
	teamA := suite.createTeam()
	teamB := suite.createTeam()

	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithRole(teamA.ID, "user-1", models.RoleOwner)))
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithRole(teamB.ID, "user-1", models.RoleAdmin)))

	count, err := suite.repo.CountOwnedTeams("user-1")

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestDelete tests removing a membership
func (suite *TeamMemberRepositoryTestSuite) TestDelete() {
	team := suite.createTeam()
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithUser(team.ID, "user-1")))

	err := suite.repo.Delete(team.ID, "user-1")
	suite.NoError(err)

	_, err = suite.repo.GetByTeamAndUser(team.ID, "user-1")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteNotFound tests removing a membership that does not exist
func (suite *TeamMemberRepositoryTestSuite) TestDeleteNotFound() {
	team := suite.createTeam()

	err := suite.repo.Delete(team.ID, "stranger")

	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}
