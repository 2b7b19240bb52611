package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkueng01/team-rule-tracker/internal/api/handlers"
	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"
	"github.com/dkueng01/team-rule-tracker/internal/mocks"
	"github.com/dkueng01/team-rule-tracker/internal/service"
	"github.com/dkueng01/team-rule-tracker/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RuleHandlerTestSuite defines the test suite for RuleHandler
type RuleHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRuleServiceInterface
	handler     *handlers.RuleHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RuleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRuleServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRuleHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(testutils.AsUser("user-1", "Jamie", "jamie@example.com"))

	teams := v1.Group("/teams")
	{
		teams.POST("/:teamId/rules", suite.handler.CreateRule)
		teams.PUT("/:teamId/rules/:ruleId", suite.handler.UpdateRule)
		teams.DELETE("/:teamId/rules/:ruleId", suite.handler.DeleteRule)
	}
}

// TearDownTest cleans up after each test
func (suite *RuleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateRule tests the CreateRule handler
func (suite *RuleHandlerTestSuite) TestCreateRule() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			CreateRule(gomock.Any(), teamID, "user-1", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, _ string, req *service.CreateRuleRequest) (*models.Rule, error) {
				assert.Equal(t, "Late to standup", req.Name)
				assert.True(t, req.Amount.Equal(decimal.RequireFromString("5.00")))
				return &models.Rule{
					BaseModel: models.BaseModel{ID: ruleID},
					TeamID:    teamID,
					Name:      req.Name,
					Amount:    req.Amount,
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/rules", teamID), map[string]interface{}{
			"name":   "Late to standup",
			"amount": "5.00",
		})

		var response models.Rule
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, ruleID, response.ID)
		assert.Equal(t, "Late to standup", response.Name)
	})

	suite.T().Run("MemberForbidden", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			CreateRule(gomock.Any(), teamID, "user-1", gomock.Any()).
			Return(nil, apperrors.ErrForbidden)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/rules", teamID), map[string]interface{}{
			"name":   "Late to standup",
			"amount": "5.00",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "")
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		teamID := uuid.New()

		req, _ := http.NewRequest("POST", fmt.Sprintf("/api/v1/teams/%s/rules", teamID), bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("InvalidTeamID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/not-a-uuid/rules", map[string]interface{}{
			"name":   "Late to standup",
			"amount": "5.00",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid teamId")
	})
}

// TestUpdateRule tests the UpdateRule handler
func (suite *RuleHandlerTestSuite) TestUpdateRule() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			UpdateRule(gomock.Any(), teamID, ruleID, "user-1", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, _ uuid.UUID, _ string, req *service.UpdateRuleRequest) (*models.Rule, error) {
				return &models.Rule{
					BaseModel: models.BaseModel{ID: ruleID},
					TeamID:    teamID,
					Name:      req.Name,
					Amount:    req.Amount,
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/teams/%s/rules/%s", teamID, ruleID), map[string]interface{}{
			"name":   "Late to standup",
			"amount": "7.50",
		})

		var response models.Rule
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.Amount.Equal(decimal.RequireFromString("7.50")))
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		teamID := uuid.New()
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			UpdateRule(gomock.Any(), teamID, ruleID, "user-1", gomock.Any()).
			Return(nil, apperrors.ErrRuleNotFound)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/teams/%s/rules/%s", teamID, ruleID), map[string]interface{}{
			"name":   "Late to standup",
			"amount": "7.50",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "")
	})
}

// TestDeleteRule tests the DeleteRule handler
func (suite *RuleHandlerTestSuite) TestDeleteRule() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			DeleteRule(gomock.Any(), teamID, ruleID, "user-1").
			Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s/rules/%s", teamID, ruleID), nil)

		var response map[string]string
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "rule deleted", response["message"])
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		teamID := uuid.New()
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			DeleteRule(gomock.Any(), teamID, ruleID, "user-1").
			Return(apperrors.ErrRuleNotFound)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s/rules/%s", teamID, ruleID), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "")
	})

	suite.T().Run("InvalidRuleID", func(t *testing.T) {
		teamID := uuid.New()

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s/rules/not-a-uuid", teamID), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid ruleId")
	})
}

// TestRuleHandlerTestSuite runs the test suite
func TestRuleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RuleHandlerTestSuite))
}
