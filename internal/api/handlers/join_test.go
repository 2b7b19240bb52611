package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dkueng01/team-rule-tracker/internal/api/handlers"
	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	apperrors "github.com/dkueng01/team-rule-tracker/internal/errors"
	"github.com/dkueng01/team-rule-tracker/internal/mocks"
	"github.com/dkueng01/team-rule-tracker/internal/service"
	"github.com/dkueng01/team-rule-tracker/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// JoinHandlerTestSuite defines the test suite for JoinHandler
type JoinHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockJoinServiceInterface
	handler     *handlers.JoinHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *JoinHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockJoinServiceInterface(suite.ctrl)
	suite.handler = handlers.NewJoinHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(testutils.AsUser("user-1", "Jamie", "jamie@example.com"))

	teams := v1.Group("/teams")
	{
		teams.POST("/join-request", suite.handler.RequestToJoin)
		teams.GET("/:teamId/join-requests", suite.handler.ListPendingRequests)
		teams.POST("/:teamId/join-requests/:requestId/approve", suite.handler.ApproveRequest)
		teams.POST("/:teamId/join-requests/:requestId/reject", suite.handler.RejectRequest)
	}
}

// TearDownTest cleans up after each test
func (suite *JoinHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRequestToJoin tests the RequestToJoin handler
func (suite *JoinHandlerTestSuite) TestRequestToJoin() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		requestID := uuid.New()

		suite.mockService.EXPECT().
			RequestToJoin(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, identity interface{}, req *service.JoinTeamRequest) (*models.JoinRequest, error) {
				assert.Equal(t, "ABCD2345", req.JoinCode)
				return &models.JoinRequest{
					BaseModel: models.BaseModel{ID: requestID},
					TeamID:    teamID,
					UserID:    "user-1",
					Name:      "Jamie",
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join-request", map[string]interface{}{
			"join_code": "ABCD2345",
		})

		var response models.JoinRequest
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, requestID, response.ID)
		assert.Equal(t, "user-1", response.UserID)
	})

	suite.T().Run("UnknownCode", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestToJoin(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join-request", map[string]interface{}{
			"join_code": "ZZZZ9999",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "")
	})

	suite.T().Run("JoiningDisabled", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestToJoin(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrJoinDisabled)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join-request", map[string]interface{}{
			"join_code": "ABCD2345",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "")
	})

	suite.T().Run("AlreadyMember", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestToJoin(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrAlreadyMember)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join-request", map[string]interface{}{
			"join_code": "ABCD2345",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "")
	})

	suite.T().Run("TeamFull", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestToJoin(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamFull)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join-request", map[string]interface{}{
			"join_code": "ABCD2345",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "")
	})

	suite.T().Run("Unauthenticated", func(t *testing.T) {
		anon := testutils.SetupHTTPTest()
		anon.Router.POST("/api/v1/teams/join-request", suite.handler.RequestToJoin)

		recorder := anon.MakeRequest("POST", "/api/v1/teams/join-request", map[string]interface{}{
			"join_code": "ABCD2345",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "authentication required")
	})
}

// TestListPendingRequests tests the ListPendingRequests handler
func (suite *JoinHandlerTestSuite) TestListPendingRequests() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		pending := []models.JoinRequest{
			{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: teamID, UserID: "user-5", Name: "Sam"},
		}

		suite.mockService.EXPECT().
			ListPendingRequests(gomock.Any(), teamID, "user-1").
			Return(pending, nil)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s/join-requests", teamID), nil)

		var response []models.JoinRequest
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
		assert.Equal(t, "Sam", response[0].Name)
	})

	suite.T().Run("MemberForbidden", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			ListPendingRequests(gomock.Any(), teamID, "user-1").
			Return(nil, apperrors.ErrForbidden)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s/join-requests", teamID), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "")
	})

	suite.T().Run("InvalidTeamID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/not-a-uuid/join-requests", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid teamId")
	})
}

// TestApproveRequest tests the ApproveRequest handler
func (suite *JoinHandlerTestSuite) TestApproveRequest() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		requestID := uuid.New()
		approved := true

		suite.mockService.EXPECT().
			ApproveRequest(gomock.Any(), teamID, requestID, "user-1").
			Return(&models.JoinRequest{BaseModel: models.BaseModel{ID: requestID}, TeamID: teamID, UserID: "user-5", Approved: &approved}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/join-requests/%s/approve", teamID, requestID), nil)

		var response models.JoinRequest
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		if assert.NotNil(t, response.Approved) {
			assert.True(t, *response.Approved)
		}
	})

	suite.T().Run("AlreadyResolved", func(t *testing.T) {
		teamID := uuid.New()
		requestID := uuid.New()

		suite.mockService.EXPECT().
			ApproveRequest(gomock.Any(), teamID, requestID, "user-1").
			Return(nil, apperrors.ErrJoinRequestResolved)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/join-requests/%s/approve", teamID, requestID), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "")
	})

	suite.T().Run("InvalidRequestID", func(t *testing.T) {
		teamID := uuid.New()

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/join-requests/not-a-uuid/approve", teamID), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid requestId")
	})
}

// TestRejectRequest tests the RejectRequest handler
func (suite *JoinHandlerTestSuite) TestRejectRequest() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		requestID := uuid.New()
		rejected := true

		suite.mockService.EXPECT().
			RejectRequest(gomock.Any(), teamID, requestID, "user-1").
			Return(&models.JoinRequest{BaseModel: models.BaseModel{ID: requestID}, TeamID: teamID, UserID: "user-5", Rejected: &rejected}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/join-requests/%s/reject", teamID, requestID), nil)

		var response models.JoinRequest
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		if assert.NotNil(t, response.Rejected) {
			assert.True(t, *response.Rejected)
		}
		assert.Nil(t, response.Approved)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		teamID := uuid.New()
		requestID := uuid.New()

		suite.mockService.EXPECT().
			RejectRequest(gomock.Any(), teamID, requestID, "user-1").
			Return(nil, apperrors.ErrJoinRequestNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/join-requests/%s/reject", teamID, requestID), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "")
	})
}

// TestJoinHandlerTestSuite runs the test suite
func TestJoinHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JoinHandlerTestSuite))
}
