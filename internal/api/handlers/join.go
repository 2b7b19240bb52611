package handlers

import (
	"net/http"

	"github.com/dkueng01/team-rule-tracker/internal/auth"
	"github.com/dkueng01/team-rule-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// JoinHandler handles HTTP requests for the join workflow
type JoinHandler struct {
	joinService service.JoinServiceInterface
}

// NewJoinHandler creates a new join handler
func NewJoinHandler(joinService service.JoinServiceInterface) *JoinHandler {
	return &JoinHandler{joinService: joinService}
}

// RequestToJoin handles POST /teams/join-request
// @Summary Request to join a team by code
// @Description Files a pending join request for the team behind the join code
// @Tags join
// @Accept json
// @Produce json
// @Param body body service.JoinTeamRequest true "Join code"
// @Success 201 {object} models.JoinRequest "Pending join request"
// @Failure 400 {object} ErrorResponse "Invalid join code"
// @Failure 403 {object} ErrorResponse "Joining is disabled for this team"
// @Failure 404 {object} ErrorResponse "No team matches the code"
// @Failure 409 {object} ErrorResponse "Already a member, duplicate request, or team full"
// @Security BearerAuth
// @Router /teams/join-request [post]
func (h *JoinHandler) RequestToJoin(c *gin.Context) {
	identity := auth.CurrentProfile(c)
	if identity.ID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.joinService.RequestToJoin(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListPendingRequests handles GET /teams/:teamId/join-requests
// @Summary List pending join requests
// @Description Admin view of the team's unresolved join requests, oldest first
// @Tags join
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} models.JoinRequest "Pending requests"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Security BearerAuth
// @Router /teams/{teamId}/join-requests [get]
func (h *JoinHandler) ListPendingRequests(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	requests, err := h.joinService.ListPendingRequests(c.Request.Context(), teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ApproveRequest handles POST /teams/:teamId/join-requests/:requestId/approve
// @Summary Approve a pending join request
// @Description Marks the request approved and adds the requester as a member
// @Tags join
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param requestId path string true "Join request ID (UUID)"
// @Success 200 {object} models.JoinRequest "Approved request"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already resolved or team full"
// @Security BearerAuth
// @Router /teams/{teamId}/join-requests/{requestId}/approve [post]
func (h *JoinHandler) ApproveRequest(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}
	requestID, ok := pathUUID(c, "requestId")
	if !ok {
		return
	}

	request, err := h.joinService.ApproveRequest(c.Request.Context(), teamID, requestID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// RejectRequest handles POST /teams/:teamId/join-requests/:requestId/reject
// @Summary Reject a pending join request
// @Tags join
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param requestId path string true "Join request ID (UUID)"
// @Success 200 {object} models.JoinRequest "Rejected request"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already resolved"
// @Security BearerAuth
// @Router /teams/{teamId}/join-requests/{requestId}/reject [post]
func (h *JoinHandler) RejectRequest(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}
	requestID, ok := pathUUID(c, "requestId")
	if !ok {
		return
	}

	request, err := h.joinService.RejectRequest(c.Request.Context(), teamID, requestID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
