package handlers

import (
	"net/http"

	"github.com/dkueng01/team-rule-tracker/internal/auth"
	"github.com/dkueng01/team-rule-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team; the caller becomes its owner. A user may own at most one team.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Caller already owns a team"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	identity := auth.CurrentProfile(c)
	if identity.ID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetMyTeams handles GET /my-teams
// @Summary List the caller's teams
// @Description Get all teams the caller belongs to, with member and rule counts
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamSummaryResponse "Successfully retrieved teams"
// @Security BearerAuth
// @Router /my-teams [get]
func (h *TeamHandler) GetMyTeams(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	teams, err := h.teamService.GetMyTeams(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetMembership handles GET /teams/:teamId/membership
// @Summary Get the caller's membership status
// @Description Answers for non-members too; is_member is false and the role empty
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.MembershipStatus "Membership status"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Security BearerAuth
// @Router /teams/{teamId}/membership [get]
func (h *TeamHandler) GetMembership(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	status, err := h.teamService.GetMembership(c.Request.Context(), teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetTeamData handles GET /teams/:teamId/data
// @Summary Get the full team page payload
// @Description Members get the team, ledgers, pools and totals; admins additionally see member emails, the join code and pending join requests
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamDataResponse "Team data"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Security BearerAuth
// @Router /teams/{teamId}/data [get]
func (h *TeamHandler) GetTeamData(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	data, err := h.teamService.GetTeamData(c.Request.Context(), teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// RotateJoinCode handles POST /teams/:teamId/join-code
// @Summary Rotate the team's join code
// @Description Generates a new join code; the previous one stops working immediately
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.JoinCodeResponse "New join code"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Security BearerAuth
// @Router /teams/{teamId}/join-code [post]
func (h *TeamHandler) RotateJoinCode(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	code, err := h.teamService.RotateJoinCode(c.Request.Context(), teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, code)
}

// SetJoinEnabled handles POST /teams/:teamId/join-enabled
// @Summary Toggle whether the team accepts join requests
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param body body service.SetJoinEnabledRequest true "Join flag"
// @Success 200 {object} map[string]interface{} "Updated"
// @Failure 400 {object} ErrorResponse "Invalid team ID or body"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Security BearerAuth
// @Router /teams/{teamId}/join-enabled [post]
func (h *TeamHandler) SetJoinEnabled(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	var req service.SetJoinEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "join_enabled must be a boolean"})
		return
	}

	if err := h.teamService.SetJoinEnabled(c.Request.Context(), teamID, userID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "join flag updated"})
}
