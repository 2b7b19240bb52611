package handlers

import (
	"net/http"

	"github.com/dkueng01/team-rule-tracker/internal/auth"
	"github.com/dkueng01/team-rule-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// RuleHandler handles HTTP requests for team rules
type RuleHandler struct {
	ruleService service.RuleServiceInterface
}

// NewRuleHandler creates a new rule handler
func NewRuleHandler(ruleService service.RuleServiceInterface) *RuleHandler {
	return &RuleHandler{ruleService: ruleService}
}

// CreateRule handles POST /teams/:teamId/rules
// @Summary Create a rule
// @Description Adds a rule with a monetary penalty to the team
// @Tags rules
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param body body service.CreateRuleRequest true "Rule data"
// @Success 201 {object} models.Rule "Created rule"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Security BearerAuth
// @Router /teams/{teamId}/rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	var req service.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// UpdateRule handles PUT /teams/:teamId/rules/:ruleId
// @Summary Update a rule
// @Tags rules
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param ruleId path string true "Rule ID (UUID)"
// @Param body body service.UpdateRuleRequest true "Rule data"
// @Success 200 {object} models.Rule "Updated rule"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Security BearerAuth
// @Router /teams/{teamId}/rules/{ruleId} [put]
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}
	ruleID, ok := pathUUID(c, "ruleId")
	if !ok {
		return
	}

	var req service.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), teamID, ruleID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rule)
}

// DeleteRule handles DELETE /teams/:teamId/rules/:ruleId
// @Summary Delete a rule
// @Description Removes the rule; breaks recorded against it keep their cost
// @Tags rules
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param ruleId path string true "Rule ID (UUID)"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Security BearerAuth
// @Router /teams/{teamId}/rules/{ruleId} [delete]
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}
	ruleID, ok := pathUUID(c, "ruleId")
	if !ok {
		return
	}

	if err := h.ruleService.DeleteRule(c.Request.Context(), teamID, ruleID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rule deleted"})
}
