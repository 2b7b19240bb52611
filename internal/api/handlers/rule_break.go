package handlers

import (
	"net/http"

	"github.com/dkueng01/team-rule-tracker/internal/auth"
	"github.com/dkueng01/team-rule-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// RuleBreakHandler handles HTTP requests for rule breaks
type RuleBreakHandler struct {
	ruleBreakService service.RuleBreakServiceInterface
}

// NewRuleBreakHandler creates a new rule break handler
func NewRuleBreakHandler(ruleBreakService service.RuleBreakServiceInterface) *RuleBreakHandler {
	return &RuleBreakHandler{ruleBreakService: ruleBreakService}
}

// CreateRuleBreak handles POST /teams/:teamId/rule-breaks
// @Summary Record a rule break
// @Description Records that a member broke a rule, snapshotting the rule's current penalty
// @Tags rule-breaks
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param body body service.CreateRuleBreakRequest true "Rule break data"
// @Success 201 {object} models.RuleBreak "Recorded rule break"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Security BearerAuth
// @Router /teams/{teamId}/rule-breaks [post]
func (h *RuleBreakHandler) CreateRuleBreak(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	var req service.CreateRuleBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ruleBreak, err := h.ruleBreakService.CreateRuleBreak(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ruleBreak)
}

// UpdateRuleBreak handles PUT /teams/:teamId/rule-breaks/:breakId
// @Summary Update a rule break
// @Tags rule-breaks
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param breakId path string true "Rule break ID (UUID)"
// @Param body body service.UpdateRuleBreakRequest true "Rule break data"
// @Success 200 {object} models.RuleBreak "Updated rule break"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Rule break not found"
// @Security BearerAuth
// @Router /teams/{teamId}/rule-breaks/{breakId} [put]
func (h *RuleBreakHandler) UpdateRuleBreak(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}
	breakID, ok := pathUUID(c, "breakId")
	if !ok {
		return
	}

	var req service.UpdateRuleBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ruleBreak, err := h.ruleBreakService.UpdateRuleBreak(c.Request.Context(), teamID, breakID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ruleBreak)
}

// DeleteRuleBreak handles DELETE /teams/:teamId/rule-breaks/:breakId
// @Summary Delete a rule break
// @Tags rule-breaks
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param breakId path string true "Rule break ID (UUID)"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Rule break not found"
// @Security BearerAuth
// @Router /teams/{teamId}/rule-breaks/{breakId} [delete]
func (h *RuleBreakHandler) DeleteRuleBreak(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}
	breakID, ok := pathUUID(c, "breakId")
	if !ok {
		return
	}

	if err := h.ruleBreakService.DeleteRuleBreak(c.Request.Context(), teamID, breakID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rule break deleted"})
}
