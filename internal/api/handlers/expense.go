package handlers

import (
	"net/http"

	"github.com/dkueng01/team-rule-tracker/internal/auth"
	"github.com/dkueng01/team-rule-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles HTTP requests for shared expenses
type ExpenseHandler struct {
	expenseService service.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService service.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpense handles POST /teams/:teamId/expenses
// @Summary Record an expense
// @Description Records money spent from the team pool
// @Tags expenses
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param body body service.CreateExpenseRequest true "Expense data"
// @Success 201 {object} models.Expense "Recorded expense"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Security BearerAuth
// @Router /teams/{teamId}/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	var req service.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// UpdateExpense handles PUT /teams/:teamId/expenses/:expenseId
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param expenseId path string true "Expense ID (UUID)"
// @Param body body service.UpdateExpenseRequest true "Expense data"
// @Success 200 {object} models.Expense "Updated expense"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /teams/{teamId}/expenses/{expenseId} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}
	expenseID, ok := pathUUID(c, "expenseId")
	if !ok {
		return
	}

	var req service.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), teamID, expenseID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles DELETE /teams/:teamId/expenses/:expenseId
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param expenseId path string true "Expense ID (UUID)"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /teams/{teamId}/expenses/{expenseId} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}
	expenseID, ok := pathUUID(c, "expenseId")
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), teamID, expenseID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
