package handlers

import (
	"net/http"

	"github.com/dkueng01/team-rule-tracker/internal/auth"
	"github.com/dkueng01/team-rule-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payments into the team pool
type PaymentHandler struct {
	paymentService service.PaymentServiceInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePayment handles POST /teams/:teamId/payments
// @Summary Record a payment
// @Description Records money a member paid into the team pool
// @Tags payments
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param body body service.CreatePaymentRequest true "Payment data"
// @Success 201 {object} models.Payment "Recorded payment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Security BearerAuth
// @Router /teams/{teamId}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}

	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// UpdatePayment handles PUT /teams/:teamId/payments/:paymentId
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param paymentId path string true "Payment ID (UUID)"
// @Param body body service.UpdatePaymentRequest true "Payment data"
// @Success 200 {object} models.Payment "Updated payment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /teams/{teamId}/payments/{paymentId} [put]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}
	paymentID, ok := pathUUID(c, "paymentId")
	if !ok {
		return
	}

	var req service.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), teamID, paymentID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// DeletePayment handles DELETE /teams/:teamId/payments/:paymentId
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param paymentId path string true "Payment ID (UUID)"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /teams/{teamId}/payments/{paymentId} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	teamID, ok := pathUUID(c, "teamId")
	if !ok {
		return
	}
	paymentID, ok := pathUUID(c, "paymentId")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), teamID, paymentID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}
