package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shiptrack/internal/service"
)

// GetStats
// @Summary GetStats
// @Description Aggregated shipment counters and revenue for the admin dashboard
// @ID get-stats
// @Produce json
// @Success 200 {object} service.AdminStats
// @Failure 401,403 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/admin/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.svc.Shipments.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetVehicleStats
// @Summary GetVehicleStats
// @Description Fleet dashboard block; zeros until a fleet model exists
// @ID get-vehicle-stats
// @Produce json
// @Success 200 {object} service.VehicleStats
// @Failure 401,403 {object} errorResponse
// @Router /api/admin/vehicles/stats [get]
func (h *Handler) GetVehicleStats(c *gin.Context) {
	c.JSON(http.StatusOK, service.VehicleStats{})
}

type testEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// SendTestEmail
// @Summary SendTestEmail
// @Description Sends a probe email to verify SMTP configuration
// @ID send-test-email
// @Accept json
// @Produce json
// @Param request body testEmailRequest true "recipient"
// @Success 200 {object} map[string]string
// @Failure 400,401,403 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/email/test [post]
func (h *Handler) SendTestEmail(c *gin.Context) {
	var req testEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "a valid recipient address is required")
		return
	}

	if err := h.svc.Notifications.SendTest(req.To); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "test email sent"})
}
