package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shiptrack/internal/service"
)

// ListServices
// @Summary ListServices
// @Description Lists active catalog services; admins may pass all=true
// @ID list-services
// @Produce json
// @Param all query bool false "include inactive (admin only)"
// @Success 200 {array} models.Service
// @Failure 500 {object} errorResponse
// @Router /api/services [get]
func (h *Handler) ListServices(c *gin.Context) {
	activeOnly := true
	if c.Query("all") == "true" {
		if _, decision := h.decide(c, true); decision == DecisionAllow {
			activeOnly = false
		}
	}

	services, err := h.svc.Catalog.ListServices(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService
// @Summary CreateService
// @Description Adds a catalog service
// @ID create-service
// @Accept json
// @Produce json
// @Param service body service.ServiceInput true "service payload"
// @Success 201 {object} models.Service
// @Failure 400,401,403 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var in service.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	svc, err := h.svc.Catalog.CreateService(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService
// @Summary UpdateService
// @Description Updates a catalog service
// @ID update-service
// @Accept json
// @Produce json
// @Param id path string true "service id"
// @Param service body service.ServiceInput true "service payload"
// @Success 200 {object} models.Service
// @Failure 400,401,403,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/services/{id} [patch]
func (h *Handler) UpdateService(c *gin.Context) {
	var in service.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	svc, err := h.svc.Catalog.UpdateService(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService
// @Summary DeleteService
// @Description Removes a catalog service
// @ID delete-service
// @Produce json
// @Param id path string true "service id"
// @Success 204
// @Failure 401,403,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/services/{id} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	if err := h.svc.Catalog.DeleteService(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
