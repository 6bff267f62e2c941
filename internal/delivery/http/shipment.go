package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shiptrack/internal/models"
	"shiptrack/internal/service"
)

// CreateShipment
// @Summary CreateShipment
// @Description Registers a new shipment and its first tracking event
// @ID create-shipment
// @Accept json
// @Produce json
// @Param shipment body service.CreateShipmentInput true "shipment payload"
// @Success 201 {object} models.Shipment
// @Failure 400,401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/shipments [post]
func (h *Handler) CreateShipment(c *gin.Context) {
	var in service.CreateShipmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	in.CreatedBy = currentUser(c).ID

	sh, err := h.svc.Shipments.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	shipmentsCreated.Inc()
	c.JSON(http.StatusCreated, sh)
}

func parseFilter(c *gin.Context) models.ShipmentFilter {
	f := models.ShipmentFilter{
		Status:    c.Query("status"),
		ServiceID: c.Query("serviceId"),
		Search:    c.Query("search"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		f.To = &end
	}
	return f
}

// ListShipments
// @Summary ListShipments
// @Description Filtered, paginated shipment listing
// @ID list-shipments
// @Produce json
// @Param status query string false "status filter or all"
// @Param serviceId query string false "service filter"
// @Param search query string false "free text search"
// @Param page query int false "1-indexed page"
// @Param limit query int false "page size"
// @Success 200 {object} service.ShipmentPage
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/shipments [get]
func (h *Handler) ListShipments(c *gin.Context) {
	page, err := h.svc.Shipments.List(parseFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetShipment
// @Summary GetShipment
// @Description Fetches one shipment by internal id or tracking number
// @ID get-shipment
// @Produce json
// @Param id path string true "shipment id or tracking number"
// @Success 200 {object} models.Shipment
// @Failure 401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/shipments/{id} [get]
func (h *Handler) GetShipment(c *gin.Context) {
	sh, err := h.svc.Shipments.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sh)
}

// PatchShipment
// @Summary PatchShipment
// @Description Updates mutable shipment fields
// @ID patch-shipment
// @Accept json
// @Produce json
// @Param id path string true "shipment id or tracking number"
// @Param patch body service.PatchShipmentInput true "fields to update"
// @Success 200 {object} models.Shipment
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/shipments/{id} [patch]
func (h *Handler) PatchShipment(c *gin.Context) {
	var in service.PatchShipmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sh, err := h.svc.Shipments.Patch(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sh)
}

// DeleteShipment
// @Summary DeleteShipment
// @Description Removes a shipment and its tracking events
// @ID delete-shipment
// @Produce json
// @Param id path string true "shipment id or tracking number"
// @Success 204
// @Failure 401,403,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/shipments/{id} [delete]
func (h *Handler) DeleteShipment(c *gin.Context) {
	if err := h.svc.Shipments.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type exportRequest struct {
	Status    string `json:"status"`
	ServiceID string `json:"serviceId"`
	Search    string `json:"search"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// ExportShipments
// @Summary ExportShipments
// @Description Exports every shipment matching the filter as CSV
// @ID export-shipments
// @Accept json
// @Produce text/csv
// @Param filter body exportRequest false "filters"
// @Success 200 {string} string "csv"
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/shipments/export [post]
func (h *Handler) ExportShipments(c *gin.Context) {
	var req exportRequest
	_ = c.ShouldBindJSON(&req)

	f := models.ShipmentFilter{
		Status:    req.Status,
		ServiceID: req.ServiceID,
		Search:    req.Search,
	}
	if from, err := time.Parse("2006-01-02", req.From); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", req.To); err == nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		f.To = &end
	}

	data, err := h.svc.Shipments.ExportCSV(f)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("shipments-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// WorldStats
// @Summary WorldStats
// @Description Per-country shipment involvement with map coordinates
// @ID world-stats
// @Produce json
// @Success 200 {array} service.CountryStat
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/shipments/world [get]
func (h *Handler) WorldStats(c *gin.Context) {
	stats, err := h.svc.Shipments.WorldStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetTracking
// @Summary GetTracking
// @Description Public tracking lookup with progress and event history
// @ID get-tracking
// @Produce json
// @Param number path string true "tracking number"
// @Success 200 {object} service.TrackingInfo
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/tracking/{number} [get]
func (h *Handler) GetTracking(c *gin.Context) {
	info, err := h.svc.Shipments.Track(c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpdateTracking
// @Summary UpdateTracking
// @Description Applies a status transition and appends a tracking event
// @ID update-tracking
// @Accept json
// @Produce json
// @Param number path string true "tracking number"
// @Param update body service.StatusUpdate true "new status"
// @Success 200 {object} models.Shipment
// @Failure 400,401,403,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/tracking/{number} [patch]
func (h *Handler) UpdateTracking(c *gin.Context) {
	var upd service.StatusUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sh, err := h.svc.Shipments.UpdateStatus(c.Request.Context(), c.Param("number"), upd)
	if err != nil {
		respondError(c, err)
		return
	}

	statusTransitions.WithLabelValues(sh.Status).Inc()
	c.JSON(http.StatusOK, sh)
}
