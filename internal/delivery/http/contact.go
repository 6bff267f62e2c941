package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shiptrack/internal/models"
)

// SubmitContact
// @Summary SubmitContact
// @Description Accepts a public contact form submission
// @ID submit-contact
// @Accept json
// @Produce json
// @Param form body models.ContactForm true "contact form"
// @Success 201 {object} models.ContactForm
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/contact [post]
func (h *Handler) SubmitContact(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.svc.Contacts.SubmitContact(form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ListContacts
// @Summary ListContacts
// @Description Paginated contact form submissions, newest first
// @ID list-contacts
// @Produce json
// @Param page query int false "1-indexed page"
// @Param limit query int false "page size"
// @Success 200 {object} map[string]any
// @Failure 401,403 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/contact [get]
func (h *Handler) ListContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	forms, total, err := h.svc.Contacts.ListContacts(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"contacts": forms,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}
