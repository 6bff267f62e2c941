package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shiptrack/internal/models"
)

// GetPreferences
// @Summary GetPreferences
// @Description Returns the caller's email preferences, creating defaults on first read
// @ID get-preferences
// @Produce json
// @Success 200 {object} models.EmailPreferences
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/email-preferences [get]
func (h *Handler) GetPreferences(c *gin.Context) {
	user := currentUser(c)

	prefs, err := h.svc.Prefs.GetPreferences(user.ID, user.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// SavePreferences
// @Summary SavePreferences
// @Description Replaces the caller's email preferences
// @ID save-preferences
// @Accept json
// @Produce json
// @Param preferences body models.EmailPreferences true "preference flags"
// @Success 200 {object} models.EmailPreferences
// @Failure 400,401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/email-preferences [post]
func (h *Handler) SavePreferences(c *gin.Context) {
	var prefs models.EmailPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// The caller can only edit their own record.
	user := currentUser(c)
	prefs.UserID = user.ID
	if prefs.Email == "" {
		prefs.Email = user.Email
	}

	saved, err := h.svc.Prefs.SavePreferences(prefs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// ResetPreferences
// @Summary ResetPreferences
// @Description Drops the caller's stored preferences; the next read recreates defaults
// @ID reset-preferences
// @Produce json
// @Success 204
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/email-preferences [delete]
func (h *Handler) ResetPreferences(c *gin.Context) {
	if err := h.svc.Prefs.ResetPreferences(currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
