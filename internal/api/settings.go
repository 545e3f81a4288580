package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dashpulse/internal/domain/dto"
	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/middleware"
)

// GetSettings godoc
// @Summary      Get user settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  models.Settings
// @Router       /api/v1/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Settings())
}

// UpdatePreferences godoc
// @Summary      Update display preferences
// @Description  Blank fields keep their current value. Changing the refresh rate reschedules the ticker.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PreferencesRequest  true  "Preferences"
// @Success      200   {object}  models.Preferences
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/settings/preferences [put]
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req dto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	p, err := h.svc.UpdatePreferences(models.Preferences{
		Theme:            models.Theme(req.Theme),
		DefaultGraphType: models.VisualizationType(req.DefaultGraphType),
		DataRefreshRate:  models.RefreshRate(req.DataRefreshRate),
	})
	if err != nil {
		middleware.AbortWithDomainError(c, "invalid preferences", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateNotifications godoc
// @Summary      Update notification toggles
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      models.Notifications  true  "Notifications"
// @Success      200   {object}  models.Notifications
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/settings/notifications [put]
func (h *Handler) UpdateNotifications(c *gin.Context) {
	var n models.Notifications
	if err := c.ShouldBindJSON(&n); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	c.JSON(http.StatusOK, h.svc.UpdateNotifications(n))
}

// UpdateProfile godoc
// @Summary      Update the profile
// @Description  Username 3-20 characters, valid email, optional avatar URL, bio up to 200 characters
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      models.Profile  true  "Profile"
// @Success      200   {object}  models.Profile
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/settings/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var p models.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid profile", err)
		return
	}
	out, err := h.svc.UpdateProfile(p)
	if err != nil {
		middleware.AbortWithDomainError(c, "invalid profile", err)
		return
	}
	c.JSON(http.StatusOK, out)
}
