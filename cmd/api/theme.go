package main

import (
	"net/http"

	"skyglance/internal/conditions"
	"skyglance/internal/theme"

	"github.com/gin-gonic/gin"
)

// GetAmbientThemeInput defines the query parameters for the theme endpoint
type GetAmbientThemeInput struct {
	Code       int  `form:"code"`        // WMO weather code
	Hour       *int `form:"hour"`        // local hour 0-23, defaults to midday
	CloudCover *int `form:"cloud_cover"` // cloud cover percent, disambiguates night skies
}

// handleGetAmbientTheme godoc
// @Summary Get the ambient theme
// @Description Select the named ambient theme, background gradient and optional effect for a weather code and local hour.
// @Tags conditions
// @Produce json
// @Param code query integer false "WMO weather code" example(95)
// @Param hour query integer false "Local hour (0-23)" example(22)
// @Param cloud_cover query integer false "Cloud cover percent" example(80)
// @Success 200 {object} theme.Ambient
// @Failure 400 {object} map[string]string
// @Router /v1/theme [get]
func (app *App) handleGetAmbientTheme(c *gin.Context) {
	var input GetAmbientThemeInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hour := 12
	if input.Hour != nil {
		hour = *input.Hour
	}

	ambient := theme.Select(conditions.Code(input.Code), hour, input.CloudCover)

	c.JSON(http.StatusOK, ambient)
}
