package main

import (
	"net/http"

	"skyglance/internal/conditions"
	"skyglance/internal/locale"

	"github.com/gin-gonic/gin"
)

// GetConditionsInput defines the query parameters for the conditions endpoint.
// Code is optional: an absent code resolves to the defined fallback.
type GetConditionsInput struct {
	Code  *int   `form:"code"`  // WMO weather code
	Night bool   `form:"night"` // select the night icon variant
	Dark  *bool  `form:"dark"`  // dark theme flag, defaults from config
	Lang  string `form:"lang"`  // BCP 47 tag, defaults from config
}

// ConditionsResponse is the resolved presentation for a weather code
type ConditionsResponse struct {
	Icon        string `json:"icon" example:"clear-day"`
	Color       string `json:"color" example:"#ffd54f"`
	Description string `json:"description" example:"Clear sky"`
	Locale      string `json:"locale" example:"en"`
}

// handleGetConditions godoc
// @Summary Classify a weather code
// @Description Resolve a WMO weather code to an icon category, display color and localized description. Absent or unrecognized codes resolve to the defined fallback rather than failing.
// @Tags conditions
// @Produce json
// @Param code query integer false "WMO weather code" example(61)
// @Param night query boolean false "Use the night icon variant for clear and partly-cloudy conditions"
// @Param dark query boolean false "Use the dark-theme fallback color"
// @Param lang query string false "Description language (BCP 47)" example(cs)
// @Success 200 {object} ConditionsResponse
// @Failure 400 {object} map[string]string
// @Router /v1/conditions [get]
func (app *App) handleGetConditions(c *gin.Context) {
	var input GetConditionsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang := input.Lang
	if lang == "" {
		lang = app.cfg.Display.Locale
	}
	tag := locale.Parse(lang)

	dark := app.cfg.Display.Dark
	if input.Dark != nil {
		dark = *input.Dark
	}

	var code *conditions.Code
	if input.Code != nil {
		wc := conditions.Code(*input.Code)
		code = &wc
	}

	result := app.conditionsService.Classify(code, conditions.Options{
		Night:     input.Night,
		DarkTheme: dark,
		Locale:    tag,
	})

	c.JSON(http.StatusOK, ConditionsResponse{
		Icon:        result.Icon.String(),
		Color:       string(result.Color),
		Description: result.Description,
		Locale:      tag.String(),
	})
}
