// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themebuilder/internal/themes"
)

// ThemeResponse is the JSON form of a generated palette.
type ThemeResponse struct {
	Sliders themes.Sliders    `json:"sliders"`
	Clamped bool              `json:"clamped"`
	Palette *themes.Palette   `json:"palette"`
	Hex     map[string]string `json:"hex"`
}

func newThemeResponse(p *themes.Palette) ThemeResponse {
	return ThemeResponse{
		Sliders: p.Sliders,
		Clamped: p.Clamped,
		Palette: p,
		Hex:     p.HexMap(),
	}
}

// HealthHandler reports liveness
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "themebuilder",
	})
}

// ThemeAPIHandler generates a palette from query sliders
func ThemeAPIHandler(c *gin.Context) {
	sliders, _, err := resolveSliders(c)
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := generate(sliders, "api")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newThemeResponse(p))
}

// ContrastAPIHandler reports WCAG contrast for the preview's role pairs
func ContrastAPIHandler(c *gin.Context) {
	sliders, _, err := resolveSliders(c)
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := generate(sliders, "api")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sliders": p.Sliders,
		"checks":  themes.Audit(p),
	})
}

// PresetsAPIHandler lists the built-in presets
func PresetsAPIHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": themes.ListPresets()})
}

// ThemeCSSHandler serves the generated stylesheet
func ThemeCSSHandler(c *gin.Context) {
	sliders, _, err := resolveSliders(c)
	if err != nil {
		cssError(c, err)
		return
	}

	p, err := generate(sliders, "css")
	if err != nil {
		cssError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.GenerateCSS(p)))
}

// cssError reports err as a stylesheet comment so a broken <link> is visible
// in devtools.
func cssError(c *gin.Context, err error) {
	msg := strings.ReplaceAll(err.Error(), "*/", "")
	c.Data(statusFor(err), "text/css; charset=utf-8", []byte("/* "+msg+" */\n"))
}
