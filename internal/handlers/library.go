package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themebuilder/internal/auth"
	"github.com/thatcatcamp/themebuilder/internal/db"
	"github.com/thatcatcamp/themebuilder/internal/library"
	"github.com/thatcatcamp/themebuilder/internal/metrics"
	"github.com/thatcatcamp/themebuilder/internal/models"
	"github.com/thatcatcamp/themebuilder/internal/themes"
)

// SavedThemeResponse is a library entry with its regenerated palette.
type SavedThemeResponse struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ShareID     string            `json:"share_id"`
	ShareURL    string            `json:"share_url"`
	Sliders     themes.Sliders    `json:"sliders"`
	Palette     *themes.Palette   `json:"palette,omitempty"`
	Hex         map[string]string `json:"hex,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// summarizeSavedTheme is the list form of a theme, without a palette.
func summarizeSavedTheme(t *models.SavedTheme) SavedThemeResponse {
	return SavedThemeResponse{
		Name:        t.Name,
		Description: t.Description,
		ShareID:     t.ShareID,
		ShareURL:    "/t/" + t.ShareID,
		Sliders:     t.Sliders(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newSavedThemeResponse(t *models.SavedTheme) (SavedThemeResponse, error) {
	resp := summarizeSavedTheme(t)
	p, err := generate(resp.Sliders, "library")
	if err != nil {
		return resp, err
	}
	resp.Palette = p
	resp.Hex = p.HexMap()
	return resp, nil
}

// sliderBody is the slider object of a save request. Pointers make an
// omitted slider a validation error instead of a silent zero.
type sliderBody struct {
	Warmth        *float64 `json:"warmth" binding:"required,finite"`
	Saturation    *float64 `json:"saturation" binding:"required,finite"`
	Contrast      *float64 `json:"contrast" binding:"required,finite"`
	Accessibility *float64 `json:"accessibility" binding:"required,finite"`
}

func (b *sliderBody) sliders() themes.Sliders {
	return themes.Sliders{
		Warmth:        *b.Warmth,
		Saturation:    *b.Saturation,
		Contrast:      *b.Contrast,
		Accessibility: *b.Accessibility,
	}
}

// SaveThemeRequest is the body of POST /api/themes and PUT /api/themes/:name.
type SaveThemeRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description" binding:"max=1000"`
	Sliders     *sliderBody `json:"sliders" binding:"required"`
}

// ListThemesHandler lists the saved themes
func ListThemesHandler(c *gin.Context) {
	list, err := library.ListThemes(db.GetDB())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]SavedThemeResponse, 0, len(list))
	for i := range list {
		out = append(out, summarizeSavedTheme(&list[i]))
	}

	c.JSON(http.StatusOK, gin.H{"themes": out})
}

// GetThemeHandler returns one saved theme with its palette
func GetThemeHandler(c *gin.Context) {
	theme, err := library.GetThemeByName(db.GetDB(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := newSavedThemeResponse(theme)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateThemeHandler saves a new named theme
func CreateThemeHandler(c *gin.Context) {
	var req SaveThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := library.CreateTheme(db.GetDB(), req.Name, req.Description, req.Sliders.sliders())
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.SavedThemes.WithLabelValues("create").Inc()
	slog.Info("theme saved", "name", theme.Name, "subject", tokenSubject(c))

	resp, err := newSavedThemeResponse(theme)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/themes/"+theme.Name)
	c.JSON(http.StatusCreated, resp)
}

// UpdateThemeHandler replaces the sliders and description of a saved theme
func UpdateThemeHandler(c *gin.Context) {
	var req SaveThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := library.UpdateTheme(db.GetDB(), c.Param("name"), req.Description, req.Sliders.sliders())
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.SavedThemes.WithLabelValues("update").Inc()
	slog.Info("theme updated", "name", theme.Name, "subject", tokenSubject(c))

	resp, err := newSavedThemeResponse(theme)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteThemeHandler removes a saved theme
func DeleteThemeHandler(c *gin.Context) {
	name := c.Param("name")
	if err := library.DeleteTheme(db.GetDB(), name); err != nil {
		respondError(c, err)
		return
	}
	metrics.SavedThemes.WithLabelValues("delete").Inc()
	slog.Info("theme deleted", "name", name, "subject", tokenSubject(c))

	c.Status(http.StatusNoContent)
}

func tokenSubject(c *gin.Context) string {
	if val, ok := c.Get(auth.ClaimsKey); ok {
		if claims, ok := val.(*auth.Claims); ok {
			return claims.Subject
		}
	}
	return ""
}
