// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themebuilder/internal/db"
	"github.com/thatcatcamp/themebuilder/internal/library"
	"github.com/thatcatcamp/themebuilder/internal/models"
	"github.com/thatcatcamp/themebuilder/internal/themes"
)

//go:embed templates/*.html
var templateFS embed.FS

var builderTemplate = template.Must(template.ParseFS(templateFS, "templates/builder.html"))

type sliderControl struct {
	Name  string
	Label string
	Low   string
	High  string
	Value float64
}

type swatchView struct {
	Role  string
	Label string
	Value string
	Hex   string
	Style template.CSS
}

type swatchGroup struct {
	Title    string
	Swatches []swatchView
}

type builderPage struct {
	Title     string
	Clamped   bool
	Preset    string
	Presets   []*themes.Preset
	Controls  []sliderControl
	Groups    []swatchGroup
	Checks    []themes.ContrastCheck
	CSSLink   string
	ThemeCSS  template.CSS
	LayoutCSS template.CSS
	Saved     *models.SavedTheme
}

func newBuilderPage(p *themes.Palette, preset string) builderPage {
	s := p.Sliders
	page := builderPage{
		Title:   "Theme Builder",
		Clamped: p.Clamped,
		Preset:  preset,
		Presets: themes.ListPresets(),
		Controls: []sliderControl{
			{Name: "warmth", Label: "Warmth", Low: "Cool", High: "Warm", Value: s.Warmth},
			{Name: "saturation", Label: "Saturation", Low: "Gray", High: "Vivid", Value: s.Saturation},
			{Name: "contrast", Label: "Contrast", Low: "Soft", High: "Strong", Value: s.Contrast},
			{Name: "accessibility", Label: "Accessibility", Low: "Relaxed", High: "Strict", Value: s.Accessibility},
		},
		Checks:    themes.Audit(p),
		CSSLink:   "/theme.css?" + sliderValues(s).Encode(),
		ThemeCSS:  template.CSS(themes.GenerateCSS(p)),
		LayoutCSS: template.CSS(builderLayoutCSS()),
	}

	for _, g := range themes.RoleGroups() {
		group := swatchGroup{Title: g.Title}
		for _, rl := range g.Roles {
			sw, ok := p.Swatch(rl.Role)
			if !ok {
				continue
			}
			group.Swatches = append(group.Swatches, swatchView{
				Role:  rl.Role,
				Label: rl.Label,
				Value: sw.Value,
				Hex:   sw.Raw.Hex(),
				Style: template.CSS("background-color: var(--" + rl.Role + ")"),
			})
		}
		page.Groups = append(page.Groups, group)
	}
	return page
}

func sliderValues(s themes.Sliders) url.Values {
	format := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	return url.Values{
		"warmth":        {format(s.Warmth)},
		"saturation":    {format(s.Saturation)},
		"contrast":      {format(s.Contrast)},
		"accessibility": {format(s.Accessibility)},
	}
}

func renderBuilder(c *gin.Context, status int, page builderPage) {
	var buf bytes.Buffer
	if err := builderTemplate.Execute(&buf, page); err != nil {
		slog.Error("failed to render builder page", "error", err)
		c.String(http.StatusInternalServerError, "Failed to render page")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// BuilderPageHandler renders the interactive builder
func BuilderPageHandler(c *gin.Context) {
	sliders, preset, err := resolveSliders(c)
	if err != nil {
		c.String(statusFor(err), "Error: %v", err)
		return
	}

	p, err := generate(sliders, "page")
	if err != nil {
		c.String(statusFor(err), "Error: %v", err)
		return
	}

	renderBuilder(c, http.StatusOK, newBuilderPage(p, preset))
}

// SharedThemeHandler renders the builder for a saved theme's share link
func SharedThemeHandler(c *gin.Context) {
	theme, err := library.GetThemeByShareID(db.GetDB(), c.Param("share"))
	if err != nil {
		c.String(statusFor(err), "Theme not found")
		return
	}

	p, err := generate(theme.Sliders(), "page")
	if err != nil {
		c.String(statusFor(err), "Error: %v", err)
		return
	}

	page := newBuilderPage(p, "")
	page.Title = theme.Name
	page.Saved = theme
	renderBuilder(c, http.StatusOK, page)
}
