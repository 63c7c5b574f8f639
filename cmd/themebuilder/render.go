package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/thatcatcamp/themebuilder/internal/themes"
)

// Output formats for palettes.
const (
	FormatSwatch = "swatch"
	FormatJSON   = "json"
	FormatCSS    = "css"
	FormatVars   = "vars"
	FormatOKLCH  = "oklch"
	FormatHex    = "hex"
)

var paletteFormats = []string{FormatSwatch, FormatJSON, FormatCSS, FormatVars, FormatOKLCH, FormatHex}

var (
	groupTitleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	roleStyle       = lipgloss.NewStyle().Width(14)
	valueStyle      = lipgloss.NewStyle().Faint(true)
)

type paletteJSON struct {
	Sliders themes.Sliders    `json:"sliders"`
	Clamped bool              `json:"clamped"`
	Palette *themes.Palette   `json:"palette"`
	Hex     map[string]string `json:"hex"`
}

// renderPalette writes p to w in the named format
func renderPalette(w io.Writer, p *themes.Palette, format string) error {
	switch format {
	case FormatSwatch:
		return renderSwatches(w, p)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(paletteJSON{Sliders: p.Sliders, Clamped: p.Clamped, Palette: p, Hex: p.HexMap()})
	case FormatCSS:
		_, err := io.WriteString(w, themes.GenerateCSS(p))
		return err
	case FormatVars:
		_, err := io.WriteString(w, themes.GenerateVariables(p))
		return err
	case FormatOKLCH, FormatHex:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, sw := range p.Swatches() {
			value := sw.Value
			if format == FormatHex {
				value = sw.Raw.Hex()
			}
			fmt.Fprintf(tw, "%s\t%s\n", sw.Role, value)
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(paletteFormats, ", "))
}

// renderSwatches prints one colored block per role, grouped as on the
// builder page.
func renderSwatches(w io.Writer, p *themes.Palette) error {
	var b strings.Builder
	fmt.Fprintf(&b, "warmth %.0f  saturation %.0f  contrast %.0f  accessibility %.0f\n",
		p.Sliders.Warmth, p.Sliders.Saturation, p.Sliders.Contrast, p.Sliders.Accessibility)
	if p.Clamped {
		b.WriteString("(inputs clamped to 0-100)\n")
	}

	for _, g := range themes.RoleGroups() {
		b.WriteString(groupTitleStyle.Render(g.Title))
		b.WriteString("\n")
		for _, rl := range g.Roles {
			sw, ok := p.Swatch(rl.Role)
			if !ok {
				continue
			}
			hex := sw.Raw.Hex()
			chip := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
			line := lipgloss.JoinHorizontal(lipgloss.Top,
				chip, " ",
				roleStyle.Render(rl.Role),
				sw.Value, " ",
				valueStyle.Render(hex),
			)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// renderAudit writes the contrast table for p
func renderAudit(w io.Writer, p *themes.Palette) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FOREGROUND\tBACKGROUND\tRATIO\tAA\tAA LARGE")
	for _, check := range themes.Audit(p) {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n",
			check.Foreground, check.Background, check.Ratio, passFail(check.AA), passFail(check.AALarge))
	}
	return tw.Flush()
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
