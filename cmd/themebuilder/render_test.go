package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/themebuilder/internal/themes"
)

func midpoint(t *testing.T) *themes.Palette {
	t.Helper()
	p, err := themes.GenerateTheme(50, 50, 50, 50)
	require.NoError(t, err)
	return p
}

func TestRenderPaletteOKLCH(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPalette(&buf, midpoint(t), FormatOKLCH))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 16)
	assert.True(t, strings.HasPrefix(lines[0], "bg-dark"))
	assert.Contains(t, lines[0], "oklch(0.160 0.010 180.0)")
	assert.True(t, strings.HasPrefix(lines[15], "info"))
}

func TestRenderPaletteHex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPalette(&buf, midpoint(t), FormatHex))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		fields := strings.Fields(line)
		require.Len(t, fields, 2)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, fields[1])
	}
}

func TestRenderPaletteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPalette(&buf, midpoint(t), FormatJSON))

	var out struct {
		Sliders themes.Sliders    `json:"sliders"`
		Palette map[string]string `json:"palette"`
		Hex     map[string]string `json:"hex"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, themes.DefaultSliders(), out.Sliders)
	assert.Len(t, out.Palette, 16)
	assert.Equal(t, "oklch(0.550 0.140 180.0)", out.Palette["primary"])
}

func TestRenderPaletteCSS(t *testing.T) {
	var css, vars bytes.Buffer
	require.NoError(t, renderPalette(&css, midpoint(t), FormatCSS))
	require.NoError(t, renderPalette(&vars, midpoint(t), FormatVars))

	assert.Contains(t, css.String(), "@supports not")
	assert.NotContains(t, vars.String(), "@supports")
	assert.True(t, strings.HasPrefix(css.String(), vars.String()))
}

func TestRenderPaletteSwatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPalette(&buf, midpoint(t), FormatSwatch))

	out := buf.String()
	for _, title := range []string{"Backgrounds", "Text Colors", "Borders", "UI Colors", "Status Colors"} {
		assert.Contains(t, out, title)
	}
	for _, role := range themes.Roles() {
		assert.Contains(t, out, role)
	}
}

func TestRenderPaletteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, renderPalette(&buf, midpoint(t), "xml"))
}

func TestRenderAudit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderAudit(&buf, midpoint(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[1], "text"))
}

func newSliderCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addSliderFlags(cmd)
	return cmd
}

func TestSlidersFromFlagsDefaults(t *testing.T) {
	cmd := newSliderCmd()
	require.NoError(t, cmd.Flags().Parse(nil))

	s, err := slidersFromFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, themes.DefaultSliders(), s)
}

func TestSlidersFromFlagsPresetOverride(t *testing.T) {
	cmd := newSliderCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--preset", "navy", "--warmth", "10"}))

	s, err := slidersFromFlags(cmd)
	require.NoError(t, err)

	navy := themes.GetPreset("navy").Sliders
	assert.Equal(t, 10.0, s.Warmth)
	assert.Equal(t, navy.Contrast, s.Contrast)
	assert.Equal(t, navy.Saturation, s.Saturation)
}

func TestSlidersFromFlagsUnknownPreset(t *testing.T) {
	cmd := newSliderCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"-p", "nope"}))

	_, err := slidersFromFlags(cmd)
	assert.Error(t, err)
}
