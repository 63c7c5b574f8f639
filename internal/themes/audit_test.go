package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditCoversPreviewPairs(t *testing.T) {
	p, err := GenerateTheme(50, 50, 50, 50)
	require.NoError(t, err)

	checks := Audit(p)
	require.Len(t, checks, 10)
	for _, c := range checks {
		assert.GreaterOrEqual(t, c.Ratio, 1.0)
		assert.LessOrEqual(t, c.Ratio, 21.0)
		assert.Equal(t, c.Ratio >= ContrastAA, c.AA)
		assert.Equal(t, c.Ratio >= ContrastAALarge, c.AALarge)
	}
}

func TestAuditHighContrastBodyText(t *testing.T) {
	preset := GetPreset("high-contrast")
	require.NotNil(t, preset)

	p, err := NewGenerator(DefaultTuning()).Generate(preset.Sliders)
	require.NoError(t, err)

	checks := Audit(p)
	require.NotEmpty(t, checks)
	assert.Equal(t, RoleText, checks[0].Foreground)
	assert.Equal(t, RoleBg, checks[0].Background)
	assert.True(t, checks[0].AA, "text on bg should pass AA, ratio %.2f", checks[0].Ratio)
}

func TestAuditPairsAreDrawnByBaseStyles(t *testing.T) {
	p, err := GenerateTheme(50, 50, 50, 50)
	require.NoError(t, err)

	css := GenerateCSS(p)
	for _, c := range Audit(p) {
		assert.Contains(t, css, "var(--"+c.Foreground+")")
		assert.Contains(t, css, "var(--"+c.Background+")")
	}
	assert.Contains(t, css, "mark, .highlight {\n  background-color: var(--highlight);\n  color: var(--text-dark);")
}
