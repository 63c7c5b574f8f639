package main

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/themebuilder/internal/db"
	"github.com/thatcatcamp/themebuilder/internal/library"
	"github.com/thatcatcamp/themebuilder/internal/metrics"
)

func useTempConfig(t *testing.T) {
	t.Helper()
	t.Setenv("THEMEBUILDER_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
}

// One-shot commands never serve /metrics, so they leave the server
// collectors untouched.
func TestCommandsLeaveServerMetricsAlone(t *testing.T) {
	useTempConfig(t)
	generated := testutil.CollectAndCount(metrics.PalettesGenerated)
	writes := testutil.CollectAndCount(metrics.SavedThemes)

	require.NoError(t, generateCmd.Flags().Set("format", FormatHex))
	generateCmd.Run(generateCmd, nil)

	themeSaveCmd.Run(themeSaveCmd, []string{"dusk"})
	saved, err := library.GetThemeByName(db.GetDB(), "dusk")
	require.NoError(t, err)
	assert.Equal(t, "dusk", saved.Name)

	assert.Equal(t, generated, testutil.CollectAndCount(metrics.PalettesGenerated))
	assert.Equal(t, writes, testutil.CollectAndCount(metrics.SavedThemes))
}
