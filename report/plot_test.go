package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.png")
	require.NoError(t, PlotScores([]float64{1, 0.5, 0, 1}, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotScoresEmpty(t *testing.T) {
	assert.Error(t, PlotScores(nil, filepath.Join(t.TempDir(), "scores.png")))
}
