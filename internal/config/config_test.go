package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigenomics/vdjmatch-go/internal/apperr"
)

const sampleYAML = `
scope:
  substitutions: 2
  insertions: 1
  deletions: 1
  total: 3
match_v: true
match_j: true
use_vdjmatch_scoring: true
scoring_mode: 1
max_hits_only: false
top_n_hits: 5
weight_by_informativeness: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "vdjmatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMatchConfigFromYAML(t *testing.T) {
	path := writeConfig(t, sampleYAML)
	cfg, err := LoadMatchConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.SearchScope.Total)
	assert.True(t, cfg.MatchV)
	assert.True(t, cfg.UseVDJMatchScoring)
	require.NotNil(t, cfg.TopNHits)
	assert.Equal(t, 5, *cfg.TopNHits)
	assert.True(t, cfg.WeightByInformativeness)
}

func TestLoadMatchConfigEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := LoadMatchConfig("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.SearchScope.Total)
	assert.False(t, cfg.MatchV)
}

func TestLoadMatchConfigMissingFile(t *testing.T) {
	_, err := LoadMatchConfig("/nonexistent/vdjmatch.yaml")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.DatabaseNotFound))
}

func TestLoadMatchConfigMalformedYAML(t *testing.T) {
	path := writeConfig(t, "scope: [this is not a mapping")
	_, err := LoadMatchConfig(path)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.InputMalformed))
}
