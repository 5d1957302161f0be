// Package config builds a tcrmodel.MatchConfig from an optional YAML file.
// Without a file, tcrmodel.DefaultMatchConfig() is used; no CLI flag
// overrides are applied on top of either.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/antigenomics/vdjmatch-go/internal/apperr"
	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
)

// File is the on-disk YAML shape for a match configuration file.
type File struct {
	Scope struct {
		Substitutions int `yaml:"substitutions"`
		Insertions    int `yaml:"insertions"`
		Deletions     int `yaml:"deletions"`
		Total         int `yaml:"total"`
	} `yaml:"scope"`
	MatchV                  bool     `yaml:"match_v"`
	MatchJ                  bool     `yaml:"match_j"`
	UseVDJMatchScoring      bool     `yaml:"use_vdjmatch_scoring"`
	ScoringMode             int      `yaml:"scoring_mode"`
	ScoreThreshold          *float64 `yaml:"score_threshold"`
	MaxHitsOnly             bool     `yaml:"max_hits_only"`
	TopNHits                *int     `yaml:"top_n_hits"`
	WeightByInformativeness bool     `yaml:"weight_by_informativeness"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, apperr.Wrap(apperr.DatabaseNotFound, err, "reading config file %q", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, apperr.Wrap(apperr.InputMalformed, err, "parsing config file %q", path)
	}
	return f, nil
}

// ToMatchConfig converts the parsed file into a tcrmodel.MatchConfig. Every
// field is taken from the file; a key absent from the file yields that
// field's zero value, not the DefaultMatchConfig value.
func (f File) ToMatchConfig() tcrmodel.MatchConfig {
	cfg := tcrmodel.DefaultMatchConfig()
	cfg.SearchScope = tcrmodel.SearchScope{
		Substitutions: f.Scope.Substitutions,
		Insertions:    f.Scope.Insertions,
		Deletions:     f.Scope.Deletions,
		Total:         f.Scope.Total,
	}
	cfg.MatchV = f.MatchV
	cfg.MatchJ = f.MatchJ
	cfg.UseVDJMatchScoring = f.UseVDJMatchScoring
	cfg.ScoringMode = tcrmodel.ScoringMode(f.ScoringMode)
	cfg.ScoreThreshold = f.ScoreThreshold
	cfg.MaxHitsOnly = f.MaxHitsOnly
	cfg.TopNHits = f.TopNHits
	cfg.WeightByInformativeness = f.WeightByInformativeness
	return cfg
}

// LoadMatchConfig loads path and converts it directly to a MatchConfig; an
// empty path returns tcrmodel.DefaultMatchConfig() unmodified.
func LoadMatchConfig(path string) (tcrmodel.MatchConfig, error) {
	if path == "" {
		return tcrmodel.DefaultMatchConfig(), nil
	}
	f, err := Load(path)
	if err != nil {
		return tcrmodel.MatchConfig{}, err
	}
	return f.ToMatchConfig(), nil
}
