// Package constants defines shared operational defaults: the directory
// permissions used by the downloader and cache, and default threshold
// values around the VDJdb reference corpus.
package constants

const (
	// DirPermissions is the mode used when creating cache/download directories.
	DirPermissions = 0o755

	// DefaultScoreThreshold is a default aggregate-score floor. The CLI does
	// not read it; it applies a threshold only when a config file sets one.
	DefaultScoreThreshold = 0.0

	// DefaultTopNHits is a default per-query hit cap. The CLI does not read
	// it; it caps hits only when a config file sets top_n_hits.
	DefaultTopNHits = 10

	// DefaultMinVDJdbScore is a default minimum VDJdb confidence score
	// (0 means no floor).
	DefaultMinVDJdbScore = 0
)
