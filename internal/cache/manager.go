// Package cache provides an in-memory and on-disk (gob) cache for loaded
// reference corpora, plus a doublestar-glob helper for discovering cached
// corpus shards under a cache root.
package cache

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/antigenomics/vdjmatch-go/internal/apperr"
	"github.com/antigenomics/vdjmatch-go/internal/constants"
	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
)

// Manager caches parsed ReferenceCorpus values in memory, keyed by the
// source file path. The on-disk cache is handled by the package-level
// binary-cache functions below, not by Manager.
type Manager struct {
	mu   sync.RWMutex
	memo map[string]tcrmodel.ReferenceCorpus
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{memo: make(map[string]tcrmodel.ReferenceCorpus)}
}

// GetFromMemory retrieves a previously stored corpus for path.
func (m *Manager) GetFromMemory(path string) (tcrmodel.ReferenceCorpus, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.memo[path]
	return c, ok
}

// StoreInMemory records a parsed corpus for path.
func (m *Manager) StoreInMemory(path string, corpus tcrmodel.ReferenceCorpus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.memo[path] = corpus
}

// BinaryCachePath returns the path of the gob-encoded cache file that
// shadows sourcePath, e.g. "vdjdb.txt" -> ".vdjdb.txt.cache".
func BinaryCachePath(sourcePath string) string {
	dir := filepath.Dir(sourcePath)
	base := filepath.Base(sourcePath)
	return filepath.Join(dir, "."+base+".cache")
}

// IsBinaryCacheValid reports whether cachePath exists and is newer than
// sourcePath.
func IsBinaryCacheValid(sourcePath, cachePath string) bool {
	sourceInfo, err := os.Stat(sourcePath)
	if err != nil {
		return false
	}
	cacheInfo, err := os.Stat(cachePath)
	if err != nil {
		return false
	}
	return cacheInfo.ModTime().After(sourceInfo.ModTime())
}

// SaveBinaryCache gob-encodes corpus to cachePath.
func SaveBinaryCache(corpus tcrmodel.ReferenceCorpus, cachePath string) error {
	f, err := os.Create(cachePath)
	if err != nil {
		return apperr.Wrap(apperr.CorpusMalformed, err, "creating binary cache %q", cachePath)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(corpus); err != nil {
		return apperr.Wrap(apperr.CorpusMalformed, err, "encoding binary cache %q", cachePath)
	}
	return nil
}

// LoadBinaryCache decodes a ReferenceCorpus previously written by
// SaveBinaryCache.
func LoadBinaryCache(cachePath string) (tcrmodel.ReferenceCorpus, error) {
	f, err := os.Open(cachePath)
	if err != nil {
		return tcrmodel.ReferenceCorpus{}, apperr.Wrap(apperr.DatabaseNotFound, err, "opening binary cache %q", cachePath)
	}
	defer f.Close()

	var corpus tcrmodel.ReferenceCorpus
	if err := gob.NewDecoder(f).Decode(&corpus); err != nil {
		return tcrmodel.ReferenceCorpus{}, apperr.Wrap(apperr.CorpusMalformed, err, "decoding binary cache %q", cachePath)
	}
	return corpus, nil
}

// ListCorpusShards returns every file under root matching a doublestar
// glob pattern (e.g. "**/*.slim.txt" to find sharded slim-DB releases
// scattered across per-version subdirectories).
func ListCorpusShards(root, pattern string) ([]string, error) {
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, apperr.Wrap(apperr.InputMalformed, err, "invalid cache glob pattern %q", pattern)
	}
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(root, m)
	}
	return paths, nil
}

// EnsureCacheDir creates the cache directory if it doesn't already exist.
func EnsureCacheDir(dir string) error {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return apperr.Wrap(apperr.DatabaseNotFound, err, "creating cache directory %q", dir)
	}
	return nil
}
