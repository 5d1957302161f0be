package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	m := NewManager()
	corpus := tcrmodel.ReferenceCorpus{Entries: []tcrmodel.ReferenceEntry{{CDR3: "CASSF"}}}

	_, ok := m.GetFromMemory("vdjdb.txt")
	assert.False(t, ok)

	m.StoreInMemory("vdjdb.txt", corpus)
	got, ok := m.GetFromMemory("vdjdb.txt")
	require.True(t, ok)
	assert.Equal(t, corpus, got)
}

func TestBinaryCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "vdjdb.txt")
	require.NoError(t, os.WriteFile(sourcePath, []byte("gene\tcdr3\n"), 0o644))

	cachePath := BinaryCachePath(sourcePath)
	assert.Equal(t, filepath.Join(dir, ".vdjdb.txt.cache"), cachePath)
	assert.False(t, IsBinaryCacheValid(sourcePath, cachePath))

	corpus := tcrmodel.ReferenceCorpus{
		Entries:  []tcrmodel.ReferenceEntry{{CDR3: "CASSLGQAYEQYF", AntigenEpitope: "GILGFVFTL"}},
		Metadata: tcrmodel.CorpusMetadata{Version: "2024-01"},
	}
	require.NoError(t, SaveBinaryCache(corpus, cachePath))

	// Make sure the cache file's mtime is observably after the source's.
	future := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(cachePath, future, future))

	assert.True(t, IsBinaryCacheValid(sourcePath, cachePath))

	loaded, err := LoadBinaryCache(cachePath)
	require.NoError(t, err)
	assert.Equal(t, corpus, loaded)
}

func TestListCorpusShards(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2024-01"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2024-02"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-01", "vdjdb.slim.txt"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-02", "vdjdb.slim.txt"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-02", "readme.md"), []byte(""), 0o644))

	shards, err := ListCorpusShards(dir, "**/*.slim.txt")
	require.NoError(t, err)
	assert.Len(t, shards, 2)
}
