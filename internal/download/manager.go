// Package download fetches and caches VDJdb reference-database releases
// from github.com/antigenomics/vdjdb-db.
package download

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/antigenomics/vdjmatch-go/internal/apperr"
	"github.com/antigenomics/vdjmatch-go/internal/constants"
)

const (
	slimReleaseURL = "https://github.com/antigenomics/vdjdb-db/releases/latest/download/vdjdb.slim.txt.tar.gz"
	fatReleaseURL  = "https://github.com/antigenomics/vdjdb-db/releases/latest/download/vdjdb.txt.tar.gz"
	slimFileName   = "vdjdb.slim.txt"
	fatFileName    = "vdjdb.txt"
)

// Manager downloads and locates the on-disk VDJdb reference corpus.
type Manager struct {
	dataDir string
}

// NewManager creates a Manager rooted at the conventional cache directory,
// "$HOME/.vdjmatch/db".
func NewManager() *Manager {
	homeDir, _ := os.UserHomeDir()
	return &Manager{dataDir: filepath.Join(homeDir, ".vdjmatch", "db")}
}

// NewManagerAt creates a Manager rooted at an explicit directory, for tests
// and for callers that don't want the user's home directory touched.
func NewManagerAt(dataDir string) *Manager {
	return &Manager{dataDir: dataDir}
}

func (m *Manager) path(useFatDB bool) string {
	if useFatDB {
		return filepath.Join(m.dataDir, fatFileName)
	}
	return filepath.Join(m.dataDir, slimFileName)
}

// EnsureDatabase returns the on-disk path to the requested VDJdb release,
// downloading and extracting it on first use.
func (m *Manager) EnsureDatabase(useFatDB bool) (string, error) {
	if err := os.MkdirAll(m.dataDir, constants.DirPermissions); err != nil {
		return "", apperr.Wrap(apperr.DatabaseNotFound, err, "creating database cache directory %q", m.dataDir)
	}

	path := m.path(useFatDB)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := m.download(useFatDB); err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		return "", apperr.Wrap(apperr.DatabaseNotFound, err, "expected database file not found after download: %s", path)
	}
	return path, nil
}

func (m *Manager) download(useFatDB bool) error {
	url := slimReleaseURL
	if useFatDB {
		url = fatReleaseURL
	}

	resp, err := http.Get(url)
	if err != nil {
		return apperr.Wrap(apperr.DatabaseNotFound, err, "downloading VDJdb release from %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperr.New(apperr.DatabaseNotFound, "downloading VDJdb release from %s: HTTP %d", url, resp.StatusCode)
	}

	return m.extractTarGz(resp.Body)
}

func (m *Manager) extractTarGz(r io.Reader) error {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return apperr.Wrap(apperr.DatabaseNotFound, err, "opening gzip stream for VDJdb release")
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return apperr.Wrap(apperr.DatabaseNotFound, err, "reading VDJdb release archive")
		}

		target := filepath.Join(m.dataDir, filepath.Base(header.Name))
		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, constants.DirPermissions); err != nil {
				return apperr.Wrap(apperr.DatabaseNotFound, err, "creating directory %q", target)
			}
		case tar.TypeReg:
			if err := extractFile(tr, target); err != nil {
				return err
			}
		}
	}
	return nil
}

func extractFile(r io.Reader, target string) error {
	out, err := os.Create(target)
	if err != nil {
		return apperr.Wrap(apperr.DatabaseNotFound, err, "creating extracted file %q", target)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return apperr.Wrap(apperr.DatabaseNotFound, err, "writing extracted file %q", target)
	}
	return nil
}
