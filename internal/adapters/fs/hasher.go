package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash content checksums of files and directories.
type Hasher struct {
	walker  *Walker
	ignores []string
}

// NewHasher creates a new Hasher. Files whose base name matches one of ignores
// do not contribute to directory checksums.
func NewHasher(walker *Walker, ignores ...string) *Hasher {
	return &Hasher{walker: walker, ignores: ignores}
}

// Checksum returns the checksum of the file at path, or of every file below
// path if it is a directory. A missing path fails with domain.ErrNotFound.
func (h *Hasher) Checksum(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrNotFound, "checksum"), "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	if !info.IsDir() {
		sum, err := h.ComputeFileHash(path)
		if err != nil {
			return "", err
		}
		return format(sum), nil
	}

	return h.dirChecksum(path)
}

// FileChecksum returns the formatted checksum of a single file.
func (h *Hasher) FileChecksum(path string) (string, error) {
	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return format(sum), nil
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return 0, zerr.With(zerr.Wrap(domain.ErrNotFound, domain.ErrFileOpenFailed.Error()), "path", path)
		}
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// dirChecksum folds relative path and content hash of every file into one digest,
// so renames change the checksum as well as edits.
func (h *Hasher) dirChecksum(root string) (string, error) {
	hasher := xxhash.New()
	for path := range h.walker.WalkFiles(root, h.ignores) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", path)
		}
		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})

		sum, err := h.ComputeFileHash(path)
		if err != nil {
			return "", err
		}
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}
	return format(hasher.Sum64()), nil
}

func format(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
