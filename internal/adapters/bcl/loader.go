package bcl

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/osw/internal/adapters/fs"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.MeasureLoader = (*Loader)(nil)

// Loader reads measure directories.
type Loader struct {
	hasher *fs.Hasher
	walker *fs.Walker
}

// NewLoader creates a new Loader.
func NewLoader(hasher *fs.Hasher, walker *fs.Walker) *Loader {
	return &Loader{hasher: hasher, walker: walker}
}

// Load reads the measure in dir.
func (l *Loader) Load(dir string) (ports.MeasureDescriptor, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "measure directory"), "path", dir)
	}

	path := filepath.Join(dir, domain.MeasureFileName)
	//nolint:gosec // Path is the measure directory chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "measure metadata"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read measure metadata"), "path", path)
	}

	var md domain.MeasureMetadata
	if err := yaml.Unmarshal(data, &md); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrValidation, err.Error()), "path", path)
	}

	checksum, err := l.hasher.Checksum(dir)
	if err != nil {
		return nil, err
	}

	return &Measure{
		dir:      dir,
		hasher:   l.hasher,
		walker:   l.walker,
		metadata: md,
		checksum: checksum,
	}, nil
}
