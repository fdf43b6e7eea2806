// Package bcl implements measure directories described by a measure.yaml file.
package bcl

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/osw/internal/adapters/fs"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.MeasureDescriptor = (*Measure)(nil)

// Measure is a measure directory and its metadata.
type Measure struct {
	dir      string
	hasher   *fs.Hasher
	walker   *fs.Walker
	metadata domain.MeasureMetadata
	checksum string
}

// Directory returns the measure directory.
func (m *Measure) Directory() string {
	return m.dir
}

// Metadata returns a copy of the in-memory metadata.
func (m *Measure) Metadata() domain.MeasureMetadata {
	return m.metadata.Clone()
}

// Language returns the declared script language.
func (m *Measure) Language() domain.Language {
	return domain.ParseLanguage(string(m.metadata.Language))
}

// Checksum returns the directory checksum taken when the measure was loaded or saved.
func (m *Measure) Checksum() string {
	return m.checksum
}

// PrimaryScriptPath returns measure.<ext> for the declared language if it exists.
func (m *Measure) PrimaryScriptPath() (string, bool) {
	ext := m.Language().Extension()
	if ext == "" {
		return "", false
	}
	path := filepath.Join(m.dir, "measure"+ext)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// CheckForUpdatesFiles reports whether any file differs from the checksums
// recorded in the metadata, including added and removed files.
func (m *Measure) CheckForUpdatesFiles() bool {
	current, err := m.scanFiles()
	if err != nil {
		return true
	}
	recorded := m.metadata.Files
	if len(current) != len(recorded) {
		return true
	}
	for _, file := range recorded {
		idx := slices.IndexFunc(current, func(c domain.MeasureFile) bool { return c.Filename == file.Filename })
		if idx < 0 || current[idx].Checksum != file.Checksum {
			return true
		}
	}
	return false
}

// CheckForUpdatesMetadata reports whether the metadata no longer matches the
// checksum recorded by the last Save. Hand edits to measure.yaml count.
func (m *Measure) CheckForUpdatesMetadata() bool {
	sum, err := metadataChecksum(m.metadata)
	return err != nil || sum != m.metadata.Checksum
}

// metadataChecksum hashes every metadata field except the recorded checksum.
func metadataChecksum(md domain.MeasureMetadata) (string, error) {
	md.Checksum = ""
	data, err := yaml.Marshal(md)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

// MissingRequiredFields reports whether a required metadata field is empty.
func (m *Measure) MissingRequiredFields() bool {
	return len(m.metadata.MissingFields()) > 0
}

// MissingGeneratedOutputs reports whether a template under docs/ has not been
// rendered into the measure directory.
func (m *Measure) MissingGeneratedOutputs() bool {
	for _, tmpl := range m.templates() {
		if _, err := os.Stat(m.generatedPath(tmpl)); errors.Is(err, iofs.ErrNotExist) {
			return true
		}
	}
	return false
}

// UpdateFromInfo copies computed measure info into the metadata, renders
// generator templates and refreshes the recorded file checksums.
func (m *Measure) UpdateFromInfo(info *domain.MeasureInfo) error {
	md := &m.metadata
	md.ClassName = info.ClassName
	md.MeasureType = info.MeasureType
	md.Name = info.Name
	if md.DisplayName == "" {
		md.DisplayName = info.Name
	}
	md.Description = info.Description
	md.Taxonomy = info.Taxonomy
	md.ModelerDescription = info.ModelerDescription
	md.Arguments = domain.CloneArguments(info.Arguments)
	for i := range md.Arguments {
		md.Arguments[i].Value = nil
	}
	md.Outputs = slices.Clone(info.Outputs)
	if md.Language == "" {
		md.Language = domain.LanguageGo
	}
	if md.UID == "" {
		md.UID = uuid.NewString()
	}
	md.VersionID = uuid.NewString()

	if err := m.renderTemplates(); err != nil {
		return err
	}

	files, err := m.scanFiles()
	if err != nil {
		return err
	}
	md.Files = files
	return nil
}

// Save records the metadata checksum and writes the metadata to measure.yaml.
func (m *Measure) Save() error {
	sum, err := metadataChecksum(m.metadata)
	if err != nil {
		return zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error())
	}
	md := m.metadata
	md.Checksum = sum
	data, err := yaml.Marshal(md)
	if err != nil {
		return zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error())
	}
	path := filepath.Join(m.dir, domain.MeasureFileName)
	//nolint:gosec // Path is the measure directory chosen by the caller
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()), "path", path)
	}
	m.metadata.Checksum = sum
	if sum, err := m.hasher.Checksum(m.dir); err == nil {
		m.checksum = sum
	}
	return nil
}

// scanFiles lists every file of the measure except measure.yaml, with checksums.
func (m *Measure) scanFiles() ([]domain.MeasureFile, error) {
	var files []domain.MeasureFile
	for path := range m.walker.WalkFiles(m.dir, []string{domain.MeasureFileName}) {
		rel, err := filepath.Rel(m.dir, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", path)
		}
		sum, err := m.hasher.FileChecksum(path)
		if err != nil {
			return nil, err
		}
		rel = filepath.ToSlash(rel)
		files = append(files, domain.MeasureFile{
			Filename:  rel,
			UsageType: m.usageType(rel),
			Checksum:  sum,
		})
	}
	return files, nil
}

func (m *Measure) usageType(rel string) string {
	switch {
	case strings.HasPrefix(rel, "tests/"):
		return domain.UsageTest
	case strings.HasPrefix(rel, domain.DocsDirName+"/"), strings.EqualFold(filepath.Ext(rel), ".md"):
		return domain.UsageDoc
	case !strings.Contains(rel, "/") && filepath.Ext(rel) == m.Language().Extension():
		return domain.UsageScript
	default:
		return domain.UsageOther
	}
}
