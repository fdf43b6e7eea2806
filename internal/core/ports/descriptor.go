package ports

import "go.trai.ch/osw/internal/core/domain"

// MeasureDescriptor is a measure directory with its metadata file.
//
//go:generate mockgen -source=descriptor.go -destination=mocks/mock_descriptor.go -package=mocks
type MeasureDescriptor interface {
	// Directory returns the measure directory.
	Directory() string
	// Metadata returns a copy of the in-memory metadata.
	Metadata() domain.MeasureMetadata
	// Language returns the declared script language.
	Language() domain.Language
	// PrimaryScriptPath returns the script for the declared language, if present.
	PrimaryScriptPath() (string, bool)
	// CheckForUpdatesFiles reports whether files changed since the recorded checksums.
	CheckForUpdatesFiles() bool
	// CheckForUpdatesMetadata reports whether the in-memory metadata differs from disk.
	CheckForUpdatesMetadata() bool
	// MissingRequiredFields reports whether required metadata fields are empty.
	MissingRequiredFields() bool
	// MissingGeneratedOutputs reports whether a generator template lacks its output.
	MissingGeneratedOutputs() bool
	// UpdateFromInfo copies computed measure info into the metadata and refreshes file checksums.
	UpdateFromInfo(info *domain.MeasureInfo) error
	// Save writes the metadata back to disk.
	Save() error
	// Checksum returns the checksum of the directory contents.
	Checksum() string
}

// MeasureLoader reads measure descriptors from disk.
type MeasureLoader interface {
	// Load reads the measure in dir. A missing directory or metadata file fails with domain.ErrNotFound.
	Load(dir string) (MeasureDescriptor, error)
}
