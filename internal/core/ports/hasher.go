package ports

// Hasher computes content checksums used as cache-coherence keys.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Checksum returns the checksum of a file, or of every file below a directory.
	// A missing path fails with domain.ErrNotFound.
	Checksum(path string) (string, error)
}
