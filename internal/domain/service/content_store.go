package service

// ContentStore persists raw file content under randomly named paths in a
// configured storage root. Derivatives are written next to their original
// with atomic overwrite, which keeps thumbnail regeneration idempotent.
type ContentStore interface {
	// Save writes data under a fresh random name and returns the full path.
	Save(data []byte) (string, error)
	Read(path string) ([]byte, error)
	Exists(path string) bool
	// Write overwrites path with data, creating it if absent.
	Write(path string, data []byte) error
}
