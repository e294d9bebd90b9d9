package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage defines the interface for transient upload storage. Uploads live
// only for the duration of one dispatch attempt: saved before the relay is
// invoked and released once the attempt resolves.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// FullPath resolves a storage path to an absolute filesystem location
	// the relay client can attach from
	FullPath(path string) string
}

// Config holds storage configuration
type Config struct {
	Type     string // local
	BasePath string // For local storage
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
