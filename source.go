package ecgen

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source provides manifest content to Generate.
type Source interface {
	// Read returns the manifest content and a name used in diagnostics.
	Read() (content []byte, name string, err error)
}

// --- File source ---

type fileSource struct {
	path string
}

// File creates a Source reading a manifest from the given path.
// The file is read lazily when Generate runs.
func File(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Read() ([]byte, string, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, "", fmt.Errorf("read manifest: %w", err)
	}
	return content, filepath.Base(s.path), nil
}

// --- Bytes source ---

type bytesSource struct {
	name    string
	content []byte
}

// Bytes creates a Source over in-memory manifest content. The name appears
// in diagnostics; pass something recognizable.
func Bytes(name string, content []byte) Source {
	return &bytesSource{name: name, content: content}
}

func (s *bytesSource) Read() ([]byte, string, error) {
	return s.content, s.name, nil
}
