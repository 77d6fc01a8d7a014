package clean

import "os"

// Deleter abstracts filesystem delete operations.
// Enables mocking in tests to prove dry-run never deletes.
type Deleter interface {
	Remove(path string) error
	RemoveAll(path string) error
}

// OSDeleter deletes entries on the real filesystem.
type OSDeleter struct{}

// Remove deletes a single file.
func (OSDeleter) Remove(path string) error { return os.Remove(path) }

// RemoveAll deletes a directory and its entire contents.
func (OSDeleter) RemoveAll(path string) error { return os.RemoveAll(path) }
