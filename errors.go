package shaderpurge

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrKeyNotFound is returned when a registry key does not exist.
	ErrKeyNotFound = errors.New("registry key not found")

	// ErrValueNotFound is returned when a registry key exists but lacks the
	// requested value, or the value is not a non-empty string.
	ErrValueNotFound = errors.New("registry value not found")

	// ErrRegistryUnsupported is returned by the system registry on platforms
	// other than Windows.
	ErrRegistryUnsupported = errors.New("registry is only available on windows")

	// ErrNoLibraryFolders is returned when a Steam manifest has no
	// libraryfolders section.
	ErrNoLibraryFolders = errors.New("manifest has no libraryfolders section")

	// ErrEnvNotSet is returned when a required environment variable is unset or empty.
	ErrEnvNotSet = errors.New("environment variable not set")
)

// PurgeError collects the individual delete failures of a single purge.
// It never aborts the purge; it is attached to the PurgeResult so callers
// can inspect what was left behind.
type PurgeError struct {
	Dir    string
	Errors []error
}

// Error implements the error interface.
func (pe *PurgeError) Error() string {
	if len(pe.Errors) == 0 {
		return fmt.Sprintf("purge of %s failed", pe.Dir)
	}
	if len(pe.Errors) == 1 {
		return fmt.Sprintf("purge of %s failed: %v", pe.Dir, pe.Errors[0])
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "purge of %s failed with %d errors:\n", pe.Dir, len(pe.Errors))
	for i, err := range pe.Errors {
		fmt.Fprintf(&buf, "  %d. %v\n", i+1, err)
	}
	return buf.String()
}

// Unwrap returns the underlying errors for use with errors.Is and errors.As.
func (pe *PurgeError) Unwrap() []error {
	return pe.Errors
}

// newPurgeError creates a PurgeError from a slice of errors.
// Returns nil if the slice is empty.
func newPurgeError(dir string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &PurgeError{Dir: dir, Errors: errs}
}
