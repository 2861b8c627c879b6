//go:build windows

package app

import "fmt"

// CreatePIDFile is not supported on Windows: flock has no equivalent there.
func CreatePIDFile(path string) (func(), error) {
	return func() {}, fmt.Errorf("pidfile %s: %w", path, ErrPIDFileUnsupported)
}
