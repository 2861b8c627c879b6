//go:build unix

package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// CreatePIDFile locks path and writes the current PID into it.
// The returned release func unlocks and removes the file; it is safe to call more than once.
// Signals are left to the HTTP server so that shutdown stays graceful.
func CreatePIDFile(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf("pidfile %s: %w", path, ErrAlreadyRunning)
		}
		return nil, fmt.Errorf("flock %s: %w", path, err)
	}

	if err := writePID(f); err != nil {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
		return nil, fmt.Errorf("pidfile %s: %w", path, err)
	}
	// The lock lives as long as f stays open.
	log.Debug().Str("pidfile", path).Int("pid", os.Getpid()).Msg("pidfile locked")

	var once sync.Once
	release := func() {
		once.Do(func() {
			_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
			_ = f.Close()
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				log.Warn().Err(err).Str("pidfile", path).Msg("cannot remove pidfile")
			}
		})
	}
	return release, nil
}

func writePID(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	_, err := f.WriteString(strconv.Itoa(os.Getpid()) + "\n")
	return err
}
