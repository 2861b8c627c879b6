package app

import "errors"

var (
	ErrAlreadyRunning     = errors.New("another instance holds the pidfile lock")
	ErrPIDFileUnsupported = errors.New("pidfile is not supported on this platform")
)
