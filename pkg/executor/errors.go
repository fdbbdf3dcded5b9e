package executor

import "errors"

var (
	// ErrClosed is returned once the loop has exited; the executor does not restart.
	ErrClosed = errors.New("executor: loop has exited")

	// ErrAlreadyRunning is returned by Run while another Run is in progress.
	ErrAlreadyRunning = errors.New("executor: already running")

	// ErrCapacity is returned by Add when the live step limit is reached.
	ErrCapacity = errors.New("executor: live step limit reached")

	// ErrNilStep is returned by Add for a nil step.
	ErrNilStep = errors.New("executor: nil step")
)
