package worker

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is the sentinel for spec.md §7 kind 2 ("NotInitialized"):
// any RPC called before Initialize has completed returns an error wrapping
// this value so callers can errors.Is it.
var ErrNotInitialized = errors.New("worker: not initialized")

// ErrLoadFailed is the sentinel for spec.md §7 kind 3 ("LoadError"): the
// corpus or volatile-data fetch/decode failed.
var ErrLoadFailed = errors.New("worker: corpus load failed")

func notInitializedErr(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotInitialized)
}

func loadFailedErr(reason string, cause error) error {
	return fmt.Errorf("%s: %w: %w", reason, ErrLoadFailed, cause)
}
