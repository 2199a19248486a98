package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tenlands/cardbinder/card"
	"github.com/tenlands/cardbinder/search"
	"github.com/tenlands/cardbinder/volatile"
)

// currentWorker is the process-wide lazily-initialized Worker, directly
// mirroring the teacher's CurrentScryball/initOnce global-singleton
// pattern in state.go: the first caller of ensureCurrentWorker builds it
// from Config read off the environment, and every later caller (and every
// package-level convenience wrapper below) reuses the same instance.
var (
	currentWorker     *Worker
	currentWorkerOnce sync.Once
	currentWorkerErr  error
)

// ensureCurrentWorker lazily builds and initializes the singleton Worker.
func ensureCurrentWorker(ctx context.Context) (*Worker, error) {
	currentWorkerOnce.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			currentWorkerErr = err
			return
		}
		w := New(cfg)
		if err := w.Initialize(ctx); err != nil {
			currentWorkerErr = err
			return
		}
		currentWorker = w
	})
	return currentWorker, currentWorkerErr
}

// SetCurrent installs w as the package-level singleton, bypassing
// environment-driven config; tests use it to install a Worker built
// against local fixture files.
func SetCurrent(w *Worker) {
	currentWorkerOnce.Do(func() {})
	currentWorker = w
	currentWorkerErr = nil
}

// Initialize ensures the package-level singleton Worker is built and
// initialized, returning any error from doing so.
func Initialize(ctx context.Context) error {
	_, err := ensureCurrentWorker(ctx)
	return err
}

// SearchCards runs SearchCards against the package-level singleton Worker.
func SearchCards(ctx context.Context, query string) ([]*card.Card, error) {
	w, err := ensureCurrentWorker(ctx)
	if err != nil {
		return nil, err
	}
	return w.SearchCards(query)
}

// SyntaxSearch runs SyntaxSearch against the package-level singleton Worker.
func SyntaxSearch(ctx context.Context, req search.UnifiedRequest) search.UnifiedResult {
	w, err := ensureCurrentWorker(ctx)
	if err != nil {
		return search.UnifiedResult{Err: err}
	}
	return w.SyntaxSearch(req)
}

// PaginatedUnifiedSearch runs PaginatedUnifiedSearch against the
// package-level singleton Worker.
func PaginatedUnifiedSearch(ctx context.Context, req search.UnifiedRequest) search.UnifiedResult {
	w, err := ensureCurrentWorker(ctx)
	if err != nil {
		return search.UnifiedResult{Err: err}
	}
	return w.PaginatedUnifiedSearch(req)
}

// GetCardByID looks up a printing against the package-level singleton Worker.
func GetCardByID(ctx context.Context, id uuid.UUID) (*card.Card, error) {
	w, err := ensureCurrentWorker(ctx)
	if err != nil {
		return nil, err
	}
	return w.GetCardByID(id)
}

// GetPrintingsByOracleID looks up printings against the package-level
// singleton Worker.
func GetPrintingsByOracleID(ctx context.Context, oracleID uuid.UUID) ([]uuid.UUID, error) {
	w, err := ensureCurrentWorker(ctx)
	if err != nil {
		return nil, err
	}
	return w.GetPrintingsByOracleID(oracleID)
}

// GetCanonicalPrinting looks up the canonical printing against the
// package-level singleton Worker.
func GetCanonicalPrinting(ctx context.Context, oracleID uuid.UUID) (uuid.UUID, error) {
	w, err := ensureCurrentWorker(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return w.GetCanonicalPrinting(oracleID)
}

// GetVolatileData reads volatile data from the package-level singleton Worker.
func GetVolatileData(ctx context.Context, printingID uuid.UUID) (volatile.Record, bool, error) {
	w, err := ensureCurrentWorker(ctx)
	if err != nil {
		return volatile.Record{}, false, err
	}
	rec, ok := w.GetVolatileData(printingID)
	return rec, ok, nil
}

// IsVolatileDataReady reports readiness against the package-level
// singleton Worker.
func IsVolatileDataReady(ctx context.Context) (bool, error) {
	w, err := ensureCurrentWorker(ctx)
	if err != nil {
		return false, err
	}
	return w.IsVolatileDataReady(), nil
}
