// Package worker exposes the card query core (C1–C7) as the background
// worker's RPC surface (spec.md §6): Initialize, SearchCards, SyntaxSearch,
// PaginatedUnifiedSearch, GetCardByID, GetPrintingsByOracleID,
// GetCanonicalPrinting, GetVolatileData, IsVolatileDataReady.
package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/tenlands/cardbinder/card"
	"github.com/tenlands/cardbinder/corpus"
	"github.com/tenlands/cardbinder/internal/source"
	"github.com/tenlands/cardbinder/search"
	"github.com/tenlands/cardbinder/volatile"
)

// Worker owns one corpus, its search engine, and its volatile-data table.
// It is not internally locked for query paths — spec.md's concurrency
// model is single logical caller per instance — but Initialize is
// idempotent (sync.Once) and the corpus/volatile pointers are guarded by a
// mutex purely as defense against accidental concurrent callers, matching
// the teacher's Scryball.mu pattern in state.go.
type Worker struct {
	cfg Config

	mu     sync.RWMutex
	corpus *card.Corpus
	engine *search.Engine

	initOnce sync.Once
	initDone *future

	volatileMu    sync.RWMutex
	volatileData  map[uuid.UUID]volatile.Record
	volatileReady *future
}

// New builds an uninitialized Worker. Call Initialize before any other
// method.
func New(cfg Config) *Worker {
	return &Worker{
		cfg:           cfg,
		initDone:      newFuture(),
		volatileReady: newFuture(),
	}
}

// Initialize fetches and builds the corpus (and, if configured, starts the
// asynchronous volatile-data load). It is idempotent: concurrent callers
// block on the same underlying fetch and all observe its single result,
// grounded in the teacher's ensureCurrentScryball sync.Once pattern.
func (w *Worker) Initialize(ctx context.Context) error {
	w.initOnce.Do(func() {
		w.initDone.complete(w.doInitialize(ctx))
	})
	return w.initDone.wait()
}

// InitializeWithSource is Initialize, but builds the corpus from src
// instead of an HTTPSource derived from Config — used by tests and by
// cmd/cardquery to initialize against local fixture files.
func (w *Worker) InitializeWithSource(ctx context.Context, src source.Source) error {
	w.initOnce.Do(func() {
		w.initDone.complete(w.doInitializeFrom(ctx, src))
	})
	return w.initDone.wait()
}

func (w *Worker) doInitialize(ctx context.Context) error {
	src := source.NewHTTPSource(w.cfg.CorpusIndexURL, w.cfg.CorpusChunkURLs)
	if w.cfg.HTTPUserAgent != "" {
		src.UserAgent = w.cfg.HTTPUserAgent
	}
	return w.doInitializeFrom(ctx, src)
}

func (w *Worker) doInitializeFrom(ctx context.Context, src source.Source) error {
	c, err := corpus.Load(ctx, src)
	if err != nil {
		return loadFailedErr("loading corpus", err)
	}

	cacheCapacity := w.cfg.CacheCapacity
	if cacheCapacity <= 0 {
		cacheCapacity = search.DefaultCacheCapacity
	}

	w.mu.Lock()
	w.corpus = c
	w.engine = search.NewEngine(c, search.NewResultCache(cacheCapacity))
	w.mu.Unlock()

	if w.cfg.VolatileDataURL == "" {
		w.volatileReady.complete(nil)
		return nil
	}
	go w.loadVolatile(ctx)
	return nil
}

// loadVolatile runs in a background goroutine; failures are logged and
// surfaced only through IsVolatileDataReady/GetVolatileData, never by
// failing Initialize (spec.md §7 "volatile load failure" is non-fatal).
func (w *Worker) loadVolatile(ctx context.Context) {
	src := source.NewHTTPSource(w.cfg.VolatileDataURL, nil)
	if w.cfg.HTTPUserAgent != "" {
		src.UserAgent = w.cfg.HTTPUserAgent
	}

	data, err := src.FetchIndex(ctx)
	if err != nil {
		slog.Warn("volatile data fetch failed", "error", err)
		w.volatileReady.complete(loadFailedErr("fetching volatile data", err))
		return
	}

	records, err := volatile.Decode(data)
	if err != nil {
		slog.Warn("volatile data decode failed", "error", err)
		w.volatileReady.complete(loadFailedErr("decoding volatile data", err))
		return
	}

	w.volatileMu.Lock()
	w.volatileData = records
	w.volatileMu.Unlock()
	w.volatileReady.complete(nil)
}

func (w *Worker) ready() (*card.Corpus, *search.Engine, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.corpus == nil || w.engine == nil {
		return nil, nil, notInitializedErr("worker")
	}
	return w.corpus, w.engine, nil
}

// Corpus returns the worker's built corpus, for callers (such as
// cmd/cardquery) that need direct lookups the RPC surface doesn't expose.
func (w *Worker) Corpus() (*card.Corpus, error) {
	c, _, err := w.ready()
	return c, err
}

// SearchCards is the simple convenience entrypoint: one query string,
// default sort, no restrictions, no pagination limit.
func (w *Worker) SearchCards(query string) ([]*card.Card, error) {
	_, engine, err := w.ready()
	if err != nil {
		return nil, err
	}
	res := engine.PaginatedUnifiedSearch(search.UnifiedRequest{Query: query})
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Cards, nil
}

// SyntaxSearch forces the syntax evaluation path (spec.md §6), bypassing
// the automatic fuzzy-or-syntax classification PaginatedUnifiedSearch
// performs.
func (w *Worker) SyntaxSearch(req search.UnifiedRequest) search.UnifiedResult {
	_, engine, err := w.ready()
	if err != nil {
		return search.UnifiedResult{Err: err}
	}
	return engine.SyntaxSearch(req)
}

// PaginatedUnifiedSearch is the full RPC: fingerprint → cache →
// classification → evaluate → sort → cache insert → page slice.
func (w *Worker) PaginatedUnifiedSearch(req search.UnifiedRequest) search.UnifiedResult {
	_, engine, err := w.ready()
	if err != nil {
		return search.UnifiedResult{Err: err}
	}
	return engine.PaginatedUnifiedSearch(req)
}

// GetCardByID returns the printing with the given id, or (nil, nil) if no
// such printing exists. It only returns an error when the worker has not
// finished initializing.
func (w *Worker) GetCardByID(id uuid.UUID) (*card.Card, error) {
	c, _, err := w.ready()
	if err != nil {
		return nil, err
	}
	return c.CardByPrintingID(id), nil
}

// GetPrintingsByOracleID returns every printing id sharing oracleID.
func (w *Worker) GetPrintingsByOracleID(oracleID uuid.UUID) ([]uuid.UUID, error) {
	c, _, err := w.ready()
	if err != nil {
		return nil, err
	}
	return c.PrintingsByOracleID(oracleID), nil
}

// GetCanonicalPrinting returns the canonical printing id for oracleID.
func (w *Worker) GetCanonicalPrinting(oracleID uuid.UUID) (uuid.UUID, error) {
	c, _, err := w.ready()
	if err != nil {
		return uuid.Nil, err
	}
	return c.CanonicalPrinting(oracleID), nil
}

// GetVolatileData returns the volatile record for a printing and whether
// it was found. It never blocks on the background load — callers should
// check IsVolatileDataReady first if they need to distinguish "not loaded
// yet" from "no such printing".
func (w *Worker) GetVolatileData(printingID uuid.UUID) (volatile.Record, bool) {
	w.volatileMu.RLock()
	defer w.volatileMu.RUnlock()
	rec, ok := w.volatileData[printingID]
	return rec, ok
}

// IsVolatileDataReady polls the volatile-load readiness signal
// non-blockingly (spec.md §4.2).
func (w *Worker) IsVolatileDataReady() bool {
	return w.volatileReady.isDone()
}
