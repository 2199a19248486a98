// Package corpus wires the corpus source and staging store (C0a/C0b) into
// a built card.Corpus (C1). It is the only package that knows both the
// wire/staging layer and the query-core data model.
package corpus

import (
	"context"
	"fmt"

	"github.com/tenlands/cardbinder/card"
	"github.com/tenlands/cardbinder/internal/source"
	"github.com/tenlands/cardbinder/internal/store"
)

// Load fetches the index and chunks from src, stages them into a scratch
// SQLite database, hydrates the rows back into card.Card values, and
// builds a card.Corpus from the result. The index document itself is
// fetched (so an unreachable index fails loudly) but is not otherwise
// interpreted — a malformed index is not detected, and corpus shape comes
// entirely from the chunks.
func Load(ctx context.Context, src source.Source) (*card.Corpus, error) {
	if _, err := src.FetchIndex(ctx); err != nil {
		return nil, fmt.Errorf("fetching corpus index: %w", err)
	}

	chunks, err := src.FetchChunks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching corpus chunks: %w", err)
	}

	db, err := store.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening staging store: %w", err)
	}
	defer db.Close()

	if _, err := store.Stage(ctx, db, chunks); err != nil {
		return nil, fmt.Errorf("staging corpus chunks: %w", err)
	}

	cards, err := store.Hydrate(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("hydrating staged corpus: %w", err)
	}

	corpus := card.NewCorpus(cards)
	if err := corpus.Validate(); err != nil {
		return nil, fmt.Errorf("validating hydrated corpus: %w", err)
	}
	return corpus, nil
}
