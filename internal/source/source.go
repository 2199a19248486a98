// Package source fetches the raw corpus documents (an index plus N card
// chunks) that package corpus assembles into a card.Corpus. It knows
// nothing about JSON shape or SQLite staging — callers decode the returned
// bytes themselves.
package source

import "context"

// Source fetches the raw bytes of the corpus index and its card chunks.
type Source interface {
	FetchIndex(ctx context.Context) ([]byte, error)
	FetchChunks(ctx context.Context) ([][]byte, error)
}
