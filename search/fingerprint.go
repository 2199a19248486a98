// Package search implements the unified paginated search entry point
// (spec.md §5), combining the syntax and fuzzy paths behind a single LRU
// result cache keyed by a fingerprint of the request shape rather than the
// page being requested.
package search

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/tenlands/cardbinder/querylang"
)

// Request is the full set of inputs that determine a search's result set,
// independent of which page of it is being read.
type Request struct {
	Query         string
	Format        string
	ColorIdentity string
	SortField     querylang.SortField
	SortDir       querylang.SortDirection
	Scope         string // "oracle" or "printing"
}

// Fingerprint is the FNV-1a hash of a normalized Request, used as the LRU
// cache key (spec.md §5.2 "the cache key excludes offset and limit so that
// every page of the same logical search shares one cache entry").
func Fingerprint(r Request) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "q=%s\x00f=%s\x00id=%s\x00sf=%d\x00sd=%d\x00scope=%s",
		normalizeQuery(r.Query),
		strings.ToLower(strings.TrimSpace(r.Format)),
		normalizeColorIdentity(r.ColorIdentity),
		r.SortField,
		r.SortDir,
		r.Scope,
	)
	return fmt.Sprintf("%x", h.Sum64())
}

func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

// normalizeColorIdentity sorts the letters of a color-identity filter so
// "ur" and "ru" share a fingerprint.
func normalizeColorIdentity(id string) string {
	letters := strings.Split(strings.ToLower(strings.TrimSpace(id)), "")
	sort.Strings(letters)
	return strings.Join(letters, "")
}
