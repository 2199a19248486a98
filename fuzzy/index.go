package fuzzy

import (
	"sort"
	"strings"

	"github.com/tenlands/cardbinder/card"
)

// MatchKind classifies how a name matched, used to rank results: exact
// beats prefix beats fuzzy (spec.md §4.6 "Ranking").
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchPrefix
	MatchFuzzy
)

// Match is one scored result from Index.Search.
type Match struct {
	Card     *card.Card
	Kind     MatchKind
	Distance int
}

// entry is the index's per-canonical-printing record.
type entry struct {
	card *card.Card
	name string // lowercased
}

// Index is a prefix/edit-distance name index over a fixed set of cards,
// built once and queried read-only, mirroring the corpus's own
// build-once/read-many shape.
type Index struct {
	entries []entry
}

// NewIndex builds an index over cards. Callers pass the corpus's
// canonical printings (one per oracle id) per spec.md §4.6 "the fuzzy path
// operates at oracle scope".
func NewIndex(cards []*card.Card) *Index {
	entries := make([]entry, 0, len(cards))
	for _, c := range cards {
		entries = append(entries, entry{card: c, name: strings.ToLower(c.Name)})
	}
	return &Index{entries: entries}
}

// maxDistanceFor scales the edit-distance budget with query length: short
// queries tolerate fewer typos, per spec.md §4.6 "bounded edit distance,
// proportional to query length".
func maxDistanceFor(query string) int {
	switch {
	case len(query) <= 3:
		return 0
	case len(query) <= 6:
		return 1
	default:
		return 2
	}
}

// Search returns every card whose name exactly matches, prefix-matches, or
// is within the length-scaled edit-distance budget of query, sorted best
// match first then by name.
func (idx *Index) Search(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	maxDist := maxDistanceFor(q)

	var out []Match
	for _, e := range idx.entries {
		switch {
		case e.name == q:
			out = append(out, Match{Card: e.card, Kind: MatchExact, Distance: 0})
		case strings.HasPrefix(e.name, q):
			out = append(out, Match{Card: e.card, Kind: MatchPrefix, Distance: 0})
		default:
			if d := levenshtein(q, e.name, maxDist); d <= maxDist {
				out = append(out, Match{Card: e.card, Kind: MatchFuzzy, Distance: d})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Card.Name < out[j].Card.Name
	})
	return out
}
