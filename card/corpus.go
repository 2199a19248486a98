package card

import (
	"fmt"

	"github.com/google/uuid"
)

// Corpus is the immutable, read-only card store described in spec.md §4.1.
// It is built once (see corpus.Load in the top-level corpus package) and
// never mutated afterward; all lookups are safe for concurrent readers.
type Corpus struct {
	byPrinting map[uuid.UUID]*Card
	byOracle   map[uuid.UUID][]uuid.UUID
	canonical  map[uuid.UUID]uuid.UUID
}

// NewCorpus builds a Corpus from a flat slice of printings. Oracle
// groupings and the canonical-printing index are derived here using
// BetterCanonical, so callers never need to precompute them.
func NewCorpus(cards []*Card) *Corpus {
	c := &Corpus{
		byPrinting: make(map[uuid.UUID]*Card, len(cards)),
		byOracle:   make(map[uuid.UUID][]uuid.UUID),
		canonical:  make(map[uuid.UUID]uuid.UUID),
	}

	canonicalCard := make(map[uuid.UUID]*Card)

	for _, crd := range cards {
		c.byPrinting[crd.ID] = crd
		c.byOracle[crd.OracleID] = append(c.byOracle[crd.OracleID], crd.ID)

		if BetterCanonical(canonicalCard[crd.OracleID], crd) {
			canonicalCard[crd.OracleID] = crd
		}
	}

	for oracleID, best := range canonicalCard {
		c.canonical[oracleID] = best.ID
	}

	return c
}

// CardByPrintingID returns the printing with the given id, or nil.
func (c *Corpus) CardByPrintingID(id uuid.UUID) *Card {
	return c.byPrinting[id]
}

// PrintingsByOracleID returns every printing id sharing the given oracle id.
func (c *Corpus) PrintingsByOracleID(oracleID uuid.UUID) []uuid.UUID {
	ids := c.byOracle[oracleID]
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

// CanonicalPrinting returns the canonical printing id for an oracle group,
// or uuid.Nil if the oracle id is unknown. The returned id's card never has
// layout art_series (invariant enforced at build time).
func (c *Corpus) CanonicalPrinting(oracleID uuid.UUID) uuid.UUID {
	return c.canonical[oracleID]
}

// CanonicalCards returns one Card per oracle group (the canonical
// printing), in unspecified order. This is the iteration domain for
// oracle-scoped queries (spec.md §4.4 "Scope selection").
func (c *Corpus) CanonicalCards() []*Card {
	out := make([]*Card, 0, len(c.canonical))
	for _, printingID := range c.canonical {
		out = append(out, c.byPrinting[printingID])
	}
	return out
}

// AllPrintings returns every printing in the corpus, in unspecified order.
// This is the iteration domain for printing-scoped queries.
func (c *Corpus) AllPrintings() []*Card {
	out := make([]*Card, 0, len(c.byPrinting))
	for _, crd := range c.byPrinting {
		out = append(out, crd)
	}
	return out
}

// Size returns the number of printings in the corpus.
func (c *Corpus) Size() int { return len(c.byPrinting) }

// OracleCount returns the number of distinct oracle groups.
func (c *Corpus) OracleCount() int { return len(c.canonical) }

// Validate checks the invariants from spec.md §3: every canonical entry
// must reference a printing present in the corpus and must not be
// art_series.
func (c *Corpus) Validate() error {
	for oracleID, printingID := range c.canonical {
		crd, ok := c.byPrinting[printingID]
		if !ok {
			return fmt.Errorf("canonical printing %s for oracle %s not present in corpus", printingID, oracleID)
		}
		if crd.Layout == LayoutArtSeries {
			return fmt.Errorf("canonical printing %s for oracle %s has layout art_series", printingID, oracleID)
		}
	}
	return nil
}
