package search

import (
	"testing"

	"github.com/google/uuid"

	"github.com/tenlands/cardbinder/card"
	"github.com/tenlands/cardbinder/querylang"
)

func lea(name string, rarity card.Rarity) *card.Card {
	return &card.Card{
		ID: uuid.New(), OracleID: uuid.New(),
		Name: name, Set: "lea", TypeLine: "Instant", Rarity: rarity,
		Legalities: map[string]card.Legality{"vintage": card.Legal},
	}
}

func buildEngine(n int) *Engine {
	cards := make([]*card.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, lea("Card "+string(rune('A'+i)), card.RarityCommon))
	}
	return NewEngine(card.NewCorpus(cards), NewResultCache(8))
}

func TestPaginationDisjointSamePages(t *testing.T) {
	e := buildEngine(25)
	req := UnifiedRequest{Query: "s:lea", SortField: querylang.SortName, Offset: 0, Limit: 10}
	page1 := e.PaginatedUnifiedSearch(req)
	req.Offset = 10
	page2 := e.PaginatedUnifiedSearch(req)

	if page1.TotalCount != page2.TotalCount {
		t.Fatalf("expected equal totals, got %d vs %d", page1.TotalCount, page2.TotalCount)
	}
	seen := map[uuid.UUID]bool{}
	for _, c := range page1.Cards {
		seen[c.ID] = true
	}
	for _, c := range page2.Cards {
		if seen[c.ID] {
			t.Fatalf("card %s appeared on both pages", c.Name)
		}
	}
}

func TestPastEndOffsetReturnsEmpty(t *testing.T) {
	e := buildEngine(5)
	res := e.PaginatedUnifiedSearch(UnifiedRequest{Query: "s:lea", Offset: 100, Limit: 10})
	if len(res.Cards) != 0 {
		t.Fatalf("expected empty page past the end, got %d cards", len(res.Cards))
	}
	if res.TotalCount != 5 {
		t.Fatalf("expected total count preserved, got %d", res.TotalCount)
	}
}

func TestFingerprintIgnoresOffsetLimit(t *testing.T) {
	a := Fingerprint(Request{Query: "bolt", SortField: querylang.SortName})
	b := Fingerprint(Request{Query: "bolt", SortField: querylang.SortName})
	if a != b {
		t.Fatal("expected identical fingerprints for identical non-paging inputs")
	}
}

func TestFingerprintNormalizesColorIdentityOrder(t *testing.T) {
	a := Fingerprint(Request{ColorIdentity: "ur"})
	b := Fingerprint(Request{ColorIdentity: "ru"})
	if a != b {
		t.Fatal("expected color identity letter order to not affect fingerprint")
	}
}

func TestFuzzyPathClassification(t *testing.T) {
	e := buildEngine(1)
	res := e.PaginatedUnifiedSearch(UnifiedRequest{Query: "Card A"})
	if res.Mode != ModeFuzzy {
		t.Fatalf("expected fuzzy mode for a bare name query, got %v", res.Mode)
	}
}

func TestSyntaxPathClassification(t *testing.T) {
	e := buildEngine(1)
	res := e.PaginatedUnifiedSearch(UnifiedRequest{Query: "s:lea"})
	if res.Mode != ModeSyntax {
		t.Fatalf("expected syntax mode for a field clause query, got %v", res.Mode)
	}
}

func TestRestrictionsFilterByColorIdentity(t *testing.T) {
	cards := []*card.Card{
		{ID: uuid.New(), OracleID: uuid.New(), Name: "Mono Red", TypeLine: "Instant", ColorIdentity: card.NewColorSet(card.Red)},
		{ID: uuid.New(), OracleID: uuid.New(), Name: "Mono Blue", TypeLine: "Instant", ColorIdentity: card.NewColorSet(card.Blue)},
	}
	e := NewEngine(card.NewCorpus(cards), NewResultCache(8))
	res := e.PaginatedUnifiedSearch(UnifiedRequest{
		Query:        "t:instant",
		Restrictions: Restrictions{ColorIdentity: card.NewColorSet(card.Red)},
	})
	if len(res.Cards) != 1 || res.Cards[0].Name != "Mono Red" {
		t.Fatalf("expected only the red card to pass the restriction, got %+v", res.Cards)
	}
}

func TestLRUEvictsOldest(t *testing.T) {
	c := NewResultCache(2)
	c.Put("a", CachedResult{})
	c.Put("b", CachedResult{})
	c.Put("c", CachedResult{})
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected least-recently-used entry to be evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("expected b to still be cached")
	}
}
