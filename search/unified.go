package search

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/tenlands/cardbinder/card"
	"github.com/tenlands/cardbinder/fuzzy"
	"github.com/tenlands/cardbinder/querylang"
)

// Mode reports which path produced a result set.
type Mode string

const (
	ModeSyntax Mode = "syntax"
	ModeFuzzy  Mode = "fuzzy"
)

// Restrictions narrows a search independently of the query text (spec.md
// §5 "Restrictions parameter"). Both fields are optional.
type Restrictions struct {
	Format        string
	ColorIdentity card.ColorSet
}

// UnifiedRequest is the full input to PaginatedUnifiedSearch.
type UnifiedRequest struct {
	Query        string
	Restrictions Restrictions
	SortField    querylang.SortField
	SortDir      querylang.SortDirection
	Offset       int
	Limit        int
}

// UnifiedResult is the RPC-shaped response (spec.md §6 paginatedUnifiedSearch).
type UnifiedResult struct {
	Mode        Mode
	Cards       []*card.Card
	TotalCount  int
	Description string
	Err         error
}

// Engine bundles the corpus, fuzzy index, and result cache needed to serve
// PaginatedUnifiedSearch without re-threading them through every call.
type Engine struct {
	Corpus *card.Corpus
	Fuzzy  *fuzzy.Index
	Cache  *ResultCache
}

// NewEngine builds an Engine. The fuzzy index is built once here, over the
// corpus's canonical printings (spec.md §4.6 "the fuzzy path operates at
// oracle scope").
func NewEngine(corpus *card.Corpus, cache *ResultCache) *Engine {
	if cache == nil {
		cache = NewResultCache(DefaultCacheCapacity)
	}
	return &Engine{
		Corpus: corpus,
		Fuzzy:  fuzzy.NewIndex(corpus.CanonicalCards()),
		Cache:  cache,
	}
}

// PaginatedUnifiedSearch implements the control flow from spec.md §2:
// fingerprint → LRU hit/miss → syntax-or-fuzzy classification → evaluate →
// sort/dedup → cache insert → page slice.
func (e *Engine) PaginatedUnifiedSearch(req UnifiedRequest) UnifiedResult {
	fp := Fingerprint(Request{
		Query:         req.Query,
		Format:        req.Restrictions.Format,
		ColorIdentity: colorSetLetters(req.Restrictions.ColorIdentity),
		SortField:     req.SortField,
		SortDir:       req.SortDir,
	})

	var all []*card.Card
	if cached, ok := e.Cache.Get(fp); ok {
		all = cached.Cards
	} else {
		var mode Mode
		var err error
		all, mode, err = e.evaluate(req)
		if err != nil {
			return UnifiedResult{Err: err}
		}
		_ = mode
		e.Cache.Put(fp, CachedResult{Cards: all})
	}

	page, total := paginate(all, req.Offset, req.Limit)

	mode := ModeSyntax
	if querylang.IsPureNameQuery(mustParse(req.Query)) {
		mode = ModeFuzzy
	}

	return UnifiedResult{
		Mode:       mode,
		Cards:      page,
		TotalCount: total,
	}
}

// SyntaxSearch forces the syntax evaluation path even for a pure-name
// query, bypassing PaginatedUnifiedSearch's automatic fuzzy-or-syntax
// classification — an explicit entrypoint for callers that already know
// they hold a field/boolean query (spec.md §6 "syntaxSearch").
func (e *Engine) SyntaxSearch(req UnifiedRequest) UnifiedResult {
	node, perr := querylang.Parse(req.Query)
	if perr != nil {
		return UnifiedResult{Err: perr}
	}

	pred := querylang.Compile(node)
	printingScope := querylang.MentionsPrintingOnlyField(node)

	var domain []*card.Card
	if printingScope {
		domain = e.Corpus.AllPrintings()
	} else {
		domain = e.Corpus.CanonicalCards()
	}

	matched := make([]*card.Card, 0, len(domain))
	for _, c := range domain {
		if pred(c) && passesRestrictions(c, req.Restrictions) {
			matched = append(matched, c)
		}
	}
	if printingScope {
		matched = dedupeByOracleBestMatch(matched)
	}
	querylang.Sort(matched, req.SortField, req.SortDir)

	page, total := paginate(matched, req.Offset, req.Limit)
	return UnifiedResult{Mode: ModeSyntax, Cards: page, TotalCount: total}
}

func paginate(cards []*card.Card, offset, limit int) ([]*card.Card, int) {
	total := len(cards)
	start := offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + limit
	if limit <= 0 || end > total {
		end = total
	}
	return cards[start:end], total
}

func mustParse(q string) *querylang.Node {
	node, _ := querylang.Parse(q)
	return node
}

// evaluate runs the classification → compile/search → restriction filter →
// scope dedup → sort pipeline, returning the full sorted result set (not
// yet paginated).
func (e *Engine) evaluate(req UnifiedRequest) ([]*card.Card, Mode, error) {
	node, perr := querylang.Parse(req.Query)
	if perr != nil {
		return nil, ModeSyntax, perr
	}

	if querylang.IsPureNameQuery(node) {
		matches := e.Fuzzy.Search(req.Query)
		cards := make([]*card.Card, 0, len(matches))
		for _, m := range matches {
			if passesRestrictions(m.Card, req.Restrictions) {
				cards = append(cards, m.Card)
			}
		}
		querylang.Sort(cards, req.SortField, req.SortDir)
		return cards, ModeFuzzy, nil
	}

	pred := querylang.Compile(node)
	printingScope := querylang.MentionsPrintingOnlyField(node)

	var domain []*card.Card
	if printingScope {
		domain = e.Corpus.AllPrintings()
	} else {
		domain = e.Corpus.CanonicalCards()
	}

	matched := make([]*card.Card, 0, len(domain))
	for _, c := range domain {
		if pred(c) && passesRestrictions(c, req.Restrictions) {
			matched = append(matched, c)
		}
	}

	if printingScope {
		matched = dedupeByOracleBestMatch(matched)
	}

	querylang.Sort(matched, req.SortField, req.SortDir)
	return matched, ModeSyntax, nil
}

// dedupeByOracleBestMatch implements spec.md §4.4's printing-scope
// deduplication: "the best-scoring matching printing wins", scored only
// among the printings that themselves matched.
func dedupeByOracleBestMatch(matches []*card.Card) []*card.Card {
	best := make(map[uuid.UUID]*card.Card, len(matches))
	for _, c := range matches {
		if card.BetterCanonical(best[c.OracleID], c) {
			best[c.OracleID] = c
		}
	}
	out := make([]*card.Card, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	return out
}

func passesRestrictions(c *card.Card, r Restrictions) bool {
	if r.Format != "" {
		status, ok := c.Legalities[strings.ToLower(r.Format)]
		if !ok || (status != card.Legal && status != card.Restricted) {
			return false
		}
	}
	if r.ColorIdentity != nil && !c.ColorIdentity.Subset(r.ColorIdentity) {
		return false
	}
	return true
}

// colorSetLetters renders a color-identity restriction for the cache
// fingerprint. A nil set (no restriction requested) is rendered as "-" so
// it never collides with an explicit, empty ColorSet{} (a colorless-identity
// restriction), which renders as "".
func colorSetLetters(s card.ColorSet) string {
	if s == nil {
		return "-"
	}
	var sb strings.Builder
	for _, c := range []card.Color{card.White, card.Blue, card.Black, card.Red, card.Green} {
		if s.Has(c) {
			sb.WriteByte(byte(c))
		}
	}
	return sb.String()
}

// DescribePage renders the human-readable description field some worker
// callers surface alongside results (e.g. "12 cards, page 2 of 3").
func DescribePage(total, offset, limit int) string {
	if limit <= 0 {
		return strconv.Itoa(total) + " cards"
	}
	page := offset/limit + 1
	pages := (total + limit - 1) / limit
	if pages == 0 {
		pages = 1
	}
	return strconv.Itoa(total) + " cards, page " + strconv.Itoa(page) + " of " + strconv.Itoa(pages)
}
