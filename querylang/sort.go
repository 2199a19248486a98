package querylang

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tenlands/cardbinder/card"
)

// SortField is one of the result-ordering keys from spec.md §4.5.
type SortField int

const (
	SortName SortField = iota
	SortManaValue
	SortReleased
	SortRarity
	SortColor
)

// SortDirection is ascending or descending.
type SortDirection int

const (
	DirAuto SortDirection = iota
	DirAsc
	DirDesc
)

var sortFieldSynonyms = map[string]SortField{
	"name": SortName, "n": SortName,
	"mv": SortManaValue, "cmc": SortManaValue, "manavalue": SortManaValue,
	"released": SortReleased, "date": SortReleased,
	"rarity": SortRarity,
	"color":  SortColor, "colors": SortColor,
}

// ParseSortField resolves a sort-field spelling, defaulting to name when
// empty or unrecognized.
func ParseSortField(s string) SortField {
	f, ok := sortFieldSynonyms[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return SortName
	}
	return f
}

// ResolveDirection applies the "auto" default from spec.md §4.5: name and
// rarity default ascending, mana value/released/color default descending.
func ResolveDirection(field SortField, dir SortDirection) SortDirection {
	if dir != DirAuto {
		return dir
	}
	switch field {
	case SortName, SortRarity:
		return DirAsc
	default:
		return DirDesc
	}
}

// nameCollator provides the locale-aware comparison used to break ties and
// to implement the name sort field itself, rather than a naive byte-wise
// strings.Compare that would mis-order accented card names.
var nameCollator = collate.New(language.English, collate.IgnoreCase)

func colorWeight(c *card.Card) int { return len(c.Colors) }

// Less produces a strict less-than over two cards for the given field,
// always falling back to the locale-aware name order as the final
// tiebreaker (spec.md §4.5 "ties are broken by name").
func Less(field SortField, dir SortDirection, a, b *card.Card) bool {
	cmp := 0
	switch field {
	case SortName:
		cmp = nameCollator.CompareString(a.Name, b.Name)
	case SortManaValue:
		cmp = compareFloat(a.ManaValue, b.ManaValue)
	case SortReleased:
		cmp = compareTime(a.ReleasedAt, b.ReleasedAt)
	case SortRarity:
		cmp = a.Rarity.Order() - b.Rarity.Order()
	case SortColor:
		cmp = colorWeight(a) - colorWeight(b)
	}
	if cmp == 0 {
		return nameCollator.CompareString(a.Name, b.Name) < 0
	}
	if dir == DirDesc {
		return cmp > 0
	}
	return cmp < 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// Sort orders cards in place per field/dir.
func Sort(cards []*card.Card, field SortField, dir SortDirection) {
	resolved := ResolveDirection(field, dir)
	sort.SliceStable(cards, func(i, j int) bool {
		return Less(field, resolved, cards[i], cards[j])
	})
}
