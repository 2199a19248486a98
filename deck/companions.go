package deck

import (
	"strings"

	"github.com/tenlands/cardbinder/card"
)

// CompanionRule is a deck-wide mainboard predicate a companion imposes on
// the rest of the deck (spec.md §4.7 "ten known companion restrictions").
// Checking these against full oracle-ability-cost text is out of scope for
// the card data model carried here; restrictions are approximated from the
// fields the corpus does carry (mana value, type line, name).
type CompanionRule struct {
	Name      string
	Satisfies func(mainboard []*card.Card) bool
}

var companionRestrictions = []CompanionRule{
	{"Gyruda, Doom of Depths", func(cards []*card.Card) bool {
		return allNonland(cards, func(c *card.Card) bool {
			return int(c.ManaValue)%2 == 0
		})
	}},
	{"Jegantha, the Wanderer", func(cards []*card.Card) bool {
		seen := map[string]bool{}
		for _, c := range cards {
			if isLand(c) || isBasicLandName(c.Name) {
				continue
			}
			if seen[c.ManaCost] && c.ManaCost != "" {
				return false
			}
			seen[c.ManaCost] = true
		}
		return true
	}},
	{"Kaheera, the Orphanguard", func(cards []*card.Card) bool {
		allowed := []string{"Cat", "Elemental", "Nightmare", "Dinosaur", "Beast"}
		return allNonlandPermanents(cards, func(c *card.Card) bool {
			for _, t := range allowed {
				if strings.Contains(c.TypeLine, t) {
					return true
				}
			}
			return false
		})
	}},
	{"Keruga, the Macrosage", func(cards []*card.Card) bool {
		return allNonland(cards, func(c *card.Card) bool { return c.ManaValue >= 3 })
	}},
	{"Lurrus of the Dream-Den", func(cards []*card.Card) bool {
		return allNonlandPermanents(cards, func(c *card.Card) bool { return c.ManaValue <= 2 })
	}},
	{"Lutri, the Spellchaser", func(cards []*card.Card) bool {
		seen := map[string]int{}
		for _, c := range cards {
			if isBasicLandName(c.Name) {
				continue
			}
			seen[strings.ToLower(c.Name)]++
			if seen[strings.ToLower(c.Name)] > 1 {
				return false
			}
		}
		return true
	}},
	{"Obosh, the Preypiercer", func(cards []*card.Card) bool {
		return allNonland(cards, func(c *card.Card) bool { return int(c.ManaValue)%2 == 1 })
	}},
	{"Umori, the Collector", func(cards []*card.Card) bool {
		var sharedType string
		for _, c := range cards {
			if isLand(c) {
				continue
			}
			t := primaryCardType(c)
			if sharedType == "" {
				sharedType = t
			} else if sharedType != t {
				return false
			}
		}
		return true
	}},
	{"Yorion, Sky Nomad", func(cards []*card.Card) bool {
		return true // enforced via deck size, not a card-level predicate
	}},
	{"Zirda, the Dawnwaker", func(cards []*card.Card) bool {
		return allNonlandPermanents(cards, func(c *card.Card) bool { return c.ManaValue >= 2 })
	}},
}

func allNonland(cards []*card.Card, pred func(*card.Card) bool) bool {
	for _, c := range cards {
		if isLand(c) {
			continue
		}
		if !pred(c) {
			return false
		}
	}
	return true
}

func allNonlandPermanents(cards []*card.Card, pred func(*card.Card) bool) bool {
	for _, c := range cards {
		if isLand(c) || !isPermanent(c) {
			continue
		}
		if !pred(c) {
			return false
		}
	}
	return true
}

func isLand(c *card.Card) bool { return strings.Contains(c.TypeLine, "Land") }

func isPermanent(c *card.Card) bool {
	for _, t := range []string{"Creature", "Artifact", "Enchantment", "Planeswalker", "Battle", "Land"} {
		if strings.Contains(c.TypeLine, t) {
			return true
		}
	}
	return false
}

func primaryCardType(c *card.Card) string {
	for _, t := range []string{"Creature", "Artifact", "Enchantment", "Instant", "Sorcery", "Planeswalker", "Battle"} {
		if strings.Contains(c.TypeLine, t) {
			return t
		}
	}
	return ""
}

// CompanionRestrictionFor looks up a companion's restriction by card name,
// matched case-insensitively.
func CompanionRestrictionFor(name string) (CompanionRule, bool) {
	for _, r := range companionRestrictions {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return CompanionRule{}, false
}
