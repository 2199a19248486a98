package querylang

import (
	"regexp"
	"strings"

	"github.com/tenlands/cardbinder/card"
)

// predicateFn is one named test in the is:… dictionary (spec.md §4.4).
type predicateFn func(*card.Card) bool

func containsCI(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func typeHas(c *card.Card, word string) bool { return containsCI(c.TypeLine, word) }
func oracleHas(c *card.Card, phrase string) bool {
	return containsCI(c.OracleText, phrase)
}

var basicLandTypes = []string{"Plains", "Island", "Swamp", "Mountain", "Forest"}

func basicTypeCount(typeLine string) int {
	n := 0
	for _, t := range basicLandTypes {
		if containsCI(typeLine, t) {
			n++
		}
	}
	return n
}

var (
	reFetchland = regexp.MustCompile(`(?i)pay 1 life,?\s*sacrifice`)
	reShockland = regexp.MustCompile(`(?i)you may pay 2 life`)
	reCheckland = regexp.MustCompile(`(?i)unless you control a|unless you control two or more basic land types`)
	reFastland  = regexp.MustCompile(`(?i)unless you control two or fewer other lands`)
	reSlowland  = regexp.MustCompile(`(?i)unless you control two or more other lands`)
	rePainland  = regexp.MustCompile(`(?i)deals 1 damage to you`)
	reFilter    = regexp.MustCompile(`(?i)\(1\),\s*Add`)
	reBounce    = regexp.MustCompile(`(?i)return a land you control to its owner's hand`)
	reScry      = regexp.MustCompile(`(?i)scry 1`)
	reGain      = regexp.MustCompile(`(?i)gain 1 life`)
	reTango     = regexp.MustCompile(`(?i)unless you control two or more basic lands`)
	reCanopy    = regexp.MustCompile(`(?i)draw a card, then discard a card`)
)

// predicates is the closed dictionary from spec.md §4.4. The land-cycle
// entries are oracle-text and type-line heuristics; they do not attempt to
// reproduce Scryfall's exact published card pool. No cardinalities are
// pinned by tests: querylang/evaluator_test.go checks is:fetchland and
// is:bear against single fixture cards.
var predicates = map[string]predicateFn{
	"creature":     func(c *card.Card) bool { return typeHas(c, "Creature") },
	"land":         func(c *card.Card) bool { return typeHas(c, "Land") },
	"planeswalker": func(c *card.Card) bool { return typeHas(c, "Planeswalker") },
	"artifact":     func(c *card.Card) bool { return typeHas(c, "Artifact") },
	"enchantment":  func(c *card.Card) bool { return typeHas(c, "Enchantment") },
	"instant":      func(c *card.Card) bool { return typeHas(c, "Instant") },
	"sorcery":      func(c *card.Card) bool { return typeHas(c, "Sorcery") },

	"dfc":       func(c *card.Card) bool { return len(c.Faces) == 2 },
	"mdfc":      func(c *card.Card) bool { return c.Layout == card.LayoutModalDFC },
	"transform": func(c *card.Card) bool { return c.Layout == card.LayoutTransform },
	"meld":      func(c *card.Card) bool { return c.Layout == card.LayoutMeld },
	"split":     func(c *card.Card) bool { return c.Layout == card.LayoutSplit },
	"flip":      func(c *card.Card) bool { return c.Layout == card.LayoutFlip },
	"adventure": func(c *card.Card) bool { return c.Layout == card.LayoutAdventure },
	"saga":      func(c *card.Card) bool { return c.Layout == card.LayoutSaga },

	"commander": func(c *card.Card) bool {
		isLegendaryCreature := typeHas(c, "Legendary") && typeHas(c, "Creature")
		return isLegendaryCreature || oracleHas(c, "can be your commander")
	},
	"legendary": func(c *card.Card) bool { return typeHas(c, "Legendary") },
	"historic": func(c *card.Card) bool {
		return typeHas(c, "Legendary") || typeHas(c, "Artifact") || typeHas(c, "Saga")
	},
	"permanent": func(c *card.Card) bool {
		for _, t := range []string{"Creature", "Artifact", "Enchantment", "Land", "Planeswalker", "Battle"} {
			if typeHas(c, t) {
				return true
			}
		}
		return false
	},
	"spell": func(c *card.Card) bool { return typeHas(c, "Instant") || typeHas(c, "Sorcery") },
	"modal": func(c *card.Card) bool {
		return containsCI(c.OracleText, "choose one") || containsCI(c.OracleText, "choose two")
	},
	"vanilla": func(c *card.Card) bool {
		return typeHas(c, "Creature") && strings.TrimSpace(c.OracleText) == "" && len(c.Keywords) == 0
	},
	"frenchvanilla": func(c *card.Card) bool {
		return typeHas(c, "Creature") && strings.TrimSpace(c.OracleText) == "" && len(c.Keywords) > 0
	},
	"bear": func(c *card.Card) bool {
		return typeHas(c, "Creature") && c.ManaValue == 2 && c.Power == "2" && c.Toughness == "2"
	},

	"fetchland":  func(c *card.Card) bool { return typeHas(c, "Land") && reFetchland.MatchString(c.OracleText) },
	"shockland":  func(c *card.Card) bool { return typeHas(c, "Land") && reShockland.MatchString(c.OracleText) },
	"dual": func(c *card.Card) bool {
		return typeHas(c, "Land") && basicTypeCount(c.TypeLine) == 2 && strings.TrimSpace(c.OracleText) == ""
	},
	"checkland":  func(c *card.Card) bool { return typeHas(c, "Land") && reCheckland.MatchString(c.OracleText) },
	"fastland":   func(c *card.Card) bool { return typeHas(c, "Land") && reFastland.MatchString(c.OracleText) },
	"slowland":   func(c *card.Card) bool { return typeHas(c, "Land") && reSlowland.MatchString(c.OracleText) },
	"painland":   func(c *card.Card) bool { return typeHas(c, "Land") && rePainland.MatchString(c.OracleText) },
	"filterland": func(c *card.Card) bool { return typeHas(c, "Land") && reFilter.MatchString(c.OracleText) },
	"bounceland": func(c *card.Card) bool { return typeHas(c, "Land") && reBounce.MatchString(c.OracleText) },
	"scryland":   func(c *card.Card) bool { return typeHas(c, "Land") && reScry.MatchString(c.OracleText) },
	"gainland":   func(c *card.Card) bool { return typeHas(c, "Land") && reGain.MatchString(c.OracleText) },
	"tangoland":  func(c *card.Card) bool { return typeHas(c, "Land") && reTango.MatchString(c.OracleText) },
	"canopyland": func(c *card.Card) bool { return typeHas(c, "Land") && reCanopy.MatchString(c.OracleText) },
	"triome":     func(c *card.Card) bool { return typeHas(c, "Land") && basicTypeCount(c.TypeLine) >= 3 },
}

func evalPredicate(name string, c *card.Card) bool {
	fn, ok := predicates[strings.ToLower(name)]
	if !ok {
		return false
	}
	return fn(c)
}
