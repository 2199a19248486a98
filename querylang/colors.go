package querylang

import (
	"strings"

	"github.com/tenlands/cardbinder/card"
)

// parseColorValue turns a field-clause value like "wu", "rg", or "c" into a
// card.ColorSet (spec.md §4.4 "Colors and color-identity"). "c" alone means
// colorless (the empty set); it is otherwise not a valid color letter.
func parseColorValue(value string) (card.ColorSet, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "c" || value == "colorless" {
		return card.NewColorSet(), true
	}

	set := card.ColorSet{}
	for _, r := range value {
		switch r {
		case 'w':
			set[card.White] = struct{}{}
		case 'u':
			set[card.Blue] = struct{}{}
		case 'b':
			set[card.Black] = struct{}{}
		case 'r':
			set[card.Red] = struct{}{}
		case 'g':
			set[card.Green] = struct{}{}
		default:
			return nil, false
		}
	}
	return set, true
}

// evalColorClause implements the six color/color-identity operators from
// spec.md §4.4. cardSet is the card's value for the field being compared
// (Colors or ColorIdentity); queried is the parsed right-hand side.
func evalColorClause(op Operator, cardSet, queried card.ColorSet) bool {
	switch op {
	case OpColon:
		return queried.Subset(cardSet)
	case OpEqual:
		return cardSet.Equal(queried)
	case OpNotEqual:
		return !cardSet.Equal(queried)
	case OpLessEqual:
		return cardSet.Subset(queried)
	case OpGreaterEqual:
		return queried.Subset(cardSet)
	case OpLess:
		return cardSet.Subset(queried) && !cardSet.Equal(queried)
	case OpGreater:
		return queried.Subset(cardSet) && !cardSet.Equal(queried)
	default:
		return false
	}
}
