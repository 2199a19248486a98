package querylang

import (
	"strconv"
	"strings"

	"github.com/tenlands/cardbinder/card"
)

// Predicate tests a single printing against a compiled query.
type Predicate func(*card.Card) bool

// Compile turns a parsed AST into a predicate closure (spec.md §9: the
// evaluator pattern-matches on Kind exactly once per node). A nil AST
// (empty query) compiles to the constant-false predicate, so an empty query
// matches nothing: IsPureNameQuery reports false for a nil AST, so search
// sends empty queries down the syntax path to this predicate.
func Compile(node *Node) Predicate {
	if node == nil {
		return func(*card.Card) bool { return false }
	}
	switch node.Kind {
	case KindAnd:
		left, right := Compile(node.Left), Compile(node.Right)
		return func(c *card.Card) bool { return left(c) && right(c) }
	case KindOr:
		left, right := Compile(node.Left), Compile(node.Right)
		return func(c *card.Card) bool { return left(c) || right(c) }
	case KindNot:
		child := Compile(node.Child)
		return func(c *card.Card) bool { return !child(c) }
	case KindName:
		return compileName(node.Value)
	case KindExactName:
		return compileExactName(node.Value)
	case KindField:
		return compileField(node)
	default:
		return func(*card.Card) bool { return false }
	}
}

func compileName(value string) Predicate {
	needle := strings.ToLower(value)
	return func(c *card.Card) bool {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return true
		}
		for _, f := range c.Faces {
			if strings.Contains(strings.ToLower(f.Name), needle) {
				return true
			}
		}
		return false
	}
}

func compileExactName(value string) Predicate {
	needle := strings.ToLower(strings.TrimSpace(value))
	return func(c *card.Card) bool {
		if strings.ToLower(c.Name) == needle {
			return true
		}
		for _, f := range c.Faces {
			if strings.ToLower(f.Name) == needle {
				return true
			}
		}
		return false
	}
}

func compileField(node *Node) Predicate {
	switch node.Field {
	case FieldName:
		return compileName(node.Value)
	case FieldOracleText:
		return textFieldPredicate(node, func(c *card.Card) string { return c.OracleText })
	case FieldTypeLine:
		return textFieldPredicate(node, func(c *card.Card) string { return c.TypeLine })
	case FieldManaCost:
		return textFieldPredicate(node, func(c *card.Card) string { return c.ManaCost })
	case FieldFlavor:
		return textFieldPredicate(node, func(c *card.Card) string { return c.FlavorText })
	case FieldArtist:
		return textFieldPredicate(node, func(c *card.Card) string { return c.Artist })

	case FieldManaValue:
		return numericPredicate(node, func(c *card.Card) (float64, bool) { return c.ManaValue, true }, nil)
	case FieldPower:
		return numericPredicate(node, func(c *card.Card) (float64, bool) { return parsePT(c.Power) }, func(c *card.Card) string { return c.Power })
	case FieldToughness:
		return numericPredicate(node, func(c *card.Card) (float64, bool) { return parsePT(c.Toughness) }, func(c *card.Card) string { return c.Toughness })
	case FieldLoyalty:
		return numericPredicate(node, func(c *card.Card) (float64, bool) { return parsePT(c.Loyalty) }, func(c *card.Card) string { return c.Loyalty })
	case FieldDefense:
		return numericPredicate(node, func(c *card.Card) (float64, bool) { return parsePT(c.Defense) }, func(c *card.Card) string { return c.Defense })
	case FieldFrameYear:
		return numericPredicate(node, func(c *card.Card) (float64, bool) { return float64(c.FrameYear), c.FrameYear != 0 }, nil)
	case FieldReleaseYear:
		return numericPredicate(node, func(c *card.Card) (float64, bool) { return float64(c.ReleasedAt.Year()), !c.ReleasedAt.IsZero() }, nil)

	case FieldReleaseDate:
		return exactTextPredicate(node, func(c *card.Card) string { return c.ReleasedAt.Format("2006-01-02") })
	case FieldSet:
		return exactTextPredicate(node, func(c *card.Card) string { return c.Set })
	case FieldCollectorNumber:
		return exactTextPredicate(node, func(c *card.Card) string { return c.CollectorNumber })
	case FieldLanguage:
		return exactTextPredicate(node, func(c *card.Card) string { return c.Lang })
	case FieldBorder:
		return exactTextPredicate(node, func(c *card.Card) string { return c.BorderColor })
	case FieldStamp:
		return exactTextPredicate(node, func(c *card.Card) string { return c.SecurityStamp })
	case FieldLayout:
		return exactTextPredicate(node, func(c *card.Card) string { return string(c.Layout) })

	case FieldSetType:
		// Set-type classification is not carried on the card record itself;
		// treated as always-false until a set-metadata table is wired in.
		return func(*card.Card) bool { return false }

	case FieldGames:
		want := strings.ToLower(node.Value)
		return func(c *card.Card) bool {
			for _, g := range c.Games {
				if strings.EqualFold(string(g), want) {
					return true
				}
			}
			return false
		}

	case FieldRarity:
		return rarityPredicate(node)

	case FieldFormatLegality:
		return formatLegalityPredicate(node)

	case FieldColors:
		return colorFieldPredicate(node, func(c *card.Card) card.ColorSet { return c.Colors })
	case FieldColorIdentity:
		return colorFieldPredicate(node, func(c *card.Card) card.ColorSet { return c.ColorIdentity })

	case FieldIs:
		name := node.Value
		return func(c *card.Card) bool { return evalPredicate(name, c) }

	default:
		return func(*card.Card) bool { return false }
	}
}

func parsePT(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// textFieldPredicate implements substring (":"), exact ("="/"!="), and
// /regex/ matching for free-text fields (spec.md §4.4 "Text fields").
func textFieldPredicate(node *Node, get func(*card.Card) string) Predicate {
	if node.IsRegex {
		re := node.Regex
		return func(c *card.Card) bool { return re.MatchString(get(c)) }
	}
	needle := strings.ToLower(node.Value)
	switch node.Op {
	case OpEqual:
		return func(c *card.Card) bool { return strings.EqualFold(get(c), node.Value) }
	case OpNotEqual:
		return func(c *card.Card) bool { return !strings.EqualFold(get(c), node.Value) }
	default: // OpColon and anything else defaults to substring
		return func(c *card.Card) bool { return strings.Contains(strings.ToLower(get(c)), needle) }
	}
}

// exactTextPredicate is for discrete fields (set code, language, border,
// etc.) where ":" behaves like "=" and regex is still honored.
func exactTextPredicate(node *Node, get func(*card.Card) string) Predicate {
	if node.IsRegex {
		re := node.Regex
		return func(c *card.Card) bool { return re.MatchString(get(c)) }
	}
	switch node.Op {
	case OpNotEqual:
		return func(c *card.Card) bool { return !strings.EqualFold(get(c), node.Value) }
	default:
		return func(c *card.Card) bool { return strings.EqualFold(get(c), node.Value) }
	}
}

// numericPredicate implements the six comparison operators for numeric
// fields. A card whose value is not a number (e.g. "*" power) never
// matches an ordering comparison, per spec.md §4.4 "non-numeric P/T never
// match a numeric comparison". If the query literal itself is non-numeric
// (e.g. "pow=*"), raw lets a field fall back to comparing the card's raw
// string value against the literal for equality/inequality, so that "*"
// matches a card whose power is exactly "*"; raw may be nil for fields
// with no meaningful raw-string form (mana value, frame year, ...), in
// which case a non-numeric literal never matches.
func numericPredicate(node *Node, get func(*card.Card) (float64, bool), raw func(*card.Card) string) Predicate {
	want, err := strconv.ParseFloat(node.Value, 64)
	if err != nil {
		if raw == nil {
			return func(*card.Card) bool { return false }
		}
		literal := node.Value
		switch node.Op {
		case OpColon, OpEqual:
			return func(c *card.Card) bool { return raw(c) == literal }
		case OpNotEqual:
			return func(c *card.Card) bool { return raw(c) != literal }
		default:
			return func(*card.Card) bool { return false }
		}
	}
	return func(c *card.Card) bool {
		got, ok := get(c)
		if !ok {
			return false
		}
		switch node.Op {
		case OpColon, OpEqual:
			return got == want
		case OpNotEqual:
			return got != want
		case OpLess:
			return got < want
		case OpLessEqual:
			return got <= want
		case OpGreater:
			return got > want
		case OpGreaterEqual:
			return got >= want
		default:
			return false
		}
	}
}

func rarityPredicate(node *Node) Predicate {
	want := card.Rarity(strings.ToLower(node.Value)).Order()
	return func(c *card.Card) bool {
		got := c.Rarity.Order()
		switch node.Op {
		case OpColon, OpEqual:
			return strings.EqualFold(string(c.Rarity), node.Value)
		case OpNotEqual:
			return !strings.EqualFold(string(c.Rarity), node.Value)
		case OpLess:
			return got < want
		case OpLessEqual:
			return got <= want
		case OpGreater:
			return got > want
		case OpGreaterEqual:
			return got >= want
		default:
			return false
		}
	}
}

// formatLegalityPredicate implements spec.md §4.4: "f:standard" (and
// "legal:standard") matches a card that is legal OR restricted in that
// format; it never matches banned or not-legal.
func formatLegalityPredicate(node *Node) Predicate {
	format := strings.ToLower(node.Value)
	return func(c *card.Card) bool {
		status, ok := c.Legalities[format]
		if !ok {
			return false
		}
		matches := status == card.Legal || status == card.Restricted
		if node.Op == OpNotEqual {
			return !matches
		}
		return matches
	}
}

func colorFieldPredicate(node *Node, get func(*card.Card) card.ColorSet) Predicate {
	queried, ok := parseColorValue(node.Value)
	if !ok {
		return func(*card.Card) bool { return false }
	}
	return func(c *card.Card) bool { return evalColorClause(node.Op, get(c), queried) }
}
