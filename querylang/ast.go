package querylang

import "regexp"

// Kind is the closed AST node tag described in spec.md §9: "a closed enum
// { And, Or, Not, Field(field, op, value), Name(substr), ExactName(s) }".
type Kind int

const (
	KindAnd Kind = iota
	KindOr
	KindNot
	KindField
	KindName
	KindExactName
)

// Node is the single tagged-union AST type. Only the fields relevant to
// Kind are populated; the evaluator pattern-matches on Kind exactly once
// per node to compile it to a predicate closure (spec.md §9).
type Node struct {
	Kind Kind

	Left, Right *Node // KindAnd, KindOr
	Child       *Node // KindNot

	Field FieldKind // KindField
	Op    Operator  // KindField
	Value string     // KindField (raw value), KindName, KindExactName

	IsRegex bool           // KindField, value was a /regex/ literal
	Regex   *regexp.Regexp // compiled at parse time when IsRegex

	Span Span
}

// HasFieldClause reports whether node or any descendant is a field clause.
// A nil node (the empty AST) has no field clause.
func HasFieldClause(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case KindField:
		return true
	case KindAnd, KindOr:
		return HasFieldClause(node.Left) || HasFieldClause(node.Right)
	case KindNot:
		return HasFieldClause(node.Child)
	default:
		return false
	}
}

// HasBooleanOperator reports whether node or any descendant is an And, Or,
// or Not combinator.
func HasBooleanOperator(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case KindAnd, KindOr, KindNot:
		return true
	default:
		return false
	}
}

// IsPureNameQuery reports whether the parsed query should use the fuzzy
// name path (spec.md §4.6 "Decision"): no field clauses and no boolean
// operators anywhere in the tree. A nil (empty) AST is not a name query —
// callers should special-case the empty-input result set before reaching
// this classification.
func IsPureNameQuery(node *Node) bool {
	if node == nil {
		return false
	}
	return !HasFieldClause(node) && !HasBooleanOperator(node)
}

// MentionsPrintingOnlyField reports whether the AST mentions a field that
// forces printing-level (rather than oracle-level) scope.
func MentionsPrintingOnlyField(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case KindField:
		return printingOnlyFields[node.Field]
	case KindAnd, KindOr:
		return MentionsPrintingOnlyField(node.Left) || MentionsPrintingOnlyField(node.Right)
	case KindNot:
		return MentionsPrintingOnlyField(node.Child)
	default:
		return false
	}
}
