// Package deck implements the format-agnostic deck-legality validator
// (spec.md §4.7): presets, rule categories, and structured violations over
// the same card corpus the query core reads.
package deck

import "github.com/google/uuid"

// Section is where a deck entry lives.
type Section string

const (
	SectionCommander  Section = "commander"
	SectionMainboard  Section = "mainboard"
	SectionSideboard  Section = "sideboard"
	SectionMaybeboard Section = "maybeboard"
)

// Card is one entry in a Deck.
type Card struct {
	PrintingID uuid.UUID
	OracleID   uuid.UUID
	Section    Section
	Quantity   int
	Tags       []string
}

// Deck is the validator's input shape.
type Deck struct {
	Name   string
	Format string
	Cards  []Card
}

// Severity classifies a Violation's effect on deck validity.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Category is one of the four rule categories from spec.md §4.7.
type Category string

const (
	CategoryLegality Category = "legality"
	CategoryQuantity Category = "quantity"
	CategoryIdentity Category = "identity"
	CategoryStructure Category = "structure"
)

// Violation is a single rule failure. Card-specific fields are the zero
// value when a violation is deck-wide rather than per-card.
type Violation struct {
	RuleID     string
	RuleNumber int
	Category   Category
	Severity   Severity
	Message    string

	CardName string
	OracleID uuid.UUID
	Section  Section
	Quantity int
}

// Options tunes validation beyond what the named preset implies.
type Options struct {
	// Preset overrides Deck.Format's preset lookup when set.
	Preset string
}

// Result is the full validation outcome.
type Result struct {
	Valid      bool
	Violations []Violation
	ByCard     map[uuid.UUID][]Violation
	ByRule     map[string][]Violation
}
