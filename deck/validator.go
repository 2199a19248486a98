package deck

import (
	"fmt"

	"github.com/google/uuid"
)

// Validate runs every rule named in the deck's (or override) preset and
// aggregates the results (spec.md §4.7).
func Validate(d Deck, cardByPrinting CardLookup, cardByOracle OracleLookup, printingsByOracle PrintingsLookup, opts Options) (Result, error) {
	presetName := opts.Preset
	if presetName == "" {
		presetName = d.Format
	}
	preset, ok := Presets[presetName]
	if !ok {
		return Result{}, fmt.Errorf("unknown deck format preset %q", presetName)
	}

	rc := ruleContext{
		deck:              d,
		config:            preset.Config,
		cardByPrinting:    cardByPrinting,
		cardByOracle:      cardByOracle,
		printingsByOracle: printingsByOracle,
	}

	var all []Violation
	for _, ruleID := range preset.Rules {
		fn, ok := ruleTable[ruleID]
		if !ok {
			continue
		}
		all = append(all, fn(rc)...)
	}

	// maybeboard violations never invalidate the deck (spec.md §4.7).
	for i := range all {
		if all[i].Section == SectionMaybeboard {
			all[i].Severity = SeverityWarning
		}
	}

	result := Result{
		Violations: all,
		ByCard:     map[uuid.UUID][]Violation{},
		ByRule:     map[string][]Violation{},
	}
	result.Valid = true
	for _, v := range all {
		if v.OracleID != uuid.Nil {
			result.ByCard[v.OracleID] = append(result.ByCard[v.OracleID], v)
		}
		result.ByRule[v.RuleID] = append(result.ByRule[v.RuleID], v)
		if v.Severity == SeverityError {
			result.Valid = false
		}
	}

	return result, nil
}
