package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/tenlands/cardbinder/card"
)

// CardLookup resolves a printing id to its full record.
type CardLookup func(uuid.UUID) *card.Card

// OracleLookup resolves an oracle id to its canonical printing.
type OracleLookup func(uuid.UUID) *card.Card

// PrintingsLookup resolves an oracle id to every printing id sharing it.
type PrintingsLookup func(uuid.UUID) []uuid.UUID

type ruleContext struct {
	deck              Deck
	config            Config
	cardByPrinting    CardLookup
	cardByOracle      OracleLookup
	printingsByOracle PrintingsLookup
}

type ruleFunc func(ruleContext) []Violation

var ruleTable = map[string]ruleFunc{
	ruleLegalityStatus:   ruleLegalityStatusFn,
	ruleDeckSizeMin:      ruleDeckSizeMinFn,
	ruleDeckSizeExact:    ruleDeckSizeExactFn,
	ruleSideboardSize:    ruleSideboardSizeFn,
	ruleCopyLimit:        ruleCopyLimitFn,
	ruleCommanderPresent: ruleCommanderPresentFn,
	ruleCommanderLegal:   ruleCommanderLegalFn,
	rulePauperCommander:  rulePauperCommanderFn,
	ruleColorIdentity:    ruleColorIdentityFn,
	ruleCompanion:        ruleCompanionFn,
	rulePartner:          rulePartnerFn,
	ruleSignatureSpell:   ruleSignatureSpellFn,
}

var basicLandNames = map[string]bool{
	"Plains": true, "Island": true, "Swamp": true, "Mountain": true, "Forest": true,
	"Snow-Covered Plains": true, "Snow-Covered Island": true, "Snow-Covered Swamp": true,
	"Snow-Covered Mountain": true, "Snow-Covered Forest": true,
	"Wastes": true, "Snow-Covered Wastes": true,
}

func isBasicLandName(name string) bool { return basicLandNames[name] }

var reAnyNumberNamed = regexp.MustCompile(`(?i)any number of cards named`)
var reUpToNNamed = regexp.MustCompile(`(?i)up to (\w+) cards? named`)

var wordNumbers = map[string]int{"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10}

// copyCapFor returns the effective copy cap for a card, honoring
// "any number of cards named ..." and "up to N cards named ..." oracle
// text exceptions (spec.md §4.7 "Key rule semantics").
func copyCapFor(c *card.Card, defaultCap int) int {
	if c == nil {
		return defaultCap
	}
	if isBasicLandName(c.Name) {
		return -1 // unlimited
	}
	if reAnyNumberNamed.MatchString(c.OracleText) {
		return -1
	}
	if m := reUpToNNamed.FindStringSubmatch(c.OracleText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
		if n, ok := wordNumbers[strings.ToLower(m[1])]; ok {
			return n
		}
	}
	return defaultCap
}

func totalQuantity(deck Deck, sections ...Section) int {
	set := map[Section]bool{}
	for _, s := range sections {
		set[s] = true
	}
	total := 0
	for _, c := range deck.Cards {
		if set[c.Section] {
			total += c.Quantity
		}
	}
	return total
}

func hasCompanion(deck Deck) *Card {
	for i := range deck.Cards {
		for _, tag := range deck.Cards[i].Tags {
			if strings.EqualFold(tag, "companion") {
				return &deck.Cards[i]
			}
		}
	}
	return nil
}

func ruleLegalityStatusFn(rc ruleContext) []Violation {
	if rc.config.LegalityField == "" {
		return nil
	}
	var out []Violation
	for _, entry := range rc.deck.Cards {
		c := rc.cardByPrinting(entry.PrintingID)
		if c == nil {
			continue
		}
		status, ok := c.Legalities[rc.config.LegalityField]
		if !ok {
			status = card.NotLegal
		}
		if status == card.NotLegal || status == card.Banned {
			out = append(out, Violation{
				RuleID: ruleLegalityStatus, RuleNumber: 1, Category: CategoryLegality, Severity: SeverityError,
				Message:  fmt.Sprintf("%s is not legal in this format (%s)", c.Name, status),
				CardName: c.Name, OracleID: c.OracleID, Section: entry.Section, Quantity: entry.Quantity,
			})
		}
	}
	return out
}

func ruleDeckSizeMinFn(rc ruleContext) []Violation {
	if rc.config.MinDeckSize == 0 {
		return nil
	}
	required := rc.config.MinDeckSize
	if companion := hasCompanion(rc.deck); companion != nil {
		c := rc.cardByPrinting(companion.PrintingID)
		if c != nil && strings.EqualFold(c.Name, "Yorion, Sky Nomad") {
			required += 20
		}
	}
	total := totalQuantity(rc.deck, SectionMainboard, SectionCommander)
	if total < required {
		return []Violation{{
			RuleID: ruleDeckSizeMin, RuleNumber: 2, Category: CategoryQuantity, Severity: SeverityError,
			Message: fmt.Sprintf("deck has %d cards, minimum is %d", total, required),
		}}
	}
	return nil
}

func ruleDeckSizeExactFn(rc ruleContext) []Violation {
	if rc.config.ExactDeckSize == 0 {
		return nil
	}
	required := rc.config.ExactDeckSize
	if companion := hasCompanion(rc.deck); companion != nil {
		c := rc.cardByPrinting(companion.PrintingID)
		if c != nil && strings.EqualFold(c.Name, "Yorion, Sky Nomad") {
			required += 20
		}
	}
	total := totalQuantity(rc.deck, SectionMainboard, SectionCommander)
	if total != required {
		return []Violation{{
			RuleID: ruleDeckSizeExact, RuleNumber: 3, Category: CategoryQuantity, Severity: SeverityError,
			Message: fmt.Sprintf("deck has %d cards, must have exactly %d", total, required),
		}}
	}
	return nil
}

func ruleSideboardSizeFn(rc ruleContext) []Violation {
	total := totalQuantity(rc.deck, SectionSideboard)
	if total > rc.config.SideboardSize {
		return []Violation{{
			RuleID: ruleSideboardSize, RuleNumber: 4, Category: CategoryQuantity, Severity: SeverityError,
			Message: fmt.Sprintf("sideboard has %d cards, maximum is %d", total, rc.config.SideboardSize),
		}}
	}
	return nil
}

func ruleCopyLimitFn(rc ruleContext) []Violation {
	defaultCap := 4
	if rc.config.MaxCopies > 0 {
		defaultCap = rc.config.MaxCopies
	} else if rc.config.Singleton {
		defaultCap = 1
	}

	byOracle := map[uuid.UUID]int{}
	nameByOracle := map[uuid.UUID]string{}
	for _, entry := range rc.deck.Cards {
		if entry.Section == SectionMaybeboard {
			continue
		}
		byOracle[entry.OracleID] += entry.Quantity
		if nameByOracle[entry.OracleID] == "" {
			if c := rc.cardByOracle(entry.OracleID); c != nil {
				nameByOracle[entry.OracleID] = c.Name
			}
		}
	}

	var out []Violation
	for oracleID, qty := range byOracle {
		c := rc.cardByOracle(oracleID)
		limit := copyCapFor(c, defaultCap)
		if limit < 0 {
			continue
		}
		if qty > limit {
			out = append(out, Violation{
				RuleID: ruleCopyLimit, RuleNumber: 5, Category: CategoryQuantity, Severity: SeverityError,
				Message:  fmt.Sprintf("%d copies of %s, maximum is %d", qty, nameByOracle[oracleID], limit),
				CardName: nameByOracle[oracleID], OracleID: oracleID, Quantity: qty,
			})
		}
	}
	return out
}

func commanderEntries(deck Deck) []Card {
	var out []Card
	for _, c := range deck.Cards {
		if c.Section == SectionCommander {
			out = append(out, c)
		}
	}
	return out
}

func ruleCommanderPresentFn(rc ruleContext) []Violation {
	n := len(commanderEntries(rc.deck))
	if n == 0 {
		return []Violation{{
			RuleID: ruleCommanderPresent, RuleNumber: 6, Category: CategoryStructure, Severity: SeverityError,
			Message: "deck has no designated commander",
		}}
	}
	if n > 2 {
		return []Violation{{
			RuleID: ruleCommanderPresent, RuleNumber: 6, Category: CategoryStructure, Severity: SeverityError,
			Message: "deck has more than two designated commanders",
		}}
	}
	return nil
}

func isLegendaryCreature(c *card.Card) bool {
	return strings.Contains(c.TypeLine, "Legendary") && strings.Contains(c.TypeLine, "Creature")
}

func canBeCommander(c *card.Card) bool {
	if c == nil {
		return false
	}
	if isLegendaryCreature(c) || strings.Contains(strings.ToLower(c.OracleText), "can be your commander") {
		if strings.Contains(c.TypeLine, "Spacecraft") {
			return c.Power != "" && c.Toughness != ""
		}
		return true
	}
	if strings.Contains(c.TypeLine, "Spacecraft") && strings.Contains(strings.ToLower(c.OracleText), "can be your commander") {
		return c.Power != "" && c.Toughness != ""
	}
	return false
}

func ruleCommanderLegalFn(rc ruleContext) []Violation {
	var out []Violation
	for _, entry := range commanderEntries(rc.deck) {
		c := rc.cardByPrinting(entry.PrintingID)
		if c == nil {
			continue
		}
		if rc.config.PlaneswalkerCommander {
			continue // handled separately for Oathbreaker's planeswalker requirement
		}
		if !canBeCommander(c) {
			out = append(out, Violation{
				RuleID: ruleCommanderLegal, RuleNumber: 7, Category: CategoryStructure, Severity: SeverityError,
				Message:  fmt.Sprintf("%s cannot be a commander", c.Name),
				CardName: c.Name, OracleID: c.OracleID, Section: SectionCommander,
			})
		}
	}
	if rc.config.PlaneswalkerCommander {
		for _, entry := range commanderEntries(rc.deck) {
			c := rc.cardByPrinting(entry.PrintingID)
			if c == nil {
				continue
			}
			if !strings.Contains(c.TypeLine, "Planeswalker") {
				out = append(out, Violation{
					RuleID: ruleCommanderLegal, RuleNumber: 7, Category: CategoryStructure, Severity: SeverityError,
					Message:  fmt.Sprintf("%s is not a planeswalker", c.Name),
					CardName: c.Name, OracleID: c.OracleID, Section: SectionCommander,
				})
			}
		}
	}
	return out
}

func rulePauperCommanderFn(rc ruleContext) []Violation {
	if !rc.config.PauperCommander {
		return nil
	}
	var out []Violation
	for _, entry := range commanderEntries(rc.deck) {
		c := rc.cardByPrinting(entry.PrintingID)
		if c == nil {
			continue
		}
		if c.Rarity != card.RarityUncommon {
			out = append(out, Violation{
				RuleID: rulePauperCommander, RuleNumber: 8, Category: CategoryStructure, Severity: SeverityError,
				Message:  fmt.Sprintf("%s's printing is not uncommon", c.Name),
				CardName: c.Name, OracleID: c.OracleID, Section: SectionCommander,
			})
		}
	}
	return out
}

// combinedIdentity computes a card's full color identity including dual
// land basic types and transform/modal/adventure face contributions
// (spec.md §4.7 "Color identity").
func combinedIdentity(c *card.Card) card.ColorSet {
	id := card.ColorSet{}
	for col := range c.ColorIdentity {
		id[col] = struct{}{}
	}
	basicToColor := map[string]card.Color{
		"Plains": card.White, "Island": card.Blue, "Swamp": card.Black,
		"Mountain": card.Red, "Forest": card.Green,
	}
	for name, col := range basicToColor {
		if strings.Contains(c.TypeLine, name) {
			id[col] = struct{}{}
		}
	}
	for _, f := range c.Faces {
		for col := range f.Colors {
			id[col] = struct{}{}
		}
		for name, col := range basicToColor {
			if strings.Contains(f.TypeLine, name) {
				id[col] = struct{}{}
			}
		}
	}
	return id
}

func ruleColorIdentityFn(rc ruleContext) []Violation {
	union := card.ColorSet{}
	for _, entry := range commanderEntries(rc.deck) {
		c := rc.cardByPrinting(entry.PrintingID)
		if c == nil {
			continue
		}
		for col := range combinedIdentity(c) {
			union[col] = struct{}{}
		}
	}

	var out []Violation
	for _, entry := range rc.deck.Cards {
		if entry.Section == SectionCommander || entry.Section == SectionMaybeboard {
			continue
		}
		c := rc.cardByPrinting(entry.PrintingID)
		if c == nil {
			continue
		}
		id := combinedIdentity(c)
		if !id.Subset(union) {
			out = append(out, Violation{
				RuleID: ruleColorIdentity, RuleNumber: 9, Category: CategoryIdentity, Severity: SeverityError,
				Message:  fmt.Sprintf("%s's color identity is outside the commander's identity", c.Name),
				CardName: c.Name, OracleID: c.OracleID, Section: entry.Section,
			})
		}
	}
	return out
}

func ruleCompanionFn(rc ruleContext) []Violation {
	companion := hasCompanion(rc.deck)
	if companion == nil {
		return nil
	}
	c := rc.cardByPrinting(companion.PrintingID)
	if c == nil {
		return nil
	}
	restriction, ok := CompanionRestrictionFor(c.Name)
	if !ok {
		return nil
	}

	var mainboard []*card.Card
	for _, entry := range rc.deck.Cards {
		if entry.Section != SectionMainboard {
			continue
		}
		if cc := rc.cardByPrinting(entry.PrintingID); cc != nil {
			for i := 0; i < entry.Quantity; i++ {
				mainboard = append(mainboard, cc)
			}
		}
	}

	if !restriction.Satisfies(mainboard) {
		return []Violation{{
			RuleID: ruleCompanion, RuleNumber: 10, Category: CategoryStructure, Severity: SeverityError,
			Message:  fmt.Sprintf("mainboard does not satisfy %s's companion restriction", c.Name),
			CardName: c.Name, OracleID: c.OracleID,
		}}
	}
	return nil
}

var partnerWithRe = regexp.MustCompile(`(?i)partner with ([A-Za-zÀ-ÿ' ,.-]+)`)

func rulePartnerFn(rc ruleContext) []Violation {
	entries := commanderEntries(rc.deck)
	if len(entries) != 2 {
		return nil
	}
	a := rc.cardByPrinting(entries[0].PrintingID)
	b := rc.cardByPrinting(entries[1].PrintingID)
	if a == nil || b == nil {
		return nil
	}

	if pairingLegal(a, b) {
		return nil
	}
	return []Violation{{
		RuleID: rulePartner, RuleNumber: 11, Category: CategoryStructure, Severity: SeverityError,
		Message: fmt.Sprintf("%s and %s cannot be paired as commanders", a.Name, b.Name),
	}}
}

func pairingLegal(a, b *card.Card) bool {
	aText, bText := strings.ToLower(a.OracleText), strings.ToLower(b.OracleText)

	hasPartner := func(text string) bool {
		return strings.Contains(text, "partner") && !strings.Contains(text, "partner with") && !strings.Contains(text, "choose a background")
	}
	if hasPartner(aText) && hasPartner(bText) {
		return true
	}
	if strings.Contains(aText, "friends forever") && strings.Contains(bText, "friends forever") {
		return true
	}
	if m := partnerWithRe.FindStringSubmatch(a.OracleText); m != nil && strings.EqualFold(strings.TrimSpace(m[1]), b.Name) {
		return true
	}
	if m := partnerWithRe.FindStringSubmatch(b.OracleText); m != nil && strings.EqualFold(strings.TrimSpace(m[1]), a.Name) {
		return true
	}
	if strings.Contains(aText, "choose a background") && strings.Contains(b.TypeLine, "Background") {
		return true
	}
	if strings.Contains(bText, "choose a background") && strings.Contains(a.TypeLine, "Background") {
		return true
	}
	if strings.Contains(aText, "doctor's companion") && strings.Contains(b.TypeLine, "Time Lord") && strings.Contains(b.TypeLine, "Doctor") {
		return true
	}
	if strings.Contains(bText, "doctor's companion") && strings.Contains(a.TypeLine, "Time Lord") && strings.Contains(a.TypeLine, "Doctor") {
		return true
	}
	return false
}

func ruleSignatureSpellFn(rc ruleContext) []Violation {
	if rc.config.SignatureSpellCount == 0 {
		return nil
	}
	count := 0
	for _, entry := range rc.deck.Cards {
		for _, tag := range entry.Tags {
			if strings.EqualFold(tag, "signature-spell") {
				count += entry.Quantity
			}
		}
	}
	if count != rc.config.SignatureSpellCount {
		return []Violation{{
			RuleID: ruleSignatureSpell, RuleNumber: 12, Category: CategoryStructure, Severity: SeverityError,
			Message: fmt.Sprintf("deck has %d signature spells, must have exactly %d", count, rc.config.SignatureSpellCount),
		}}
	}
	return nil
}
