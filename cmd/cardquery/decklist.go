package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/tenlands/cardbinder/card"
	"github.com/tenlands/cardbinder/deck"
)

// parseDecklist reads an Arena-style decklist ("4 Lightning Bolt" lines
// under optional "Commander"/"Deck"/"Sideboard" section headers, grounded
// in the teacher's parseDecklist line-by-line shape) and resolves each
// name against byName, a case-insensitive exact-name index over the
// corpus's canonical cards.
func parseDecklist(text string, byName map[string]*card.Card) (deck.Deck, error) {
	section := deck.SectionMainboard
	var cards []deck.Card

	scanner := bufio.NewScanner(strings.NewReader(text))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.EqualFold(line, "commander"):
			section = deck.SectionCommander
			continue
		case strings.EqualFold(line, "deck"):
			section = deck.SectionMainboard
			continue
		case strings.EqualFold(line, "sideboard"):
			section = deck.SectionSideboard
			continue
		case strings.EqualFold(line, "maybeboard"):
			section = deck.SectionMaybeboard
			continue
		}

		qty, name, err := parseCardLine(line)
		if err != nil {
			return deck.Deck{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		c, ok := byName[strings.ToLower(name)]
		if !ok {
			return deck.Deck{}, fmt.Errorf("line %d: unknown card %q", lineNo, name)
		}
		cards = append(cards, deck.Card{PrintingID: c.ID, OracleID: c.OracleID, Section: section, Quantity: qty})
	}
	if err := scanner.Err(); err != nil {
		return deck.Deck{}, fmt.Errorf("reading decklist: %w", err)
	}

	return deck.Deck{Cards: cards}, nil
}

// parseCardLine splits "4 Lightning Bolt" (optionally with a trailing "(SET)
// 123" printing suffix, which is ignored here since validation is
// oracle/printing-agnostic for quantity purposes) into quantity and name.
func parseCardLine(line string) (int, string, error) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("expected '<quantity> <name>', got %q", line)
	}
	qty, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", fmt.Errorf("invalid quantity %q: %w", parts[0], err)
	}
	name := parts[1]
	if i := strings.Index(name, " ("); i >= 0 {
		name = name[:i]
	}
	return qty, strings.TrimSpace(name), nil
}

// byNameIndex builds a case-insensitive exact-name lookup over a corpus's
// canonical cards.
func byNameIndex(cards []*card.Card) map[string]*card.Card {
	out := make(map[string]*card.Card, len(cards))
	for _, c := range cards {
		out[strings.ToLower(c.Name)] = c
	}
	return out
}
