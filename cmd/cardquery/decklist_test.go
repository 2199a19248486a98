package main

import (
	"testing"

	"github.com/google/uuid"

	"github.com/tenlands/cardbinder/card"
	"github.com/tenlands/cardbinder/deck"
)

func TestParseCardLine(t *testing.T) {
	qty, name, err := parseCardLine("4 Lightning Bolt")
	if err != nil {
		t.Fatalf("parseCardLine: %v", err)
	}
	if qty != 4 || name != "Lightning Bolt" {
		t.Fatalf("unexpected parse: %d %q", qty, name)
	}
}

func TestParseCardLineStripsSetSuffix(t *testing.T) {
	qty, name, err := parseCardLine("1 Sol Ring (C21) 263")
	if err != nil {
		t.Fatalf("parseCardLine: %v", err)
	}
	if qty != 1 || name != "Sol Ring" {
		t.Fatalf("unexpected parse: %d %q", qty, name)
	}
}

func TestParseDecklistAssignsSections(t *testing.T) {
	bolt := &card.Card{ID: uuid.New(), OracleID: uuid.New(), Name: "Lightning Bolt"}
	cmdr := &card.Card{ID: uuid.New(), OracleID: uuid.New(), Name: "Commander Bear"}
	byName := map[string]*card.Card{"lightning bolt": bolt, "commander bear": cmdr}

	text := "Commander\n1 Commander Bear\n\nDeck\n4 Lightning Bolt\n"
	d, err := parseDecklist(text, byName)
	if err != nil {
		t.Fatalf("parseDecklist: %v", err)
	}
	if len(d.Cards) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(d.Cards))
	}
	if d.Cards[0].Section != deck.SectionCommander || d.Cards[1].Section != deck.SectionMainboard {
		t.Fatalf("unexpected sections: %+v", d.Cards)
	}
}

func TestParseDecklistUnknownCard(t *testing.T) {
	_, err := parseDecklist("4 Not A Real Card", map[string]*card.Card{})
	if err == nil {
		t.Fatal("expected an error for an unresolved card name")
	}
}
