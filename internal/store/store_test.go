package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func sampleChunk(t *testing.T) []byte {
	t.Helper()
	cards := []WireCard{
		{
			ID:            uuid.New().String(),
			OracleID:      uuid.New().String(),
			Name:          "Lightning Bolt",
			Layout:        "normal",
			Set:           "lea",
			ManaCost:      "{R}",
			ManaValue:     1,
			Colors:        []string{"R"},
			ColorIdentity: []string{"R"},
			TypeLine:      "Instant",
			OracleText:    "Lightning Bolt deals 3 damage to any target.",
			Rarity:        "common",
			ReleasedAt:    "1993-08-05",
			Lang:          "en",
			Games:         []string{"paper"},
			Legalities:    map[string]string{"vintage": "legal"},
		},
	}
	b, err := json.Marshal(cards)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestStageAndHydrateRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	chunk := sampleChunk(t)
	n, err := Stage(ctx, db, [][]byte{chunk})
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 staged printing, got %d", n)
	}

	cards, err := Hydrate(ctx, db)
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 hydrated card, got %d", len(cards))
	}
	got := cards[0]
	if got.Name != "Lightning Bolt" {
		t.Fatalf("unexpected name: %s", got.Name)
	}
	if got.ManaValue != 1 {
		t.Fatalf("unexpected mana value: %v", got.ManaValue)
	}
	if !got.Colors.Has('R') {
		t.Fatal("expected red in colors")
	}
	if got.Legalities["vintage"] != "legal" {
		t.Fatalf("unexpected legality: %v", got.Legalities)
	}
	if got.ReleasedAt.Year() != 1993 {
		t.Fatalf("unexpected released year: %v", got.ReleasedAt)
	}
}

func TestUpsertPrintingOverwritesOnConflict(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	id := uuid.New().String()
	oracle := uuid.New().String()
	base := WireCard{ID: id, OracleID: oracle, Name: "Old Name", Layout: "normal", Lang: "en"}
	if err := UpsertPrinting(ctx, db, base); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	base.Name = "New Name"
	if err := UpsertPrinting(ctx, db, base); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	cards, err := Hydrate(ctx, db)
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected conflict to overwrite, not duplicate, got %d rows", len(cards))
	}
	if cards[0].Name != "New Name" {
		t.Fatalf("expected overwritten name, got %s", cards[0].Name)
	}
}

func TestStageOneRejectsMalformedChunk(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if _, err := StageOne(ctx, db, []byte("not json")); err == nil {
		t.Fatal("expected an error decoding a malformed chunk")
	}
}
