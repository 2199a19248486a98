package querylang

import (
	"testing"
	"time"

	"github.com/tenlands/cardbinder/card"
)

func cardNamed(name string, mv float64, released time.Time, rarity card.Rarity) *card.Card {
	return &card.Card{Name: name, ManaValue: mv, ReleasedAt: released, Rarity: rarity}
}

func TestSortByNameAscending(t *testing.T) {
	cards := []*card.Card{
		cardNamed("Zebra", 1, time.Time{}, card.RarityCommon),
		cardNamed("Apple", 1, time.Time{}, card.RarityCommon),
	}
	Sort(cards, SortName, DirAuto)
	if cards[0].Name != "Apple" || cards[1].Name != "Zebra" {
		t.Fatalf("expected ascending name order, got %v, %v", cards[0].Name, cards[1].Name)
	}
}

func TestSortByManaValueDefaultsDescending(t *testing.T) {
	cards := []*card.Card{
		cardNamed("Low", 1, time.Time{}, card.RarityCommon),
		cardNamed("High", 5, time.Time{}, card.RarityCommon),
	}
	Sort(cards, SortManaValue, DirAuto)
	if cards[0].Name != "High" {
		t.Fatalf("expected mana value to default descending, got %v first", cards[0].Name)
	}
}

func TestSortTiesBreakByName(t *testing.T) {
	cards := []*card.Card{
		cardNamed("Zebra", 3, time.Time{}, card.RarityCommon),
		cardNamed("Apple", 3, time.Time{}, card.RarityCommon),
	}
	Sort(cards, SortManaValue, DirAuto)
	if cards[0].Name != "Apple" {
		t.Fatalf("expected name tiebreaker to put Apple first, got %v", cards[0].Name)
	}
}

func TestSortRarityOrder(t *testing.T) {
	cards := []*card.Card{
		cardNamed("M", 0, time.Time{}, card.RarityMythic),
		cardNamed("C", 0, time.Time{}, card.RarityCommon),
		cardNamed("R", 0, time.Time{}, card.RarityRare),
	}
	Sort(cards, SortRarity, DirAuto)
	got := []string{cards[0].Name, cards[1].Name, cards[2].Name}
	want := []string{"C", "R", "M"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ascending rarity order %v, got %v", want, got)
		}
	}
}

func TestParseSortFieldDefaultsToName(t *testing.T) {
	if ParseSortField("bogus") != SortName {
		t.Fatal("expected unrecognized sort field to default to name")
	}
}
