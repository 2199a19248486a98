package worker

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	"github.com/tenlands/cardbinder/internal/source"
	"github.com/tenlands/cardbinder/internal/store"
	"github.com/tenlands/cardbinder/search"
)

func fixtureWorker(t *testing.T) (*Worker, uuid.UUID) {
	t.Helper()
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "index.json")
	if err := os.WriteFile(indexPath, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	oracleID := uuid.New()
	boltID := uuid.New()
	chunk := []store.WireCard{
		{
			ID: boltID.String(), OracleID: oracleID.String(), Name: "Lightning Bolt", Layout: "normal",
			Lang: "en", Rarity: "common", TypeLine: "Instant", ManaCost: "{R}", ManaValue: 1,
			Colors: []string{"R"}, ColorIdentity: []string{"R"}, ReleasedAt: "1993-08-05",
			Legalities: map[string]string{"modern": "legal"},
		},
	}
	b, err := json.Marshal(chunk)
	if err != nil {
		t.Fatal(err)
	}
	chunkPath := filepath.Join(dir, "chunk0.json")
	if err := os.WriteFile(chunkPath, b, 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(Config{})
	src := source.NewFileSource(indexPath, []string{chunkPath})
	if err := w.InitializeWithSource(context.Background(), src); err != nil {
		t.Fatalf("InitializeWithSource: %v", err)
	}
	return w, boltID
}

func TestInitializeBuildsQueryableCorpus(t *testing.T) {
	w, boltID := fixtureWorker(t)

	c, err := w.GetCardByID(boltID)
	if err != nil {
		t.Fatalf("GetCardByID: %v", err)
	}
	if c.Name != "Lightning Bolt" {
		t.Fatalf("unexpected card: %+v", c)
	}
}

func TestMethodsBeforeInitializeReturnNotInitialized(t *testing.T) {
	w := New(Config{})
	if _, err := w.GetCardByID(uuid.New()); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestSearchCardsFindsFixtureByName(t *testing.T) {
	w, _ := fixtureWorker(t)
	cards, err := w.SearchCards("lightning")
	if err != nil {
		t.Fatalf("SearchCards: %v", err)
	}
	if len(cards) != 1 || cards[0].Name != "Lightning Bolt" {
		t.Fatalf("unexpected search result: %+v", cards)
	}
}

func TestSyntaxSearchAppliesFieldClause(t *testing.T) {
	w, _ := fixtureWorker(t)
	res := w.SyntaxSearch(search.UnifiedRequest{Query: "type:instant"})
	if res.Err != nil {
		t.Fatalf("SyntaxSearch: %v", res.Err)
	}
	if len(res.Cards) != 1 {
		t.Fatalf("expected 1 match for type:instant, got %d", len(res.Cards))
	}
}

func TestIsVolatileDataReadyWithNoURLConfigured(t *testing.T) {
	w, _ := fixtureWorker(t)
	if !w.IsVolatileDataReady() {
		t.Fatal("expected volatile readiness to be immediately true when no URL is configured")
	}
	if _, ok := w.GetVolatileData(uuid.New()); ok {
		t.Fatal("expected no volatile data for an unknown printing")
	}
}

func TestInitializeIsIdempotentUnderConcurrentCallers(t *testing.T) {
	w, _ := fixtureWorker(t)

	var calls int32
	const n = 8
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			atomic.AddInt32(&calls, 1)
			done <- w.Initialize(context.Background())
		}()
	}
	for i := 0; i < n; i++ {
		if err := <-done; err != nil {
			t.Fatalf("unexpected Initialize error on repeat call: %v", err)
		}
	}
}

func TestPackageLevelSingletonViaSetCurrent(t *testing.T) {
	w, boltID := fixtureWorker(t)
	SetCurrent(w)

	got, err := GetCardByID(context.Background(), boltID)
	if err != nil {
		t.Fatalf("GetCardByID: %v", err)
	}
	if got.Name != "Lightning Bolt" {
		t.Fatalf("unexpected card via package singleton: %+v", got)
	}
}
