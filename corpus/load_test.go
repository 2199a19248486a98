package corpus

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/tenlands/cardbinder/internal/source"
	"github.com/tenlands/cardbinder/internal/store"
)

func writeFixtureChunk(t *testing.T, dir, name string, cards []store.WireCard) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(cards)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBuildsCorpusFromChunks(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "index.json")
	if err := os.WriteFile(indexPath, []byte(`{"chunk_count":2}`), 0o644); err != nil {
		t.Fatal(err)
	}

	oracleID := uuid.New().String()
	chunk0 := writeFixtureChunk(t, dir, "c0.json", []store.WireCard{
		{ID: uuid.New().String(), OracleID: oracleID, Name: "Bolt", Layout: "normal", Lang: "en", Rarity: "common"},
	})
	chunk1 := writeFixtureChunk(t, dir, "c1.json", []store.WireCard{
		{ID: uuid.New().String(), OracleID: oracleID, Name: "Bolt", Layout: "normal", Lang: "en", Rarity: "common"},
	})

	src := source.NewFileSource(indexPath, []string{chunk0, chunk1})
	c, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Size() != 2 {
		t.Fatalf("expected 2 printings, got %d", c.Size())
	}
	if c.OracleCount() != 1 {
		t.Fatalf("expected 1 oracle group, got %d", c.OracleCount())
	}
}

func TestLoadFailsOnMissingIndex(t *testing.T) {
	src := source.NewFileSource("/nonexistent/index.json", nil)
	if _, err := Load(context.Background(), src); err == nil {
		t.Fatal("expected an error for a missing index")
	}
}
