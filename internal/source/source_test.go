package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSourceFetchIndexAndChunks(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "index.json")
	chunkPath := filepath.Join(dir, "chunk0.json")
	if err := os.WriteFile(indexPath, []byte(`{"chunks":1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(chunkPath, []byte(`[{"name":"Bolt"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileSource(indexPath, []string{chunkPath})
	idx, err := s.FetchIndex(context.Background())
	if err != nil {
		t.Fatalf("FetchIndex: %v", err)
	}
	if string(idx) != `{"chunks":1}` {
		t.Fatalf("unexpected index content: %s", idx)
	}

	chunks, err := s.FetchChunks(context.Background())
	if err != nil {
		t.Fatalf("FetchChunks: %v", err)
	}
	if len(chunks) != 1 || string(chunks[0]) != `[{"name":"Bolt"}]` {
		t.Fatalf("unexpected chunks: %v", chunks)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	s := NewFileSource("/nonexistent/index.json", nil)
	if _, err := s.FetchIndex(context.Background()); err == nil {
		t.Fatal("expected an error for a missing index file")
	}
}

func TestHTTPSourceFetchIndexAndChunksPreservesOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/index.json", func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("unexpected User-Agent: %s", ua)
		}
		w.Write([]byte(`{"ok":true}`))
	})
	mux.HandleFunc("/chunk0.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["chunk0"]`))
	})
	mux.HandleFunc("/chunk1.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["chunk1"]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewHTTPSource(srv.URL+"/index.json", []string{srv.URL + "/chunk0.json", srv.URL + "/chunk1.json"})

	idx, err := s.FetchIndex(context.Background())
	if err != nil {
		t.Fatalf("FetchIndex: %v", err)
	}
	if string(idx) != `{"ok":true}` {
		t.Fatalf("unexpected index: %s", idx)
	}

	chunks, err := s.FetchChunks(context.Background())
	if err != nil {
		t.Fatalf("FetchChunks: %v", err)
	}
	if string(chunks[0]) != `["chunk0"]` || string(chunks[1]) != `["chunk1"]` {
		t.Fatalf("chunk order not preserved: %v", chunks)
	}
}

func TestHTTPSourceFetchIndexErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHTTPSource(srv.URL, nil)
	if _, err := s.FetchIndex(context.Background()); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}
