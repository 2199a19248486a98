package source

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads the index and chunk documents from local paths, used in
// tests and for offline/embedded corpora.
type FileSource struct {
	IndexPath  string
	ChunkPaths []string
}

// NewFileSource builds a FileSource over local fixture files.
func NewFileSource(indexPath string, chunkPaths []string) *FileSource {
	return &FileSource{IndexPath: indexPath, ChunkPaths: chunkPaths}
}

func (s *FileSource) FetchIndex(ctx context.Context) ([]byte, error) {
	b, err := os.ReadFile(s.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("reading corpus index %s: %w", s.IndexPath, err)
	}
	return b, nil
}

func (s *FileSource) FetchChunks(ctx context.Context) ([][]byte, error) {
	chunks := make([][]byte, 0, len(s.ChunkPaths))
	for _, p := range s.ChunkPaths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading corpus chunk %s: %w", p, err)
		}
		chunks = append(chunks, b)
	}
	return chunks, nil
}
