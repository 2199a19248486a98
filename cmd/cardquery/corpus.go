package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/tenlands/cardbinder/internal/source"
	"github.com/tenlands/cardbinder/worker"
)

func buildWorker(ctx context.Context, indexPath string, chunkPaths []string) (*worker.Worker, error) {
	if indexPath == "" || len(chunkPaths) == 0 {
		return nil, fmt.Errorf("--index and --chunks are required")
	}
	w := worker.New(worker.Config{})
	src := source.NewFileSource(indexPath, chunkPaths)
	if err := w.InitializeWithSource(ctx, src); err != nil {
		return nil, fmt.Errorf("initializing worker: %w", err)
	}
	return w, nil
}

func splitChunks(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
