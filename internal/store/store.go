package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotFound is returned by Get when no document was ever saved under the name.
var ErrNotFound = errors.New("record not found")

// Store persists named collections as opaque JSON documents.
type Store interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, doc []byte) error
	// PutAll writes every document or none of them.
	PutAll(ctx context.Context, docs map[string][]byte) error
}

// Load decodes the collection saved under name. Absent or corrupt documents
// fall back to def; the failure is logged and never returned.
func Load[T any](ctx context.Context, s Store, name string, def T, log *slog.Logger) T {
	doc, err := s.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn("collection unreadable, using default", slog.String("collection", name), slog.String("error", err.Error()))
		}
		return def
	}

	var out T
	if err := json.Unmarshal(doc, &out); err != nil {
		log.Warn("collection corrupt, using default", slog.String("collection", name), slog.String("error", err.Error()))
		return def
	}
	return out
}

// Encode marshals v into the document form Put expects.
func Encode(v any) ([]byte, error) {
	doc, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return doc, nil
}
