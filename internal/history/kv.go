// Package history persists analysis entries against an external key-value text
// store: one storage key holds one serialized, newest-first list of entries.
// The store migrates legacy record shapes on load, quarantines corrupted
// records, and self-heals the stored list on first read.
package history

import (
	"context"
	"errors"
)

// Storage keys. The history key holds the serialized entry list; the remaining
// keys hold small auxiliary records consumed by the surrounding product
// surfaces. Key names are part of the persisted contract and must not change.
const (
	historyKey       = "placement-analysis-history"
	lastAnalysisKey  = "placement-last-analysis-id"
	testChecklistKey = "placement-test-checklist"
	submissionKey    = "prp_final_submission"
)

// ErrKeyNotFound is returned by a KV backend when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KV is the minimal key-value contract the store needs from a backend. Values
// are opaque text; the store always reads and rewrites whole values, never
// parts of them.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}
