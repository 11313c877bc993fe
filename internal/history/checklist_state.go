package history

import (
	"context"
	"encoding/json"
	"fmt"
)

// TestChecklist tracks which manual test-checklist items have been checked
// off, keyed by fixed item ids.
type TestChecklist map[string]bool

// AllPassed reports whether every one of the given item ids is checked.
func (c TestChecklist) AllPassed(ids []string) bool {
	for _, id := range ids {
		if !c[id] {
			return false
		}
	}
	return true
}

// TestChecklist returns the stored checklist state. A missing or malformed
// value yields an empty checklist; this key is advisory and never contributes
// to the history corruption flag.
func (s *Store) TestChecklist(ctx context.Context) (TestChecklist, error) {
	raw, err := s.kv.Get(ctx, testChecklistKey)
	if err == ErrKeyNotFound {
		return TestChecklist{}, nil
	}
	if err != nil {
		return nil, err
	}
	var checklist TestChecklist
	if err := json.Unmarshal([]byte(raw), &checklist); err != nil {
		return TestChecklist{}, nil
	}
	return checklist, nil
}

// SaveTestChecklist stores the checklist state.
func (s *Store) SaveTestChecklist(ctx context.Context, checklist TestChecklist) error {
	payload, err := json.Marshal(checklist)
	if err != nil {
		return fmt.Errorf("failed to serialize test checklist: %w", err)
	}
	return s.kv.Set(ctx, testChecklistKey, string(payload))
}
