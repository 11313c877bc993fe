package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/types"
	"go.uber.org/zap"
)

// Store persists analysis entries through a KV backend. All operations do a
// whole-list read-modify-write cycle; last writer wins, with no per-entry
// locking. That granularity is deliberate: the corruption self-heal on read
// depends on rewriting the entire list.
type Store struct {
	kv  KV
	log *zap.Logger

	mu      sync.Mutex
	corrupt bool
}

// NewStore creates a Store over the given backend. A nil logger disables
// logging.
func NewStore(kv KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log}
}

// HistoryResult is the outcome of one read of the stored history.
// HadCorruption reports whether this read encountered unparsable payload or
// dropped records; the sticky advisory flag is available separately through
// HadCorruptEntries.
type HistoryResult struct {
	Entries       []types.AnalysisEntry
	HadCorruption bool
}

// History deserializes the stored entry list, migrating each record and
// dropping the ones that fail. A missing key or a well-formed payload of the
// wrong shape yields an empty result; an unparsable payload additionally
// raises the corruption flag. If any record was dropped, the cleaned list is
// written back immediately so the next read is clean. Backend I/O failures are
// returned as errors; corruption never is.
func (s *Store) History(ctx context.Context) (HistoryResult, error) {
	raw, err := s.kv.Get(ctx, historyKey)
	if err == ErrKeyNotFound {
		return HistoryResult{}, nil
	}
	if err != nil {
		return HistoryResult{}, err
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		if json.Valid([]byte(raw)) {
			// Well-formed JSON that is not an array: treat as absent.
			return HistoryResult{}, nil
		}
		s.flagCorruption("stored history is not parseable")
		return HistoryResult{HadCorruption: true}, nil
	}

	entries := make([]types.AnalysisEntry, 0, len(records))
	dropped := 0
	for _, record := range records {
		entry, err := MigrateEntry(record)
		if err != nil {
			dropped++
			s.log.Warn("dropping corrupt history record", zap.Error(err))
			continue
		}
		entries = append(entries, *entry)
	}

	if dropped > 0 {
		s.flagCorruption(fmt.Sprintf("dropped %d corrupt records", dropped))
		// Self-heal: rewrite the cleaned list so the corruption is not
		// re-detected on the next read. A failed rewrite is not fatal.
		if err := s.writeHistory(ctx, entries); err != nil {
			s.log.Warn("failed to rewrite cleaned history", zap.Error(err))
		}
		return HistoryResult{Entries: entries, HadCorruption: true}, nil
	}

	return HistoryResult{Entries: entries}, nil
}

// SaveEntry prepends the entry to the stored list (newest first) and records
// its id as the last-created analysis.
func (s *Store) SaveEntry(ctx context.Context, entry types.AnalysisEntry) error {
	result, err := s.History(ctx)
	if err != nil {
		return err
	}
	entries := append([]types.AnalysisEntry{entry}, result.Entries...)
	if err := s.writeHistory(ctx, entries); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, lastAnalysisKey, entry.ID); err != nil {
		s.log.Warn("failed to record last analysis id", zap.Error(err))
	}
	s.log.Info("saved analysis entry",
		zap.String("id", entry.ID),
		zap.Int("baseScore", entry.BaseScore))
	return nil
}

// EntryByID returns the entry with the given id, or nil when absent.
func (s *Store) EntryByID(ctx context.Context, id string) (*types.AnalysisEntry, error) {
	result, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	for i := range result.Entries {
		if result.Entries[i].ID == id {
			return &result.Entries[i], nil
		}
	}
	return nil, nil
}

// UpdateEntry stamps a fresh UpdatedAt, replaces the matching id in the full
// list and rewrites the whole store. Last writer wins; there is no
// optimistic-concurrency check.
func (s *Store) UpdateEntry(ctx context.Context, updated *types.AnalysisEntry) error {
	updated.UpdatedAt = time.Now().UTC()
	result, err := s.History(ctx)
	if err != nil {
		return err
	}
	for i := range result.Entries {
		if result.Entries[i].ID == updated.ID {
			result.Entries[i] = *updated
		}
	}
	return s.writeHistory(ctx, result.Entries)
}

// DeleteEntry removes the entry with the given id and rewrites the store.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.History(ctx)
	if err != nil {
		return err
	}
	kept := make([]types.AnalysisEntry, 0, len(result.Entries))
	for _, entry := range result.Entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	return s.writeHistory(ctx, kept)
}

// ToggleSkillConfidence flips the confidence level of one skill on the entry
// (absent entries default to "practice", so the first toggle marks the skill
// known), recomputes the final score and persists the change. Returns the
// updated entry.
func (s *Store) ToggleSkillConfidence(ctx context.Context, id, skill string) (*types.AnalysisEntry, error) {
	entry, err := s.EntryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("entry %s not found", id)
	}

	if entry.SkillConfidence == nil {
		entry.SkillConfidence = make(map[string]types.ConfidenceLevel)
	}
	if entry.Confidence(skill) == types.ConfidenceKnow {
		entry.SkillConfidence[skill] = types.ConfidencePractice
	} else {
		entry.SkillConfidence[skill] = types.ConfidenceKnow
	}
	entry.FinalScore = analysis.RecomputeFinalScore(
		entry.BaseScore, entry.ExtractedSkills, entry.SkillConfidence)

	if err := s.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// LastAnalysisID returns the id of the most recently created entry, or the
// empty string when none has been recorded.
func (s *Store) LastAnalysisID(ctx context.Context) (string, error) {
	id, err := s.kv.Get(ctx, lastAnalysisKey)
	if err == ErrKeyNotFound {
		return "", nil
	}
	return id, err
}

// HadCorruptEntries reports the sticky advisory corruption flag. It stays set
// across reads until explicitly cleared.
func (s *Store) HadCorruptEntries() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.corrupt
}

// ClearCorruptionWarning clears the advisory corruption flag.
func (s *Store) ClearCorruptionWarning() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corrupt = false
}

func (s *Store) flagCorruption(reason string) {
	s.mu.Lock()
	s.corrupt = true
	s.mu.Unlock()
	s.log.Warn("history corruption detected", zap.String("reason", reason))
}

func (s *Store) writeHistory(ctx context.Context, entries []types.AnalysisEntry) error {
	if entries == nil {
		entries = []types.AnalysisEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize history: %w", err)
	}
	return s.kv.Set(ctx, historyKey, string(payload))
}
