package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SubmissionLinks holds the final submission URLs. A link is valid when it
// parses as an absolute http or https URL.
type SubmissionLinks struct {
	LovableLink  string `json:"lovableLink" validate:"required,http_url"`
	GithubLink   string `json:"githubLink" validate:"required,http_url"`
	DeployedLink string `json:"deployedLink" validate:"required,http_url"`
}

// Validate reports whether all three links are absolute http/https URLs.
func (l *SubmissionLinks) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("invalid submission links: %w", err)
	}
	return nil
}

// SubmissionLinks returns the stored links, or nil when none were saved.
// A malformed stored value is treated as absent; these are advisory records,
// not part of the entry history.
func (s *Store) SubmissionLinks(ctx context.Context) (*SubmissionLinks, error) {
	raw, err := s.kv.Get(ctx, submissionKey)
	if err == ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var links SubmissionLinks
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, nil
	}
	return &links, nil
}

// SaveSubmissionLinks stores the links. Validation is the caller's choice:
// partially filled links may be saved while the user is still working.
func (s *Store) SaveSubmissionLinks(ctx context.Context, links *SubmissionLinks) error {
	payload, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("failed to serialize submission links: %w", err)
	}
	return s.kv.Set(ctx, submissionKey, string(payload))
}
