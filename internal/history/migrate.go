package history

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/placement-prep/internal/schemas"
	"github.com/jonathan/placement-prep/internal/types"
)

// requiredFields must be present as non-empty strings on every stored record,
// regardless of its schema version. jdText is exempt from the non-empty rule:
// an empty job description is a valid analysis input.
var requiredFields = []string{"id", "jdText", "createdAt"}

// arrayFields must be JSON arrays whenever present; a record carrying any of
// them with another shape is rejected outright rather than patched.
var arrayFields = []string{"extractedSkills", "plan", "checklist", "questions"}

// upgrades is the version→version migration chain. Each function upgrades a
// record in place from its key version to the next one. All schema evolution
// flows through this single seam: a future field addition registers a new
// upgrade step instead of re-deriving "is this legacy" from field absence.
var upgrades = map[int]func(map[string]any) error{
	0: upgradeLegacyScore,
	1: upgradeTagVersion,
}

// MigrateEntry validates and upgrades one raw stored record to the current
// schema version. Rejected records return an error and must be dropped by the
// caller; no partially patched record is ever returned.
func MigrateEntry(raw json.RawMessage) (*types.AnalysisEntry, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("record is not an object: %w", err)
	}

	for _, key := range requiredFields {
		value, ok := fields[key].(string)
		if !ok {
			return nil, fmt.Errorf("missing required field %q", key)
		}
		if value == "" && key != "jdText" {
			return nil, fmt.Errorf("required field %q is empty", key)
		}
	}

	for _, key := range arrayFields {
		value, ok := fields[key]
		if !ok {
			fields[key] = []any{}
			continue
		}
		if _, isArray := value.([]any); !isArray {
			return nil, fmt.Errorf("field %q is not an array", key)
		}
	}

	version := detectVersion(fields)
	if version > types.CurrentSchemaVersion {
		return nil, fmt.Errorf("record schema version %d is newer than supported %d",
			version, types.CurrentSchemaVersion)
	}
	for ; version < types.CurrentSchemaVersion; version++ {
		upgrade, ok := upgrades[version]
		if !ok {
			return nil, fmt.Errorf("no upgrade path from schema version %d", version)
		}
		if err := upgrade(fields); err != nil {
			return nil, fmt.Errorf("upgrade from version %d failed: %w", version, err)
		}
	}

	migrated, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to re-serialize migrated record: %w", err)
	}
	if err := schemas.ValidateEntry(migrated); err != nil {
		return nil, err
	}

	var entry types.AnalysisEntry
	if err := json.Unmarshal(migrated, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode migrated record: %w", err)
	}
	return &entry, nil
}

// detectVersion determines the schema version of a raw record. An explicit
// version tag wins; otherwise records already carrying the split score fields
// are v1, and anything older is a v0 web-app record with a single
// readinessScore.
func detectVersion(fields map[string]any) int {
	if tag, ok := fields["schemaVersion"].(float64); ok {
		return int(tag)
	}
	if _, ok := fields["baseScore"]; ok {
		return 1
	}
	return 0
}

// upgradeLegacyScore (v0 → v1) backfills the split score fields from the
// legacy single readinessScore, defaulting to zero when it is absent too.
func upgradeLegacyScore(fields map[string]any) error {
	score := 0.0
	if legacy, ok := fields["readinessScore"].(float64); ok {
		score = legacy
	}
	if _, ok := fields["baseScore"]; !ok {
		fields["baseScore"] = score
	}
	if _, ok := fields["finalScore"]; !ok {
		fields["finalScore"] = score
	}
	delete(fields, "readinessScore")
	return nil
}

// upgradeTagVersion (v1 → v2) stamps the explicit version tag and backfills
// the remaining optional fields that pre-tag records could omit.
func upgradeTagVersion(fields map[string]any) error {
	if _, ok := fields["updatedAt"]; !ok {
		fields["updatedAt"] = fields["createdAt"]
	}
	if _, ok := fields["finalScore"]; !ok {
		fields["finalScore"] = fields["baseScore"]
	}
	if _, ok := fields["skillConfidenceMap"]; !ok {
		fields["skillConfidenceMap"] = map[string]any{}
	}
	if _, ok := fields["company"]; !ok {
		fields["company"] = ""
	}
	if _, ok := fields["role"]; !ok {
		fields["role"] = ""
	}
	fields["schemaVersion"] = types.CurrentSchemaVersion
	return nil
}
