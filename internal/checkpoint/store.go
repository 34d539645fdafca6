package checkpoint

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/openlogreplicator-go/dictionary/internal/catalog"
	"github.com/openlogreplicator-go/dictionary/internal/dicterrors"
	"github.com/openlogreplicator-go/dictionary/internal/schema"
)

// NewCheckpointID mints a fresh checkpoint identifier, independent of
// SCN, for log correlation across checkpoint writes (§10's domain-stack
// home for google/uuid).
func NewCheckpointID() string {
	return uuid.NewString()
}

// Validate checks doc's structural invariants: a matching schema version
// and that every USER$, OBJ$ and COL$ rowid string parses with
// catalog.ParseRowId. Rowids of the other catalog tables are not checked
// here; ApplyTo returns an error when it fails to parse one.
func Validate(path string, doc *Document) error {
	if doc.Header.SchemaVersion != SchemaVersion {
		return dicterrors.NewCheckpointSchemaCorrupt(path, fmt.Sprintf("schema_version %d does not match build constant %d", doc.Header.SchemaVersion, SchemaVersion))
	}
	checkRowID := func(s string) error {
		if _, err := catalog.ParseRowId(s); err != nil {
			return dicterrors.NewCheckpointSchemaCorrupt(path, fmt.Sprintf("malformed rowid %q: %v", s, err))
		}
		return nil
	}
	for _, r := range doc.User {
		if err := checkRowID(r.RowID); err != nil {
			return err
		}
	}
	for _, r := range doc.Obj {
		if err := checkRowID(r.RowID); err != nil {
			return err
		}
	}
	for _, r := range doc.Col {
		if err := checkRowID(r.RowID); err != nil {
			return err
		}
	}
	return nil
}

// SaveFile writes doc as a JSON checkpoint file at path (§6's mandated
// plain-JSON-file backend).
func SaveFile(path string, doc *Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("checkpoint: marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("checkpoint: write %s: %w", path, err)
	}
	return nil
}

// LoadFile reads and structurally validates a JSON checkpoint file at
// path.
func LoadFile(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: read %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, dicterrors.NewCheckpointSchemaCorrupt(path, fmt.Sprintf("invalid JSON: %v", err))
	}
	if err := Validate(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Replay loads a checkpoint file, applies it to registry, and forces a
// DS rebuild against the loaded SCN — matching §6's "the file is read
// once at replay start to populate CRS, then a DS rebuild is forced".
func Replay(path string, registry *catalog.Registry, orchestrator *schema.Orchestrator) (*Document, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := doc.ApplyTo(registry); err != nil {
		return nil, err
	}
	if err := orchestrator.Commit(doc.Header.Scn); err != nil {
		return nil, err
	}
	return doc, nil
}
