// Package config loads the dictionary core's run-time control flags from
// a TOML file, the way the rest of this lineage's sibling repos load
// their own configuration (BurntSushi/toml), rather than the chosen
// teacher's own bare encoding/json config reader — TOML is the dominant
// config format across the broader corpus and cmd/dictserver is a
// natural place to adopt it.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// FilterEntry mirrors one entry of the user-supplied replication filter
// list (schema.Filter), in its TOML-serializable form.
type FilterEntry struct {
	OwnerPattern    string   `toml:"owner_pattern"`
	TablePattern    string   `toml:"table_pattern"`
	PKColumns       []int16  `toml:"pk_columns"`
	PKNames         string   `toml:"pk_names"`
	SupplementalAll bool     `toml:"supplemental_all"`
}

// Options is the flat, TOML-tagged configuration struct loaded once at
// cmd/dictserver startup (§6's "Control flags").
type Options struct {
	AdaptiveSchema         bool          `toml:"adaptive_schema"`
	SupplementalLogPrimary bool          `toml:"supplemental_log_primary"`
	SupplementalLogAll     bool          `toml:"supplemental_log_all"`
	DefaultCharsetID       uint64        `toml:"default_charset_id"`
	Filters                []FilterEntry `toml:"filter"`

	CheckpointBackend string `toml:"checkpoint_backend"` // "file" (default) or "badger"
	CheckpointPath    string `toml:"checkpoint_path"`

	TraceSystem bool `toml:"trace_system"`
	TraceRedo   bool `toml:"trace_redo"`
	TraceCommit bool `toml:"trace_commit"`
}

// Default returns the zero-configuration defaults: adaptive-schema on
// (self-healing is the safer default for a freshly bootstrapped
// replicator), file-backed checkpoints, no filters.
func Default() Options {
	return Options{
		AdaptiveSchema:    true,
		CheckpointBackend: "file",
		CheckpointPath:    "checkpoint.json",
	}
}

// Load reads and parses a TOML configuration file at path.
func Load(path string) (Options, error) {
	opts := Default()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return opts, nil
}
