package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openlogreplicator-go/dictionary/internal/catalog"
	"github.com/openlogreplicator-go/dictionary/internal/checkpoint"
	"github.com/openlogreplicator-go/dictionary/internal/config"
	"github.com/openlogreplicator-go/dictionary/internal/schema"
	"github.com/openlogreplicator-go/dictionary/internal/tracelog"
)

var replayCheckpointPath string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Load a checkpoint, force a schema rebuild, and print the resulting tables",
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayCheckpointPath, "checkpoint", "checkpoint.json", "path to the checkpoint file to replay")
}

func runReplay(cmd *cobra.Command, args []string) error {
	opts, log, err := loadOptionsAndLogger()
	if err != nil {
		return err
	}

	registry := catalog.NewRegistry()
	ds := schema.New()
	filters := filtersFromConfig(opts)
	co := schema.NewOrchestrator(ds, registry, filters, schema.Options{
		SupplementalLogPrimary: opts.SupplementalLogPrimary,
		SupplementalLogAll:     opts.SupplementalLogAll,
	}, log)

	doc, err := checkpoint.Replay(replayCheckpointPath, registry, co)
	if err != nil {
		return err
	}

	fmt.Printf("replayed checkpoint %s at scn %d\n", doc.Header.CheckpointID, doc.Header.Scn)
	fmt.Printf("derived schema now holds %d tables:\n", ds.Len())
	for t := range ds.IterateTables() {
		fmt.Printf("  %s (%d columns)\n", t.QualifiedName(), len(t.Columns))
	}
	return nil
}

func loadOptionsAndLogger() (config.Options, *tracelog.Logger, error) {
	opts := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return config.Options{}, nil, err
		}
		opts = loaded
	}
	var cats []tracelog.Category
	if opts.TraceSystem {
		cats = append(cats, tracelog.System)
	}
	if opts.TraceRedo {
		cats = append(cats, tracelog.Redo)
	}
	if opts.TraceCommit {
		cats = append(cats, tracelog.Commit)
	}
	return opts, tracelog.New(slog.LevelInfo, cats...), nil
}

func filtersFromConfig(opts config.Options) schema.FilterList {
	filters := make(schema.FilterList, 0, len(opts.Filters))
	for _, f := range opts.Filters {
		pk := make(map[int16]bool, len(f.PKColumns))
		for _, c := range f.PKColumns {
			pk[c] = true
		}
		filters = append(filters, schema.Filter{
			OwnerPattern: f.OwnerPattern,
			TablePattern: f.TablePattern,
			PKColumns:    pk,
			PKNames:      f.PKNames,
			Options:      schema.FilterOptions{SupplementalAll: f.SupplementalAll},
		})
	}
	if len(filters) == 0 {
		filters = append(filters, schema.Filter{OwnerPattern: "%", TablePattern: "%"})
	}
	return filters
}
