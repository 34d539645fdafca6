package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlogreplicator-go/dictionary/internal/checkpoint"
)

var validateCheckpointCmd = &cobra.Command{
	Use:   "validate-checkpoint [path]",
	Short: "Validate a checkpoint file's structure without loading it into a live core",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateCheckpoint,
}

func runValidateCheckpoint(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := checkpoint.LoadFile(path); err != nil {
		return err
	}
	fmt.Printf("%s: OK\n", path)
	return nil
}
