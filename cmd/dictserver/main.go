// Command dictserver is a development harness for the online dictionary
// maintenance core: it wires the Catalog Row Store and Commit Orchestrator
// to a saved checkpoint, for inspection and integration testing. It does
// not read a redo stream or drive the System Transaction Interpreter, and
// it does not implement a network listener or a real Oracle client.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "dictserver",
	Short: "Inspect and replay the dictionary maintenance core",
	Long: `dictserver drives the Catalog Row Store / System Transaction Interpreter /
Commit Orchestrator core outside of the full replicator process.

Examples:
  dictserver inspect --checkpoint checkpoint.json
  dictserver replay --checkpoint checkpoint.json --config dictserver.toml
  dictserver validate-checkpoint checkpoint.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML configuration file")
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCheckpointCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
