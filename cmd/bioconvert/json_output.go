package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout. Nil slices
// are written as [] so consumers can always range over the result.
func writeJSON[T any](cmd *cobra.Command, v []T) error {
	if v == nil {
		v = []T{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
