package conversion

import (
	"context"
	"path/filepath"
	"strings"
)

// UnknownCount is returned by strategies that cannot report how many records
// they converted.
const UnknownCount = -1

// OutputExtension is appended when deriving an output path.
const OutputExtension = "phylip"

// Job describes one conversion. It is built by the dispatcher and passed by
// value to a single strategy call.
type Job struct {
	InputPath  string
	OutputPath string
	// Alphabet is an optional residue alphabet hint (dna, rna, protein).
	Alphabet string
}

// Strategy converts a job's input file into PHYLIP at the job's output path.
type Strategy interface {
	Name() string
	// Convert returns the number of records written, or UnknownCount.
	Convert(ctx context.Context, job Job) (int, error)
}

// ToolChecker reports on and installs external tools.
type ToolChecker interface {
	IsPresent(name string) bool
	Install(ctx context.Context, name string) error
	Lookup(name string) (string, bool)
}

// DeriveOutputPath replaces the input extension with .phylip, keeping the
// directory and base name.
func DeriveOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	if base == "" || strings.HasSuffix(base, string(filepath.Separator)) {
		base = inputPath
	}
	return base + "." + OutputExtension
}
