package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Sequence is one FASTA record used to build test inputs.
type Sequence struct {
	ID       string
	Residues string
}

// WriteFASTA writes records to path as FASTA, wrapping residues at 60
// columns, and returns path.
func WriteFASTA(t testing.TB, path string, records ...Sequence) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(">")
		b.WriteString(rec.ID)
		b.WriteByte('\n')
		for residues := rec.Residues; len(residues) > 0; {
			n := min(60, len(residues))
			b.WriteString(residues[:n])
			b.WriteByte('\n')
			residues = residues[n:]
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
