package phylip

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bioconvert/internal/textutil"
)

// Writer serializes alignments in PHYLIP format.
type Writer struct {
	w          io.Writer
	layout     Layout
	blockWidth int
}

// NewWriter returns a Writer emitting the given layout.
func NewWriter(w io.Writer, layout Layout) *Writer {
	return &Writer{w: w, layout: layout, blockWidth: DefaultBlockWidth}
}

// SetBlockWidth overrides the residues per line used by the interleaved
// layout. Values below one are ignored.
func (w *Writer) SetBlockWidth(n int) {
	if n > 0 {
		w.blockWidth = n
	}
}

// Validate checks that records form a writable alignment and returns the
// sanitized names in record order. Write runs the same checks, so callers
// only need Validate to reject input before creating the destination.
func Validate(records []Record) ([]string, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	length := len(records[0].Residues)
	names := make([]string, len(records))
	seen := make(map[string]string, len(records))
	for i, rec := range records {
		if len(rec.Residues) != length {
			return nil, fmt.Errorf("%w: %q has %d residues, %q has %d",
				ErrUnequalLength, records[0].Name, length, rec.Name, len(rec.Residues))
		}
		name := textutil.SanitizePhylipName(rec.Name, NameWidth)
		if original, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w %q (originally %q and %q), possibly due to truncation",
				ErrDuplicateName, name, original, rec.Name)
		}
		seen[name] = rec.Name
		names[i] = name
	}
	if length == 0 {
		return nil, ErrEmptySequence
	}
	return names, nil
}

// Write validates records and writes them as a single alignment. It returns
// the number of records written. Nothing reaches the underlying writer when
// validation fails.
func (w *Writer) Write(records []Record) (int, error) {
	names, err := Validate(records)
	if err != nil {
		return 0, err
	}
	length := len(records[0].Residues)

	bw := bufio.NewWriter(w.w)
	fmt.Fprintf(bw, " %d %d\n", len(records), length)
	switch w.layout {
	case Interleaved:
		w.writeInterleaved(bw, names, records, length)
	default:
		for i, rec := range records {
			writeName(bw, names[i])
			bw.WriteString(rec.Residues)
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return len(records), nil
}

func (w *Writer) writeInterleaved(bw *bufio.Writer, names []string, records []Record, length int) {
	for start := 0; start == 0 || start < length; start += w.blockWidth {
		end := start + w.blockWidth
		if end > length {
			end = length
		}
		if start > 0 {
			bw.WriteByte('\n')
		}
		for i, rec := range records {
			if start == 0 {
				writeName(bw, names[i])
			}
			bw.WriteString(rec.Residues[start:end])
			bw.WriteByte('\n')
		}
	}
}

func writeName(bw *bufio.Writer, name string) {
	bw.WriteString(name)
	if pad := NameWidth - len(name); pad > 0 {
		bw.WriteString(strings.Repeat(" ", pad))
	}
}
