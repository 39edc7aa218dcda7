package phylip

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read parses a PHYLIP alignment written in the given layout. Names are read
// from the fixed ten character column and right-trimmed.
func Read(r io.Reader, layout Layout) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	next := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimRight(scanner.Text(), "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoRecords
	}
	count, length, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	records := make([]Record, count)
	builders := make([]strings.Builder, count)
	for i := 0; i < count; i++ {
		line, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: expected %d records, found %d", ErrMalformed, count, i)
		}
		name, residues := splitNameLine(line)
		records[i].Name = name
		builders[i].WriteString(residues)
		if layout == Sequential {
			for builders[i].Len() < length {
				cont, ok := next()
				if !ok {
					return nil, fmt.Errorf("%w: record %q ends after %d of %d residues", ErrMalformed, name, builders[i].Len(), length)
				}
				builders[i].WriteString(stripSpace(cont))
			}
		}
	}

	if layout == Interleaved {
		for i := 0; builders[count-1].Len() < length; i = (i + 1) % count {
			line, ok := next()
			if !ok {
				return nil, fmt.Errorf("%w: line %d: interleaved block truncated", ErrMalformed, lineNo)
			}
			builders[i].WriteString(stripSpace(line))
		}
	}

	for i := range records {
		records[i].Residues = builders[i].String()
		if len(records[i].Residues) != length {
			return nil, fmt.Errorf("%w: %q has %d residues, header declares %d",
				ErrMalformed, records[i].Name, len(records[i].Residues), length)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Header reports the record count and alignment length declared on the first
// non-blank line.
func Header(r io.Reader) (count, length int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		return parseHeader(line)
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, ErrNoRecords
}

func parseHeader(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: header %q", ErrMalformed, line)
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil || count <= 0 {
		return 0, 0, fmt.Errorf("%w: record count %q", ErrMalformed, fields[0])
	}
	length, err := strconv.Atoi(fields[1])
	if err != nil || length < 0 {
		return 0, 0, fmt.Errorf("%w: sequence length %q", ErrMalformed, fields[1])
	}
	return count, length, nil
}

func splitNameLine(line string) (string, string) {
	if len(line) <= NameWidth {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:NameWidth]), stripSpace(line[NameWidth:])
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
