package fasta

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/edsrzf/mmap-go"
)

var (
	ErrInvalid         = errors.New("fasta: invalid input")
	ErrUnknownAlphabet = errors.New("fasta: unknown alphabet")
)

// Extensions lists the file extensions recognized as FASTA. They are used for
// format detection only; content is never validated against the extension.
var Extensions = []string{"fa", "fst", "fasta", "fn"}

var alphabets = map[string]alphabet.Alphabet{
	"dna":     alphabet.DNAredundant,
	"rna":     alphabet.RNAredundant,
	"protein": alphabet.Protein,
}

// Record is one parsed FASTA entry.
type Record struct {
	ID          string
	Description string
	Residues    []byte
}

// HasExtension reports whether path carries a FASTA extension.
func HasExtension(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, candidate := range Extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// ParseAlphabet resolves an alphabet hint. An empty hint returns nil, which
// disables residue validation.
func ParseAlphabet(hint string) (alphabet.Alphabet, error) {
	hint = strings.ToLower(strings.TrimSpace(hint))
	if hint == "" {
		return nil, nil
	}
	alpha, ok := alphabets[hint]
	if !ok {
		return nil, fmt.Errorf("%w %q (want dna, rna or protein)", ErrUnknownAlphabet, hint)
	}
	return alpha, nil
}

// ReadFile parses every record in path. Errors opening or mapping the file are
// returned unwrapped so callers can tell them apart from ErrInvalid. Returned
// errors do not repeat path; callers that report it add it themselves.
func ReadFile(path, alphabetHint string) ([]Record, error) {
	alpha, err := ParseAlphabet(alphabetHint)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.New("is a directory")
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: no records found", ErrInvalid)
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	defer data.Unmap()

	return parse(data, alpha)
}

// Read parses every record from r. A nil alpha disables residue validation.
func Read(r io.Reader, alpha alphabet.Alphabet) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(data, alpha)
}

func parse(data []byte, alpha alphabet.Alphabet) ([]Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: no records found", ErrInvalid)
	}
	if trimmed[0] != '>' {
		line, _, _ := bytes.Cut(trimmed, []byte("\n"))
		return nil, fmt.Errorf("%w: expected '>' header before %q", ErrInvalid, strings.TrimSpace(string(line)))
	}

	template := &linear.Seq{Annotation: seq.Annotation{Alpha: alpha}}
	reader := biofasta.NewReader(bytes.NewReader(trimmed), template)

	var records []Record
	for {
		s, err := reader.Read()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalid, len(records)+1, err)
		}
		if s != nil {
			rec, recErr := toRecord(s, alpha, len(records)+1)
			if recErr != nil {
				return nil, recErr
			}
			records = append(records, rec)
		}
		if err != nil {
			break
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records found", ErrInvalid)
	}
	return records, nil
}

func toRecord(s seq.Sequence, alpha alphabet.Alphabet, index int) (Record, error) {
	lin, ok := s.(*linear.Seq)
	if !ok {
		return Record{}, fmt.Errorf("%w: record %d: unexpected sequence type %T", ErrInvalid, index, s)
	}
	id := strings.TrimSpace(lin.Name())
	description := strings.TrimSpace(lin.Description())
	if id == "" {
		// "> x" leaves the name empty and x in the description.
		if fields := strings.Fields(description); len(fields) > 0 {
			id = fields[0]
			description = strings.TrimSpace(strings.TrimPrefix(description, id))
		}
	}
	if id == "" {
		return Record{}, fmt.Errorf("%w: record %d has an empty identifier", ErrInvalid, index)
	}

	residues := make([]byte, 0, len(lin.Seq))
	for pos, letter := range lin.Seq {
		switch letter {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if alpha != nil && !alpha.IsValid(toLower(letter)) {
			return Record{}, fmt.Errorf("%w: %s: residue %q at position %d is not in the requested alphabet",
				ErrInvalid, id, rune(letter), pos+1)
		}
		residues = append(residues, byte(letter))
	}
	return Record{
		ID:          id,
		Description: description,
		Residues:    residues,
	}, nil
}

func toLower(l alphabet.Letter) alphabet.Letter {
	if l >= 'A' && l <= 'Z' {
		return l + ('a' - 'A')
	}
	return l
}
