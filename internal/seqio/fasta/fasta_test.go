package fasta_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bioconvert/internal/seqio/fasta"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadFileParsesRecords(t *testing.T) {
	path := writeFile(t, "sample.fasta", ">seq1 first sequence\nACGT\nAC\n\n>seq2\nACGA\nTT\n")
	records, err := fasta.ReadFile(path, "")
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "seq1" || records[0].Description != "first sequence" {
		t.Fatalf("unexpected first header: %#v", records[0])
	}
	if string(records[0].Residues) != "ACGTAC" || string(records[1].Residues) != "ACGATT" {
		t.Fatalf("unexpected residues: %q %q", records[0].Residues, records[1].Residues)
	}
}

func TestReadFileAppliesAlphabetHint(t *testing.T) {
	path := writeFile(t, "dna.fa", ">s1\nACGT-N\n>s2\nACGJ--\n")
	if _, err := fasta.ReadFile(path, ""); err != nil {
		t.Fatalf("expected unvalidated read to succeed, got %v", err)
	}
	_, err := fasta.ReadFile(path, "DNA")
	if !errors.Is(err, fasta.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for J in dna, got %v", err)
	}
	if !strings.Contains(err.Error(), "s2") {
		t.Fatalf("expected offending record in error, got %v", err)
	}
	if _, err := fasta.ReadFile(path, "protein"); err != nil {
		t.Fatalf("expected protein alphabet to accept J, got %v", err)
	}
}

func TestReadFileRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "whitespace only", content: "\n\n  \n"},
		{name: "no header", content: "ACGT\nACGT\n"},
		{name: "empty identifier", content: ">\nACGT\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.fa", tt.content)
			if _, err := fasta.ReadFile(path, ""); !errors.Is(err, fasta.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestReadFileTakesIdentifierAfterLeadingSpace(t *testing.T) {
	path := writeFile(t, "spaced.fa", "> x first\nACGT\n>y\nACGA\n")
	records, err := fasta.ReadFile(path, "")
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if records[0].ID != "x" || records[0].Description != "first" {
		t.Fatalf("unexpected first header: %#v", records[0])
	}
	if records[1].ID != "y" {
		t.Fatalf("unexpected second id %q", records[1].ID)
	}
}

func TestReadFileErrorsOmitPath(t *testing.T) {
	path := writeFile(t, "bad.fa", "ACGT\n")
	_, err := fasta.ReadFile(path, "")
	if !errors.Is(err, fasta.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if strings.Contains(err.Error(), path) {
		t.Fatalf("expected error without path, got %v", err)
	}
}

func TestReadFileMissingFile(t *testing.T) {
	_, err := fasta.ReadFile(filepath.Join(t.TempDir(), "missing.fa"), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseAlphabet(t *testing.T) {
	if alpha, err := fasta.ParseAlphabet(""); err != nil || alpha != nil {
		t.Fatalf("expected nil alphabet for empty hint, got %v %v", alpha, err)
	}
	for _, hint := range []string{"dna", " RNA ", "Protein"} {
		if alpha, err := fasta.ParseAlphabet(hint); err != nil || alpha == nil {
			t.Fatalf("hint %q: unexpected result %v %v", hint, alpha, err)
		}
	}
	if _, err := fasta.ParseAlphabet("klingon"); !errors.Is(err, fasta.ErrUnknownAlphabet) {
		t.Fatalf("expected ErrUnknownAlphabet, got %v", err)
	}
}

func TestReadFromReader(t *testing.T) {
	records, err := fasta.Read(strings.NewReader(">only\nMKV\n"), nil)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "only" || string(records[0].Residues) != "MKV" {
		t.Fatalf("unexpected records: %#v", records)
	}
}

func TestHasExtension(t *testing.T) {
	for _, path := range []string{"a.fa", "dir/b.FASTA", "c.fst", "d.fn"} {
		if !fasta.HasExtension(path) {
			t.Fatalf("expected %q to be recognized", path)
		}
	}
	for _, path := range []string{"a.phylip", "b", "c.fasta.gz"} {
		if fasta.HasExtension(path) {
			t.Fatalf("expected %q to be rejected", path)
		}
	}
}
