package textutil

import "testing"

func TestSanitizePhylipName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{name: "short name untouched", input: "seq1", width: 10, want: "seq1"},
		{name: "truncated to width", input: "Homo_sapiens_chr1", width: 10, want: "Homo_sapie"},
		{name: "newick characters removed", input: "a(b)[c],d", width: 0, want: "abcd"},
		{name: "separators become pipes", input: "gi:123;x", width: 0, want: "gi|123|x"},
		{name: "diacritics folded", input: "Café", width: 10, want: "Cafe"},
		{name: "non latin replaced", input: "seqα", width: 10, want: "seq_"},
		{name: "surrounding space trimmed", input: "  seq2  ", width: 10, want: "seq2"},
		{name: "empty", input: "   ", width: 10, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizePhylipName(tt.input, tt.width); got != tt.want {
				t.Fatalf("SanitizePhylipName(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestASCIIFoldKeepsPrintableASCII(t *testing.T) {
	in := "ACGT-acgt_0123|.~"
	if got := ASCIIFold(in); got != in {
		t.Fatalf("ASCIIFold(%q) = %q", in, got)
	}
	if got := ASCIIFold("a\tb"); got != "a_b" {
		t.Fatalf("expected control characters replaced, got %q", got)
	}
}
