// Package textutil provides identifier clean-up shared by the sequence format
// writers.
//
// PHYLIP name columns are fixed-width ASCII, so identifiers coming from FASTA
// headers are folded (diacritics removed, other non-ASCII runes replaced),
// stripped of Newick-significant characters, and truncated.
package textutil
