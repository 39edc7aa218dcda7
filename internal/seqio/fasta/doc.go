// Package fasta loads FASTA files through the biogo sequence library.
//
// Input files are mapped read-only and handed to biogo's FASTA reader with a
// linear sequence template. An optional alphabet hint (dna, rna, protein)
// selects the template alphabet and every residue is checked against it; with
// no hint residues are accepted as written.
package fasta
