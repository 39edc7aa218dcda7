// Package phylip reads and writes PHYLIP alignment files.
//
// Names occupy a fixed ten character column. Identifiers are sanitized and
// truncated by the writer (see textutil.SanitizePhylipName), so a round trip
// preserves only the first ten characters of each name and rejects inputs
// whose truncated names collide. Residues are written exactly as supplied.
//
// Both layouts are supported: sequential, where each record's residues
// follow its name on one line, and interleaved, where the first block carries
// names and later blocks continue every record in order.
package phylip
