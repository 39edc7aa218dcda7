// Package conversion dispatches FASTA to PHYLIP conversions across
// interchangeable backends.
//
// A Dispatcher is built for one input file. It derives the output path,
// registers the biogo, squizz and goalign strategies plus a "default" alias,
// and runs whichever method the caller names. The biogo strategy parses in
// process and reports how many records it wrote; the subprocess strategies
// report UnknownCount. goalign is installed through the ToolChecker when it
// cannot be found.
//
// Errors carry the sentinel markers from the services package so callers can
// classify failures with errors.Is.
package conversion
