package phylip

import (
	"errors"
	"fmt"
)

// NameWidth is the width of the strict PHYLIP name column.
const NameWidth = 10

// DefaultBlockWidth is the number of residues per line in interleaved output.
const DefaultBlockWidth = 50

// Layout selects how residues are arranged after the header.
type Layout int

const (
	Sequential Layout = iota
	Interleaved
)

func (l Layout) String() string {
	switch l {
	case Sequential:
		return "sequential"
	case Interleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// Record is one named row of an alignment.
type Record struct {
	Name     string
	Residues string
}

var (
	ErrNoRecords     = errors.New("phylip: alignment has no records")
	ErrUnequalLength = errors.New("phylip: sequences must all be the same length")
	ErrEmptySequence = errors.New("phylip: sequences must not be empty")
	ErrDuplicateName = errors.New("phylip: repeated name")
	ErrMalformed     = errors.New("phylip: malformed input")
)
