// Package seqfmt renders nucleotide and protein sequences as
// fixed-width lines with leading position numbers.
package seqfmt

import (
	"fmt"
	"strings"
)

// LineUnits is the number of display units per line. A unit is one
// base or one residue; in the three-letter protein form a residue
// occupies three characters.
const LineUnits = 72

// SeqType is the kind of sequence being rendered. It determines how
// positions are counted.
type SeqType int

const (
	// DNA is a nucleotide sequence, numbered per base.
	DNA SeqType = iota
	// Protein1 is a protein in one-letter code, numbered per residue.
	Protein1
	// Protein3 is a protein in three-letter code; positions count
	// residues, not characters.
	Protein3
)

// Divisor returns the number of characters per display unit.
func (t SeqType) Divisor() int {
	switch t {
	case DNA, Protein1:
		return 1
	case Protein3:
		return 3
	}
	return 1
}

// Format renders a sequence as lines of up to LineUnits units, each
// prefixed with the right-aligned, zero-padded 1-based position of
// the first unit on the line. A trailing partial line is emitted only
// when non-empty.
func Format(seq string, t SeqType) string {
	var b strings.Builder
	div := t.Divisor()
	chunk := LineUnits * div
	for i := 0; i < len(seq); i += chunk {
		end := i + chunk
		if end > len(seq) {
			end = len(seq)
		}
		fmt.Fprintf(&b, "%03d %s\n", i/div+1, seq[i:end])
	}
	return b.String()
}
