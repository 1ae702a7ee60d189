// Package codon implements the codon translation engine: nucleotide
// ordinals, the 64-entry genetic code table and codon-by-codon
// translation of nucleotide sequences into protein.
package codon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plasmidtools/genview/bio"
)

// Base ordinals follow the ordering of the code string below:
// T=0, C=1, A=2, G=3. The two must never be changed independently.
var (
	alphabet  = [...]byte{'T', 'C', 'A', 'G'}
	rAlphabet = map[byte]byte{'T': 0, 'C': 1, 'A': 2, 'G': 3}
)

// code is NCBI translation table 1/11 indexed by 16*b0 + 4*b1 + b2
// over the base ordinals above, so TTT=0, TTC=1, ..., GGG=63. The
// table is empirical data and is not derivable; it is generated from
// bio.GeneticCode by misc/gentable and must not be edited by hand.
const code = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

// threeLetter maps the one-letter amino acid code to its three-letter
// abbreviation. The map is total over A-Z plus the stop symbol '*';
// letters with no standard amino acid meaning map to "???".
var threeLetter = map[byte]string{
	'A': "Ala", 'B': "???", 'C': "Cys", 'D': "Asp", 'E': "Glu",
	'F': "Phe", 'G': "Gly", 'H': "His", 'I': "Ile", 'J': "???",
	'K': "Lys", 'L': "Leu", 'M': "Met", 'N': "Asn", 'O': "Pyr",
	'P': "Pro", 'Q': "Gln", 'R': "Arg", 'S': "Ser", 'T': "Thr",
	'U': "Sel", 'V': "Val", 'W': "Trp", 'X': "???", 'Y': "Tyr",
	'Z': "???", '*': "***",
}

// ErrMisalignedLength is returned when a sequence length doesn't
// divide by 3.
var ErrMisalignedLength = errors.New("sequence length doesn't divide by 3")

// EncodeBase returns the 2-bit ordinal of a nucleotide under the
// T=0, C=1, A=2, G=3 assignment. Any other byte is an error; no
// default is substituted.
func EncodeBase(b byte) (byte, error) {
	o, ok := rAlphabet[b]
	if !ok {
		return 0, bio.InvalidBaseError(b)
	}
	return o, nil
}

// ThreeLetterCode returns the three-letter abbreviation for a
// one-letter amino acid code, "???" if the letter has no meaning.
func ThreeLetterCode(aa byte) string {
	if s, ok := threeLetter[aa]; ok {
		return s
	}
	return "???"
}

// Translation selects the output form of translated amino acids.
type Translation int

const (
	// OneLetter is the single-letter amino acid code.
	OneLetter Translation = iota
	// ThreeLetter is the triple-letter amino acid code.
	ThreeLetter
)

// TranslateCodon translates a single codon into its amino acid in the
// requested form. The triplet must be exactly three capital bases
// from {A,C,G,T}; anything else is an error and nothing is
// substituted.
func TranslateCodon(triplet string, t Translation) (string, error) {
	if len(triplet) != 3 {
		return "", fmt.Errorf("codon '%s': expected 3 bases, got %d", triplet, len(triplet))
	}
	index := 0
	for i := 0; i < 3; i++ {
		o, err := EncodeBase(triplet[i])
		if err != nil {
			return "", err
		}
		index = index*4 + int(o)
	}
	aa := code[index]
	switch t {
	case OneLetter:
		return string(aa), nil
	case ThreeLetter:
		return ThreeLetterCode(aa), nil
	}
	return "", fmt.Errorf("unknown translation mode %d", t)
}

// TranslateSequence translates a nucleotide sequence codon by codon.
// The length must divide by 3; this is checked before any codon is
// processed and no partial protein is ever returned on failure.
func TranslateSequence(seq string, t Translation) (string, error) {
	if len(seq)%3 != 0 {
		return "", ErrMisalignedLength
	}
	var b strings.Builder
	if t == ThreeLetter {
		b.Grow(len(seq))
	} else {
		b.Grow(len(seq) / 3)
	}
	for i := 0; i < len(seq); i += 3 {
		aa, err := TranslateCodon(seq[i:i+3], t)
		if err != nil {
			return "", err
		}
		b.WriteString(aa)
	}
	return b.String(), nil
}
