// Package genes holds the annotated gene catalog of the Yersinia
// pestis pPCP1 plasmid (RefSeq NC_005816.1) and extraction of single
// genes from the full plasmid sequence.
package genes

import (
	"fmt"

	"github.com/plasmidtools/genview/bio"
)

// PlasmidID is the sequence record the catalog describes.
const PlasmidID = "NC_005816.1"

// PlasmidLength is the expected length of the record in base pairs.
const PlasmidLength = 9609

// Gene is one annotated coding sequence. Start and End are 0-based
// half-open coordinates on the forward strand. For reverse-strand
// genes the extracted sequence is reverse-complemented so that it
// reads in coding orientation.
type Gene struct {
	LocusTag string
	Product  string
	Start    int
	End      int
	Reverse  bool
}

// Catalog lists the nine coding sequences of NC_005816.1, see
// https://www.ncbi.nlm.nih.gov/nuccore/NC_005816.
var Catalog = []Gene{
	{"YP_RS22210", "IS21-like element IS100 family transposase", 86, 1109, false},
	{"YP_RS22215", "AAA family ATPase", 1108, 1888, false},
	{"YP_RS22220", "Rop family plasmid primer RNA-binding protein", 2924, 3119, false},
	{"YP_RS22225", "pesticin immunity protein", 4354, 4780, false},
	{"YP_RS22230", "pesticin", 4814, 5888, true},
	{"YP_RS22235", "hypothetical protein", 6115, 6421, false},
	{"YP_RS22240", "omptin family plasminogen activator Pla", 6663, 7602, false},
	{"YP_RS22245", "XRE family transcriptional regulator", 7788, 8088, true},
	{"YP_RS22250", "type II toxin-antitoxin system RelE/ParE family toxin", 8087, 8429, true},
}

// InvalidSelectionError reports a gene selection outside the catalog
// or a gene range which does not fit the sequence being viewed.
type InvalidSelectionError string

func (e InvalidSelectionError) Error() string { return string(e) }

func invalidSelectionf(format string, args ...interface{}) InvalidSelectionError {
	return InvalidSelectionError(fmt.Sprintf(format, args...))
}

// Select returns the n-th gene of the catalog, 1-based.
func Select(n int) (Gene, error) {
	if n < 1 || n > len(Catalog) {
		return Gene{}, invalidSelectionf("invalid selection '%d': expected a gene number between 1 and %d", n, len(Catalog))
	}
	return Catalog[n-1], nil
}

// Extract slices the gene out of the full plasmid sequence, applying
// the reverse complement for reverse-strand genes. Ranges beyond the
// sequence are rejected, not clipped.
func (g Gene) Extract(genome string) (string, error) {
	if g.Start < 0 || g.End > len(genome) || g.Start > g.End {
		return "", invalidSelectionf("gene %s range [%d:%d) outside sequence of length %d",
			g.LocusTag, g.Start, g.End, len(genome))
	}
	s := genome[g.Start:g.End]
	if g.Reverse {
		return bio.ReverseComplement(s)
	}
	return s, nil
}
