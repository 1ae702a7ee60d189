package seqfmt

import (
	"strings"
	"testing"
)

func TestDivisor(tst *testing.T) {
	if DNA.Divisor() != 1 || Protein1.Divisor() != 1 || Protein3.Divisor() != 3 {
		tst.Error("Wrong divisors:", DNA.Divisor(), Protein1.Divisor(), Protein3.Divisor())
	}
}

func TestFormatDNA(tst *testing.T) {
	seq := strings.Repeat("ATG", 32) // 96 nt: one full line and a 24 nt remainder
	out := Format(seq, DNA)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		tst.Fatal("Wrong number of lines:", len(lines))
	}
	if lines[0] != "001 "+seq[:72] {
		tst.Error("Wrong first line:", lines[0])
	}
	if lines[1] != "073 "+seq[72:] {
		tst.Error("Wrong second line:", lines[1])
	}
}

func TestFormatExactMultiple(tst *testing.T) {
	// an exact multiple of the line width produces no trailing
	// partial line
	out := Format(strings.Repeat("A", 144), DNA)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		tst.Error("Wrong number of lines:", len(lines))
	}
	if !strings.HasPrefix(lines[1], "073 ") {
		tst.Error("Wrong second line prefix:", lines[1])
	}
	if len(lines[1]) != 4+72 {
		tst.Error("Wrong second line length:", len(lines[1]))
	}
}

func TestFormatEmpty(tst *testing.T) {
	if Format("", DNA) != "" {
		tst.Error("Empty sequence should produce no output")
	}
}

func TestFormatProtein3(tst *testing.T) {
	// 100 residues in three-letter form: 72 residues (216 chars) on
	// the first line, 28 on the second, numbered per residue
	seq := strings.Repeat("Met", 100)
	out := Format(seq, Protein3)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		tst.Fatal("Wrong number of lines:", len(lines))
	}
	if !strings.HasPrefix(lines[0], "001 ") || len(lines[0]) != 4+216 {
		tst.Error("Wrong first line length:", len(lines[0]))
	}
	if !strings.HasPrefix(lines[1], "073 ") || len(lines[1]) != 4+28*3 {
		tst.Error("Wrong second line length:", len(lines[1]))
	}
}

func TestFormatLineCount(tst *testing.T) {
	types := []SeqType{DNA, Protein1, Protein3}
	for _, t := range types {
		div := t.Divisor()
		for _, units := range []int{1, 71, 72, 73, 144, 145, 300} {
			seq := strings.Repeat("A", units*div)
			out := Format(seq, t)
			got := strings.Count(out, "\n")
			want := (units + LineUnits - 1) / LineUnits
			if got != want {
				tst.Errorf("Wrong line count for %d units (divisor %d): %d != %d",
					units, div, got, want)
			}
		}
	}
}
