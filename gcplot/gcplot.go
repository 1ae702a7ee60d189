// Package gcplot renders a per-window GC-content profile of a
// nucleotide sequence as a line chart.
package gcplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/plasmidtools/genview/bio"
)

// Profile computes the GC fraction in consecutive windows of the
// given width. The last window may be narrower. Bases outside
// {A,C,G,T} are an error.
func Profile(seq string, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("window width must be positive, got %d", window)
	}
	prof := make([]float64, 0, (len(seq)+window-1)/window)
	for i := 0; i < len(seq); i += window {
		end := i + window
		if end > len(seq) {
			end = len(seq)
		}
		gc := 0
		for j := i; j < end; j++ {
			switch seq[j] {
			case 'G', 'C':
				gc++
			case 'A', 'T':
			default:
				return nil, bio.InvalidBaseError(seq[j])
			}
		}
		prof = append(prof, float64(gc)/float64(end-i))
	}
	return prof, nil
}

// Save writes a GC-profile chart of the sequence to a file; the image
// format is derived from the file name extension.
func Save(seq string, window int, title, fname string) error {
	prof, err := Profile(seq, window)
	if err != nil {
		return err
	}

	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("window (%d nt each)", window)
	p.Y.Label.Text = "GC fraction"
	p.Y.Min = 0
	p.Y.Max = 1

	pts := make(plotter.XYs, len(prof))
	for i, v := range prof {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	err = plotutil.AddLinePoints(p, "GC", pts)
	if err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, fname)
}
