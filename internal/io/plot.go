package io

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotContigLengths saves a bar chart of contig lengths to filename. The image
// format comes from the extension (png, svg, pdf, ...).
func PlotContigLengths(filename string, contigs []string) error {
	if len(contigs) == 0 {
		return fmt.Errorf("failed to plot %s: no contigs", filename)
	}

	lengths := make(plotter.Values, len(contigs))
	names := make([]string, len(contigs))
	for i, c := range contigs {
		lengths[i] = float64(len(c))
		names[i] = contigID(i)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d contigs", len(contigs))
	p.X.Label.Text = "contig"
	p.Y.Label.Text = "length (bp)"

	bars, err := plotter.NewBarChart(lengths, vg.Points(20))
	if err != nil {
		return fmt.Errorf("failed to plot contig lengths: %v", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("failed to save plot to %s: %v", filename, err)
	}
	return nil
}
