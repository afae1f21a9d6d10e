/*
Package report draws charts of the evaluation of trees.
*/
package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

/*
PlotScores takes the scores of a leave-one-out evaluation, one per fold, and
a path and saves to it a chart with the score of every fold and the running
mean of the scores. The image format is chosen from the path's extension
(png, svg, pdf...). An error is returned if there are no scores or the chart
cannot be saved.
*/
func PlotScores(scores []float64, path string) error {
	if len(scores) == 0 {
		return fmt.Errorf("no scores to plot")
	}
	p := plot.New()
	p.Title.Text = "Leave-one-out scores"
	p.X.Label.Text = "Fold"
	p.Y.Label.Text = "Score"
	p.Y.Min = 0
	p.Y.Max = 1

	perFold := make(plotter.XYs, len(scores))
	runningMean := make(plotter.XYs, len(scores))
	var sum float64
	for i, s := range scores {
		sum += s
		perFold[i].X = float64(i + 1)
		perFold[i].Y = s
		runningMean[i].X = float64(i + 1)
		runningMean[i].Y = sum / float64(i+1)
	}
	err := plotutil.AddLinePoints(p, "Score", perFold, "Running mean", runningMean)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
