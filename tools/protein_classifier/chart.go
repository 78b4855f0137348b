package protein_classifier

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// countTicks labels the frequency axis with whole numbers only, at most
// about ten of them.
type countTicks struct{}

func (countTicks) Ticks(min, max float64) []plot.Tick {
	step := int(math.Ceil((max - min) / 10))
	if step < 1 {
		step = 1
	}
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i += step {
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: strconv.Itoa(i)})
	}
	return ticks
}

// FrequencyChartSVG renders the code frequency table as a bar chart, one
// coloured bar per code in table order, with the count printed above each bar.
func FrequencyChartSVG(ft FrequencyTable) (string, error) {
	if len(ft.Codes) == 0 {
		return "", fmt.Errorf("no codes to plot")
	}

	p := plot.New()
	p.Title.Text = "Code frequency"
	p.X.Label.Text = "Code"
	p.Y.Label.Text = "Frequency"
	p.Y.Min = 0
	p.Y.Tick.Marker = countTicks{}

	names := make([]string, len(ft.Codes))
	tops := make(plotter.XYs, len(ft.Codes))
	texts := make([]string, len(ft.Codes))
	maxCount := 0
	for i, c := range ft.Codes {
		bar, err := plotter.NewBarChart(plotter.Values{float64(c.Count)}, vg.Points(18))
		if err != nil {
			return "", err
		}
		bar.XMin = float64(i)
		bar.Color = plotutil.Color(i)
		bar.LineStyle.Width = 0
		p.Add(bar)

		names[i] = c.Code
		tops[i] = plotter.XY{X: float64(i), Y: float64(c.Count)}
		texts[i] = strconv.Itoa(c.Count)
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}
	p.NominalX(names...)
	p.Y.Max = float64(maxCount) * 1.1 // headroom for the count labels

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: tops, Labels: texts})
	if err != nil {
		return "", err
	}
	labels.Offset = vg.Point{X: -vg.Points(4), Y: vg.Points(3)}
	p.Add(labels)

	// Write to SVG
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
