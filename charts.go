package crossval

import (
	"fmt"
	"math"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineTSeries generates an echart multi-line chart for some arbitrary
// time/value combination. The input y is a slice of series that must have the
// same length as the input time slice. NaN values are skipped so masked
// regions leave gaps.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			if math.IsNaN(y[i][j]) {
				lineData[i] = append(lineData[i], opts.LineData{Value: "-"})
				continue
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(t)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// LineSplits generates an echart line chart overlaying each fold's train and
// test windows on the source series. The time and value slices must cover the
// dataset the split result was produced from.
func LineSplits(title string, t []time.Time, y []float64, res *SplitResult) *charts.Line {
	seriesName := make([]string, 0, 2*len(res.Folds)+1)
	series := make([][]float64, 0, 2*len(res.Folds)+1)

	seriesName = append(seriesName, "Actual")
	series = append(series, y)

	for i, fold := range res.Folds {
		seriesName = append(seriesName,
			fmt.Sprintf("Train %d", i),
			fmt.Sprintf("Test %d", i),
		)
		series = append(series,
			maskOutsideRange(y, fold.Train),
			maskOutsideRange(y, fold.Test),
		)
	}

	return LineTSeries(title, seriesName, t, series)
}

func maskOutsideRange(y []float64, r IndexRange) []float64 {
	masked := make([]float64, len(y))
	for i := 0; i < len(y); i++ {
		if i >= r.Start && i < r.End {
			masked[i] = y[i]
			continue
		}
		masked[i] = math.NaN()
	}
	return masked
}
