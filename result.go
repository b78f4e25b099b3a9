package crossval

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"text/tabwriter"
)

// Fold is a single train/test repetition. The train range always strictly
// precedes the test range and the two never overlap.
type Fold struct {
	Train IndexRange `json:"train"`
	Test  IndexRange `json:"test"`
}

// SplitResult holds the folds produced by one call to a Splitter along with
// the origins used to place them. Folds appear in draw order.
type SplitResult struct {
	NSamples int    `json:"n_samples"`
	Origins  []int  `json:"origins"`
	Folds    []Fold `json:"folds"`
}

// Pairs yields each fold's train and test ranges in draw order.
func (r *SplitResult) Pairs() iter.Seq2[IndexRange, IndexRange] {
	return func(yield func(IndexRange, IndexRange) bool) {
		for _, fold := range r.Folds {
			if !yield(fold.Train, fold.Test) {
				return
			}
		}
	}
}

// TablePrint writes a human readable summary of the folds.
func (r *SplitResult) TablePrint(w io.Writer) error {
	fmt.Fprintf(w, "Samples: %d, Folds: %d\n", r.NSamples, len(r.Folds))
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tbl, "Fold\tOrigin\tTrain\tTest\t\n")
	for i, fold := range r.Folds {
		// a hand-built result may carry fewer origins than folds
		origin := ""
		if i < len(r.Origins) {
			origin = strconv.Itoa(r.Origins[i])
		}
		fmt.Fprintf(tbl, "%d\t%s\t[%d, %d)\t[%d, %d)\t\n",
			i, origin,
			fold.Train.Start, fold.Train.End,
			fold.Test.Start, fold.Test.End)
	}
	return tbl.Flush()
}
