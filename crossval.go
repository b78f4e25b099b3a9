// Package crossval provides resampling strategies for ordered, time-indexed
// data. Splits are expressed as contiguous index ranges into a dataset of
// length N so the caller can slice its own data container; the package never
// inspects feature or label values.
package crossval

// Splitter generates train/test index range pairs for a dataset of a given
// length. Implementations are consumed polymorphically by hyperparameter
// search drivers that need to know the number of repetitions up front.
type Splitter interface {
	// Split draws the train/test partitions for a dataset with nSamples
	// elements. Each call produces a fresh, independent set of folds.
	Split(nSamples int) (*SplitResult, error)

	// NSplits reports how many folds a call to Split will produce.
	NSplits() int
}
