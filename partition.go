package id3

import (
	"github.com/pbanos/id3/dataset"
)

/*
Partition represents a partition of a dataset according to a feature
into one subset per value code of the feature, with the information gain
the split achieves to predict the class feature.
*/
type Partition struct {
	Feature         int
	Subsets         []*dataset.Dataset
	informationGain float64
}

/*
NewPartition takes a dataset and a feature column and returns the partition
of the dataset for the given feature. Subsets for values no row of the
dataset has are empty but present, so there is one per value code.
*/
func NewPartition(d *dataset.Dataset, f int) *Partition {
	return &Partition{
		Feature:         f,
		Subsets:         d.Partition(f),
		informationGain: d.InformationGain(f),
	}
}

// InformationGain returns the information gain of the partition
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

/*
BestAttribute takes a dataset and a slice marking the feature columns that
cannot be split on and returns the column with the highest information gain
among the rest, excluding the class feature. Columns are scanned left to
right and a column only replaces the current best on a strictly greater
gain, so ties go to the lowest column. If no column is available -1 is
returned.
*/
func BestAttribute(d *dataset.Dataset, excluded []bool) int {
	best := -1
	var bestGain float64
	for f := 0; f < d.Index().ClassIndex(); f++ {
		if isExcluded(excluded, f) {
			continue
		}
		gain := d.InformationGain(f)
		if best < 0 || gain > bestGain {
			best, bestGain = f, gain
		}
	}
	return best
}

func isExcluded(excluded []bool, f int) bool {
	return f < len(excluded) && excluded[f]
}
