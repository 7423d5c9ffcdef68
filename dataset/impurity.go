package dataset

/*
Impurity returns the impurity of the dataset for its class feature: the
probability that two labels drawn independently from its rows disagree,
1 - sum(p_c^2) with p_c the fraction of rows of class c.

It is 0 for a pure dataset and at most 1 - 1/k for k classes. An empty
dataset has impurity 0.
*/
func (d *Dataset) Impurity() float64 {
	return impurity(d.ClassCounts(), len(d.rows))
}

/*
AverageImpurity takes a feature column and returns the impurity left after
partitioning the dataset by every value of the feature: the impurity of each
partition weighted by its share of the rows. Empty partitions contribute
nothing.
*/
func (d *Dataset) AverageImpurity(f int) float64 {
	if len(d.rows) == 0 {
		return 0.0
	}
	var result float64
	total := float64(len(d.rows))
	for _, s := range d.Partition(f) {
		if len(s.rows) == 0 {
			continue
		}
		result += s.Impurity() * float64(len(s.rows)) / total
	}
	return result
}

/*
InformationGain takes a feature column and returns how much partitioning
the dataset by the feature reduces its impurity.
*/
func (d *Dataset) InformationGain(f int) float64 {
	return d.Impurity() - d.AverageImpurity(f)
}

func impurity(counts []int, total int) float64 {
	if total == 0 {
		return 0.0
	}
	result := 1.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		result -= p * p
	}
	return result
}
