package feature

import "fmt"

/*
Criterion represents a constraint on a feature: the value it must take for
a row to follow a branch of a tree.
*/
type Criterion struct {
	feature *Feature
	code    int
}

/*
NewCriterion takes a feature and one of its value codes and returns the
criterion satisfied by rows having that value for the feature.
*/
func NewCriterion(f *Feature, code int) Criterion {
	return Criterion{f, code}
}

/*
Feature returns the feature to which the constraint applies.
*/
func (c Criterion) Feature() *Feature {
	return c.feature
}

// Code returns the value code the feature is constrained to.
func (c Criterion) Code() int {
	return c.code
}

// Value returns the value the feature is constrained to.
func (c Criterion) Value() string {
	return c.feature.Value(c.code)
}

func (c Criterion) String() string {
	return fmt.Sprintf("%s=%s", c.feature.Name(), c.Value())
}
