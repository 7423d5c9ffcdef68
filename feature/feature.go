/*
Package feature provides the attributes a tree is grown on: each Feature
holds the values observed for one column of the training data, numbered
with dense integer codes in the order they were first seen.
*/
package feature

import "fmt"

/*
Feature represents a categorical property that can be observed on a row.
It can only take a value among the finite set found in the training data.
*/
type Feature struct {
	name   string
	values []string
	codes  map[string]int
}

/*
New takes a name string and a slice of value strings and returns a feature
with the given name whose values are coded by their position in the slice.
Duplicated values are an error.
*/
func New(name string, values []string) (*Feature, error) {
	f := &Feature{name: name, codes: make(map[string]int, len(values))}
	for _, v := range values {
		if _, ok := f.codes[v]; ok {
			return nil, fmt.Errorf("feature %s: duplicated value %q", name, v)
		}
		f.add(v)
	}
	return f, nil
}

func newEmpty(name string) *Feature {
	return &Feature{name: name, codes: make(map[string]int)}
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
Code takes a value string and returns its code and true, or -1 and false if
the value was never seen for the feature.
*/
func (f *Feature) Code(value string) (int, bool) {
	c, ok := f.codes[value]
	if !ok {
		return -1, false
	}
	return c, true
}

/*
Value takes a code and returns the string value it stands for. It panics if
the code is out of range, as codes only come from the feature itself.
*/
func (f *Feature) Value(code int) string {
	return f.values[code]
}

// Values returns the values of the feature in code order.
func (f *Feature) Values() []string {
	return f.values
}

// Count returns the number of distinct values of the feature.
func (f *Feature) Count() int {
	return len(f.values)
}

func (f *Feature) String() string {
	return f.name
}

// add codes value if unseen and returns its code.
func (f *Feature) add(value string) int {
	if c, ok := f.codes[value]; ok {
		return c
	}
	c := len(f.values)
	f.codes[value] = c
	f.values = append(f.values, value)
	return c
}
