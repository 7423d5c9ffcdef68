/*
Package inputsample provides rows whose values are read from an io.Reader
as they are needed, asking for each of them first.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pbanos/id3/feature"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(*feature.Feature) error
	RejectValueFor(*feature.Feature, string) error
}

/*
Sample represents a row whose feature values are retrieved from a reader.
A feature value is requested using a FeatureValueRequester before reading
it, and read only once.
*/
type Sample struct {
	obtainedValues        map[int]string
	undefinedValue        string
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	index                 *feature.Index
}

/*
New takes an io.Reader, a feature.Index, a FeatureValueRequester and an
undefinedValue coding string and returns a Sample.

The returned Sample ValueFor method reads feature values first requesting
them with the given FeatureValueRequester and then parsing the values from
the reader.

The parsing expects each value to be presented ending with the '\n'
character, that is in new lines. Lines will be read until one with a value
of the feature or the undefinedValue is found; other lines are rejected
with the FeatureValueRequester's RejectValueFor method.
*/
func New(r io.Reader, idx *feature.Index, featureValueRequester FeatureValueRequester, undefinedValue string) *Sample {
	return &Sample{make(map[int]string), undefinedValue, bufio.NewScanner(r), featureValueRequester, idx}
}

/*
ValueFor takes a feature column and returns the value of the sample for it.
The undefined value is returned as is, so it is never a value of the
feature.
*/
func (rs *Sample) ValueFor(f int) (string, error) {
	value, ok := rs.obtainedValues[f]
	if ok {
		return value, nil
	}
	if f < 0 || f >= rs.index.ClassIndex() {
		return "", fmt.Errorf("have no information about feature %d, do not know how to read its value", f)
	}
	ft := rs.index.Feature(f)
	err := rs.featureValueRequester.RequestValueFor(ft)
	if err != nil {
		return "", err
	}
	for rs.scanner.Scan() {
		line := rs.scanner.Text()
		if _, ok := ft.Code(line); ok || line == rs.undefinedValue {
			rs.obtainedValues[f] = line
			return line, nil
		}
		err = rs.featureValueRequester.RejectValueFor(ft, line)
		if err != nil {
			return "", err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return "", err
	}
	return "", fmt.Errorf("EOF when requesting value for %s", ft.Name())
}
