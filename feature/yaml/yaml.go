/*
Package yaml provides methods to write and parse feature.Index specifications,
also known as metadata, as YAML documents.
*/
package yaml

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pbanos/id3/feature"
	yaml "gopkg.in/yaml.v2"
)

type metadata struct {
	Class    string        `yaml:"class"`
	Features []featureSpec `yaml:"features"`
}

type featureSpec struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

/*
ReadIndex takes a slice of bytes with a metadata document in YAML and returns
the feature.Index described on it or an error.

The document is expected to be an object with a features property listing the
features in column order, each as an object with a name (possibly empty) and
the list of its values in code order. The last feature is the class feature; if the document
has a class property it must name it.
*/
func ReadIndex(md []byte) (*feature.Index, error) {
	m := &metadata{}
	err := yaml.Unmarshal(md, m)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if len(m.Features) == 0 {
		return nil, fmt.Errorf("metadata has no feature information")
	}
	features := make([]*feature.Feature, 0, len(m.Features))
	for _, fs := range m.Features {
		f, err := feature.New(fs.Name, fs.Values)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	if m.Class != "" && m.Class != features[len(features)-1].Name() {
		return nil, fmt.Errorf("class feature %q must be the last feature, found %q", m.Class, features[len(features)-1].Name())
	}
	return feature.NewIndexFromFeatures(features)
}

/*
ReadIndexFromFile takes a filepath string, reads its contents and uses
ReadIndex to parse it and return the feature.Index or an error.
*/
func ReadIndexFromFile(filepath string) (*feature.Index, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	idx, err := ReadIndex(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return idx, err
}

/*
MarshalIndex takes a feature.Index and returns its YAML metadata document
as a slice of bytes or an error.
*/
func MarshalIndex(idx *feature.Index) ([]byte, error) {
	m := &metadata{Class: idx.Class().Name()}
	for _, f := range idx.Features() {
		values := f.Values()
		if values == nil {
			values = []string{}
		}
		m.Features = append(m.Features, featureSpec{Name: f.Name(), Values: values})
	}
	return yaml.Marshal(m)
}

/*
WriteIndex takes an io.Writer and a feature.Index and writes the YAML
metadata document for the index onto the writer.
*/
func WriteIndex(w io.Writer, idx *feature.Index) error {
	md, err := MarshalIndex(idx)
	if err != nil {
		return fmt.Errorf("serializing metadata as yml: %v", err)
	}
	_, err = w.Write(md)
	return err
}

/*
WriteIndexToFile takes a filepath string and a feature.Index, creates the
file and writes the metadata document for the index on it.
*/
func WriteIndexToFile(filepath string, idx *feature.Index) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("creating metadata yml file %s: %v", filepath, err)
	}
	err = WriteIndex(f, idx)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
