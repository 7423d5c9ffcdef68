/*
Package mongotable reads and writes dataset.Tables from/to
MongoDB collections.

Every row is a document with a field per feature, in
header order. The "_id" field is reserved for MongoDB and
never read as a feature.
*/
package mongotable

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	// DefaultCollectionName is the collection samples are read from and
	// written to when no other is given
	DefaultCollectionName = "samples"

	idField = "_id"

	// MaxSampleInsertionsPerCommand is the maximum number of documents
	// inserted with a single insert command by WriteTable
	MaxSampleInsertionsPerCommand = 100
)

/*
Open takes a MongoDB connection URL and returns a session to its default
database or an error if it fails to connect to it.
*/
func Open(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %v", err)
	}
	return session, nil
}

/*
ReadTable takes a context, a MongoDB session and a collection name and
returns a dataset.Table with a row per document of the collection on the
session's default database, in "_id" order so documents inserted by
WriteTable are read in the order they were written. The header is taken from
the fields of the first document; documents lacking any of them make the function return an error
wrapping dataset.ErrInvalidInput.
*/
func ReadTable(ctx context.Context, session *mgo.Session, collection string) (*dataset.Table, error) {
	iter := session.DB("").C(collection).Find(nil).Sort(idField).Iter()
	t := &dataset.Table{}
	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		var doc bson.D
		if !iter.Next(&doc) {
			break
		}
		if t.Header == nil {
			t.Header = Header(doc)
		}
		row, err := Row(t.Header, doc)
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("%w: document %d of collection %s: %v", dataset.ErrInvalidInput, line, collection, err)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", collection, err)
	}
	return t, nil
}

/*
WriteTable takes a context, a MongoDB session, a collection name and a
dataset.Table and inserts a document for every row on the collection. It
returns the number of rows written and an error if not all could be.
*/
func WriteTable(ctx context.Context, session *mgo.Session, collection string, t *dataset.Table) (int, error) {
	for _, name := range t.Header {
		if err := validFieldName(name); err != nil {
			return 0, err
		}
	}
	c := session.DB("").C(collection)
	var written int
	for written < len(t.Rows) {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		end := written + MaxSampleInsertionsPerCommand
		if end > len(t.Rows) {
			end = len(t.Rows)
		}
		docs := make([]interface{}, 0, end-written)
		for _, row := range t.Rows[written:end] {
			docs = append(docs, append(bson.D{{Name: idField, Value: bson.NewObjectId()}}, Document(t.Header, row)...))
		}
		err := c.Insert(docs...)
		if err != nil {
			return written, fmt.Errorf("inserting documents %d to %d on collection %s: %v", written+1, end, collection, err)
		}
		written = end
	}
	return written, nil
}

// Header returns the names of the fields of doc but "_id", in order.
func Header(doc bson.D) []string {
	header := make([]string, 0, len(doc))
	for _, e := range doc {
		if e.Name != idField {
			header = append(header, e.Name)
		}
	}
	return header
}

/*
Row takes a header and a document and returns the values of the document
for the header fields, formatted as strings. Missing or null fields are an
error.
*/
func Row(header []string, doc bson.D) ([]string, error) {
	values := make(map[string]interface{}, len(doc))
	for _, e := range doc {
		values[e.Name] = e.Value
	}
	row := make([]string, len(header))
	for i, name := range header {
		v, ok := values[name]
		if !ok || v == nil {
			return nil, fmt.Errorf("no value for field %s", name)
		}
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprintf("%v", v)
		}
		row[i] = s
	}
	return row, nil
}

// Document returns the document for row with a field per header name.
func Document(header []string, row []string) bson.D {
	doc := make(bson.D, len(header))
	for i, name := range header {
		doc[i] = bson.DocElem{Name: name, Value: row[i]}
	}
	return doc
}

func validFieldName(name string) error {
	if name == idField {
		return fmt.Errorf("invalid feature name %q: reserved collection field", idField)
	}
	if strings.ContainsAny(name, ".$") {
		return fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", name, ".", "$")
	}
	return nil
}
