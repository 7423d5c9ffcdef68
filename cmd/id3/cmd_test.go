package main

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
)

func TestSplitTable(t *testing.T) {
	table := &dataset.Table{Header: []string{"A", "T"}}
	for i := 0; i < 200; i++ {
		table.Rows = append(table.Rows, []string{"x", "yes"})
	}
	output, split := splitTable(table, 25, rand.New(rand.NewSource(1)))
	if len(output.Rows)+len(split.Rows) != 200 {
		t.Fatalf("expected 200 rows but got %d", len(output.Rows)+len(split.Rows))
	}
	if len(split.Rows) < 25 || len(split.Rows) > 75 {
		t.Errorf("expected about 50 rows in the split set but got %d", len(split.Rows))
	}
	all, none := splitTable(table, 100, rand.New(rand.NewSource(1)))
	if len(all.Rows) != 0 || len(none.Rows) != 200 {
		t.Errorf("expected every row in the split set but got %d and %d", len(all.Rows), len(none.Rows))
	}
}

func TestTreeLocationValidate(t *testing.T) {
	cases := []struct {
		location treeLocation
		valid    bool
	}{
		{treeLocation{location: "tree.json", metadata: "metadata.yml"}, true},
		{treeLocation{location: "tree.json"}, false},
		{treeLocation{location: "redis://localhost:6379/weather"}, true},
	}
	for _, c := range cases {
		if err := c.location.Validate(); (err == nil) != c.valid {
			t.Errorf("%+v: expected valid %v but got %v", c.location, c.valid, err)
		}
	}
}

func TestGrowThenLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "training.csv")
	err := os.WriteFile(input, []byte("A,B,T\nx,p,yes\nx,q,yes\ny,p,no\ny,q,no\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	rcc := &rootCmdConfig{}
	ctx := context.Background()
	in := &tableLocation{location: input}
	table, err := in.readTable(ctx, rcc)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 4 {
		t.Fatalf("expected 4 rows but got %d", len(table.Rows))
	}
	tl := &treeLocation{location: filepath.Join(dir, "tree.json"), metadata: filepath.Join(dir, "metadata.yml")}
	tr, err := id3.Train(table)
	if err != nil {
		t.Fatal(err)
	}
	if err := tl.saveTree(ctx, rcc, tr); err != nil {
		t.Fatal(err)
	}
	loaded, err := tl.loadTree(ctx, rcc)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.String() != tr.String() {
		t.Errorf("expected tree\n%s\nbut got\n%s", tr, loaded)
	}
	out := &tableLocation{location: filepath.Join(dir, "copy.db"), table: "samples"}
	if err := out.writeTable(ctx, rcc, table); err != nil {
		t.Fatal(err)
	}
	copied, err := out.readTable(ctx, rcc)
	if err != nil {
		t.Fatal(err)
	}
	var expected, actual bytes.Buffer
	for _, r := range table.Rows {
		expected.WriteString(strings.Join(r, ",") + "\n")
	}
	for _, r := range copied.Rows {
		actual.WriteString(strings.Join(r, ",") + "\n")
	}
	if expected.String() != actual.String() {
		t.Errorf("expected rows\n%s\nbut got\n%s", expected.String(), actual.String())
	}
}
