package tree

import (
	"errors"
	"math"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

func testingIndex(t *testing.T) *feature.Index {
	idx, err := feature.NewIndex([]string{"outlook", "windy", "play"}, [][]string{
		{"sunny", "false", "no"},
		{"overcast", "true", "yes"},
		{"rain", "false", "maybe"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

// outlook=sunny -> windy=false -> no, windy=true -> yes
// outlook=overcast -> yes
// outlook=rain -> windy=false -> maybe, windy=true -> maybe
func testingTree(t *testing.T) *Tree {
	return New(&Internal{
		Feature: 0,
		Children: []Node{
			&Internal{Feature: 1, Children: []Node{Leaf{0}, Leaf{1}}},
			Leaf{1},
			&Internal{Feature: 1, Children: []Node{Leaf{2}, Leaf{2}}},
		},
	}, testingIndex(t))
}

func TestClassify(t *testing.T) {
	tr := testingTree(t)
	cases := []struct {
		row      []string
		expected string
	}{
		{[]string{"sunny", "false"}, "no"},
		{[]string{"sunny", "true", "whatever"}, "yes"},
		{[]string{"overcast", "unseen"}, "yes"},
		{[]string{"rain", "true"}, "maybe"},
		// unseen outlook at the root: leaves are no, yes, yes, maybe, maybe
		// and the tie between yes and maybe goes to the lowest code
		{[]string{"snow", "false"}, "yes"},
		// unseen windy under sunny: subtree leaves are no and yes
		{[]string{"sunny", "?"}, "no"},
		{[]string{"rain", "?"}, "maybe"},
	}
	for _, c := range cases {
		code, err := tr.Classify(c.row)
		if err != nil {
			t.Fatalf("classifying %v: %v", c.row, err)
		}
		if actual := tr.Index.Class().Value(code); actual != c.expected {
			t.Errorf("classifying %v: expected %s but got %s", c.row, c.expected, actual)
		}
	}
}

func TestClassifyFallbackIsSubtreeNotRootMajority(t *testing.T) {
	idx := testingIndex(t)
	// The root majority is maybe (3 leaves), the sunny subtree majority is no.
	tr := New(&Internal{
		Feature: 0,
		Children: []Node{
			&Internal{Feature: 1, Children: []Node{Leaf{0}, Leaf{0}}},
			Leaf{2},
			&Internal{Feature: 1, Children: []Node{Leaf{2}, Leaf{2}}},
		},
	}, idx)
	if c := tr.SubtreeClass(tr.Root); idx.Class().Value(c) != "maybe" {
		t.Fatalf("expected root majority maybe but got %s", idx.Class().Value(c))
	}
	code, err := tr.Classify([]string{"sunny", "unseen"})
	if err != nil {
		t.Fatal(err)
	}
	if idx.Class().Value(code) != "no" {
		t.Errorf("expected subtree majority no but got %s", idx.Class().Value(code))
	}
}

func TestClassifyErrors(t *testing.T) {
	var nilTree *Tree
	if _, err := nilTree.Classify([]string{"a"}); err != ErrModelNotTrained {
		t.Errorf("expected ErrModelNotTrained but got %v", err)
	}
	if _, err := (&Tree{}).ClassifyTable(&dataset.Table{}); err != ErrModelNotTrained {
		t.Errorf("expected ErrModelNotTrained but got %v", err)
	}
	if _, err := testingTree(t).Classify([]string{"sunny"}); !errors.Is(err, dataset.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for short row but got %v", err)
	}
	if _, err := testingTree(t).ClassifyTable(nil); !errors.Is(err, dataset.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for nil table but got %v", err)
	}
	if _, err := testingTree(t).Test(nil); !errors.Is(err, dataset.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for nil table to test but got %v", err)
	}
}

func TestClassifyTableAndTest(t *testing.T) {
	tr := testingTree(t)
	table := &dataset.Table{
		Header: []string{"outlook", "windy", "play"},
		Rows: [][]string{
			{"sunny", "false", "no"},
			{"overcast", "false", "yes"},
			{"rain", "true", "no"},
			{"snow", "true", "yes"},
		},
	}
	labels, err := tr.ClassifyTable(table)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"no", "yes", "maybe", "yes"}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("row %d: expected %s but got %s", i+1, expected[i], labels[i])
		}
	}
	rate, err := tr.Test(table)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rate-0.75) > 1e-9 {
		t.Errorf("expected success rate 0.75 but got %f", rate)
	}
}

func TestString(t *testing.T) {
	expected := "outlook=sunny\n" +
		"\twindy=false\n" +
		"\t\tClass: no\n" +
		"\twindy=true\n" +
		"\t\tClass: yes\n" +
		"outlook=overcast\n" +
		"\tClass: yes\n" +
		"outlook=rain\n" +
		"\twindy=false\n" +
		"\t\tClass: maybe\n" +
		"\twindy=true\n" +
		"\t\tClass: maybe\n"
	if actual := testingTree(t).String(); actual != expected {
		t.Errorf("expected\n%s\nbut got\n%s", expected, actual)
	}
	if actual := New(Leaf{1}, testingIndex(t)).String(); actual != "Class: yes\n" {
		t.Errorf("unexpected single leaf rendering %q", actual)
	}
}

func TestValidate(t *testing.T) {
	idx := testingIndex(t)
	if err := testingTree(t).Validate(); err != nil {
		t.Errorf("expected valid tree but got %v", err)
	}
	invalid := map[string]*Tree{
		"repeated feature": New(&Internal{Feature: 1, Children: []Node{
			&Internal{Feature: 1, Children: []Node{Leaf{0}, Leaf{1}}},
			Leaf{0},
		}}, idx),
		"class split":    New(&Internal{Feature: 2, Children: []Node{Leaf{0}, Leaf{1}, Leaf{2}}}, idx),
		"missing child":  New(&Internal{Feature: 1, Children: []Node{Leaf{0}}}, idx),
		"nil child":      New(&Internal{Feature: 1, Children: []Node{Leaf{0}, nil}}, idx),
		"unknown class":  New(Leaf{3}, idx),
		"negative class": New(Leaf{-1}, idx),
	}
	for name, tr := range invalid {
		if err := tr.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestDepthAndLeaves(t *testing.T) {
	tr := testingTree(t)
	if tr.Depth() != 2 {
		t.Errorf("expected depth 2 but got %d", tr.Depth())
	}
	if tr.Leaves() != 5 {
		t.Errorf("expected 5 leaves but got %d", tr.Leaves())
	}
}

func TestClassifyWithOnlyAsksForPathFeatures(t *testing.T) {
	tr := testingTree(t)
	var asked []int
	code, err := tr.ClassifyWith(func(f int) (string, error) {
		asked = append(asked, f)
		return "overcast", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Index.Class().Value(code) != "yes" {
		t.Errorf("expected yes but got %s", tr.Index.Class().Value(code))
	}
	if len(asked) != 1 || asked[0] != 0 {
		t.Errorf("expected only outlook to be asked but got %v", asked)
	}
	failure := errors.New("no more input")
	if _, err := tr.ClassifyWith(func(int) (string, error) { return "", failure }); err != failure {
		t.Errorf("expected input error but got %v", err)
	}
}
