package dataset

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

const epsilon = 1e-9

func testingTable() *Table {
	return &Table{
		Header: []string{"A", "B", "T"},
		Rows: [][]string{
			{"x", "p", "yes"},
			{"x", "q", "yes"},
			{"y", "p", "no"},
			{"y", "q", "no"},
		},
	}
}

func TestNewTable(t *testing.T) {
	if _, err := NewTable([][]string{{"a", "class"}}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for header only table but got %v", err)
	}
	if _, err := NewTable(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty table but got %v", err)
	}
	if _, err := NewTable([][]string{{"a", "class"}, {"x", "yes"}, {"x"}}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for ragged table but got %v", err)
	}
	table, err := NewTable([][]string{{"a", "class"}, {"x", "yes"}})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(table.Header, []string{"a", "class"}) || len(table.Rows) != 1 {
		t.Errorf("unexpected table %v", table)
	}
}

func TestImpurityAndGain(t *testing.T) {
	_, d, err := FromTable(testingTable())
	if err != nil {
		t.Fatal(err)
	}
	if actual := d.Impurity(); math.Abs(actual-0.5) > epsilon {
		t.Errorf("expected impurity 0.5 but got %f", actual)
	}
	if actual := d.InformationGain(0); math.Abs(actual-0.5) > epsilon {
		t.Errorf("expected gain on A of 0.5 but got %f", actual)
	}
	if actual := d.InformationGain(1); math.Abs(actual) > epsilon {
		t.Errorf("expected gain on B of 0 but got %f", actual)
	}
	if actual := d.AverageImpurity(1); math.Abs(actual-0.5) > epsilon {
		t.Errorf("expected average impurity on B of 0.5 but got %f", actual)
	}
}

func TestPartitionKeepsEmptyGroups(t *testing.T) {
	_, d, err := FromTable(testingTable())
	if err != nil {
		t.Fatal(err)
	}
	groups := d.Partition(0)
	if len(groups) != 2 || groups[0].Count() != 2 || groups[1].Count() != 2 {
		t.Fatalf("unexpected partition on A")
	}
	sub := groups[0].Partition(0)
	if len(sub) != 2 || sub[0].Count() != 2 || sub[1].Count() != 0 {
		t.Fatalf("expected partition of x rows on A to have an empty group for y")
	}
	if sub[1].Impurity() != 0 || sub[1].AverageImpurity(1) != 0 {
		t.Error("expected empty dataset to have no impurity")
	}
	if !groups[0].Pure() || d.Pure() {
		t.Error("unexpected purity")
	}
	if groups[1].MajorityClass() != 1 {
		t.Errorf("expected majority class 1 (no) but got %d", groups[1].MajorityClass())
	}
}

func TestMajorityClassTieBreak(t *testing.T) {
	table := &Table{
		Header: []string{"A", "T"},
		Rows:   [][]string{{"x", "b"}, {"x", "a"}, {"y", "a"}, {"y", "b"}},
	}
	_, d, err := FromTable(table)
	if err != nil {
		t.Fatal(err)
	}
	if c := d.MajorityClass(); c != 0 {
		t.Errorf("expected tie to resolve to first seen class code 0 but got %d", c)
	}
	if Mode(nil) != 0 || Mode([]int{1, 3, 3}) != 1 {
		t.Error("unexpected mode")
	}
}

func TestImpurityBoundsAndGainNonNegative(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		table := &Table{Header: []string{"A", "B", "C", "T"}}
		n := 1 + r.Intn(30)
		for i := 0; i < n; i++ {
			table.Rows = append(table.Rows, []string{
				string(rune('a' + r.Intn(3))),
				string(rune('a' + r.Intn(2))),
				string(rune('a' + r.Intn(4))),
				string(rune('k' + r.Intn(3))),
			})
		}
		idx, d, err := FromTable(table)
		if err != nil {
			t.Fatal(err)
		}
		k := 0
		for _, c := range d.ClassCounts() {
			if c > 0 {
				k++
			}
		}
		imp := d.Impurity()
		if imp < -epsilon || imp > 1-1/float64(k)+epsilon {
			t.Errorf("trial %d: impurity %f out of [0, %f]", trial, imp, 1-1/float64(k))
		}
		if (math.Abs(imp) < epsilon) != d.Pure() {
			t.Errorf("trial %d: impurity %f but purity %v", trial, imp, d.Pure())
		}
		for f := 0; f < idx.ClassIndex(); f++ {
			if g := d.InformationGain(f); g < -epsilon {
				t.Errorf("trial %d: negative gain %f on feature %d", trial, g, f)
			}
		}
	}
}
