package grid

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

func plainItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Key: fmt.Sprintf("item-%d", i)}
	}
	return items
}

func TestCompute_TenPlainItemsFourColumns(t *testing.T) {
	layout := Compute(plainItems(10), 4, nil)

	if layout.RowCount != 3 {
		t.Fatalf("RowCount = %d, want 3", layout.RowCount)
	}
	// Rows fill 4, 4, 2.
	wantRowSizes := []int{4, 4, 2}
	for row, want := range wantRowSizes {
		if got := len(layout.Rows[row]); got != want {
			t.Errorf("row %d holds %d items, want %d", row, got, want)
		}
	}
	if pos := layout.Positions[8]; pos.Row != 2 || pos.Column != 0 {
		t.Errorf("item 8 at (row %d, col %d), want (2, 0)", pos.Row, pos.Column)
	}
}

func TestCompute_WideItemTakesFirstContiguousPair(t *testing.T) {
	items := plainItems(4)
	wide := NewWideSet()
	wide.Add(items[2].Key)

	layout := Compute(items, 4, wide)

	want := []Position{
		{Column: 0, Row: 0, Span: 1},
		{Column: 1, Row: 0, Span: 1},
		{Column: 2, Row: 0, Span: 2},
		{Column: 0, Row: 1, Span: 1},
	}
	if !reflect.DeepEqual(layout.Positions, want) {
		t.Errorf("Positions = %+v, want %+v", layout.Positions, want)
	}
}

func TestCompute_LaterItemFillsGapLeftByWide(t *testing.T) {
	// Wide item at index 1 cannot fit in column 3 of row 0 when columns
	// 0-2 are taken one at a time; first-fit leaves the gap for a later
	// single-span item rather than reshuffling.
	items := plainItems(5)
	wide := NewWideSet()
	wide.Add(items[3].Key)

	layout := Compute(items, 4, wide)

	// Items 0,1,2 take columns 0,1,2 of row 0. Item 3 (span 2) cannot use
	// the single free column 3, so it opens row 1. Item 4 backfills row 0.
	if pos := layout.Positions[3]; pos.Row != 1 || pos.Column != 0 || pos.Span != 2 {
		t.Errorf("wide item at %+v, want row 1 col 0 span 2", pos)
	}
	if pos := layout.Positions[4]; pos.Row != 0 || pos.Column != 3 {
		t.Errorf("item 4 at %+v, want backfilled to row 0 col 3", pos)
	}
}

func TestCompute_SingleColumnForcesSpanOne(t *testing.T) {
	items := plainItems(3)
	wide := NewWideSet()
	for _, item := range items {
		wide.Add(item.Key)
	}

	layout := Compute(items, 1, wide)

	for i, pos := range layout.Positions {
		if pos.Span != 1 {
			t.Errorf("item %d span = %d, want 1 at columnCount 1", i, pos.Span)
		}
		if pos.Column != 0 || pos.Row != i {
			t.Errorf("item %d at %+v, want column 0 row %d", i, pos, i)
		}
	}
}

func TestCompute_ColumnCountClampedToOne(t *testing.T) {
	layout := Compute(plainItems(2), 0, nil)
	if layout.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2 with clamped single column", layout.RowCount)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	items := plainItems(40)
	wide := NewWideSet()
	wide.Add(items[3].Key)
	wide.Add(items[17].Key)
	wide.Add(items[31].Key)

	first := Compute(items, 5, wide)
	second := Compute(items, 5, wide)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Compute with identical inputs diverged")
	}
}

func TestCompute_ResizeRecomputesEveryPositionInOrder(t *testing.T) {
	items := plainItems(12)
	wide := NewWideSet()
	wide.Add(items[5].Key)

	four := Compute(items, 4, wide)
	three := Compute(items, 3, wide)

	if four.RowCount == three.RowCount {
		t.Log("row counts happen to match; positions must still differ")
	}
	// Order is preserved: reading positions row-major visits items in
	// input order for the plain prefix.
	for i := 1; i < 5; i++ {
		prev, cur := three.Positions[i-1], three.Positions[i]
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Column < prev.Column) {
			t.Errorf("plain prefix out of order at %d: %+v then %+v", i, prev, cur)
		}
	}
	if len(three.Positions) != len(items) {
		t.Fatalf("got %d positions, want %d", len(three.Positions), len(items))
	}
}

func TestCompute_NoOverlapFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		columnCount := 1 + rng.Intn(8)
		items := plainItems(rng.Intn(120))
		wide := NewWideSet()
		for _, item := range items {
			if rng.Intn(4) == 0 {
				wide.Add(item.Key)
			}
		}

		layout := Compute(items, columnCount, wide)

		if len(layout.Positions) != len(items) {
			t.Fatalf("trial %d: %d positions for %d items", trial, len(layout.Positions), len(items))
		}
		occupied := make(map[[2]int]int)
		for i, pos := range layout.Positions {
			if pos.Span < 1 || pos.Span > columnCount {
				t.Fatalf("trial %d: item %d span %d outside [1,%d]", trial, i, pos.Span, columnCount)
			}
			if pos.Column < 0 || pos.Column+pos.Span > columnCount {
				t.Fatalf("trial %d: item %d interval [%d,%d) outside grid", trial, i, pos.Column, pos.Column+pos.Span)
			}
			for c := pos.Column; c < pos.Column+pos.Span; c++ {
				cell := [2]int{pos.Row, c}
				if other, taken := occupied[cell]; taken {
					t.Fatalf("trial %d: items %d and %d overlap at row %d col %d", trial, other, i, pos.Row, c)
				}
				occupied[cell] = i
			}
			if pos.Row >= layout.RowCount {
				t.Fatalf("trial %d: item %d row %d >= RowCount %d", trial, i, pos.Row, layout.RowCount)
			}
		}
	}
}

func TestLeadingPositions_RowMajor(t *testing.T) {
	positions := LeadingPositions(5, 3)
	want := []Position{
		{0, 0, 1}, {1, 0, 1}, {2, 0, 1},
		{0, 1, 1}, {1, 1, 1},
	}
	if !reflect.DeepEqual(positions, want) {
		t.Errorf("LeadingPositions = %+v, want %+v", positions, want)
	}
	if rows := LeadingRowCount(5, 3); rows != 2 {
		t.Errorf("LeadingRowCount = %d, want 2", rows)
	}
	if rows := LeadingRowCount(0, 3); rows != 0 {
		t.Errorf("LeadingRowCount(0) = %d, want 0", rows)
	}
}

func TestWideSet_MonotonicAndDeduplicated(t *testing.T) {
	w := NewWideSet()
	if !w.Add("a") {
		t.Error("first Add should report true")
	}
	if w.Add("a") {
		t.Error("second Add of same key should report false")
	}
	if !w.Has("a") || w.Has("b") {
		t.Error("membership wrong after adds")
	}
	if w.Len() != 1 {
		t.Errorf("Len = %d, want 1", w.Len())
	}
	var nilSet *WideSet
	if nilSet.Has("a") {
		t.Error("nil WideSet should contain nothing")
	}
}
