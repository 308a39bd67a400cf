package block

import (
	"errors"
	"testing"
)

func TestNewArrayValidatesShape(t *testing.T) {
	if _, err := NewArray([]int{2, 3}, make([]float64, 5)); !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape for length mismatch, got %v", err)
	}
	if _, err := NewArray([]int{-1, 3}, []float64{}); !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape for negative dim, got %v", err)
	}

	a, err := NewArray([]int{}, []float64{4})
	if err != nil {
		t.Fatalf("scalar array error: %v", err)
	}
	if a.Rank() != 0 || a.Len() != 0 || a.Size() != 1 {
		t.Fatalf("scalar rank=%d len=%d size=%d", a.Rank(), a.Len(), a.Size())
	}
}

func TestNewArrayCopiesInput(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	shape := []int{2, 2}
	a, err := NewArray(shape, data)
	if err != nil {
		t.Fatalf("NewArray error: %v", err)
	}
	data[0] = 99
	shape[0] = 7
	if a.At(0, 0) != 1 || a.Len() != 2 {
		t.Fatalf("array aliased its inputs: at=%v len=%d", a.At(0, 0), a.Len())
	}

	got := a.Data()
	got[1] = 42
	if a.At(0, 1) != 2 {
		t.Fatalf("Data returned a view: %v", a.At(0, 1))
	}
}

func TestFromBlocks(t *testing.T) {
	a, err := FromBlocks([][]complex128{{1, 2i}, {3, 4i}, {5, 6i}})
	if err != nil {
		t.Fatalf("FromBlocks error: %v", err)
	}
	if s := a.Shape(); len(s) != 2 || s[0] != 3 || s[1] != 2 {
		t.Fatalf("shape=%v want=[3 2]", s)
	}
	if a.At(2, 1) != 6i {
		t.Fatalf("At(2,1)=%v want=6i", a.At(2, 1))
	}
	if b := a.Block(1); b[0] != 3 || b[1] != 4i {
		t.Fatalf("Block(1)=%v", b)
	}

	if _, err := FromBlocks([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape for ragged blocks, got %v", err)
	}
}

func TestAtPanicsOnBadIndex(t *testing.T) {
	a, _ := NewArray([]int{2, 2}, []float64{1, 2, 3, 4})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = a.At(2, 0)
}

func TestToComplex(t *testing.T) {
	a, _ := NewArray([]int{2, 2, 2}, []float64{1, 2, 3, 4, 5, 6, 7, 8})

	c, err := ToComplex(a)
	if err != nil {
		t.Fatalf("ToComplex error: %v", err)
	}
	if s := c.Shape(); len(s) != 2 || s[0] != 2 || s[1] != 2 {
		t.Fatalf("shape=%v want=[2 2]", s)
	}
	want := []complex128{1 + 2i, 3 + 4i, 5 + 6i, 7 + 8i}
	for i, v := range c.Data() {
		if v != want[i] {
			t.Fatalf("data[%d]=%v want=%v", i, v, want[i])
		}
	}
}

func TestToComplexErrors(t *testing.T) {
	if _, err := ToComplex(nil); !errors.Is(err, ErrNotArray) {
		t.Fatalf("expected ErrNotArray, got %v", err)
	}
	scalar, _ := NewArray([]int{}, []float64{1})
	if _, err := ToComplex(scalar); !errors.Is(err, ErrRank) {
		t.Fatalf("expected ErrRank, got %v", err)
	}
	a, _ := NewArray([]int{2, 3}, make([]float64, 6))
	if _, err := ToComplex(a); !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}
