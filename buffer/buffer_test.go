package buffer

import (
	"errors"
	"math"
	"testing"
)

func TestNewZeroFilled(t *testing.T) {
	b := New(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	if b.Layout() != Flat(8) {
		t.Fatalf("Layout() = %v, want %v", b.Layout(), Flat(8))
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	b := New(-1)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", b.Len())
	}
}

func TestNewImage(t *testing.T) {
	b, err := NewImage(Layout{Width: 4, Height: 3, Channels: 3})
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	if b.Len() != 36 {
		t.Fatalf("Len() = %d, want 36", b.Len())
	}
}

func TestNewImageInvalid(t *testing.T) {
	tests := []Layout{
		{Width: 0, Height: 1, Channels: 1},
		{Width: 1, Height: -2, Channels: 3},
		{Width: 1, Height: 1, Channels: 0},
		{Width: math.MaxInt / 2, Height: 3, Channels: 1},
	}
	for _, l := range tests {
		if _, err := NewImage(l); !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("NewImage(%v) error = %v, want ErrInvalidLayout", l, err)
		}
	}
}

func TestFromSliceSharesMemory(t *testing.T) {
	s := []float64{1, 2, 3}
	b := FromSlice(s)
	b.Samples()[0] = 99
	if s[0] != 99 {
		t.Fatal("FromSlice should share underlying memory")
	}
}

func TestFromImageLengthMismatch(t *testing.T) {
	_, err := FromImage(Layout{Width: 2, Height: 2, Channels: 3}, make([]float64, 11))
	if !errors.Is(err, ErrLayoutMismatch) {
		t.Fatalf("FromImage error = %v, want ErrLayoutMismatch", err)
	}
}

func TestPixelAccessInterleaved(t *testing.T) {
	b, err := NewImage(Layout{Width: 2, Height: 2, Channels: 3})
	if err != nil {
		t.Fatal(err)
	}
	b.Set(1, 1, 2, 7)
	if got := b.Samples()[11]; got != 7 {
		t.Fatalf("Samples()[11] = %v, want 7", got)
	}
	if got := b.At(1, 1, 2); got != 7 {
		t.Fatalf("At(1,1,2) = %v, want 7", got)
	}
	if idx := b.Index(1, 0, 0); idx != 3 {
		t.Fatalf("Index(1,0,0) = %d, want 3", idx)
	}
}

func TestIndexOutOfRangePanics(t *testing.T) {
	b := New(4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range pixel")
		}
	}()
	b.Index(4, 0, 0)
}

func TestResizeGrow(t *testing.T) {
	b := New(2)
	b.Samples()[0] = 1
	b.Samples()[1] = 2
	b.Resize(4)
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	if b.Samples()[0] != 1 || b.Samples()[1] != 2 {
		t.Fatal("Resize did not preserve existing data")
	}
	if b.Samples()[2] != 0 || b.Samples()[3] != 0 {
		t.Fatal("Resize did not zero new elements")
	}
}

func TestResizeReusesCapacityAndZeroes(t *testing.T) {
	b := New(8)
	b.Samples()[5] = 3
	b.Resize(2)
	b.Resize(8)
	if b.Samples()[5] != 0 {
		t.Fatal("Resize exposed stale data")
	}
}

func TestZeroRangeClamps(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3, 4})
	b.ZeroRange(-3, 2)
	b.ZeroRange(3, 100)
	want := []float64{0, 0, 3, 0}
	for i, v := range b.Samples() {
		if v != want[i] {
			t.Fatalf("Samples()[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestCopyIsDeep(t *testing.T) {
	b, err := FromImage(Layout{Width: 1, Height: 1, Channels: 2}, []float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	c := b.Copy()
	c.Samples()[0] = 9
	if b.Samples()[0] != 1 {
		t.Fatal("Copy shares memory with the original")
	}
	if c.Layout() != b.Layout() {
		t.Fatalf("Copy layout = %v, want %v", c.Layout(), b.Layout())
	}
}
