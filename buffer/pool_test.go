package buffer

import (
	"errors"
	"testing"
	"unsafe"
)

func TestPoolGetZeroesRecycledSamples(t *testing.T) {
	p := NewPool()

	for _, n := range []int{8, 3, 16} {
		b := p.Get(n)
		if b.Len() != n || b.Layout() != Flat(n) {
			t.Fatalf("Get(%d): len=%d layout=%v", n, b.Len(), b.Layout())
		}
		for i, v := range b.Samples() {
			if v != 0 {
				t.Fatalf("Get(%d) sample %d = %v, want 0", n, i, v)
			}
		}
		for i := range b.Samples() {
			b.Samples()[i] = 200
		}
		p.Put(b)
	}
	p.Put(nil)
}

func TestPoolGetAligned(t *testing.T) {
	p := NewPool()

	for _, align := range []int{16, 32, 64} {
		for _, n := range []int{1, 4, 33, 0} {
			b, err := p.GetAligned(n, align)
			if err != nil {
				t.Fatalf("GetAligned(%d, %d): %v", n, align, err)
			}
			s := b.Samples()
			if s == nil || len(s) != n || cap(s) != n {
				t.Fatalf("GetAligned(%d, %d) len=%d cap=%d nil=%t", n, align, len(s), cap(s), s == nil)
			}
			if !IsAligned(s, align) {
				t.Fatalf("GetAligned(%d, %d) misaligned by %d bytes", n, align, Misalignment(s, align))
			}
			for i, v := range s {
				if v != 0 {
					t.Fatalf("GetAligned(%d, %d) sample %d = %v, want 0", n, align, i, v)
				}
				s[i] = 255
			}
			p.Put(b)
		}
	}
}

func TestPoolGetAlignedRejectsBadAlignment(t *testing.T) {
	if _, err := NewPool().GetAligned(4, 12); !errors.Is(err, ErrInvalidAlignment) {
		t.Fatalf("err = %v, want ErrInvalidAlignment", err)
	}
	if _, err := NewPool().GetAligned(-1, 32); !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
}

func TestRealignReusesBackingArray(t *testing.T) {
	var b Buffer
	if err := b.realign(64, 32); err != nil {
		t.Fatal(err)
	}
	raw := unsafe.SliceData(b.raw)
	b.Samples()[0] = 7

	for _, n := range []int{64, 10, 1} {
		if err := b.realign(n, 32); err != nil {
			t.Fatal(err)
		}
		if unsafe.SliceData(b.raw) != raw {
			t.Fatalf("realign(%d) reallocated a large enough backing array", n)
		}
		if !IsAligned(b.Samples(), 32) || b.Samples()[0] != 0 {
			t.Fatalf("realign(%d): aligned=%t first=%v", n, IsAligned(b.Samples(), 32), b.Samples()[0])
		}
	}

	if err := b.realign(100, 32); err != nil {
		t.Fatal(err)
	}
	if unsafe.SliceData(b.raw) == raw {
		t.Fatal("realign(100) should grow the backing array")
	}
}
