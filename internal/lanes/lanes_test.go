package lanes

import "testing"

func TestF64x4Ops(t *testing.T) {
	a := LoadF64x4([]float64{10, 20, 30, 40, 50})
	b := SplatF64x4(2)

	tests := []struct {
		name string
		got  F64x4
		want F64x4
	}{
		{"Sub", a.Sub(b), F64x4{8, 18, 28, 38}},
		{"Mul", a.Mul(b), F64x4{20, 40, 60, 80}},
		{"Div", a.Div(b), F64x4{5, 10, 15, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestStoreWritesOnePacket(t *testing.T) {
	dst := []float64{-1, -1, -1, -1}
	SplatF64x2(7).Store(dst)
	if dst[0] != 7 || dst[1] != 7 || dst[2] != -1 {
		t.Fatalf("Store wrote %v", dst)
	}

	wide := make([]float64, 9)
	SplatF64x8(1).Store(wide)
	if wide[7] != 1 || wide[8] != 0 {
		t.Fatalf("F64x8 Store wrote %v", wide)
	}
}

func TestLoadShortSlicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic loading a partial packet")
		}
	}()
	LoadF64x8(make([]float64, 7))
}
