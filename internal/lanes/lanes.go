package lanes

// F64x2 is a packet of 2 float64 lanes.
type F64x2 [2]float64

// SplatF64x2 returns a packet with every lane set to v.
func SplatF64x2(v float64) F64x2 {
	var r F64x2
	for i := range r {
		r[i] = v
	}
	return r
}

// LoadF64x2 reads the first 2 samples of s. It panics if s is shorter.
func LoadF64x2(s []float64) F64x2 {
	var r F64x2
	copy(r[:], s[:2])
	return r
}

// Store writes the packet into the first 2 samples of dst.
func (v F64x2) Store(dst []float64) {
	copy(dst[:2], v[:])
}

// Sub returns v[i] - o[i] for each lane.
func (v F64x2) Sub(o F64x2) F64x2 {
	var r F64x2
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul returns v[i] * o[i] for each lane.
func (v F64x2) Mul(o F64x2) F64x2 {
	var r F64x2
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Div returns v[i] / o[i] for each lane. Division by zero follows IEEE 754.
func (v F64x2) Div(o F64x2) F64x2 {
	var r F64x2
	for i := range v {
		r[i] = v[i] / o[i]
	}
	return r
}

// F64x4 is a packet of 4 float64 lanes.
type F64x4 [4]float64

// SplatF64x4 returns a packet with every lane set to v.
func SplatF64x4(v float64) F64x4 {
	var r F64x4
	for i := range r {
		r[i] = v
	}
	return r
}

// LoadF64x4 reads the first 4 samples of s. It panics if s is shorter.
func LoadF64x4(s []float64) F64x4 {
	var r F64x4
	copy(r[:], s[:4])
	return r
}

// Store writes the packet into the first 4 samples of dst.
func (v F64x4) Store(dst []float64) {
	copy(dst[:4], v[:])
}

// Sub returns v[i] - o[i] for each lane.
func (v F64x4) Sub(o F64x4) F64x4 {
	var r F64x4
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul returns v[i] * o[i] for each lane.
func (v F64x4) Mul(o F64x4) F64x4 {
	var r F64x4
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Div returns v[i] / o[i] for each lane. Division by zero follows IEEE 754.
func (v F64x4) Div(o F64x4) F64x4 {
	var r F64x4
	for i := range v {
		r[i] = v[i] / o[i]
	}
	return r
}

// F64x8 is a packet of 8 float64 lanes.
type F64x8 [8]float64

// SplatF64x8 returns a packet with every lane set to v.
func SplatF64x8(v float64) F64x8 {
	var r F64x8
	for i := range r {
		r[i] = v
	}
	return r
}

// LoadF64x8 reads the first 8 samples of s. It panics if s is shorter.
func LoadF64x8(s []float64) F64x8 {
	var r F64x8
	copy(r[:], s[:8])
	return r
}

// Store writes the packet into the first 8 samples of dst.
func (v F64x8) Store(dst []float64) {
	copy(dst[:8], v[:])
}

// Sub returns v[i] - o[i] for each lane.
func (v F64x8) Sub(o F64x8) F64x8 {
	var r F64x8
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul returns v[i] * o[i] for each lane.
func (v F64x8) Mul(o F64x8) F64x8 {
	var r F64x8
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Div returns v[i] / o[i] for each lane. Division by zero follows IEEE 754.
func (v F64x8) Div(o F64x8) F64x8 {
	var r F64x8
	for i := range v {
		r[i] = v[i] / o[i]
	}
	return r
}
