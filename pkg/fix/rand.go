package fix

// Rand is a small linear congruential generator producing fixed-point
// values. The same seed yields the same sequence on every platform.
type Rand struct {
	state uint32
}

// NewRand returns a generator seeded with the given state.
func NewRand(seed uint32) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Next returns a value in [0, max). The upper 16 state bits are used as
// the fraction for better mixing.
func (r *Rand) Next(max T) T {
	r.state = r.state*1103515245 + 12345
	frac := int64((r.state >> 16) & 0xFFFF)
	return T((int64(max) * frac) >> 16)
}

// Sym returns a value in (-f, f), symmetric around zero.
func (r *Rand) Sym(f T) T {
	return f - r.Next(f.Mul(Two))
}

// IntN returns an integer in [0, n).
func (r *Rand) IntN(n int) int {
	return r.Next(FromInt(n)).Int()
}
