// Package fix provides deterministic Q16.16 fixed-point arithmetic.
//
// Every quantity in the rendering core is a T: a signed 32-bit integer
// holding the real value scaled by 2^16. All operations are integer-only
// so results are bit-identical on every platform, FPU or not.
package fix

// T is a Q16.16 fixed-point number.
type T int32

const (
	// One is the fixed-point representation of 1.0.
	One T = 1 << 16
	// Half is the fixed-point representation of 0.5.
	Half T = 1 << 15
	// Two is the fixed-point representation of 2.0.
	Two T = 2 << 16

	// Epsilon guards near-zero denominators in edge-function and
	// perspective math. Divisors smaller than this in magnitude are
	// treated as degenerate.
	Epsilon T = 66 // 0.001 rounded to the nearest unit
)

// From converts a float64 to fixed point, rounding half away from zero.
// Intended for constants and configuration, not per-frame math.
func From(f float64) T {
	if f >= 0 {
		return T(f*65536.0 + 0.5)
	}
	return T(f*65536.0 - 0.5)
}

// FromInt converts an integer to fixed point.
func FromInt(i int) T {
	return T(i) << 16
}

// Float returns the value as a float64. For logging and tooling only.
func (x T) Float() float64 {
	return float64(x) / 65536.0
}

// Int truncates to an integer, rounding toward negative infinity.
func (x T) Int() int {
	return int(x >> 16)
}

// Mul multiplies two fixed-point values using a widened 64-bit
// accumulator before rescaling.
func (x T) Mul(y T) T {
	return T((int64(x) * int64(y)) >> 16)
}

// Div divides x by y. Division by zero returns 0; callers guard
// near-zero denominators with Epsilon.
func (x T) Div(y T) T {
	if y == 0 {
		return 0
	}
	return T((int64(x) << 16) / int64(y))
}

// Mod returns the remainder of x/y, truncated toward zero.
func (x T) Mod(y T) T {
	if y == 0 {
		return 0
	}
	return x % y
}

// Floor rounds toward negative infinity. Masking the fractional bits
// is exact for negative values under two's complement.
func (x T) Floor() T {
	return x &^ (One - 1)
}

// Abs returns the absolute value.
func (x T) Abs() T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two values.
func Min(a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two values.
func Max(a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Mid returns the middle of three values, which doubles as a clamp when
// the outer two are ordered bounds.
func Mid(a, b, c T) T {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}

// Sgn returns -1, 0 or +1 in fixed-point units.
func (x T) Sgn() T {
	if x > 0 {
		return One
	}
	if x < 0 {
		return -One
	}
	return 0
}

// Sqrt returns the square root. The argument is shifted up for extra
// precision, reduced by integer Newton iteration, then rescaled.
func (x T) Sqrt() T {
	if x <= 0 {
		return 0
	}
	return T(isqrt(uint32(x)<<8) << 4)
}

func isqrt(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) >> 1
	for y < x {
		x = y
		y = (x + n/x) >> 1
	}
	return x
}

// Smoothstep maps a ratio in [0,1] onto the cubic ease r*r*(3-2r).
func Smoothstep(r T) T {
	r2 := r.Mul(r)
	return r2.Mul(From(3.0) - Two.Mul(r))
}

// NormalizeAngle wraps an angle in turns into (-0.5, 0.5].
func NormalizeAngle(a T) T {
	a = a.Mod(One)
	if a > Half {
		a -= One
	}
	if a < -Half {
		a += One
	}
	return a
}
