package fix

import "testing"

func TestFromAndFloat(t *testing.T) {
	x := From(1.5)
	if x != One+Half {
		t.Errorf("From(1.5) = %d, want %d", x, One+Half)
	}
	if got := x.Float(); got != 1.5 {
		t.Errorf("Float() = %v, want 1.5", got)
	}
	if From(-0.5) != -Half {
		t.Errorf("From(-0.5) = %d, want %d", From(-0.5), -Half)
	}
}

func TestMulWidens(t *testing.T) {
	// 300 * 300 overflows a 32-bit intermediate without widening.
	a := FromInt(300)
	got := a.Mul(a)
	if got != FromInt(90000) {
		t.Errorf("300*300 = %v, want 90000", got.Float())
	}
}

func TestMulFraction(t *testing.T) {
	got := From(2.5).Mul(From(0.5))
	if got != From(1.25) {
		t.Errorf("2.5*0.5 = %v, want 1.25", got.Float())
	}
}

func TestDiv(t *testing.T) {
	got := FromInt(10).Div(FromInt(4))
	if got != From(2.5) {
		t.Errorf("10/4 = %v, want 2.5", got.Float())
	}
}

func TestDivByZero(t *testing.T) {
	if got := One.Div(0); got != 0 {
		t.Errorf("1/0 = %d, want 0", got)
	}
}

func TestFloorNegative(t *testing.T) {
	got := From(-1.25).Floor()
	if got != FromInt(-2) {
		t.Errorf("floor(-1.25) = %v, want -2", got.Float())
	}
	if From(3.75).Floor() != FromInt(3) {
		t.Errorf("floor(3.75) = %v, want 3", From(3.75).Floor().Float())
	}
}

func TestIntRoundsDown(t *testing.T) {
	if got := From(-0.5).Int(); got != -1 {
		t.Errorf("Int(-0.5) = %d, want -1", got)
	}
	if got := From(2.9).Int(); got != 2 {
		t.Errorf("Int(2.9) = %d, want 2", got)
	}
}

func TestMid(t *testing.T) {
	if got := Mid(FromInt(5), FromInt(1), FromInt(3)); got != FromInt(3) {
		t.Errorf("Mid(5,1,3) = %v, want 3", got.Float())
	}
	if got := Mid(FromInt(0), FromInt(7), FromInt(10)); got != FromInt(7) {
		t.Errorf("Mid(0,7,10) = %v, want 7", got.Float())
	}
}

func TestSgn(t *testing.T) {
	if From(3.2).Sgn() != One {
		t.Error("Sgn(3.2) != 1")
	}
	if From(-0.1).Sgn() != -One {
		t.Error("Sgn(-0.1) != -1")
	}
	if T(0).Sgn() != 0 {
		t.Error("Sgn(0) != 0")
	}
}

func TestSqrt(t *testing.T) {
	if got := FromInt(4).Sqrt(); got != FromInt(2) {
		t.Errorf("sqrt(4) = %v, want 2", got.Float())
	}
	got := FromInt(2).Sqrt().Float()
	if got < 1.40 || got > 1.43 {
		t.Errorf("sqrt(2) = %v, want ~1.414", got)
	}
	if FromInt(-1).Sqrt() != 0 {
		t.Error("sqrt of negative should be 0")
	}
}

func TestSinCosTablePoints(t *testing.T) {
	if Sin(0) != 0 {
		t.Errorf("Sin(0) = %d, want 0", Sin(0))
	}
	if got := Sin(From(0.25)); got != One {
		t.Errorf("Sin(quarter turn) = %v, want 1", got.Float())
	}
	if got := Cos(0); got != One {
		t.Errorf("Cos(0) = %v, want 1", got.Float())
	}
	if got := Sin(Half); got != 0 {
		t.Errorf("Sin(half turn) = %v, want 0", got.Float())
	}
	if got := Sin(From(0.75)); got != -One {
		t.Errorf("Sin(3/4 turn) = %v, want -1", got.Float())
	}
}

func TestSinWrapsNegativeAngles(t *testing.T) {
	if Sin(From(-0.25)) != Sin(From(0.75)) {
		t.Error("Sin(-1/4 turn) should equal Sin(3/4 turn)")
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(From(0.75)); got != From(-0.25) {
		t.Errorf("NormalizeAngle(0.75) = %v, want -0.25", got.Float())
	}
	if got := NormalizeAngle(From(-0.75)); got != From(0.25) {
		t.Errorf("NormalizeAngle(-0.75) = %v, want 0.25", got.Float())
	}
}

func TestSmoothstepEndpoints(t *testing.T) {
	if got := Smoothstep(0); got != 0 {
		t.Errorf("Smoothstep(0) = %v, want 0", got.Float())
	}
	got := Smoothstep(One).Float()
	if got < 0.999 || got > 1.001 {
		t.Errorf("Smoothstep(1) = %v, want ~1", got)
	}
}

func TestRandDeterministic(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 100; i++ {
		if a.Next(FromInt(10)) != b.Next(FromInt(10)) {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}

func TestRandRange(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 1000; i++ {
		v := r.Next(FromInt(5))
		if v < 0 || v >= FromInt(5) {
			t.Fatalf("Next(5) = %v, out of [0,5)", v.Float())
		}
	}
}

func TestRandSymRange(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 1000; i++ {
		v := r.Sym(FromInt(3))
		if v <= FromInt(-3) || v > FromInt(3) {
			t.Fatalf("Sym(3) = %v, out of (-3,3]", v.Float())
		}
	}
}
