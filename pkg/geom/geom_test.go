package geom

import (
	"testing"

	"github.com/wrenbyte/starlance/pkg/fix"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{fix.FromInt(1), fix.FromInt(2), fix.FromInt(3)}
	b := Vec3{fix.FromInt(4), fix.FromInt(5), fix.FromInt(6)}
	got := a.Add(b)
	want := Vec3{fix.FromInt(5), fix.FromInt(7), fix.FromInt(9)}
	if got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{fix.FromInt(1), fix.FromInt(2), fix.FromInt(3)}
	b := Vec3{fix.FromInt(4), -fix.FromInt(5), fix.FromInt(6)}
	got := a.Dot(b)
	if got != fix.FromInt(12) {
		t.Errorf("Dot() = %v, want 12", got.Float())
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{fix.FromInt(3), fix.FromInt(4), 0}
	if got := v.Length(); got != fix.FromInt(5) {
		t.Errorf("Length() = %v, want 5", got.Float())
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{fix.FromInt(10), 0, fix.FromInt(10)}
	n := v.Normalize()
	l := n.Length().Float()
	if l < 0.98 || l > 1.02 {
		t.Errorf("Normalize().Length() = %v, want ~1", l)
	}
	if n.Y != 0 {
		t.Errorf("Normalize() moved the zero component: %v", n)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestIdentityApply(t *testing.T) {
	p := Vec3{fix.FromInt(2), -fix.FromInt(3), fix.FromInt(4)}
	if got := Identity().ApplyPoint(p); got != p {
		t.Errorf("Identity().ApplyPoint() = %v, want %v", got, p)
	}
}

func TestTranslationApply(t *testing.T) {
	m := Translation(fix.FromInt(1), fix.FromInt(2), fix.FromInt(3))
	got := m.ApplyPoint(Vec3{fix.FromInt(10), 0, 0})
	want := Vec3{fix.FromInt(11), fix.FromInt(2), fix.FromInt(3)}
	if got != want {
		t.Errorf("ApplyPoint() = %v, want %v", got, want)
	}
}

func TestApplyDirIgnoresTranslation(t *testing.T) {
	m := Translation(fix.FromInt(5), fix.FromInt(5), fix.FromInt(5))
	d := Vec3{fix.One, 0, 0}
	if got := m.ApplyDir(d); got != d {
		t.Errorf("ApplyDir() = %v, want %v", got, d)
	}
}

func TestRotZQuarterTurn(t *testing.T) {
	m := RotZ(fix.From(0.25))
	got := m.ApplyPoint(Vec3{fix.One, 0, 0})
	// With the clockwise sine convention x rotates onto +y.
	if got.X.Abs() > fix.From(0.01) {
		t.Errorf("rotated X = %v, want ~0", got.X.Float())
	}
	if (got.Y - fix.One).Abs() > fix.From(0.01) {
		t.Errorf("rotated Y = %v, want ~1", got.Y.Float())
	}
}

func TestRotYPreservesY(t *testing.T) {
	m := RotY(fix.From(0.37))
	got := m.ApplyPoint(Vec3{fix.FromInt(2), fix.FromInt(7), -fix.FromInt(1)})
	if got.Y != fix.FromInt(7) {
		t.Errorf("RotY changed Y: %v", got.Y.Float())
	}
}

func TestMulComposes(t *testing.T) {
	rot := RotZ(fix.From(0.25))
	trans := Translation(fix.FromInt(10), 0, 0)
	p := Vec3{fix.One, 0, 0}

	composed := trans.Mul(rot).ApplyPoint(p)
	step := trans.ApplyPoint(rot.ApplyPoint(p))
	if composed != step {
		t.Errorf("Mul().ApplyPoint() = %v, want %v", composed, step)
	}
}

func TestTransposeRotInvertsRotation(t *testing.T) {
	m := RotX(fix.From(0.1)).Mul(RotY(fix.From(0.2)))
	inv := m.TransposeRot()
	p := Vec3{fix.FromInt(3), fix.FromInt(4), fix.FromInt(5)}
	got := inv.ApplyDir(m.ApplyDir(p))

	tol := fix.From(0.01)
	if (got.X-p.X).Abs() > tol || (got.Y-p.Y).Abs() > tol || (got.Z-p.Z).Abs() > tol {
		t.Errorf("transpose round trip = %v, want %v", got, p)
	}
}

func TestRotationLengthPreserved(t *testing.T) {
	m := RotY(fix.From(0.13)).Mul(RotZ(fix.From(0.41)))
	p := Vec3{fix.FromInt(3), fix.FromInt(4), 0}
	got := m.ApplyDir(p).Length().Float()
	if got < 4.95 || got > 5.05 {
		t.Errorf("rotated length = %v, want ~5", got)
	}
}
