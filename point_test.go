package smooth

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointFinite(t *testing.T) {
	if !Pt(0, -0).IsFinite() {
		t.Error("origin should be finite")
	}
	if p := Pt(math.NaN(), 0); p.IsFinite() || !p.IsNaN() {
		t.Errorf("%v: IsFinite = %t, IsNaN = %t", p, p.IsFinite(), p.IsNaN())
	}
	if p := Pt(0, math.Inf(-1)); p.IsFinite() || !p.IsInf() {
		t.Errorf("%v: IsFinite = %t, IsInf = %t", p, p.IsFinite(), p.IsInf())
	}
}
