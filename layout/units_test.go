package layout

import "testing"

func TestAbsMinMaxClamp(t *testing.T) {
	if got := Abs(5).Min(3); got != 3 {
		t.Errorf("Min = %v, want 3", got)
	}
	if got := Abs(5).Max(3); got != 5 {
		t.Errorf("Max = %v, want 5", got)
	}
	if got := Abs(10).Clamp(0, 5); got != 5 {
		t.Errorf("Clamp = %v, want 5", got)
	}
	if got := Abs(-10).Clamp(0, 5); got != 0 {
		t.Errorf("Clamp = %v, want 0", got)
	}
}

func TestAbsClampMin0(t *testing.T) {
	if got := Abs(-5).ClampMin0(); got != 0 {
		t.Errorf("ClampMin0(-5) = %v, want 0", got)
	}
	if got := Abs(5).ClampMin0(); got != 5 {
		t.Errorf("ClampMin0(5) = %v, want 5", got)
	}
}

func TestInfiniteSentinels(t *testing.T) {
	if Infinite().IsFinite() {
		t.Error("Infinite() should not report IsFinite")
	}
	if NegativeInfinite().IsFinite() {
		t.Error("NegativeInfinite() should not report IsFinite")
	}
	if Infinite() <= NegativeInfinite() {
		t.Error("Infinite() should be greater than NegativeInfinite()")
	}
}

func TestRelRelativeTo(t *testing.T) {
	r := Rel{Abs: 10, Rel: Ratio(0.5)}
	if got := r.RelativeTo(200); got != 110 {
		t.Errorf("RelativeTo(200) = %v, want 110", got)
	}
}

func TestRelIsZero(t *testing.T) {
	if !(Rel{}).IsZero() {
		t.Error("zero-value Rel should be IsZero")
	}
	if (Rel{Abs: 1}).IsZero() {
		t.Error("Rel with nonzero Abs should not be IsZero")
	}
}
