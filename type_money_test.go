package rentbook

import "testing"

func TestMoney_Arithmetic(t *testing.T) {
	if got := M(750).DivInt(30).MulInt(92).Round2(); !got.Equal(M(2300.00)) {
		t.Errorf("750/30*92 = %s, want $2,300.00", got)
	}
	if got := M(100).DivInt(8).MulInt(8); !got.Equal(M(100)) {
		t.Errorf("100/8*8 = %s, want exactly $100.00", got)
	}
	if got := M(489.60).Sub(M(100)); !got.Equal(M(389.60)) {
		t.Errorf("489.60-100 = %s", got)
	}
	if got := M(900).Min(M(680)); !got.Equal(M(680)) {
		t.Errorf("min(900,680) = %s", got)
	}
}

func TestMoney_Strings(t *testing.T) {
	if got := M(2300).String(); got != "$2,300.00" {
		t.Errorf("String() = %q", got)
	}
	if got := M(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q", got)
	}
	if got := M(12.5).SignedString(); got != "+$12.50" {
		t.Errorf("positive SignedString() = %q", got)
	}
}

func TestPercent_Strings(t *testing.T) {
	if got := Percent(34.6).String(); got != "34.6%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q", got)
	}
}

func TestRatio_GuardsZeroDenominator(t *testing.T) {
	if got := ratio(M(10), M(0)); got != nil {
		t.Errorf("ratio with zero denominator = %s, want nil", got)
	}
	if got := ratio(M(250), M(450)); got == nil || !got.Equal(55.6) {
		t.Errorf("250/450 = %v, want 55.6%%", got)
	}
	if got := countRatio(9, 26); got == nil || !got.Equal(34.6) {
		t.Errorf("9/26 = %v, want 34.6%%", got)
	}
	if got := countRatio(0, 0); got != nil {
		t.Errorf("0/0 = %v, want nil", got)
	}
}
