package vm

import "testing"

func TestAddCarryAndOverflow(t *testing.T) {
	tests := []struct {
		name         string
		a, b         uint16
		wantCarry    bool
		wantOverflow bool
		wantResult   uint16
	}{
		{"no carry no overflow", 1, 2, false, false, 3},
		{"unsigned wrap is carry", 0xFFFF, 1, true, false, 0},
		{"positive overflow into negative", 0x7FFF, 1, false, true, 0x8000},
		{"negative overflow into positive", 0x8000, 0x8000, true, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a + tt.b
			if result != tt.wantResult {
				t.Fatalf("result = 0x%04X, want 0x%04X", result, tt.wantResult)
			}
			if got := AddCarry(tt.a, tt.b, result); got != tt.wantCarry {
				t.Errorf("AddCarry(0x%04X, 0x%04X) = %v, want %v", tt.a, tt.b, got, tt.wantCarry)
			}
			if got := AddOverflow(tt.a, tt.b, result); got != tt.wantOverflow {
				t.Errorf("AddOverflow(0x%04X, 0x%04X) = %v, want %v", tt.a, tt.b, got, tt.wantOverflow)
			}
		})
	}
}

func TestSubCarryAndOverflow(t *testing.T) {
	tests := []struct {
		name         string
		a, b         uint16
		wantCarry    bool
		wantOverflow bool
	}{
		{"no borrow", 5, 3, false, false},
		{"borrow required", 3, 5, true, false},
		{"signed overflow: min minus positive", 0x8000, 1, false, true},
		{"signed overflow: max minus negative", 0x7FFF, 0xFFFF, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a - tt.b
			if got := SubCarry(tt.a, tt.b); got != tt.wantCarry {
				t.Errorf("SubCarry(0x%04X, 0x%04X) = %v, want %v", tt.a, tt.b, got, tt.wantCarry)
			}
			if got := SubOverflow(tt.a, tt.b, result); got != tt.wantOverflow {
				t.Errorf("SubOverflow(0x%04X, 0x%04X) = %v, want %v", tt.a, tt.b, got, tt.wantOverflow)
			}
		})
	}
}

func TestFlagsEvaluate(t *testing.T) {
	f := &Flags{Carry: true, Zero: true}
	cases := []struct {
		cond ConditionCode
		want bool
	}{
		{CondCarry, true},
		{CondNotCarry, false},
		{CondZero, true},
		{CondNotZero, false},
		{CondOverflow, false},
		{CondNotOverflow, true},
		{CondSigned, false},
		{CondNotSigned, true},
	}
	for _, c := range cases {
		if got := f.Evaluate(c.cond); got != c.want {
			t.Errorf("Evaluate(%s) = %v, want %v", c.cond, got, c.want)
		}
	}
}

func TestUpdateNZ(t *testing.T) {
	var f Flags
	f.UpdateNZ(0)
	if !f.Zero || f.Signed {
		t.Errorf("UpdateNZ(0): Zero=%v Signed=%v, want true false", f.Zero, f.Signed)
	}
	f.UpdateNZ(0x8000)
	if f.Zero || !f.Signed {
		t.Errorf("UpdateNZ(0x8000): Zero=%v Signed=%v, want false true", f.Zero, f.Signed)
	}
}
