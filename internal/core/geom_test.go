package core

import "testing"

func TestAbsSign(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
	if Sign(-7) != -1 || Sign(7) != 1 || Sign(0) != 0 {
		t.Error("Sign returned wrong value")
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		x, m, expected int
	}{
		{5, 32, 5},
		{32, 32, 0},
		{-1, 32, 31},
		{-33, 32, 31},
		{64, 32, 0},
	}

	for _, tc := range tests {
		if got := Mod(tc.x, tc.m); got != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.x, tc.m, got, tc.expected)
		}
	}
}
