package sellbook

import (
	"math"
	"testing"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name              string
		current, previous float64
		want              Percent
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"equal", 100, 100, 0},
		{"both zero", 0, 0, 0},
		{"from zero up", 10, 0, Percent(math.Inf(1))},
		{"from zero down", -10, 0, Percent(math.Inf(-1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentChange(tt.current, tt.previous); !got.Equal(tt.want) {
				t.Errorf("PercentChange(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestPercentSignedString(t *testing.T) {
	tests := []struct {
		p    Percent
		want string
	}{
		{12.5, "+12.50%"},
		{-3.75, "-3.75%"},
		{0, "-"},
	}
	for _, tt := range tests {
		if got := tt.p.SignedString(); got != tt.want {
			t.Errorf("SignedString(%v) = %q, want %q", float64(tt.p), got, tt.want)
		}
	}
}
