package mandelbrot

import (
	"testing"

	"github.com/redien/mandelbrot/misc"
)

func TestBuildRampLength(t *testing.T) {
	tests := []struct {
		name      string
		maxColors int
		want      int
	}{
		{name: "default", maxColors: 50, want: 100},
		{name: "small", maxColors: 3, want: 6},
		{name: "single", maxColors: 1, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(BuildRamp(tt.maxColors)); got != tt.want {
				t.Errorf("len(BuildRamp(%d)) = %d, want %d", tt.maxColors, got, tt.want)
			}
		})
	}
}

func TestBuildRampPalindrome(t *testing.T) {
	ramp := BuildRamp(50)
	for i := 0; i < 50; i++ {
		mirror := len(ramp) - 1 - i
		if ramp[i] != ramp[mirror] {
			t.Errorf("ramp[%d] = %v, ramp[%d] = %v; want mirrored entries equal", i, ramp[i], mirror, ramp[mirror])
		}
	}
}

// The palindromic layout makes the ramp continuous at both wrap points, so
// interpolation modulo the ramp length never shows a seam.
func TestBuildRampContinuity(t *testing.T) {
	ramp := BuildRamp(50)
	if ramp[0] != ramp[99] {
		t.Errorf("ramp[0] = %v, ramp[99] = %v; want equal", ramp[0], ramp[99])
	}
	if ramp[49] != ramp[50] {
		t.Errorf("ramp[49] = %v, ramp[50] = %v; want equal", ramp[49], ramp[50])
	}
}

func TestBuildRampChannelRange(t *testing.T) {
	for i, color := range BuildRamp(50) {
		for _, channel := range []float64{color.R, color.G, color.B} {
			if channel < 0 || channel > 1 {
				t.Errorf("ramp[%d] = %v has a channel outside [0, 1]", i, color)
			}
		}
	}
}

func TestRampAt(t *testing.T) {
	ramp := BuildRamp(50)

	tests := []struct {
		name     string
		smoothed float64
		want     Color
	}{
		{name: "integer count hits the entry exactly", smoothed: 8, want: ramp[8]},
		{name: "wraps modulo ramp length", smoothed: 108, want: ramp[8]},
		{name: "wrap boundary is seamless", smoothed: 99.5, want: ramp[99]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			red, green, blue := ramp.At(tt.smoothed)
			wantRed := uint8(tt.want.R * 255)
			wantGreen := uint8(tt.want.G * 255)
			wantBlue := uint8(tt.want.B * 255)
			if red != wantRed || green != wantGreen || blue != wantBlue {
				t.Errorf("ramp.At(%v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.smoothed, red, green, blue, wantRed, wantGreen, wantBlue)
			}
		})
	}
}

// Points that escape on the first iteration with a very large |z| carry a
// smoothed count below zero; the mapper must wrap those backwards into the
// ramp instead of indexing out of range.
func TestRampAtNegativeCount(t *testing.T) {
	ramp := BuildRamp(50)

	tests := []struct {
		name     string
		smoothed float64
		want     Color
	}{
		{name: "negative integer wraps backwards", smoothed: -1, want: ramp[99]},
		{name: "whole cycle below zero", smoothed: -100, want: ramp[0]},
		{name: "fraction below zero lands on the seam", smoothed: -0.25, want: ramp[99]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			red, green, blue := ramp.At(tt.smoothed)
			wantRed := uint8(tt.want.R * 255)
			wantGreen := uint8(tt.want.G * 255)
			wantBlue := uint8(tt.want.B * 255)
			if red != wantRed || green != wantGreen || blue != wantBlue {
				t.Errorf("ramp.At(%v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.smoothed, red, green, blue, wantRed, wantGreen, wantBlue)
			}
		})
	}
}

// End to end over the kernel: a point with an enormous first-iteration
// escape must still map to a color.
func TestRampAtImmediateEscape(t *testing.T) {
	m := NewMandelbrot(DefaultSettings())
	ramp := BuildRamp(50)

	smoothed, inside := m.EscapeTime(complex(1e12, 0))
	if inside {
		t.Fatal("EscapeTime(1e12) inside = true, want false")
	}
	if smoothed >= 0 {
		t.Fatalf("EscapeTime(1e12) = %v, expected a count below zero", smoothed)
	}
	ramp.At(smoothed)
}

func TestRampAtInterpolates(t *testing.T) {
	ramp := BuildRamp(50)

	red, green, blue := ramp.At(8.5)
	wantRed := uint8(misc.LerpFloat64(ramp[8].R, ramp[9].R, 0.5) * 255)
	wantGreen := uint8(misc.LerpFloat64(ramp[8].G, ramp[9].G, 0.5) * 255)
	wantBlue := uint8(misc.LerpFloat64(ramp[8].B, ramp[9].B, 0.5) * 255)
	if red != wantRed || green != wantGreen || blue != wantBlue {
		t.Errorf("ramp.At(8.5) = (%d, %d, %d), want midpoint (%d, %d, %d)",
			red, green, blue, wantRed, wantGreen, wantBlue)
	}
}
