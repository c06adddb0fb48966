package fxaa

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
		want    float32
		exact   bool
	}{
		{"black", 0, 0, 0, 0, true},
		{"pure red", 1, 0, 0, 0.2126729, true},
		{"pure green", 0, 1, 0, 0.7151522, true},
		{"pure blue", 0, 0, 1, 0.0721750, true},
		// The three weights sum to 1 within one float32 ULP, not exactly.
		{"white", 1, 1, 1, 1.0, false},
		{"mid gray", 0.5, 0.5, 0.5, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.r, tt.g, tt.b)
			if tt.exact {
				if got != tt.want {
					t.Errorf("Luminance(%v, %v, %v) = %v, want exactly %v",
						tt.r, tt.g, tt.b, got, tt.want)
				}
			} else if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Luminance(%v, %v, %v) = %v, want %v within 1e-6",
					tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// TestLumaRows_Invariant verifies that after the pass, every luma texel
// equals the luminance of the corresponding color texel.
func TestLumaRows_Invariant(t *testing.T) {
	const w, h = 13, 9
	src := makeGradientBuffer(t, w, h)
	luma, _ := NewLumaBuffer(w, h)

	lumaRows(src, luma, 0, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(x, y)
			want := Luminance(r, g, b)
			if got := luma.At(x, y); got != want {
				t.Fatalf("luma[%d,%d] = %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestLumaRows_PartialBands verifies the pass composes from disjoint row
// bands, which is how the worker pool invokes it.
func TestLumaRows_PartialBands(t *testing.T) {
	const w, h = 8, 8
	src := makeGradientBuffer(t, w, h)

	whole, _ := NewLumaBuffer(w, h)
	lumaRows(src, whole, 0, h)

	banded, _ := NewLumaBuffer(w, h)
	lumaRows(src, banded, 3, 8)
	lumaRows(src, banded, 0, 3)

	for i, v := range banded.Data() {
		if v != whole.Data()[i] {
			t.Fatalf("banded[%d] = %v, want %v", i, v, whole.Data()[i])
		}
	}
}

// makeGradientBuffer fills a buffer with a smooth deterministic pattern
// covering a range of channel values.
func makeGradientBuffer(t *testing.T, w, h int) *ColorBuffer {
	t.Helper()
	buf, err := NewColorBuffer(w, h)
	if err != nil {
		t.Fatalf("NewColorBuffer: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx := float64(x) / float64(w)
			fy := float64(y) / float64(h)
			buf.Set(x, y,
				float32(0.5+0.5*math.Sin(7*fx+3*fy)),
				float32(fx),
				float32(fy*fy),
				1,
			)
		}
	}
	return buf
}
