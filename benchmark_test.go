package fxaa

import (
	"math"
	"testing"
)

// benchFrame builds a 1280x720 frame with hard-edged geometry so the
// blend pass exercises both the early-out and the edge search.
func benchFrame(b *testing.B) *ColorBuffer {
	b.Helper()
	const w, h = 1280, 720
	buf, err := NewColorBuffer(w, h)
	if err != nil {
		b.Fatalf("NewColorBuffer: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float32(0.1)
			if int(float64(x)+0.3*float64(y))%32 < 4 {
				v = 0.9
			}
			if math.Hypot(float64(x-w/2), float64(y-h/2)) < 180 {
				v = 1 - v
			}
			buf.Set(x, y, v, v*0.8, v*0.5, 1)
		}
	}
	return buf
}

func BenchmarkLumaPass(b *testing.B) {
	src := benchFrame(b)
	luma, _ := NewLumaBuffer(src.Width(), src.Height())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		lumaRows(src, luma, 0, src.Height())
	}
}

func BenchmarkBlendPass(b *testing.B) {
	src := benchFrame(b)
	luma, _ := NewLumaBuffer(src.Width(), src.Height())
	lumaRows(src, luma, 0, src.Height())
	dst, _ := NewColorBuffer(src.Width(), src.Height())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		blendRows(src, luma, dst, 0, src.Height())
	}
}

func BenchmarkFilterApplyInto(b *testing.B) {
	src := benchFrame(b)
	dst, _ := NewColorBuffer(src.Width(), src.Height())

	f := New()
	defer f.Close()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := f.ApplyInto(src, dst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilterApplyInto_SingleWorker(b *testing.B) {
	src := benchFrame(b)
	dst, _ := NewColorBuffer(src.Width(), src.Height())

	f := New(WithWorkers(1))
	defer f.Close()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := f.ApplyInto(src, dst); err != nil {
			b.Fatal(err)
		}
	}
}
