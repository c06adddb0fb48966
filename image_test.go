package fxaa

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// TestSRGBRoundTrip: decoding an 8-bit sRGB value to linear and encoding
// it back must reproduce every byte value exactly.
func TestSRGBRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got := linearToSRGB(srgbTable[v]); got != uint8(v) {
			t.Errorf("linearToSRGB(srgbTable[%d]) = %d, want %d", v, got, v)
		}
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 128})

	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}

	r, g, b, a := buf.At(0, 0)
	if r != 1 || g != 1 || b != 1 || a != 1 {
		t.Errorf("At(0,0) = (%v,%v,%v,%v), want (1,1,1,1)", r, g, b, a)
	}

	r, _, _, a = buf.At(1, 0)
	if r != 0 {
		t.Errorf("At(1,0) r = %v, want 0", r)
	}
	if math.Abs(float64(a)-128.0/255.0) > 1e-6 {
		t.Errorf("At(1,0) a = %v, want %v", a, 128.0/255.0)
	}
}

// TestFromImage_ConvertsOtherFormats: non-NRGBA inputs go through the
// x/image/draw normalization path.
func TestFromImage_ConvertsOtherFormats(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetGray(x, y, color.Gray{Y: 128})
		}
	}

	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}

	want := srgbTable[128]
	r, g, b, a := buf.At(1, 1)
	if r != want || g != want || b != want {
		t.Errorf("At(1,1) = (%v,%v,%v), want all %v", r, g, b, want)
	}
	if a != 1 {
		t.Errorf("At(1,1) a = %v, want 1", a)
	}
}

// TestFromImage_SubImage: images whose bounds do not start at the origin
// must decode correctly.
func TestFromImage_SubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(2, 2, color.NRGBA{G: 255, A: 255})

	sub, ok := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)
	if !ok {
		t.Fatal("SubImage did not return *image.NRGBA")
	}

	buf, err := FromImage(sub)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if buf.Width() != 2 || buf.Height() != 2 {
		t.Fatalf("buffer = %dx%d, want 2x2", buf.Width(), buf.Height())
	}

	if r, _, _, _ := buf.At(0, 0); r != 1 {
		t.Errorf("At(0,0) r = %v, want 1", r)
	}
	if _, g, _, _ := buf.At(1, 1); g != 1 {
		t.Errorf("At(1,1) g = %v, want 1", g)
	}
}

func TestColorBufferImage_Clamps(t *testing.T) {
	buf, _ := NewColorBuffer(3, 1)
	buf.Set(0, 0, -1, -0.5, -0.01, -2)
	buf.Set(1, 0, 2, 1.5, 100, 3)
	buf.Set(2, 0, 1, 1, 1, 1)

	img := buf.Image()

	if c := img.NRGBAAt(0, 0); c.R != 0 || c.G != 0 || c.B != 0 || c.A != 0 {
		t.Errorf("NRGBAAt(0,0) = %+v, want all 0", c)
	}
	if c := img.NRGBAAt(1, 0); c.R != 255 || c.G != 255 || c.B != 255 || c.A != 255 {
		t.Errorf("NRGBAAt(1,0) = %+v, want all 255", c)
	}
	if c := img.NRGBAAt(2, 0); c.R != 255 || c.A != 255 {
		t.Errorf("NRGBAAt(2,0) = %+v, want white opaque", c)
	}
}

// TestImageRoundTrip: buffer -> image -> buffer stays within 8-bit sRGB
// quantization error.
func TestImageRoundTrip(t *testing.T) {
	src := makeGradientBuffer(t, 8, 8)
	// Alpha gradient too.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r, g, b, _ := src.At(x, y)
			src.Set(x, y, r, g, b, float32(x+8*y)/63)
		}
	}

	back, err := FromImage(src.Image())
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}

	for i, v := range back.Data() {
		if math.Abs(float64(v-src.Data()[i])) > 0.01 {
			t.Fatalf("Data()[%d] = %v, want %v within 0.01", i, v, src.Data()[i])
		}
	}
}

func TestLumaBufferGray(t *testing.T) {
	luma, _ := NewLumaBuffer(2, 1)
	luma.Set(0, 0, 0)
	luma.Set(1, 0, 1)

	img := luma.Gray()

	if got := img.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("GrayAt(0,0) = %d, want 0", got)
	}
	if got := img.GrayAt(1, 0).Y; got != 255 {
		t.Errorf("GrayAt(1,0) = %d, want 255", got)
	}
}
