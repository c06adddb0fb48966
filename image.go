package fxaa

import (
	"image"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
)

// srgbTable maps an 8-bit sRGB-encoded channel value to linear space.
// Built once at init; the decode side is a pure table lookup.
var srgbTable [256]float32

func init() {
	for i := range srgbTable {
		c := float32(i) / 255
		if c <= 0.04045 {
			srgbTable[i] = c / 12.92
		} else {
			srgbTable[i] = math32.Pow((c+0.055)/1.055, 2.4)
		}
	}
}

// linearToSRGB encodes a linear channel value as an 8-bit sRGB value,
// clamping to [0, 1] first.
func linearToSRGB(v float32) uint8 {
	v = clamp01(v)
	if v <= 0.0031308 {
		v *= 12.92
	} else {
		v = 1.055*math32.Pow(v, 1/2.4) - 0.055
	}
	return uint8(v*255 + 0.5)
}

// FromImage decodes a standard image into a linear-color buffer. The
// input is normalized to NRGBA first (non-NRGBA sources are converted via
// x/image/draw), then each color channel is sRGB-decoded into linear
// space. Alpha is carried through linearly.
func FromImage(img image.Image) (*ColorBuffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	buf, err := NewColorBuffer(w, h)
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
	}

	for y := 0; y < h; y++ {
		pi := nrgba.PixOffset(nrgba.Rect.Min.X, nrgba.Rect.Min.Y+y)
		bi := y * w * 4
		for x := 0; x < w; x++ {
			buf.data[bi] = srgbTable[nrgba.Pix[pi]]
			buf.data[bi+1] = srgbTable[nrgba.Pix[pi+1]]
			buf.data[bi+2] = srgbTable[nrgba.Pix[pi+2]]
			buf.data[bi+3] = float32(nrgba.Pix[pi+3]) / 255
			pi += 4
			bi += 4
		}
	}
	return buf, nil
}

// Image encodes the linear color buffer as an sRGB NRGBA image suitable
// for PNG encoding or presentation.
func (b *ColorBuffer) Image() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		bi := y * b.width * 4
		pi := out.PixOffset(0, y)
		for x := 0; x < b.width; x++ {
			out.Pix[pi] = linearToSRGB(b.data[bi])
			out.Pix[pi+1] = linearToSRGB(b.data[bi+1])
			out.Pix[pi+2] = linearToSRGB(b.data[bi+2])
			out.Pix[pi+3] = uint8(clamp01(b.data[bi+3])*255 + 0.5)
			pi += 4
			bi += 4
		}
	}
	return out
}

// Gray encodes the luminance buffer as a gamma-encoded grayscale image
// for inspection. Linear luminance values are sRGB-encoded so that the
// result looks perceptually correct on screen.
func (l *LumaBuffer) Gray() *image.Gray {
	out := image.NewGray(image.Rect(0, 0, l.width, l.height))
	for y := 0; y < l.height; y++ {
		li := y * l.width
		pi := out.PixOffset(0, y)
		for x := 0; x < l.width; x++ {
			out.Pix[pi] = linearToSRGB(l.data[li+x])
			pi++
		}
	}
	return out
}
