package fxaa

// Rec.709 relative-luminance weights for linear RGB.
const (
	lumaWeightR = 0.2126729
	lumaWeightG = 0.7151522
	lumaWeightB = 0.0721750
)

// Luminance returns the Rec.709 relative luminance of a linear RGB color.
// The result is a perceptual brightness scalar; alpha does not contribute.
func Luminance(r, g, b float32) float32 {
	return r*lumaWeightR + g*lumaWeightG + b*lumaWeightB
}

// lumaRows runs the luminance pass over rows [y0, y1) of src, writing one
// scalar per texel into dst. Pure and stateless per texel; rows can be
// processed in any order and in parallel.
func lumaRows(src *ColorBuffer, dst *LumaBuffer, y0, y1 int) {
	w := src.width
	in := src.data
	out := dst.data

	for y := y0; y < y1; y++ {
		ci := y * w * 4
		li := y * w
		for x := 0; x < w; x++ {
			out[li+x] = Luminance(in[ci], in[ci+1], in[ci+2])
			ci += 4
		}
	}
}
