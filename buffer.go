package fxaa

import (
	"errors"

	"github.com/chewxy/math32"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("fxaa: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("fxaa: data buffer too small")

	// ErrDimensionMismatch is returned when two buffers that must share
	// dimensions do not.
	ErrDimensionMismatch = errors.New("fxaa: buffer dimensions do not match")

	// ErrAliasedBuffers is returned when source and destination share the
	// same backing data. The blend pass reads the source while writing the
	// destination, so the two must be disjoint.
	ErrAliasedBuffers = errors.New("fxaa: source and destination share backing data")
)

// ColorBuffer is a W×H grid of linear-color RGBA samples stored as
// interleaved float32 values (4 per texel, row-major).
//
// Color values are linear, not sRGB-encoded; use FromImage to decode a
// standard image into linear space. Values are not restricted to [0, 1],
// so HDR inputs work as long as they are finite.
//
// Thread safety: ColorBuffer is safe for concurrent reads. Writes require
// external synchronization.
type ColorBuffer struct {
	width  int
	height int
	data   []float32
}

// NewColorBuffer creates a zeroed color buffer with the given dimensions.
func NewColorBuffer(width, height int) (*ColorBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &ColorBuffer{
		width:  width,
		height: height,
		data:   make([]float32, width*height*4),
	}, nil
}

// ColorBufferFromRaw wraps existing interleaved RGBA data without copying.
// The caller must ensure data remains valid for the lifetime of the buffer.
// len(data) must be at least width*height*4.
func ColorBufferFromRaw(data []float32, width, height int) (*ColorBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) < width*height*4 {
		return nil, ErrDataTooSmall
	}
	return &ColorBuffer{
		width:  width,
		height: height,
		data:   data,
	}, nil
}

// Width returns the width of the buffer in texels.
func (b *ColorBuffer) Width() int { return b.width }

// Height returns the height of the buffer in texels.
func (b *ColorBuffer) Height() int { return b.height }

// Data returns the raw interleaved RGBA data.
func (b *ColorBuffer) Data() []float32 { return b.data }

// TexelSize returns the reciprocal resolution (1/W, 1/H), used to convert
// texel offsets into normalized coordinate deltas.
func (b *ColorBuffer) TexelSize() (float32, float32) {
	return 1 / float32(b.width), 1 / float32(b.height)
}

// At returns the texel at (x, y). Coordinates outside the buffer are
// clamped to the nearest edge texel, matching the sampler's clamp policy.
func (b *ColorBuffer) At(x, y int) (r, g, bl, a float32) {
	x = clampInt(x, 0, b.width-1)
	y = clampInt(y, 0, b.height-1)
	i := (y*b.width + x) * 4
	return b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]
}

// Set writes the texel at (x, y). Out-of-bounds coordinates are ignored.
func (b *ColorBuffer) Set(x, y int, r, g, bl, a float32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.data[i] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}

// Sample performs bilinear sampling at normalized coordinates (u, v).
// (0,0) is the top-left corner, (1,1) the bottom-right corner; texel
// centers sit at ((x+0.5)/W, (y+0.5)/H) and sample exactly. Out-of-range
// coordinates are clamped to the edge, never wrapped.
func (b *ColorBuffer) Sample(u, v float32) (r, g, bl, a float32) {
	x0, y0, x1, y1, tx, ty := bilinearCoords(u, v, b.width, b.height)

	i00 := (y0*b.width + x0) * 4
	i10 := (y0*b.width + x1) * 4
	i01 := (y1*b.width + x0) * 4
	i11 := (y1*b.width + x1) * 4

	r = lerp2D(b.data[i00], b.data[i10], b.data[i01], b.data[i11], tx, ty)
	g = lerp2D(b.data[i00+1], b.data[i10+1], b.data[i01+1], b.data[i11+1], tx, ty)
	bl = lerp2D(b.data[i00+2], b.data[i10+2], b.data[i01+2], b.data[i11+2], tx, ty)
	a = lerp2D(b.data[i00+3], b.data[i10+3], b.data[i01+3], b.data[i11+3], tx, ty)
	return r, g, bl, a
}

// Clone returns a deep copy of the buffer.
func (b *ColorBuffer) Clone() *ColorBuffer {
	data := make([]float32, len(b.data))
	copy(data, b.data)
	return &ColorBuffer{width: b.width, height: b.height, data: data}
}

// LumaBuffer is a W×H grid of single-channel luminance scalars. It is
// transient: the luminance pass rewrites it in full before each blend pass.
type LumaBuffer struct {
	width  int
	height int
	data   []float32
}

// NewLumaBuffer creates a zeroed luminance buffer with the given dimensions.
func NewLumaBuffer(width, height int) (*LumaBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &LumaBuffer{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}, nil
}

// Width returns the width of the buffer in texels.
func (l *LumaBuffer) Width() int { return l.width }

// Height returns the height of the buffer in texels.
func (l *LumaBuffer) Height() int { return l.height }

// Data returns the raw luminance data.
func (l *LumaBuffer) Data() []float32 { return l.data }

// At returns the luminance at (x, y). Coordinates outside the buffer are
// clamped to the nearest edge texel.
func (l *LumaBuffer) At(x, y int) float32 {
	x = clampInt(x, 0, l.width-1)
	y = clampInt(y, 0, l.height-1)
	return l.data[y*l.width+x]
}

// Set writes the luminance at (x, y). Out-of-bounds coordinates are ignored.
func (l *LumaBuffer) Set(x, y int, v float32) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return
	}
	l.data[y*l.width+x] = v
}

// Sample performs bilinear sampling at normalized coordinates (u, v) with
// the same clamp-to-edge policy as ColorBuffer.Sample.
func (l *LumaBuffer) Sample(u, v float32) float32 {
	x0, y0, x1, y1, tx, ty := bilinearCoords(u, v, l.width, l.height)
	return lerp2D(
		l.data[y0*l.width+x0], l.data[y0*l.width+x1],
		l.data[y1*l.width+x0], l.data[y1*l.width+x1],
		tx, ty,
	)
}

// bilinearCoords converts normalized coordinates to the two clamped texel
// coordinates bracketing the sample point plus the fractional weights.
// The -0.5 offset places texel centers at half-texel positions.
func bilinearCoords(u, v float32, w, h int) (x0, y0, x1, y1 int, tx, ty float32) {
	fx := u*float32(w) - 0.5
	fy := v*float32(h) - 0.5

	fx0 := math32.Floor(fx)
	fy0 := math32.Floor(fy)
	tx = fx - fx0
	ty = fy - fy0

	x0 = clampInt(int(fx0), 0, w-1)
	y0 = clampInt(int(fy0), 0, h-1)
	x1 = clampInt(int(fx0)+1, 0, w-1)
	y1 = clampInt(int(fy0)+1, 0, h-1)
	return x0, y0, x1, y1, tx, ty
}

// clampInt clamps an integer value to [minVal, maxVal].
func clampInt(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float32) float32 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
