package fxaa

import (
	"time"

	"github.com/gogpu/fxaa/internal/parallel"
)

// rowsPerBand is the number of image rows per work item handed to the
// worker pool. Small enough to balance load on uneven scenes, large
// enough to keep scheduling overhead negligible.
const rowsPerBand = 16

// Filter applies edge-directed anti-aliasing to linear color buffers.
//
// A Filter owns a worker pool and a scratch luminance buffer, both reused
// across frames. Create it once, call Apply or ApplyInto per frame, and
// Close it when done.
//
// Thread safety: a Filter must not be used from multiple goroutines
// concurrently; the scratch luminance buffer is per-Filter state.
type Filter struct {
	pool *parallel.Pool
	luma *LumaBuffer
}

// Option configures a Filter during creation.
type Option func(*filterOptions)

// filterOptions holds optional configuration for Filter creation.
type filterOptions struct {
	workers int
}

// WithWorkers sets the number of worker goroutines used to process row
// bands. If n is 0 or negative, GOMAXPROCS is used. This tunes scheduling
// only; the filter output is identical for any worker count.
func WithWorkers(n int) Option {
	return func(o *filterOptions) {
		o.workers = n
	}
}

// New creates a Filter.
//
// Example:
//
//	f := fxaa.New(fxaa.WithWorkers(4))
//	defer f.Close()
func New(opts ...Option) *Filter {
	var o filterOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Filter{
		pool: parallel.NewPool(o.workers),
	}
}

// Apply runs both filter passes over src and returns a new output buffer
// of the same dimensions. src is not modified.
func (f *Filter) Apply(src *ColorBuffer) (*ColorBuffer, error) {
	if src == nil {
		return nil, ErrInvalidDimensions
	}
	dst, err := NewColorBuffer(src.width, src.height)
	if err != nil {
		return nil, err
	}
	if err := f.ApplyInto(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// ApplyInto runs both filter passes over src, writing the result into the
// caller-owned dst. src and dst must have identical dimensions and must
// not share backing data: the blend pass reads src at sub-texel offsets
// while dst is written, so the two must stay disjoint.
func (f *Filter) ApplyInto(src, dst *ColorBuffer) error {
	if src == nil || dst == nil {
		return ErrInvalidDimensions
	}
	if src.width != dst.width || src.height != dst.height {
		return ErrDimensionMismatch
	}
	if &src.data[0] == &dst.data[0] {
		return ErrAliasedBuffers
	}

	if f.luma == nil || f.luma.width != src.width || f.luma.height != src.height {
		luma, err := NewLumaBuffer(src.width, src.height)
		if err != nil {
			return err
		}
		f.luma = luma
	}
	luma := f.luma

	// Pass 1: luminance. Must complete for the whole buffer before the
	// blend pass reads neighboring luma values; ExecuteAll is the barrier.
	start := time.Now()
	f.pool.ExecuteAll(bandWork(src.height, func(y0, y1 int) {
		lumaRows(src, luma, y0, y1)
	}))
	lumaDur := time.Since(start)

	// Pass 2: edge-directed blend.
	start = time.Now()
	f.pool.ExecuteAll(bandWork(src.height, func(y0, y1 int) {
		blendRows(src, luma, dst, y0, y1)
	}))
	blendDur := time.Since(start)

	Logger().Debug("fxaa: frame filtered",
		"width", src.width,
		"height", src.height,
		"workers", f.pool.Workers(),
		"luma_pass", lumaDur,
		"blend_pass", blendDur,
	)
	return nil
}

// Close releases the filter's worker pool. The Filter must not be used
// after Close.
func (f *Filter) Close() {
	f.pool.Close()
}

// bandWork splits rows [0, height) into bands of rowsPerBand rows and
// returns one work item per band.
func bandWork(height int, fn func(y0, y1 int)) []func() {
	bands := (height + rowsPerBand - 1) / rowsPerBand
	work := make([]func(), 0, bands)
	for y0 := 0; y0 < height; y0 += rowsPerBand {
		y0, y1 := y0, y0+rowsPerBand
		if y1 > height {
			y1 = height
		}
		work = append(work, func() { fn(y0, y1) })
	}
	return work
}
