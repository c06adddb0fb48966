// Command fxaademo demonstrates the fxaa anti-aliasing filter.
//
// It renders a hard-edged test pattern (no anti-aliasing), runs the filter
// over it, and writes before/after PNGs plus the intermediate luminance
// buffer for inspection.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/fxaa"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		input   = flag.String("input", "", "input PNG (renders a test pattern if empty)")
		before  = flag.String("before", "before.png", "unfiltered output file")
		after   = flag.String("after", "after.png", "filtered output file")
		luma    = flag.String("luma", "", "optional luminance buffer output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		fxaa.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var src *fxaa.ColorBuffer
	if *input != "" {
		var err error
		src, err = loadPNG(*input)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", *input, err)
		}
	} else {
		src = renderTestPattern(*width, *height)
	}

	if err := savePNG(*before, src); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	f := fxaa.New()
	defer f.Close()

	out, err := f.Apply(src)
	if err != nil {
		log.Fatalf("Filter failed: %v", err)
	}

	if err := savePNG(*after, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	if *luma != "" {
		if err := saveLumaPNG(*luma, src); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}

	log.Printf("Wrote %s and %s (%dx%d)\n", *before, *after, src.Width(), src.Height())
}

// renderTestPattern draws hard-edged shapes with no anti-aliasing: a
// rotated checkerboard of thin lines, a circle, and a steep diagonal.
// Every edge is a one-texel step, which is exactly what the filter is
// built to smooth.
func renderTestPattern(w, h int) *fxaa.ColorBuffer {
	buf, err := fxaa.NewColorBuffer(w, h)
	if err != nil {
		log.Fatalf("Failed to create buffer: %v", err)
	}

	cx, cy := float64(w)/2, float64(h)/2
	radius := math.Min(cx, cy) * 0.6

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5

			// Dark blue background.
			r, g, b := 0.02, 0.03, 0.08

			// Steep diagonal stripes.
			if int(fx+0.23*fy)%24 < 3 {
				r, g, b = 0.65, 0.6, 0.2
			}

			// Hard-edged circle outline.
			d := math.Hypot(fx-cx, fy-cy)
			if math.Abs(d-radius) < 2 {
				r, g, b = 0.9, 0.9, 0.9
			}

			buf.Set(x, y, float32(r), float32(g), float32(b), 1)
		}
	}
	return buf
}

func loadPNG(path string) (*fxaa.ColorBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return fxaa.FromImage(img)
}

func savePNG(path string, buf *fxaa.ColorBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, buf.Image())
}

// saveLumaPNG writes the Rec.709 luminance of buf as a grayscale PNG.
func saveLumaPNG(path string, buf *fxaa.ColorBuffer) error {
	luma, err := fxaa.NewLumaBuffer(buf.Width(), buf.Height())
	if err != nil {
		return err
	}
	data := buf.Data()
	for i := 0; i < buf.Width()*buf.Height(); i++ {
		x, y := i%buf.Width(), i/buf.Width()
		luma.Set(x, y, fxaa.Luminance(data[i*4], data[i*4+1], data[i*4+2]))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, luma.Gray())
}
