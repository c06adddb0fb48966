package fxaa

import "github.com/chewxy/math32"

// Fixed algorithm constants. These are the tuned values of the original
// filter and are deliberately not configurable.
const (
	// edgeThresholdMin is the absolute contrast floor below which a texel
	// is never treated as an edge, preventing over-sensitivity in dark
	// regions.
	edgeThresholdMin = 0.0625

	// edgeThresholdScale is the relative contrast floor as a fraction of
	// the local peak luminance, preventing under-sensitivity in bright
	// regions.
	edgeThresholdScale = 0.166

	// subpixelStrength scales the baseline blend applied to sub-texel
	// scale aliasing even off sharp edges.
	subpixelStrength = 0.80

	// gradientScale scales the local luma gradient into the termination
	// threshold for the edge-end search.
	gradientScale = 0.25

	// searchLastStep is the final jump, in texels, applied when the search
	// exhausts its step schedule without finding the edge end.
	searchLastStep = 8.0
)

// searchSteps is the step schedule, in texels, for the bounded edge-end
// search after the initial one-texel step. The fixed size bounds the
// worst-case work per texel to 1+len(searchSteps) samples per direction.
var searchSteps = [3]float32{1.5, 2.0, 2.0}

// blendRows runs the blend pass over rows [y0, y1) of the frame. It reads
// luma and src (which must already satisfy the luminance invariant) and
// writes dst. All three buffers share dimensions; dst must not alias src.
func blendRows(src *ColorBuffer, luma *LumaBuffer, dst *ColorBuffer, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < src.width; x++ {
			r, g, b, a := blendTexel(src, luma, x, y)
			i := (y*src.width + x) * 4
			dst.data[i] = r
			dst.data[i+1] = g
			dst.data[i+2] = b
			dst.data[i+3] = a
		}
	}
}

// blendTexel computes the anti-aliased output color for the texel at
// (x, y): the source color resampled at the offset chosen by blendOffset.
func blendTexel(src *ColorBuffer, luma *LumaBuffer, x, y int) (r, g, b, a float32) {
	du, dv := blendOffset(src, luma, x, y)
	if du == 0 && dv == 0 {
		// Passthrough: fetch the texel directly so the output is
		// bit-exact with the source.
		return src.At(x, y)
	}
	texelX, texelY := src.TexelSize()
	u := (float32(x)+0.5)*texelX + du
	v := (float32(y)+0.5)*texelY + dv
	return src.Sample(u, v)
}

// blendOffset computes the normalized-coordinate offset at which the
// source color should be resampled for the texel at (x, y). It decides
// whether the texel lies on a visible edge, classifies the edge
// orientation, walks to the edge ends, and derives a sub-texel shift
// perpendicular to the edge. A zero offset means passthrough.
func blendOffset(src *ColorBuffer, luma *LumaBuffer, x, y int) (du, dv float32) {
	texelX, texelY := src.TexelSize()
	u := (float32(x) + 0.5) * texelX
	v := (float32(y) + 0.5) * texelY

	// 3x3 luminance neighborhood, clamped at the borders.
	m := luma.At(x, y)
	n := luma.At(x, y-1)
	e := luma.At(x+1, y)
	s := luma.At(x, y+1)
	w := luma.At(x-1, y)
	ne := luma.At(x+1, y-1)
	se := luma.At(x+1, y+1)
	sw := luma.At(x-1, y+1)
	nw := luma.At(x-1, y-1)

	// Contrast early-out: flat neighborhoods pass through untouched.
	highest := math32.Max(m, math32.Max(math32.Max(n, e), math32.Max(s, w)))
	lowest := math32.Min(m, math32.Min(math32.Min(n, e), math32.Min(s, w)))
	contrast := highest - lowest
	if contrast < math32.Max(edgeThresholdMin, edgeThresholdScale*highest) {
		return 0, 0
	}

	// Sub-pixel contrast factor: how far the center deviates from the
	// neighborhood low-pass value, relative to the local contrast.
	average := (2*(n+e+s+w) + ne + se + sw + nw) * (1.0 / 12.0)
	subpixel := clamp01(math32.Abs(average-m) / contrast)
	subpixel = smoothstep(subpixel)
	subpixel = subpixel * subpixel * subpixelStrength

	// Edge orientation from second-order luma differences. Ties resolve
	// to horizontal.
	horizontal := 2*math32.Abs(n+s-2*m) + math32.Abs(ne+se-2*e) + math32.Abs(nw+sw-2*w)
	vertical := 2*math32.Abs(e+w-2*m) + math32.Abs(ne+nw-2*n) + math32.Abs(se+sw-2*s)
	isHorizontal := horizontal >= vertical

	// A horizontal edge blends along Y; a vertical edge blends along X.
	posLuma, negLuma := e, w
	if isHorizontal {
		posLuma, negLuma = s, n
	}

	// Step toward the side with the steeper luma falloff.
	gradientP := math32.Abs(posLuma - m)
	gradientN := math32.Abs(negLuma - m)
	stepSign := float32(1)
	otherLuma := posLuma
	if gradientN > gradientP {
		stepSign = -1
		otherLuma = negLuma
	}

	edgeLuma := 0.5 * (m + otherLuma)
	gradientThreshold := gradientScale * math32.Max(gradientP, gradientN)

	// Anchor half a texel toward the edge, then search along it.
	anchorU, anchorV := u, v
	var stepU, stepV float32
	if isHorizontal {
		anchorV += 0.5 * stepSign * texelY
		stepU = texelX
	} else {
		anchorU += 0.5 * stepSign * texelX
		stepV = texelY
	}

	res := searchEdgeEnds(luma.Sample, anchorU, anchorV, stepU, stepV, edgeLuma, gradientThreshold)

	blend := math32.Max(subpixel, edgeBlendFactor(res, m-edgeLuma))
	if isHorizontal {
		return 0, blend * stepSign * texelY
	}
	return blend * stepSign * texelX, 0
}

// edgeBlendFactor converts the edge search result into a blend amount in
// [0, 0.5). The blend grows as the texel nears the midpoint between the
// two edge ends, but only when the texel sits on the opposite side of the
// local edge luma from the nearer end; centerDelta is the texel's luma
// minus the edge luma. A zero distance sum (both searches terminated in
// place) yields zero rather than dividing by zero.
func edgeBlendFactor(res edgeSearchResult, centerDelta float32) float32 {
	total := res.distP + res.distN
	if total <= 0 {
		return 0
	}
	endDelta := res.endN
	if res.distP < res.distN {
		endDelta = res.endP
	}
	if (endDelta < 0) == (centerDelta < 0) {
		return 0
	}
	return 0.5 - math32.Min(res.distP, res.distN)/total
}

// edgeSearchResult holds the outcome of the bidirectional edge-end search:
// the distance from the anchor to each end along the search axis, in
// normalized units, and each end's luma delta from the edge luma.
type edgeSearchResult struct {
	distP, distN float32
	endP, endN   float32
}

// searchEdgeEnds marches outward in both directions from the anchor along
// (stepU, stepV), sampling luminance at each step and terminating a
// direction once the sampled luma deviates from edgeLuma by at least
// threshold. Each direction takes the initial one-texel step plus up to
// len(searchSteps) scheduled steps; if a direction never terminates, one
// final searchLastStep jump is applied as a last guess without sampling.
func searchEdgeEnds(sample func(u, v float32) float32, anchorU, anchorV, stepU, stepV, edgeLuma, threshold float32) edgeSearchResult {
	stepLen := stepU + stepV // exactly one component is nonzero

	pU, pV := anchorU+stepU, anchorV+stepV
	nU, nV := anchorU-stepU, anchorV-stepV

	res := edgeSearchResult{distP: stepLen, distN: stepLen}
	res.endP = sample(pU, pV) - edgeLuma
	res.endN = sample(nU, nV) - edgeLuma
	doneP := math32.Abs(res.endP) >= threshold
	doneN := math32.Abs(res.endN) >= threshold

	for _, mult := range searchSteps {
		if doneP && doneN {
			break
		}
		if !doneP {
			pU += stepU * mult
			pV += stepV * mult
			res.distP += stepLen * mult
			res.endP = sample(pU, pV) - edgeLuma
			doneP = math32.Abs(res.endP) >= threshold
		}
		if !doneN {
			nU -= stepU * mult
			nV -= stepV * mult
			res.distN += stepLen * mult
			res.endN = sample(nU, nV) - edgeLuma
			doneN = math32.Abs(res.endN) >= threshold
		}
	}

	if !doneP {
		res.distP += stepLen * searchLastStep
	}
	if !doneN {
		res.distN += stepLen * searchLastStep
	}
	return res
}

// clamp01 clamps v to [0, 1].
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smoothstep is the cubic ease curve 3t² - 2t³ on [0, 1].
func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}
