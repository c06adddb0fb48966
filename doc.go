// Package fxaa provides an edge-directed anti-aliasing filter for Go.
//
// # Overview
//
// fxaa is a pure Go implementation of fast approximate anti-aliasing, an
// image-space filter that smooths aliased edges in an already-rendered
// color buffer without supersampling. It is designed to integrate with the
// GoGPU ecosystem and operates on linear-color float32 buffers.
//
// # Quick Start
//
//	import "github.com/gogpu/fxaa"
//
//	// Wrap a rendered frame in a linear color buffer
//	src, _ := fxaa.FromImage(frame)
//
//	// Create a filter and apply it
//	f := fxaa.New()
//	defer f.Close()
//
//	out, err := f.Apply(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Convert back to a standard image for presentation
//	result := out.Image()
//
// # Algorithm
//
// The filter runs two passes over the frame:
//
//  1. Luminance pass: converts each linear RGB texel to a Rec.709
//     perceptual luminance scalar, written to a single-channel buffer.
//  2. Blend pass: reads a 3x3 luminance neighborhood per texel, detects
//     visible edges with an adaptive contrast threshold, classifies edge
//     orientation, walks along the edge in both directions with a bounded
//     step schedule to locate its ends, and resamples the color buffer at
//     a sub-texel offset perpendicular to the edge.
//
// The luminance pass must complete for the whole buffer before the blend
// pass starts; Filter handles that barrier internally.
//
// # Concurrency
//
// Both passes are data-parallel per texel. Filter distributes row bands
// across a worker pool and joins between passes. A Filter is safe to reuse
// across frames from a single goroutine; create one Filter per goroutine
// for concurrent use.
//
// # Coordinate System
//
// Uses standard image coordinates: origin (0,0) at top-left, X increases
// right, Y increases down. Normalized sample coordinates map (0,0) to the
// top-left corner and (1,1) to the bottom-right corner; out-of-range
// coordinates are clamped to the edge, never wrapped.
package fxaa

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
