// Package swfshape decodes SWF DefineShape and DefineMorphShape tag
// records into render-ready styled paths.
//
// # Overview
//
// swfshape turns a compact, draw-order edge-record stream into a flat
// list of Path values, each carrying a single fill or stroke style and a
// self-contained sequence of MoveTo/LineTo/CurveTo commands. It performs
// no rasterization, no bitmap decoding, and no display-tree work; those
// remain the caller's responsibility.
//
// # Quick start
//
//	shape, err := swfshape.Decode(tag, deps)
//	if err != nil {
//	    return err
//	}
//	for _, path := range shape.Paths {
//	    // hand path.Commands and path.Fill/path.Line to a rasterizer
//	}
//
// # Pipeline
//
// Decoding proceeds in three stages, in this order:
//
//  1. The style normalizer converts raw fill/line descriptors into the
//     decoded FillStyle/LineStyle variants.
//  2. The segment emitter walks the edge-record stream, maintaining the
//     active fill/line style slots, and files oriented segments into
//     per-style buckets.
//  3. The contour reconstructor joins each bucket's segments into
//     continuous command sequences, producing one Path per bucket.
//
// DecodeMorph runs the same pipeline over a paired start/end record
// stream, producing MorphShape values whose commands carry both frames.
//
// # Concurrency
//
// Decode and DecodeMorph are pure functions of their inputs. Two
// concurrent calls over disjoint inputs never interact.
package swfshape

// Version identifies this decoder's data-model revision, bumped whenever
// a decoded field is added or reinterpreted.
const Version = "1.0.0"
