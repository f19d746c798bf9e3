package swfshape

// LineStyle is a decoded line (stroke) style.
type LineStyle struct {
	Width int32 // twips
	Color Color

	StartCap, EndCap LineCapKind
	Join             LineJoinKind
	MiterLimit       float64 // max(miterLimitFactor, 1.5) * 2

	NoHscale, NoVscale, PixelHinting, NoClose bool

	// FillOverride is the nested fill captured when the raw line style
	// declares HasFill. The decoder preserves it verbatim and never
	// promotes the line to a "gradient-stroked" path itself; policy is
	// deferred to the renderer.
	FillOverride *FillStyle

	// Morph pairing (populated only by DecodeMorph)
	Morph *LineMorph
}

// LineMorph carries the end-frame values paired with a morphed
// LineStyle's start-frame fields.
type LineMorph struct {
	EndWidth int32
	EndColor Color
}

// normalizeMiterLimit clamps a raw miter limit factor and converts it to
// the miter length ratio consumers expect.
func normalizeMiterLimit(factor float64) float64 {
	if factor < 1.5 {
		factor = 1.5
	}
	return factor * 2
}
