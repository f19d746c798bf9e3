package swfshape

// FillStyle is a decoded fill style. Exactly one of the concrete kinds
// below is meaningful for a given FillStyle; the Kind field discriminates.
type FillStyle struct {
	Kind FillKind

	// Solid
	Color Color

	// Gradients
	Matrix        Matrix
	Stops         []GradientStop
	FocalPoint    float64 // FocalGradient only
	Spread        GradientSpread
	Interpolation GradientInterpolation

	// Bitmap
	BitmapIndex int // index into the shape's DependencySet, not the raw bitmap id
	Repeat      bool
	Smooth      bool

	// Morph pairing (populated only by DecodeMorph)
	Morph *FillMorph
}

// FillKind discriminates the FillStyle variants.
type FillKind uint8

const (
	FillSolid FillKind = iota
	FillLinearGradient
	FillRadialGradient
	FillFocalGradient
	FillBitmap
)

// GradientStop is one color stop in a gradient's stop table, in record
// order, ratio preserved verbatim from the input.
type GradientStop struct {
	Ratio float64
	Color Color

	// Morph pairing
	EndRatio float64
	EndColor Color
}

// FillMorph carries the end-frame values paired with a morphed
// FillStyle's start-frame fields.
type FillMorph struct {
	EndColor      Color
	EndMatrix     Matrix
	EndFocalPoint float64
}
