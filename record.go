package swfshape

// Rect is an axis-aligned bounding box in twips, copied verbatim from
// the input tag onto the decoded Shape/MorphShape.
type Rect struct {
	XMin, XMax, YMin, YMax int32
}

// RawFillStyleKind enumerates the fill style kinds a DefineShape/
// DefineMorphShape tag's fill style table may declare.
type RawFillStyleKind uint8

const (
	RawFillSolid RawFillStyleKind = iota
	RawFillLinearGradient
	RawFillRadialGradient
	RawFillFocalGradient
	RawFillRepeatingBitmap
	RawFillClippedBitmap
	RawFillNonSmoothedRepeatingBitmap
	RawFillNonSmoothedClippedBitmap
)

// RawGradientStop is one undecoded gradient stop, in record order.
// EndColor/EndRatio are only meaningful for DefineMorphShape input.
type RawGradientStop struct {
	Ratio    float64
	Color    RawColor
	EndRatio float64
	EndColor RawColor
}

// RawFillStyle is a fill style descriptor exactly as it appears in a
// DefineShape/DefineMorphShape tag's style table, before normalization.
// Morph-only fields (EndColor, EndMatrix, EndFocalPoint) are populated
// only when decoding a DefineMorphShape.
type RawFillStyle struct {
	Kind RawFillStyleKind

	// Solid
	Color    RawColor
	EndColor RawColor // morph

	// Gradients
	Matrix        RawMatrix
	EndMatrix     RawMatrix // morph
	Stops         []RawGradientStop
	FocalPoint    float64 // FocalGradient only, Q0.8 fixed decoded to float
	EndFocalPoint float64 // morph
	Spread        GradientSpread
	Interpolation GradientInterpolation

	// Bitmap
	BitmapID uint16
}

// GradientSpread is the SWF gradient "spread mode": how a gradient
// extends past its first/last stop. Decoded, never applied; this
// package performs no rasterization.
type GradientSpread uint8

const (
	SpreadPad GradientSpread = iota
	SpreadReflect
	SpreadRepeat
)

// GradientInterpolation is the SWF gradient interpolation space flag.
// Decoded verbatim; color-space conversion is a renderer concern.
type GradientInterpolation uint8

const (
	InterpolationNormal GradientInterpolation = iota
	InterpolationLinearRGB
)

// LineCapKind and LineJoinKind mirror the SWF LineStyle2 enumerations.
type LineCapKind uint8

const (
	CapRound LineCapKind = iota
	CapNone
	CapSquare
)

type LineJoinKind uint8

const (
	JoinRound LineJoinKind = iota
	JoinBevel
	JoinMiter
)

// RawLineStyle is a line style descriptor exactly as it appears in a
// DefineShape/DefineMorphShape tag's style table, before normalization.
type RawLineStyle struct {
	Width    int32 // twips
	EndWidth int32 // morph

	HasFill bool
	Fill    *RawFillStyle // nested fill, only consumed if HasFill

	Color    RawColor // used when !HasFill
	EndColor RawColor // morph, used when !HasFill

	StartCap, EndCap LineCapKind
	Join             LineJoinKind
	MiterLimitFactor float64

	NoHscale, NoVscale, PixelHinting, NoClose bool
}

// Record is a single SWF shape edge-record. Implementations:
// StyleChangeRecord, StraightEdgeRecord, CurvedEdgeRecord.
type Record interface {
	isRecord()
}

// StyleChangeRecord updates the pen position and/or the active fill/line
// style slots, and may introduce a fresh style layer.
type StyleChangeRecord struct {
	HasNewStyles bool
	NewFillStyles []RawFillStyle
	NewLineStyles []RawLineStyle

	HasFillStyle0 bool
	FillStyle0    int // 0 means "no style"

	HasFillStyle1 bool
	FillStyle1    int

	HasLineStyle bool
	LineStyle    int

	Move       bool
	MoveX      int32 // absolute position, twips
	MoveY      int32
}

func (StyleChangeRecord) isRecord() {}

// StraightEdgeRecord draws a straight line from the pen by (DeltaX, DeltaY).
type StraightEdgeRecord struct {
	DeltaX, DeltaY int32
}

func (StraightEdgeRecord) isRecord() {}

// CurvedEdgeRecord draws a quadratic curve from the pen through a control
// point offset by (ControlDeltaX, ControlDeltaY) to an anchor further
// offset by (AnchorDeltaX, AnchorDeltaY).
type CurvedEdgeRecord struct {
	ControlDeltaX, ControlDeltaY int32
	AnchorDeltaX, AnchorDeltaY   int32
}

func (CurvedEdgeRecord) isRecord() {}

// DefineShapeTag is the decoded (non-morph) input to Decode.
type DefineShapeTag struct {
	ID         uint16
	Bounds     Rect
	FillStyles []RawFillStyle
	LineStyles []RawLineStyle
	Records    []Record
}

// DefineMorphShapeTag is the decoded morph input to DecodeMorph. Styles
// carry both start and end fields; StartRecords/EndRecords are walked
// in lockstep by the segment emitter.
type DefineMorphShapeTag struct {
	ID           uint16
	StartBounds  Rect
	EndBounds    Rect
	FillStyles   []RawFillStyle
	LineStyles   []RawLineStyle
	StartRecords []Record
	EndRecords   []Record
}
