package swfshape

// MorphCommand is a single drawing instruction in a MorphPath, carrying
// both the start-frame and end-frame geometry. Implementations:
// MorphMoveTo, MorphLineTo, MorphCurveTo.
type MorphCommand interface {
	isMorphCommand()
}

// MorphMoveTo restarts the pen at Start/End without drawing.
type MorphMoveTo struct {
	Start, End Point
}

func (MorphMoveTo) isMorphCommand() {}

// MorphLineTo draws a straight line, tweened between Start and End.
type MorphLineTo struct {
	Start, End Point
}

func (MorphLineTo) isMorphCommand() {}

// MorphCurveTo draws a quadratic curve, tweened between the start and end
// control/anchor points.
type MorphCurveTo struct {
	StartControl, EndControl Point
	Start, End                Point
}

func (MorphCurveTo) isMorphCommand() {}

// MorphPath is the morph counterpart of Path: a sequence of MorphCommand
// sharing a single paired fill or stroke style.
type MorphPath struct {
	Commands []MorphCommand
	Fill     *FillStyle
	Line     *LineStyle
}

// MorphShape is the morph counterpart of Shape.
type MorphShape struct {
	StartBounds, EndBounds Rect
	Paths                  []MorphPath
}
