package swfshape

import (
	"log/slog"

	"github.com/open-flash/swf-renderer/internal/contour"
	"github.com/open-flash/swf-renderer/internal/twips"
)

// endGeometry is one end-frame edge, paired with a start-frame
// contour.Segment via that segment's Tag (its index into the bucket it
// was filed into).
type endGeometry struct {
	Start, End Point
	Control    *Point
}

// morphStyleLayer is styleLayer's morph counterpart: each start-frame
// bucket has a same-indexed end-frame companion slice.
type morphStyleLayer struct {
	fillStyles []FillStyle
	lineStyles []LineStyle

	fillBuckets    [][]contour.Segment
	fillEndBuckets [][]endGeometry
	lineBuckets    [][]contour.Segment
	lineEndBuckets [][]endGeometry
}

func newMorphStyleLayer(fills []FillStyle, lines []LineStyle) morphStyleLayer {
	return morphStyleLayer{
		fillStyles:     fills,
		lineStyles:     lines,
		fillBuckets:    make([][]contour.Segment, len(fills)),
		fillEndBuckets: make([][]endGeometry, len(fills)),
		lineBuckets:    make([][]contour.Segment, len(lines)),
		lineEndBuckets: make([][]endGeometry, len(lines)),
	}
}

// morphEmitter walks a DefineMorphShape's paired start/end record streams
// in lockstep. Contour topology is always decided from the start-frame
// geometry; the end-frame geometry for each segment rides along as its
// Tag-indexed companion and is applied to whatever order/orientation the
// start-frame reconstruction settles on.
type morphEmitter struct {
	deps   *DependencySet
	logger *slog.Logger

	layers  []morphStyleLayer
	current morphStyleLayer

	leftFill, rightFill, lineSlot int
	pen, mpen                     Point

	endRecords []Record
	endCursor  int

	defaultBucket    []contour.Segment
	defaultEndBucket []endGeometry
	hasDefault       bool
}

func newMorphEmitter(deps *DependencySet, cfg *decodeConfig, endRecords []Record) *morphEmitter {
	return &morphEmitter{deps: deps, logger: cfg.logger, endRecords: endRecords}
}

func (e *morphEmitter) normalizeLayer(rawFills []RawFillStyle, rawLines []RawLineStyle, recordIndex int) (morphStyleLayer, error) {
	fills := make([]FillStyle, len(rawFills))
	for i, rf := range rawFills {
		fs, err := normalizeFillStyle(rf, true, e.deps, recordIndex)
		if err != nil {
			return morphStyleLayer{}, err
		}
		fills[i] = fs
	}
	lines := make([]LineStyle, len(rawLines))
	for i, rl := range rawLines {
		ls, err := normalizeLineStyle(rl, true, e.deps, recordIndex)
		if err != nil {
			return morphStyleLayer{}, err
		}
		lines[i] = ls
	}
	return newMorphStyleLayer(fills, lines), nil
}

func (e *morphEmitter) pushInitialLayer(rawFills []RawFillStyle, rawLines []RawLineStyle) error {
	layer, err := e.normalizeLayer(rawFills, rawLines, -1)
	if err != nil {
		return err
	}
	e.current = layer
	return nil
}

func (e *morphEmitter) pushNewLayer(rawFills []RawFillStyle, rawLines []RawLineStyle, recordIndex int) error {
	layer, err := e.normalizeLayer(rawFills, rawLines, recordIndex)
	if err != nil {
		return err
	}
	e.layers = append(e.layers, e.current)
	e.current = layer
	e.leftFill, e.rightFill, e.lineSlot = 0, 0, 0
	e.logger.Debug("style layer transition",
		slog.Int("record", recordIndex),
		slog.Int("fill_styles", len(layer.fillStyles)),
		slog.Int("line_styles", len(layer.lineStyles)))
	return nil
}

func (e *morphEmitter) setLeftFill(idx, recordIndex int) error {
	if idx < 0 || idx > len(e.current.fillStyles) {
		return newDecodeError(MalformedInput, recordIndex, idx, "left fill style index out of range")
	}
	e.leftFill = idx
	return nil
}

func (e *morphEmitter) setRightFill(idx, recordIndex int) error {
	if idx < 0 || idx > len(e.current.fillStyles) {
		return newDecodeError(MalformedInput, recordIndex, idx, "right fill style index out of range")
	}
	e.rightFill = idx
	return nil
}

func (e *morphEmitter) setLineSlot(idx, recordIndex int) error {
	if idx < 0 || idx > len(e.current.lineStyles) {
		return newDecodeError(MalformedInput, recordIndex, idx, "line style index out of range")
	}
	e.lineSlot = idx
	return nil
}

// applyStyleChange applies a start-frame StyleChangeRecord and peeks at
// the current end-stream cursor: if it is also a StyleChangeRecord it
// is consumed here (and its Move, if any, updates the end-frame pen);
// otherwise the cursor is left untouched so the record it points at is
// later paired as an edge.
func (e *morphEmitter) applyStyleChange(r StyleChangeRecord, recordIndex int) error {
	if r.HasNewStyles {
		if err := e.pushNewLayer(r.NewFillStyles, r.NewLineStyles, recordIndex); err != nil {
			return err
		}
	}
	if r.HasFillStyle0 {
		if err := e.setLeftFill(r.FillStyle0, recordIndex); err != nil {
			return err
		}
	}
	if r.HasFillStyle1 {
		if err := e.setRightFill(r.FillStyle1, recordIndex); err != nil {
			return err
		}
	}
	if r.HasLineStyle {
		if err := e.setLineSlot(r.LineStyle, recordIndex); err != nil {
			return err
		}
	}
	if r.Move {
		e.pen = Point{X: r.MoveX, Y: r.MoveY}
	}

	if e.endCursor < len(e.endRecords) {
		if esc, ok := e.endRecords[e.endCursor].(StyleChangeRecord); ok {
			e.endCursor++
			if esc.Move {
				e.mpen = Point{X: esc.MoveX, Y: esc.MoveY}
			}
		}
	}
	return nil
}

// edgeGeometry computes an edge record's end point (and, for a curve,
// its control point) relative to pen.
func edgeGeometry(pen Point, r Record) (end Point, control *Point) {
	switch rec := r.(type) {
	case StraightEdgeRecord:
		return Point{X: pen.X + rec.DeltaX, Y: pen.Y + rec.DeltaY}, nil
	case CurvedEdgeRecord:
		ctrl := Point{X: pen.X + rec.ControlDeltaX, Y: pen.Y + rec.ControlDeltaY}
		return Point{X: ctrl.X + rec.AnchorDeltaX, Y: ctrl.Y + rec.AnchorDeltaY}, &ctrl
	default:
		return pen, nil
	}
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// applyEdge pairs a start-frame edge record with its end-frame
// counterpart popped off the end-stream cursor. If the end stream is
// exhausted, the start record is reapplied against the end-frame pen so
// the end-frame trajectory keeps advancing rigidly from wherever it
// actually is, rather than snapping onto the start frame's absolute
// coordinates. A straight edge paired against a curved one (or vice
// versa) is promoted to a degenerate curve whose control point sits at
// its own segment's midpoint, so both frames of the resulting
// MorphCurveTo are genuine curves.
func (e *morphEmitter) applyEdge(startEdge Record, recordIndex int) error {
	startEnd, startCtrl := edgeGeometry(e.pen, startEdge)

	var endEnd Point
	var endCtrl *Point
	if e.endCursor < len(e.endRecords) {
		endEdge := e.endRecords[e.endCursor]
		switch endEdge.(type) {
		case StraightEdgeRecord, CurvedEdgeRecord:
		default:
			return newDecodeError(MalformedInput, recordIndex, -1, "end-record cursor points at a non-edge record")
		}
		e.endCursor++
		endEnd, endCtrl = edgeGeometry(e.mpen, endEdge)
	} else {
		endEnd, endCtrl = edgeGeometry(e.mpen, startEdge)
	}

	if startCtrl == nil && endCtrl != nil {
		mid := midpoint(e.pen, startEnd)
		startCtrl = &mid
		e.logger.Debug("morph tween promotion", slog.Int("record", recordIndex), slog.String("promoted", "start"))
	}
	if endCtrl == nil && startCtrl != nil {
		mid := midpoint(e.mpen, endEnd)
		endCtrl = &mid
		e.logger.Debug("morph tween promotion", slog.Int("record", recordIndex), slog.String("promoted", "end"))
	}

	seg := contour.Segment{Start: toContourPoint(e.pen), End: toContourPoint(startEnd), Control: startCtrl2contour(startCtrl)}
	end := endGeometry{Start: e.mpen, End: endEnd, Control: endCtrl}

	e.addSegment(seg, end)

	e.pen = startEnd
	e.mpen = endEnd
	return nil
}

func startCtrl2contour(p *Point) *contour.Point {
	if p == nil {
		return nil
	}
	c := toContourPoint(*p)
	return &c
}

func (e *morphEmitter) addSegment(seg contour.Segment, end endGeometry) {
	if e.leftFill == 0 && e.rightFill == 0 && e.lineSlot == 0 {
		e.hasDefault = true
		seg.Tag = len(e.defaultBucket)
		e.defaultBucket = append(e.defaultBucket, seg)
		e.defaultEndBucket = append(e.defaultEndBucket, end)
		e.logger.Warn("default path fallback triggered")
		return
	}
	if e.rightFill != 0 {
		i := e.rightFill - 1
		seg.Tag = len(e.current.fillBuckets[i])
		e.current.fillBuckets[i] = append(e.current.fillBuckets[i], seg)
		e.current.fillEndBuckets[i] = append(e.current.fillEndBuckets[i], end)
	}
	if e.leftFill != 0 {
		reversed := seg
		reversed.Reversed = true
		i := e.leftFill - 1
		reversed.Tag = len(e.current.fillBuckets[i])
		e.current.fillBuckets[i] = append(e.current.fillBuckets[i], reversed)
		e.current.fillEndBuckets[i] = append(e.current.fillEndBuckets[i], end)
	}
	if e.lineSlot != 0 {
		i := e.lineSlot - 1
		seg.Tag = len(e.current.lineBuckets[i])
		e.current.lineBuckets[i] = append(e.current.lineBuckets[i], seg)
		e.current.lineEndBuckets[i] = append(e.current.lineEndBuckets[i], end)
	}
}

func (e *morphEmitter) finish(startBounds, endBounds Rect) *MorphShape {
	e.layers = append(e.layers, e.current)

	var paths []MorphPath
	for _, layer := range e.layers {
		for i := range layer.fillStyles {
			if p, ok := buildMorphPath(layer.fillBuckets[i], layer.fillEndBuckets[i], &layer.fillStyles[i], nil); ok {
				paths = append(paths, p)
			}
		}
		for i := range layer.lineStyles {
			if p, ok := buildMorphPath(layer.lineBuckets[i], layer.lineEndBuckets[i], nil, &layer.lineStyles[i]); ok {
				paths = append(paths, p)
			}
		}
	}
	if e.hasDefault {
		if p, ok := buildMorphPath(e.defaultBucket, e.defaultEndBucket, nil, defaultMorphLineStyle()); ok {
			paths = append(paths, p)
		}
	}
	return &MorphShape{StartBounds: startBounds, EndBounds: endBounds, Paths: paths}
}

func defaultMorphLineStyle() *LineStyle {
	ls := defaultLineStyle()
	ls.Morph = &LineMorph{EndWidth: twips.DefaultLineWidth, EndColor: Transparent}
	return ls
}

// buildMorphPath mirrors buildPath, additionally threading each step's
// Tag through to its end-frame companion so every emitted MorphCommand
// carries both frames' geometry.
func buildMorphPath(bucket []contour.Segment, endBucket []endGeometry, fill *FillStyle, line *LineStyle) (MorphPath, bool) {
	if len(bucket) == 0 {
		return MorphPath{}, false
	}
	var cmds []MorphCommand
	for _, chain := range contour.Reconstruct(bucket) {
		cmds = append(cmds, morphCommandsFromChain(chain, endBucket)...)
	}
	return MorphPath{Commands: cmds, Fill: fill, Line: line}, true
}

func morphCommandsFromChain(steps []contour.Step, endBucket []endGeometry) []MorphCommand {
	if len(steps) == 0 {
		return nil
	}
	first := steps[0]
	startPt := first.Segment.StartPoint()
	endPt := endBucket[first.Segment.Tag].Start
	if first.Flipped {
		startPt = first.Segment.EndPoint()
	}
	// The end-frame companion is stored in record order, so it is played
	// backwards when exactly one of Reversed and Flipped is set.
	if first.Flipped != first.Segment.Reversed {
		endPt = endBucket[first.Segment.Tag].End
	}
	cmds := make([]MorphCommand, 0, len(steps)+1)
	cmds = append(cmds, MorphMoveTo{Start: fromContourPoint(startPt), End: endPt})

	for _, step := range steps {
		end := endBucket[step.Segment.Tag]
		toStart := step.Segment.EndPoint()
		toEnd := end.End
		var startCtrl, endCtrl *Point
		if step.Segment.Control != nil {
			c := fromContourPoint(*step.Segment.Control)
			startCtrl = &c
			endCtrl = end.Control
		}
		if step.Flipped {
			toStart = step.Segment.StartPoint()
		}
		if step.Flipped != step.Segment.Reversed {
			toEnd = end.Start
		}
		if startCtrl != nil {
			cmds = append(cmds, MorphCurveTo{
				StartControl: *startCtrl,
				EndControl:   *endCtrl,
				Start:        fromContourPoint(toStart),
				End:          toEnd,
			})
		} else {
			cmds = append(cmds, MorphLineTo{Start: fromContourPoint(toStart), End: toEnd})
		}
	}
	return cmds
}
