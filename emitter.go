package swfshape

import (
	"log/slog"

	"github.com/open-flash/swf-renderer/internal/contour"
	"github.com/open-flash/swf-renderer/internal/twips"
)

// styleLayer is one snapshot of the fill/line tables active between two
// HasNewStyles events. Each table entry owns exactly one segment bucket.
type styleLayer struct {
	fillStyles  []FillStyle
	lineStyles  []LineStyle
	fillBuckets [][]contour.Segment
	lineBuckets [][]contour.Segment
}

func newStyleLayer(fills []FillStyle, lines []LineStyle) styleLayer {
	return styleLayer{
		fillStyles:  fills,
		lineStyles:  lines,
		fillBuckets: make([][]contour.Segment, len(fills)),
		lineBuckets: make([][]contour.Segment, len(lines)),
	}
}

// emitter walks a shape's edge-record stream maintaining the pen, the
// three active style slots, and the ordered style layers.
type emitter struct {
	deps   *DependencySet
	logger *slog.Logger
	morph  bool

	layers  []styleLayer
	current styleLayer

	leftFill, rightFill, lineSlot int
	pen Point

	defaultBucket []contour.Segment
	hasDefault    bool
}

func newEmitter(deps *DependencySet, cfg *decodeConfig, morph bool) *emitter {
	return &emitter{deps: deps, logger: cfg.logger, morph: morph}
}

func toContourPoint(p Point) contour.Point { return contour.Point{X: p.X, Y: p.Y} }
func fromContourPoint(p contour.Point) Point { return Point{X: p.X, Y: p.Y} }

// pushInitialLayer normalizes a shape's initial style tables into the
// emitter's first layer.
func (e *emitter) pushInitialLayer(rawFills []RawFillStyle, rawLines []RawLineStyle) error {
	layer, err := e.normalizeLayer(rawFills, rawLines, -1)
	if err != nil {
		return err
	}
	e.current = layer
	return nil
}

func (e *emitter) normalizeLayer(rawFills []RawFillStyle, rawLines []RawLineStyle, recordIndex int) (styleLayer, error) {
	fills := make([]FillStyle, len(rawFills))
	for i, rf := range rawFills {
		fs, err := normalizeFillStyle(rf, e.morph, e.deps, recordIndex)
		if err != nil {
			return styleLayer{}, err
		}
		fills[i] = fs
	}
	lines := make([]LineStyle, len(rawLines))
	for i, rl := range rawLines {
		ls, err := normalizeLineStyle(rl, e.morph, e.deps, recordIndex)
		if err != nil {
			return styleLayer{}, err
		}
		lines[i] = ls
	}
	return newStyleLayer(fills, lines), nil
}

// pushNewLayer closes the current layer (freezing its buckets) and opens
// a fresh one from newly declared style tables, resetting all three
// active slots.
func (e *emitter) pushNewLayer(rawFills []RawFillStyle, rawLines []RawLineStyle, recordIndex int) error {
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

func (e *emitter) setLeftFill(idx, recordIndex int) error {
	if idx < 0 || idx > len(e.current.fillStyles) {
		return newDecodeError(MalformedInput, recordIndex, idx, "left fill style index out of range")
	}
	e.leftFill = idx
	return nil
}

func (e *emitter) setRightFill(idx, recordIndex int) error {
	if idx < 0 || idx > len(e.current.fillStyles) {
		return newDecodeError(MalformedInput, recordIndex, idx, "right fill style index out of range")
	}
	e.rightFill = idx
	return nil
}

func (e *emitter) setLineSlot(idx, recordIndex int) error {
	if idx < 0 || idx > len(e.current.lineStyles) {
		return newDecodeError(MalformedInput, recordIndex, idx, "line style index out of range")
	}
	e.lineSlot = idx
	return nil
}

// applyStyleChange applies a StyleChangeRecord's effects in order:
// table swap, then slot updates, then move.
func (e *emitter) applyStyleChange(r StyleChangeRecord, recordIndex int) error {
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
	return nil
}

// addSegment files seg into the active fill/line buckets: fill[R]
// always forward, fill[L] always reversed, line[K] always forward.
func (e *emitter) addSegment(seg contour.Segment) {
	if e.leftFill == 0 && e.rightFill == 0 && e.lineSlot == 0 {
		e.hasDefault = true
		e.defaultBucket = append(e.defaultBucket, seg)
		e.logger.Warn("default path fallback triggered", slog.Any("segment", seg))
		return
	}
	if e.rightFill != 0 {
		i := e.rightFill - 1
		e.current.fillBuckets[i] = append(e.current.fillBuckets[i], seg)
	}
	if e.leftFill != 0 {
		reversed := seg
		reversed.Reversed = true
		i := e.leftFill - 1
		e.current.fillBuckets[i] = append(e.current.fillBuckets[i], reversed)
	}
	if e.lineSlot != 0 {
		i := e.lineSlot - 1
		e.current.lineBuckets[i] = append(e.current.lineBuckets[i], seg)
	}
}

func (e *emitter) applyStraightEdge(r StraightEdgeRecord) {
	start := e.pen
	end := Point{X: start.X + r.DeltaX, Y: start.Y + r.DeltaY}
	e.addSegment(contour.Segment{Start: toContourPoint(start), End: toContourPoint(end)})
	e.pen = end
}

func (e *emitter) applyCurvedEdge(r CurvedEdgeRecord) {
	start := e.pen
	control := Point{X: start.X + r.ControlDeltaX, Y: start.Y + r.ControlDeltaY}
	end := Point{X: control.X + r.AnchorDeltaX, Y: control.Y + r.AnchorDeltaY}
	ctrlPoint := toContourPoint(control)
	e.addSegment(contour.Segment{Start: toContourPoint(start), End: toContourPoint(end), Control: &ctrlPoint})
	e.pen = end
}

// finish freezes the last layer and reconstructs every non-empty bucket
// into a Path, in layer order then fill-index order then line-index
// order, appending the default path last if one was ever triggered.
func (e *emitter) finish(bounds Rect) *Shape {
	e.layers = append(e.layers, e.current)

	var paths []Path
	for _, layer := range e.layers {
		for i := range layer.fillStyles {
			if p, ok := buildPath(layer.fillBuckets[i], &layer.fillStyles[i], nil); ok {
				paths = append(paths, p)
			}
		}
		for i := range layer.lineStyles {
			if p, ok := buildPath(layer.lineBuckets[i], nil, &layer.lineStyles[i]); ok {
				paths = append(paths, p)
			}
		}
	}
	if e.hasDefault {
		if p, ok := buildPath(e.defaultBucket, nil, defaultLineStyle()); ok {
			paths = append(paths, p)
		}
	}
	return &Shape{Bounds: bounds, Paths: paths}
}

func defaultLineStyle() *LineStyle {
	return &LineStyle{Width: twips.DefaultLineWidth, Color: Transparent}
}

// buildPath reconstructs bucket into a single Path (possibly containing
// several disjoint contours, each starting with its own MoveTo). It
// reports ok=false for an empty bucket, which the caller drops.
func buildPath(bucket []contour.Segment, fill *FillStyle, line *LineStyle) (Path, bool) {
	if len(bucket) == 0 {
		return Path{}, false
	}
	var cmds []Command
	for _, chain := range contour.Reconstruct(bucket) {
		cmds = append(cmds, commandsFromChain(chain)...)
	}
	return Path{Commands: cmds, Fill: fill, Line: line}, true
}

func commandsFromChain(steps []contour.Step) []Command {
	if len(steps) == 0 {
		return nil
	}
	first := steps[0]
	start := first.Segment.StartPoint()
	if first.Flipped {
		start = first.Segment.EndPoint()
	}
	cmds := make([]Command, 0, len(steps)+1)
	cmds = append(cmds, MoveTo{Point: fromContourPoint(start)})
	for _, step := range steps {
		to := step.Segment.EndPoint()
		if step.Flipped {
			to = step.Segment.StartPoint()
		}
		if step.Segment.Control != nil {
			cmds = append(cmds, CurveTo{Control: fromContourPoint(*step.Segment.Control), Point: fromContourPoint(to)})
		} else {
			cmds = append(cmds, LineTo{Point: fromContourPoint(to)})
		}
	}
	return cmds
}
