package swfshape

// DecodeMorph converts a DefineMorphShapeTag's paired start/end
// edge-record streams into a render-ready MorphShape.
//
// The start-stream drives contour topology and style-layer transitions;
// the end-stream is walked in lockstep purely to supply each edge's
// paired end-frame geometry.
func DecodeMorph(tag *DefineMorphShapeTag, deps *DependencySet, opts ...DecodeOption) (*MorphShape, error) {
	if deps == nil {
		deps = NewDependencySet()
	}
	cfg := newDecodeConfig(opts)

	e := newMorphEmitter(deps, cfg, tag.EndRecords)
	if err := e.pushInitialLayer(tag.FillStyles, tag.LineStyles); err != nil {
		return nil, err
	}

	for i, rec := range tag.StartRecords {
		switch r := rec.(type) {
		case StyleChangeRecord:
			if err := e.applyStyleChange(r, i); err != nil {
				return nil, err
			}
		case StraightEdgeRecord:
			if err := e.applyEdge(r, i); err != nil {
				return nil, err
			}
		case CurvedEdgeRecord:
			if err := e.applyEdge(r, i); err != nil {
				return nil, err
			}
		default:
			if cfg.strictUnknownRecords {
				return nil, newDecodeError(MalformedInput, i, -1, "unrecognized record type")
			}
			cfg.logger.Warn("skipping unrecognized record", "record", i)
		}
	}

	return e.finish(tag.StartBounds, tag.EndBounds), nil
}
