package swfshape

// Decode converts a DefineShapeTag's raw style tables and edge-record
// stream into a render-ready Shape.
//
// deps collects the bitmap ids referenced by the shape's fill styles; if
// nil, a fresh one is allocated internally and its resolved ids are
// discarded, so callers that need to resolve BitmapIndex against a
// BitmapProvider should pass their own.
func Decode(tag *DefineShapeTag, deps *DependencySet, opts ...DecodeOption) (*Shape, error) {
	if deps == nil {
		deps = NewDependencySet()
	}
	cfg := newDecodeConfig(opts)

	e := newEmitter(deps, cfg, false)
	if err := e.pushInitialLayer(tag.FillStyles, tag.LineStyles); err != nil {
		return nil, err
	}

	for i, rec := range tag.Records {
		switch r := rec.(type) {
		case StyleChangeRecord:
			if err := e.applyStyleChange(r, i); err != nil {
				return nil, err
			}
		case StraightEdgeRecord:
			e.applyStraightEdge(r)
		case CurvedEdgeRecord:
			e.applyCurvedEdge(r)
		default:
			if cfg.strictUnknownRecords {
				return nil, newDecodeError(MalformedInput, i, -1, "unrecognized record type")
			}
			cfg.logger.Warn("skipping unrecognized record", "record", i)
		}
	}

	return e.finish(tag.Bounds), nil
}
