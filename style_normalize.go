package swfshape

// normalizeFillStyle converts a RawFillStyle into a FillStyle.
// morph controls whether the paired end-state fields are also decoded.
func normalizeFillStyle(raw RawFillStyle, morph bool, deps *DependencySet, recordIndex int) (FillStyle, error) {
	switch raw.Kind {
	case RawFillSolid:
		fs := FillStyle{Kind: FillSolid, Color: NormalizeColor(raw.Color)}
		if morph {
			fs.Morph = &FillMorph{EndColor: NormalizeColor(raw.EndColor)}
		}
		return fs, nil

	case RawFillLinearGradient, RawFillRadialGradient, RawFillFocalGradient:
		kind := map[RawFillStyleKind]FillKind{
			RawFillLinearGradient: FillLinearGradient,
			RawFillRadialGradient: FillRadialGradient,
			RawFillFocalGradient:  FillFocalGradient,
		}[raw.Kind]

		stops := make([]GradientStop, len(raw.Stops))
		for i, s := range raw.Stops {
			stop := GradientStop{Ratio: s.Ratio, Color: NormalizeColor(s.Color)}
			if morph {
				stop.EndRatio = s.EndRatio
				stop.EndColor = NormalizeColor(s.EndColor)
			}
			stops[i] = stop
		}

		fs := FillStyle{
			Kind:          kind,
			Matrix:        NormalizeMatrix(raw.Matrix, gradientMatrixScale),
			Stops:         stops,
			FocalPoint:    raw.FocalPoint,
			Spread:        raw.Spread,
			Interpolation: raw.Interpolation,
		}
		if morph {
			fs.Morph = &FillMorph{
				EndMatrix:     NormalizeMatrix(raw.EndMatrix, gradientMatrixScale),
				EndFocalPoint: raw.EndFocalPoint,
			}
		}
		return fs, nil

	case RawFillRepeatingBitmap, RawFillClippedBitmap,
		RawFillNonSmoothedRepeatingBitmap, RawFillNonSmoothedClippedBitmap:
		smooth := raw.Kind == RawFillRepeatingBitmap || raw.Kind == RawFillClippedBitmap
		repeat := raw.Kind == RawFillRepeatingBitmap || raw.Kind == RawFillNonSmoothedRepeatingBitmap

		fs := FillStyle{
			Kind:        FillBitmap,
			Matrix:      NormalizeMatrix(raw.Matrix, bitmapMatrixScale),
			BitmapIndex: deps.Index(raw.BitmapID),
			Repeat:      repeat,
			Smooth:      smooth,
		}
		if morph {
			fs.Morph = &FillMorph{EndMatrix: NormalizeMatrix(raw.EndMatrix, bitmapMatrixScale)}
		}
		return fs, nil

	default:
		return FillStyle{}, newDecodeError(UnsupportedFillKind, recordIndex, -1, "")
	}
}

// normalizeLineStyle converts a RawLineStyle into a LineStyle.
func normalizeLineStyle(raw RawLineStyle, morph bool, deps *DependencySet, recordIndex int) (LineStyle, error) {
	ls := LineStyle{
		Width:        raw.Width,
		Color:        NormalizeColor(raw.Color),
		StartCap:     raw.StartCap,
		EndCap:       raw.EndCap,
		Join:         raw.Join,
		MiterLimit:   normalizeMiterLimit(raw.MiterLimitFactor),
		NoHscale:     raw.NoHscale,
		NoVscale:     raw.NoVscale,
		PixelHinting: raw.PixelHinting,
		NoClose:      raw.NoClose,
	}

	if raw.HasFill {
		if raw.Fill == nil {
			return LineStyle{}, newDecodeError(MalformedInput, recordIndex, -1, "line style declares HasFill with no fill descriptor")
		}
		nested, err := normalizeFillStyle(*raw.Fill, morph, deps, recordIndex)
		if err != nil {
			return LineStyle{}, err
		}
		ls.FillOverride = &nested
	}

	if morph {
		ls.Morph = &LineMorph{EndWidth: raw.EndWidth, EndColor: NormalizeColor(raw.EndColor)}
	}

	return ls, nil
}
