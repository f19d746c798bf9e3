package swfshape

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"
)

func TestNormalizeFillStyleSolid(t *testing.T) {
	blue := colornames.Blue
	raw := RawFillStyle{Kind: RawFillSolid, Color: RawColor{R: blue.R, G: blue.G, B: blue.B, A: blue.A}}

	fs, err := normalizeFillStyle(raw, false, NewDependencySet(), 0)
	if err != nil {
		t.Fatalf("normalizeFillStyle: %v", err)
	}
	if fs.Kind != FillSolid {
		t.Fatalf("expected FillSolid, got %v", fs.Kind)
	}
	if fs.Color.B != 1 || fs.Color.R != 0 {
		t.Errorf("unexpected normalized color: %+v", fs.Color)
	}
	if fs.Morph != nil {
		t.Errorf("expected no Morph for a non-morph decode, got %+v", fs.Morph)
	}
}

func TestNormalizeFillStyleMorphSolid(t *testing.T) {
	raw := RawFillStyle{
		Kind:     RawFillSolid,
		Color:    RawColor{R: 255},
		EndColor: RawColor{B: 255},
	}
	fs, err := normalizeFillStyle(raw, true, NewDependencySet(), 0)
	if err != nil {
		t.Fatalf("normalizeFillStyle: %v", err)
	}
	if fs.Morph == nil {
		t.Fatal("expected a Morph pairing for a morph decode")
	}
	if fs.Morph.EndColor.B != 1 {
		t.Errorf("unexpected end color: %+v", fs.Morph.EndColor)
	}
}

func TestNormalizeFillStyleBitmapKinds(t *testing.T) {
	cases := []struct {
		kind           RawFillStyleKind
		wantSmooth     bool
		wantRepeat     bool
	}{
		{RawFillRepeatingBitmap, true, true},
		{RawFillClippedBitmap, true, false},
		{RawFillNonSmoothedRepeatingBitmap, false, true},
		{RawFillNonSmoothedClippedBitmap, false, false},
	}
	for _, c := range cases {
		deps := NewDependencySet()
		fs, err := normalizeFillStyle(RawFillStyle{Kind: c.kind, BitmapID: 7}, false, deps, 0)
		if err != nil {
			t.Fatalf("kind %v: %v", c.kind, err)
		}
		if fs.Kind != FillBitmap {
			t.Errorf("kind %v: expected FillBitmap, got %v", c.kind, fs.Kind)
		}
		if fs.Smooth != c.wantSmooth || fs.Repeat != c.wantRepeat {
			t.Errorf("kind %v: got smooth=%v repeat=%v, want smooth=%v repeat=%v",
				c.kind, fs.Smooth, fs.Repeat, c.wantSmooth, c.wantRepeat)
		}
		if fs.BitmapIndex != 0 || deps.IDs()[0] != 7 {
			t.Errorf("kind %v: expected bitmap id 7 assigned index 0, got index=%d ids=%v", c.kind, fs.BitmapIndex, deps.IDs())
		}
	}
}

func TestNormalizeFillStyleUnsupportedKind(t *testing.T) {
	_, err := normalizeFillStyle(RawFillStyle{Kind: RawFillStyleKind(200)}, false, NewDependencySet(), 4)
	var de *DecodeError
	if !errors.As(err, &de) || de.Kind != UnsupportedFillKind || de.RecordIndex != 4 {
		t.Fatalf("expected UnsupportedFillKind at record 4, got %v", err)
	}
}

func TestNormalizeLineStyleMiterLimit(t *testing.T) {
	cases := []struct {
		factor float64
		want   float64
	}{
		{0, 3},
		{1, 3},
		{1.5, 3},
		{2, 4},
	}
	for _, c := range cases {
		got := normalizeMiterLimit(c.factor)
		if got != c.want {
			t.Errorf("normalizeMiterLimit(%v) = %v, want %v", c.factor, got, c.want)
		}
	}
}

func TestNormalizeLineStyleFillOverride(t *testing.T) {
	raw := RawLineStyle{
		Width:   20,
		HasFill: true,
		Fill:    &RawFillStyle{Kind: RawFillSolid, Color: RawColor{G: 255, A: 255}},
	}
	ls, err := normalizeLineStyle(raw, false, NewDependencySet(), 0)
	if err != nil {
		t.Fatalf("normalizeLineStyle: %v", err)
	}
	if ls.FillOverride == nil {
		t.Fatal("expected FillOverride to be set")
	}
	if diff := cmp.Diff(Color{G: 1, A: 1}, ls.FillOverride.Color); diff != "" {
		t.Errorf("unexpected override color (-want +got):\n%s", diff)
	}
}

func TestNormalizeLineStyleMissingFillIsMalformed(t *testing.T) {
	raw := RawLineStyle{HasFill: true, Fill: nil}
	_, err := normalizeLineStyle(raw, false, NewDependencySet(), 2)
	var de *DecodeError
	if !errors.As(err, &de) || de.Kind != MalformedInput || de.RecordIndex != 2 {
		t.Fatalf("expected MalformedInput at record 2, got %v", err)
	}
}
