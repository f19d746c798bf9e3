package swfshape

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"
)

func namedRawColor(r, g, b, a uint8) RawColor { return RawColor{R: r, G: g, B: b, A: a} }

// TestDecodeTriangle checks that a single fill1-only triangle
// reconstructs into one forward-wound Path.
func TestDecodeTriangle(t *testing.T) {
	red := colornames.Red
	tag := &DefineShapeTag{
		Bounds:     Rect{XMax: 100, YMax: 100},
		FillStyles: []RawFillStyle{{Kind: RawFillSolid, Color: namedRawColor(red.R, red.G, red.B, red.A)}},
		Records: []Record{
			StyleChangeRecord{HasFillStyle1: true, FillStyle1: 1, Move: true, MoveX: 0, MoveY: 0},
			StraightEdgeRecord{DeltaX: 100, DeltaY: 0},
			StraightEdgeRecord{DeltaX: 0, DeltaY: 100},
			StraightEdgeRecord{DeltaX: -100, DeltaY: -100},
		},
	}

	shape, err := Decode(tag, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(shape.Paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(shape.Paths))
	}
	p := shape.Paths[0]
	if p.Fill == nil || p.Line != nil {
		t.Fatalf("expected fill-only path, got %+v", p)
	}
	want := []Command{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(100, 0)},
		LineTo{Point: Pt(100, 100)},
		LineTo{Point: Pt(0, 0)},
	}
	if diff := cmp.Diff(want, p.Commands); diff != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", diff)
	}
}

// TestDecodeOutOfOrderEdges checks that edges filed out of drawing
// order still reconstruct into a single closed ring, with interior
// segments flipped as needed.
func TestDecodeOutOfOrderEdges(t *testing.T) {
	tag := &DefineShapeTag{
		FillStyles: []RawFillStyle{{Kind: RawFillSolid, Color: namedRawColor(0, 0, 255, 255)}},
		Records: []Record{
			StyleChangeRecord{HasFillStyle1: true, FillStyle1: 1, Move: true, MoveX: 0, MoveY: 0},
			StraightEdgeRecord{DeltaX: 100, DeltaY: 0}, // top: (0,0)->(100,0)

			StyleChangeRecord{Move: true, MoveX: 0, MoveY: 100},
			StraightEdgeRecord{DeltaX: 100, DeltaY: 0}, // bottom: (0,100)->(100,100)

			StyleChangeRecord{Move: true, MoveX: 0, MoveY: 0},
			StraightEdgeRecord{DeltaX: 0, DeltaY: 100}, // left: (0,0)->(0,100)

			StyleChangeRecord{Move: true, MoveX: 100, MoveY: 0},
			StraightEdgeRecord{DeltaX: 0, DeltaY: 100}, // right: (100,0)->(100,100)
		},
	}

	shape, err := Decode(tag, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(shape.Paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(shape.Paths))
	}
	cmds := shape.Paths[0].Commands
	if len(cmds) != 5 {
		t.Fatalf("expected a single closed ring (1 move + 4 edges), got %d commands", len(cmds))
	}
	if _, ok := cmds[0].(MoveTo); !ok {
		t.Fatalf("expected first command to be MoveTo, got %T", cmds[0])
	}
}

// TestDecodeDefaultPathFallback checks that an edge with no active fill
// or line slot produces a synthesized hairline path.
func TestDecodeDefaultPathFallback(t *testing.T) {
	tag := &DefineShapeTag{
		Records: []Record{
			StyleChangeRecord{Move: true, MoveX: 0, MoveY: 0},
			StraightEdgeRecord{DeltaX: 50, DeltaY: 50},
		},
	}

	shape, err := Decode(tag, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(shape.Paths) != 1 {
		t.Fatalf("expected 1 default path, got %d", len(shape.Paths))
	}
	p := shape.Paths[0]
	if p.Fill != nil || p.Line == nil {
		t.Fatalf("expected line-only default path, got %+v", p)
	}
	if p.Line.Color != Transparent {
		t.Errorf("expected default path to be transparent, got %+v", p.Line.Color)
	}
}

// TestDecodeMidShapeNewStyles checks that a HasNewStyles record
// mid-stream freezes the current layer and starts a fresh one, and that
// both layers' paths appear in the output in layer order.
func TestDecodeMidShapeNewStyles(t *testing.T) {
	tag := &DefineShapeTag{
		FillStyles: []RawFillStyle{{Kind: RawFillSolid, Color: namedRawColor(0, 0, 255, 255)}},
		Records: []Record{
			StyleChangeRecord{HasFillStyle1: true, FillStyle1: 1, Move: true, MoveX: 0, MoveY: 0},
			StraightEdgeRecord{DeltaX: 10, DeltaY: 0},
			StraightEdgeRecord{DeltaX: 0, DeltaY: 10},
			StraightEdgeRecord{DeltaX: -10, DeltaY: -10},

			StyleChangeRecord{
				HasNewStyles:  true,
				NewFillStyles: []RawFillStyle{{Kind: RawFillSolid, Color: namedRawColor(0, 255, 0, 255)}},
				HasFillStyle1: true,
				FillStyle1:    1,
				Move:          true,
				MoveX:         20,
				MoveY:         20,
			},
			StraightEdgeRecord{DeltaX: 10, DeltaY: 0},
			StraightEdgeRecord{DeltaX: 0, DeltaY: 10},
			StraightEdgeRecord{DeltaX: -10, DeltaY: -10},
		},
	}

	shape, err := Decode(tag, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(shape.Paths) != 2 {
		t.Fatalf("expected 2 paths (one per layer), got %d", len(shape.Paths))
	}
	if shape.Paths[0].Fill.Color.B != 1 {
		t.Errorf("expected first layer's path to keep the blue fill, got %+v", shape.Paths[0].Fill.Color)
	}
	if shape.Paths[1].Fill.Color.G != 1 {
		t.Errorf("expected second layer's path to use the new green fill, got %+v", shape.Paths[1].Fill.Color)
	}
}

func TestDecodeOutOfRangeStyleIndexIsMalformed(t *testing.T) {
	tag := &DefineShapeTag{
		Records: []Record{
			StyleChangeRecord{HasFillStyle1: true, FillStyle1: 3},
		},
	}
	_, err := Decode(tag, nil)
	var de *DecodeError
	if !errors.As(err, &de) || de.Kind != MalformedInput {
		t.Fatalf("expected MalformedInput DecodeError, got %v", err)
	}
}

func TestDecodeUnsupportedFillKindPropagates(t *testing.T) {
	tag := &DefineShapeTag{
		FillStyles: []RawFillStyle{{Kind: RawFillStyleKind(255)}},
		Records: []Record{
			StyleChangeRecord{HasFillStyle1: true, FillStyle1: 1},
		},
	}
	_, err := Decode(tag, nil)
	if !errors.Is(err, &DecodeError{Kind: UnsupportedFillKind}) {
		t.Fatalf("expected UnsupportedFillKind, got %v", err)
	}
}

// TestDecodeReversedLeftFillProperty checks the fill ordering rule
// directly: the same edge filed under fillStyle1 (right) is played
// forward, and under fillStyle0 (left) is played in the opposite
// direction.
func TestDecodeReversedLeftFillProperty(t *testing.T) {
	edge := func(slot func(r *StyleChangeRecord)) *DefineShapeTag {
		sc := StyleChangeRecord{Move: true, MoveX: 0, MoveY: 0}
		slot(&sc)
		return &DefineShapeTag{
			FillStyles: []RawFillStyle{{Kind: RawFillSolid}},
			Records: []Record{
				sc,
				StraightEdgeRecord{DeltaX: 100, DeltaY: 0},
			},
		}
	}

	right, err := Decode(edge(func(r *StyleChangeRecord) { r.HasFillStyle1, r.FillStyle1 = true, 1 }), nil)
	if err != nil {
		t.Fatal(err)
	}
	left, err := Decode(edge(func(r *StyleChangeRecord) { r.HasFillStyle0, r.FillStyle0 = true, 1 }), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []Command{MoveTo{Point: Pt(0, 0)}, LineTo{Point: Pt(100, 0)}}
	if diff := cmp.Diff(want, right.Paths[0].Commands); diff != "" {
		t.Errorf("right fill (-want +got):\n%s", diff)
	}
	wantReversed := []Command{MoveTo{Point: Pt(100, 0)}, LineTo{Point: Pt(0, 0)}}
	if diff := cmp.Diff(wantReversed, left.Paths[0].Commands); diff != "" {
		t.Errorf("left fill (-want +got):\n%s", diff)
	}
}
