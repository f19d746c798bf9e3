package swfshape

import "github.com/open-flash/swf-renderer/internal/twips"

// Matrix is a 2D affine transform in pixel space, row-major:
//
//	| A  B  TX |
//	| C  D  TY |
//
// representing x' = A*x + B*y + TX, y' = C*x + D*y + TY.
//
// Gradient and bitmap fill matrices are produced from a RawMatrix by
// NormalizeMatrix, which pre-bakes the document-wide twip-to-pixel scale
// into A/B/C/D per style kind (see gradientMatrixScale, bitmapMatrixScale).
type Matrix struct {
	A, B, TX float64
	C, D, TY float64
}

// IdentityMatrix is the no-op affine transform.
var IdentityMatrix = Matrix{A: 1, D: 1}

// RawMatrix is the SWF MATRIX record as decoded from the wire: unitless
// scale/rotate-skew components and a twips translation. It is produced
// upstream of this module (parsing the wire format is out of scope) and
// consumed only by NormalizeMatrix.
type RawMatrix struct {
	A, B, C, D float64 // scale / rotate-skew components, unitless
	TX, TY     int32   // translation, twips
}

const (
	// bitmapMatrixScale converts a bitmap fill's raw matrix into pixel
	// space.
	bitmapMatrixScale = twips.BitmapMatrixScale
	// gradientMatrixScale converts a gradient fill's raw matrix into
	// pixel space.
	gradientMatrixScale = twips.GradientMatrixScale
)

// NormalizeMatrix pre-scales a RawMatrix's linear components by scale and
// converts its twips translation to pixels.
func NormalizeMatrix(raw RawMatrix, scale float64) Matrix {
	return Matrix{
		A:  raw.A * scale,
		B:  raw.B * scale,
		C:  raw.C * scale,
		D:  raw.D * scale,
		TX: twips.ToPixels(raw.TX),
		TY: twips.ToPixels(raw.TY),
	}
}

// TransformPoint applies the matrix to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.TX, m.C*x + m.D*y + m.TY
}
