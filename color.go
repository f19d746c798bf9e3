package swfshape

// Color is a straight (non-premultiplied) sRGBA color with each
// component normalized to [0, 1].
type Color struct {
	R, G, B, A float64
}

// RawColor is an 8-bit-per-channel color as decoded from the wire
// (0-255 per component), the form raw fill/line style descriptors carry
// before normalization.
type RawColor struct {
	R, G, B, A uint8
}

// NormalizeColor converts a RawColor to a Color by dividing each
// component by 255.
func NormalizeColor(c RawColor) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// Lerp performs the component-wise linear interpolation a renderer uses
// to tween morph colors: lerp(a, b, r) = a*(1-r) + b*r.
func (c Color) Lerp(other Color, r float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*r,
		G: c.G + (other.G-c.G)*r,
		B: c.B + (other.B-c.B)*r,
		A: c.A + (other.A-c.A)*r,
	}
}

// Transparent is fully-transparent black, the color of the default
// fallback line style.
var Transparent = Color{}
