package pixel

import "fmt"

// RGBA is a pixel with red, green, blue and alpha channels, in that memory
// order. The alpha channel may use a distinct channel type TA; such pixels
// still support the per-variant arithmetic and MapColor, but are excluded
// from the flat views and the generic algebra (see [Pixel]).
type RGBA[T, TA Channel] struct {
	R, G, B T
	A       TA
}

// BGRA is [RGBA] stored blue-first.
type BGRA[T, TA Channel] struct {
	B, G, R T
	A       TA
}

// ARGB is [RGBA] with the alpha channel stored first.
type ARGB[T, TA Channel] struct {
	A       TA
	R, G, B T
}

// ABGR is [BGRA] with the alpha channel stored first.
type ABGR[T, TA Channel] struct {
	A       TA
	B, G, R T
}

// 8 and 16 bits per channel shorthands. Alpha 0 is transparent, the maximum
// channel value is opaque.
type (
	RGBA8  = RGBA[uint8, uint8]
	RGBA16 = RGBA[uint16, uint16]
	BGRA8  = BGRA[uint8, uint8]
	BGRA16 = BGRA[uint16, uint16]
	ARGB8  = ARGB[uint8, uint8]
	ARGB16 = ARGB[uint16, uint16]
	ABGR8  = ABGR[uint8, uint8]
	ABGR16 = ABGR[uint16, uint16]
)

// Add returns the channel-wise sum of c and o, alpha included.
func (c RGBA[T, TA]) Add(o RGBA[T, TA]) RGBA[T, TA] {
	return RGBA[T, TA]{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Sub returns the channel-wise difference of c and o, alpha included.
func (c RGBA[T, TA]) Sub(o RGBA[T, TA]) RGBA[T, TA] {
	return RGBA[T, TA]{c.R - o.R, c.G - o.G, c.B - o.B, c.A - o.A}
}

// Mul returns the channel-wise product of c and o, alpha included.
func (c RGBA[T, TA]) Mul(o RGBA[T, TA]) RGBA[T, TA] {
	return RGBA[T, TA]{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// MapColor returns c with f applied to the color channels; the alpha
// channel is carried through unchanged.
func (c RGBA[T, TA]) MapColor(f func(T) T) RGBA[T, TA] {
	return RGBA[T, TA]{f(c.R), f(c.G), f(c.B), c.A}
}

// RGB drops the alpha channel.
func (c RGBA[T, TA]) RGB() RGB[T] {
	return RGB[T]{c.R, c.G, c.B}
}

// ToBGRA returns the same pixel with blue-first channel order.
func (c RGBA[T, TA]) ToBGRA() BGRA[T, TA] {
	return BGRA[T, TA]{c.B, c.G, c.R, c.A}
}

// ToARGB returns the same pixel with the alpha channel stored first.
func (c RGBA[T, TA]) ToARGB() ARGB[T, TA] {
	return ARGB[T, TA]{c.A, c.R, c.G, c.B}
}

// ToABGR returns the same pixel with alpha-first, blue-first channel order.
func (c RGBA[T, TA]) ToABGR() ABGR[T, TA] {
	return ABGR[T, TA]{c.A, c.B, c.G, c.R}
}

func (c RGBA[T, TA]) String() string {
	return fmt.Sprintf("rgba(%v,%v,%v,%v)", c.R, c.G, c.B, c.A)
}

// Add returns the channel-wise sum of c and o, alpha included.
func (c BGRA[T, TA]) Add(o BGRA[T, TA]) BGRA[T, TA] {
	return BGRA[T, TA]{c.B + o.B, c.G + o.G, c.R + o.R, c.A + o.A}
}

// Sub returns the channel-wise difference of c and o, alpha included.
func (c BGRA[T, TA]) Sub(o BGRA[T, TA]) BGRA[T, TA] {
	return BGRA[T, TA]{c.B - o.B, c.G - o.G, c.R - o.R, c.A - o.A}
}

// Mul returns the channel-wise product of c and o, alpha included.
func (c BGRA[T, TA]) Mul(o BGRA[T, TA]) BGRA[T, TA] {
	return BGRA[T, TA]{c.B * o.B, c.G * o.G, c.R * o.R, c.A * o.A}
}

// MapColor returns c with f applied to the color channels; the alpha
// channel is carried through unchanged.
func (c BGRA[T, TA]) MapColor(f func(T) T) BGRA[T, TA] {
	return BGRA[T, TA]{f(c.B), f(c.G), f(c.R), c.A}
}

// BGR drops the alpha channel.
func (c BGRA[T, TA]) BGR() BGR[T] {
	return BGR[T]{c.B, c.G, c.R}
}

// ToRGBA returns the same pixel with red-first channel order.
func (c BGRA[T, TA]) ToRGBA() RGBA[T, TA] {
	return RGBA[T, TA]{c.R, c.G, c.B, c.A}
}

func (c BGRA[T, TA]) String() string {
	return fmt.Sprintf("bgra(%v,%v,%v,%v)", c.B, c.G, c.R, c.A)
}

// Add returns the channel-wise sum of c and o, alpha included.
func (c ARGB[T, TA]) Add(o ARGB[T, TA]) ARGB[T, TA] {
	return ARGB[T, TA]{c.A + o.A, c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the channel-wise difference of c and o, alpha included.
func (c ARGB[T, TA]) Sub(o ARGB[T, TA]) ARGB[T, TA] {
	return ARGB[T, TA]{c.A - o.A, c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul returns the channel-wise product of c and o, alpha included.
func (c ARGB[T, TA]) Mul(o ARGB[T, TA]) ARGB[T, TA] {
	return ARGB[T, TA]{c.A * o.A, c.R * o.R, c.G * o.G, c.B * o.B}
}

// MapColor returns c with f applied to the color channels; the alpha
// channel is carried through unchanged.
func (c ARGB[T, TA]) MapColor(f func(T) T) ARGB[T, TA] {
	return ARGB[T, TA]{c.A, f(c.R), f(c.G), f(c.B)}
}

// RGB drops the alpha channel.
func (c ARGB[T, TA]) RGB() RGB[T] {
	return RGB[T]{c.R, c.G, c.B}
}

// ToRGBA returns the same pixel with the alpha channel stored last.
func (c ARGB[T, TA]) ToRGBA() RGBA[T, TA] {
	return RGBA[T, TA]{c.R, c.G, c.B, c.A}
}

func (c ARGB[T, TA]) String() string {
	return fmt.Sprintf("argb(%v,%v,%v,%v)", c.A, c.R, c.G, c.B)
}

// Add returns the channel-wise sum of c and o, alpha included.
func (c ABGR[T, TA]) Add(o ABGR[T, TA]) ABGR[T, TA] {
	return ABGR[T, TA]{c.A + o.A, c.B + o.B, c.G + o.G, c.R + o.R}
}

// Sub returns the channel-wise difference of c and o, alpha included.
func (c ABGR[T, TA]) Sub(o ABGR[T, TA]) ABGR[T, TA] {
	return ABGR[T, TA]{c.A - o.A, c.B - o.B, c.G - o.G, c.R - o.R}
}

// Mul returns the channel-wise product of c and o, alpha included.
func (c ABGR[T, TA]) Mul(o ABGR[T, TA]) ABGR[T, TA] {
	return ABGR[T, TA]{c.A * o.A, c.B * o.B, c.G * o.G, c.R * o.R}
}

// MapColor returns c with f applied to the color channels; the alpha
// channel is carried through unchanged.
func (c ABGR[T, TA]) MapColor(f func(T) T) ABGR[T, TA] {
	return ABGR[T, TA]{c.A, f(c.B), f(c.G), f(c.R)}
}

// ToRGBA returns the same pixel with red-first, alpha-last channel order.
func (c ABGR[T, TA]) ToRGBA() RGBA[T, TA] {
	return RGBA[T, TA]{c.R, c.G, c.B, c.A}
}

func (c ABGR[T, TA]) String() string {
	return fmt.Sprintf("abgr(%v,%v,%v,%v)", c.A, c.B, c.G, c.R)
}
