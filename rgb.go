package pixel

import "fmt"

// RGB is a pixel with red, green and blue channels, in that memory order.
type RGB[T Channel] struct {
	R, G, B T
}

// BGR is a pixel with the same channels as [RGB] but stored blue-first.
type BGR[T Channel] struct {
	B, G, R T
}

// GRB is a pixel with the green channel first, as used by WS2812-style
// LED strips.
type GRB[T Channel] struct {
	G, R, B T
}

// 8 and 16 bits per channel shorthands.
type (
	RGB8  = RGB[uint8]
	RGB16 = RGB[uint16]
	BGR8  = BGR[uint8]
	BGR16 = BGR[uint16]
	GRB8  = GRB[uint8]
)

// Add returns the channel-wise sum of c and o.
func (c RGB[T]) Add(o RGB[T]) RGB[T] {
	return RGB[T]{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the channel-wise difference of c and o.
func (c RGB[T]) Sub(o RGB[T]) RGB[T] {
	return RGB[T]{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul returns the channel-wise product of c and o.
func (c RGB[T]) Mul(o RGB[T]) RGB[T] {
	return RGB[T]{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Map returns c with f applied to every channel.
func (c RGB[T]) Map(f func(T) T) RGB[T] {
	return RGB[T]{f(c.R), f(c.G), f(c.B)}
}

// MapColor is [RGB.Map]: there is no alpha channel to preserve.
func (c RGB[T]) MapColor(f func(T) T) RGB[T] {
	return c.Map(f)
}

// Alpha appends an alpha channel, leaving the color channels untouched.
func (c RGB[T]) Alpha(a T) RGBA[T, T] {
	return RGBA[T, T]{c.R, c.G, c.B, a}
}

// Array returns the channels in declared order: [r, g, b].
func (c RGB[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// BGR returns the same color with blue-first channel order.
func (c RGB[T]) BGR() BGR[T] {
	return BGR[T]{c.B, c.G, c.R}
}

// GRB returns the same color with green-first channel order.
func (c RGB[T]) GRB() GRB[T] {
	return GRB[T]{c.G, c.R, c.B}
}

func (c RGB[T]) String() string {
	return fmt.Sprintf("rgb(%v,%v,%v)", c.R, c.G, c.B)
}

// Add returns the channel-wise sum of c and o.
func (c BGR[T]) Add(o BGR[T]) BGR[T] {
	return BGR[T]{c.B + o.B, c.G + o.G, c.R + o.R}
}

// Sub returns the channel-wise difference of c and o.
func (c BGR[T]) Sub(o BGR[T]) BGR[T] {
	return BGR[T]{c.B - o.B, c.G - o.G, c.R - o.R}
}

// Mul returns the channel-wise product of c and o.
func (c BGR[T]) Mul(o BGR[T]) BGR[T] {
	return BGR[T]{c.B * o.B, c.G * o.G, c.R * o.R}
}

// Map returns c with f applied to every channel.
func (c BGR[T]) Map(f func(T) T) BGR[T] {
	return BGR[T]{f(c.B), f(c.G), f(c.R)}
}

// MapColor is [BGR.Map]: there is no alpha channel to preserve.
func (c BGR[T]) MapColor(f func(T) T) BGR[T] {
	return c.Map(f)
}

// Alpha appends an alpha channel, leaving the color channels untouched.
func (c BGR[T]) Alpha(a T) BGRA[T, T] {
	return BGRA[T, T]{c.B, c.G, c.R, a}
}

// Array returns the channels in declared order: [b, g, r].
func (c BGR[T]) Array() [3]T {
	return [3]T{c.B, c.G, c.R}
}

// RGB returns the same color with red-first channel order.
func (c BGR[T]) RGB() RGB[T] {
	return RGB[T]{c.R, c.G, c.B}
}

func (c BGR[T]) String() string {
	return fmt.Sprintf("bgr(%v,%v,%v)", c.B, c.G, c.R)
}

// Add returns the channel-wise sum of c and o.
func (c GRB[T]) Add(o GRB[T]) GRB[T] {
	return GRB[T]{c.G + o.G, c.R + o.R, c.B + o.B}
}

// Sub returns the channel-wise difference of c and o.
func (c GRB[T]) Sub(o GRB[T]) GRB[T] {
	return GRB[T]{c.G - o.G, c.R - o.R, c.B - o.B}
}

// Mul returns the channel-wise product of c and o.
func (c GRB[T]) Mul(o GRB[T]) GRB[T] {
	return GRB[T]{c.G * o.G, c.R * o.R, c.B * o.B}
}

// Map returns c with f applied to every channel.
func (c GRB[T]) Map(f func(T) T) GRB[T] {
	return GRB[T]{f(c.G), f(c.R), f(c.B)}
}

// MapColor is [GRB.Map]: there is no alpha channel to preserve.
func (c GRB[T]) MapColor(f func(T) T) GRB[T] {
	return c.Map(f)
}

// Array returns the channels in declared order: [g, r, b].
func (c GRB[T]) Array() [3]T {
	return [3]T{c.G, c.R, c.B}
}

// RGB returns the same color with red-first channel order.
func (c GRB[T]) RGB() RGB[T] {
	return RGB[T]{c.R, c.G, c.B}
}

func (c GRB[T]) String() string {
	return fmt.Sprintf("grb(%v,%v,%v)", c.G, c.R, c.B)
}

// RGBWithAlpha appends an alpha channel of a possibly different channel
// type than the color channels.
func RGBWithAlpha[T, TA Channel](c RGB[T], a TA) RGBA[T, TA] {
	return RGBA[T, TA]{c.R, c.G, c.B, a}
}

// BGRWithAlpha appends an alpha channel of a possibly different channel
// type than the color channels.
func BGRWithAlpha[T, TA Channel](c BGR[T], a TA) BGRA[T, TA] {
	return BGRA[T, TA]{c.B, c.G, c.R, a}
}
