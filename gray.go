package pixel

import "fmt"

// Gray is a single-channel pixel holding a brightness value.
type Gray[T Channel] struct {
	Y T
}

// GrayAlpha is [Gray] with an alpha channel appended. The alpha channel may
// use a distinct channel type TA, with the same restrictions as [RGBA].
type GrayAlpha[T, TA Channel] struct {
	Y T
	A TA
}

// 8 and 16 bits per channel shorthands.
type (
	Gray8       = Gray[uint8]
	Gray16      = Gray[uint16]
	GrayAlpha8  = GrayAlpha[uint8, uint8]
	GrayAlpha16 = GrayAlpha[uint16, uint16]
)

// Add returns the sum of the brightness values.
func (c Gray[T]) Add(o Gray[T]) Gray[T] {
	return Gray[T]{c.Y + o.Y}
}

// Sub returns the difference of the brightness values.
func (c Gray[T]) Sub(o Gray[T]) Gray[T] {
	return Gray[T]{c.Y - o.Y}
}

// Mul returns the product of the brightness values.
func (c Gray[T]) Mul(o Gray[T]) Gray[T] {
	return Gray[T]{c.Y * o.Y}
}

// Map returns c with f applied to the brightness channel.
func (c Gray[T]) Map(f func(T) T) Gray[T] {
	return Gray[T]{f(c.Y)}
}

// MapColor is [Gray.Map]: there is no alpha channel to preserve.
func (c Gray[T]) MapColor(f func(T) T) Gray[T] {
	return c.Map(f)
}

// Alpha appends an alpha channel, leaving the brightness untouched.
func (c Gray[T]) Alpha(a T) GrayAlpha[T, T] {
	return GrayAlpha[T, T]{c.Y, a}
}

// Array returns the single channel as a one-element array.
func (c Gray[T]) Array() [1]T {
	return [1]T{c.Y}
}

// Opaque appends a fully opaque 8-bit alpha channel (0xff).
//
// The opaque sentinel is defined for 8 and 16-bit unsigned alpha only; for
// other channel types "fully opaque" has no single obvious value, so no
// generic form exists.
func (c Gray[T]) Opaque() GrayAlpha[T, uint8] {
	return GrayAlpha[T, uint8]{c.Y, 0xff}
}

// Opaque16 appends a fully opaque 16-bit alpha channel (0xffff).
func (c Gray[T]) Opaque16() GrayAlpha[T, uint16] {
	return GrayAlpha[T, uint16]{c.Y, 0xffff}
}

func (c Gray[T]) String() string {
	return fmt.Sprintf("gray(%v)", c.Y)
}

// Add returns the channel-wise sum of c and o, alpha included.
func (c GrayAlpha[T, TA]) Add(o GrayAlpha[T, TA]) GrayAlpha[T, TA] {
	return GrayAlpha[T, TA]{c.Y + o.Y, c.A + o.A}
}

// Sub returns the channel-wise difference of c and o, alpha included.
func (c GrayAlpha[T, TA]) Sub(o GrayAlpha[T, TA]) GrayAlpha[T, TA] {
	return GrayAlpha[T, TA]{c.Y - o.Y, c.A - o.A}
}

// Mul returns the channel-wise product of c and o, alpha included.
func (c GrayAlpha[T, TA]) Mul(o GrayAlpha[T, TA]) GrayAlpha[T, TA] {
	return GrayAlpha[T, TA]{c.Y * o.Y, c.A * o.A}
}

// MapColor returns c with f applied to the brightness channel; the alpha
// channel is carried through unchanged.
func (c GrayAlpha[T, TA]) MapColor(f func(T) T) GrayAlpha[T, TA] {
	return GrayAlpha[T, TA]{f(c.Y), c.A}
}

// Gray drops the alpha channel.
func (c GrayAlpha[T, TA]) Gray() Gray[T] {
	return Gray[T]{c.Y}
}

func (c GrayAlpha[T, TA]) String() string {
	return fmt.Sprintf("graya(%v,%v)", c.Y, c.A)
}

// GrayWithAlpha appends an alpha channel of a possibly different channel
// type than the brightness channel.
func GrayWithAlpha[T, TA Channel](c Gray[T], a TA) GrayAlpha[T, TA] {
	return GrayAlpha[T, TA]{c.Y, a}
}
