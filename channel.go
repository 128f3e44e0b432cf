package pixel

import "unsafe"

// Channel is the set of scalar types usable as a pixel channel.
//
// Every member is a fixed-width numeric type with no padding, no indirection
// and no invalid bit patterns, which is what makes the [Bytes] view sound.
// The ~ forms admit user-defined channel types as long as their underlying
// type is one of these, which preserves that property.
type Channel interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// Pixel is the set of pixel variants whose channels all share the channel
// type T. Variants instantiated with a distinct alpha channel type do not
// satisfy Pixel: their memory is not a uniform channel array, so they are
// excluded from the flat views and the generic algebra at compile time.
type Pixel[T Channel] interface {
	RGB[T] | BGR[T] | GRB[T] |
		RGBA[T, T] | BGRA[T, T] | ARGB[T, T] | ABGR[T, T] |
		Gray[T] | GrayAlpha[T, T]
}

// arity returns the channel count of P, verifying that a value of P is
// exactly its channels and nothing more. The Pixel constraint makes a
// violation impossible for the shipped variants; the check remains so that
// an incompatible layout fails here instead of aliasing memory.
func arity[P Pixel[T], T Channel]() int {
	var (
		p P
		c T
	)
	ps, cs := unsafe.Sizeof(p), unsafe.Sizeof(c)
	if cs == 0 || ps%cs != 0 {
		panic("pixel: channel type does not evenly divide the pixel type")
	}
	return int(ps / cs)
}
