package pixel

// Fixed-size array forms of the four-channel variants. These are functions
// rather than methods because the array element type requires the alpha
// channel to share the color channel type, which a method cannot demand.
// The array→struct direction is [FromSlice] (arrays convert via a[:]).

// RGBAArray returns the channels in declared order: [r, g, b, a].
func RGBAArray[T Channel](c RGBA[T, T]) [4]T {
	return [4]T{c.R, c.G, c.B, c.A}
}

// BGRAArray returns the channels in declared order: [b, g, r, a].
func BGRAArray[T Channel](c BGRA[T, T]) [4]T {
	return [4]T{c.B, c.G, c.R, c.A}
}

// ARGBArray returns the channels in declared order: [a, r, g, b].
func ARGBArray[T Channel](c ARGB[T, T]) [4]T {
	return [4]T{c.A, c.R, c.G, c.B}
}

// ABGRArray returns the channels in declared order: [a, b, g, r].
func ABGRArray[T Channel](c ABGR[T, T]) [4]T {
	return [4]T{c.A, c.B, c.G, c.R}
}

// GrayAlphaArray returns the channels in declared order: [y, a].
func GrayAlphaArray[T Channel](c GrayAlpha[T, T]) [2]T {
	return [2]T{c.Y, c.A}
}
