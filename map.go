package pixel

// Go methods cannot introduce type parameters, so transforms that change
// the channel type live here as per-variant functions. The MapX forms apply
// f to every channel, alpha included; the MapColorX forms leave the alpha
// channel untouched, which is how alpha-bearing pixels go through
// channel-type-changing operations such as quantization without perturbing
// transparency. Same-type transforms are better served by the Map methods
// and the generic [Map].

// MapRGB returns c with f applied to every channel, over f's result type.
func MapRGB[T, B Channel](c RGB[T], f func(T) B) RGB[B] {
	return RGB[B]{f(c.R), f(c.G), f(c.B)}
}

// MapBGR returns c with f applied to every channel, over f's result type.
func MapBGR[T, B Channel](c BGR[T], f func(T) B) BGR[B] {
	return BGR[B]{f(c.B), f(c.G), f(c.R)}
}

// MapGRB returns c with f applied to every channel, over f's result type.
func MapGRB[T, B Channel](c GRB[T], f func(T) B) GRB[B] {
	return GRB[B]{f(c.G), f(c.R), f(c.B)}
}

// MapGray returns c with f applied to the brightness channel, over f's
// result type.
func MapGray[T, B Channel](c Gray[T], f func(T) B) Gray[B] {
	return Gray[B]{f(c.Y)}
}

// MapRGBA returns c with f applied to every channel, alpha included.
func MapRGBA[T, B Channel](c RGBA[T, T], f func(T) B) RGBA[B, B] {
	return RGBA[B, B]{f(c.R), f(c.G), f(c.B), f(c.A)}
}

// MapBGRA returns c with f applied to every channel, alpha included.
func MapBGRA[T, B Channel](c BGRA[T, T], f func(T) B) BGRA[B, B] {
	return BGRA[B, B]{f(c.B), f(c.G), f(c.R), f(c.A)}
}

// MapARGB returns c with f applied to every channel, alpha included.
func MapARGB[T, B Channel](c ARGB[T, T], f func(T) B) ARGB[B, B] {
	return ARGB[B, B]{f(c.A), f(c.R), f(c.G), f(c.B)}
}

// MapABGR returns c with f applied to every channel, alpha included.
func MapABGR[T, B Channel](c ABGR[T, T], f func(T) B) ABGR[B, B] {
	return ABGR[B, B]{f(c.A), f(c.B), f(c.G), f(c.R)}
}

// MapGrayAlpha returns c with f applied to every channel, alpha included.
func MapGrayAlpha[T, B Channel](c GrayAlpha[T, T], f func(T) B) GrayAlpha[B, B] {
	return GrayAlpha[B, B]{f(c.Y), f(c.A)}
}

// MapColorRGBA returns c with f applied to the color channels; the alpha
// channel, of a possibly distinct type, is carried through unchanged.
func MapColorRGBA[T, TA, B Channel](c RGBA[T, TA], f func(T) B) RGBA[B, TA] {
	return RGBA[B, TA]{f(c.R), f(c.G), f(c.B), c.A}
}

// MapColorBGRA returns c with f applied to the color channels; the alpha
// channel is carried through unchanged.
func MapColorBGRA[T, TA, B Channel](c BGRA[T, TA], f func(T) B) BGRA[B, TA] {
	return BGRA[B, TA]{f(c.B), f(c.G), f(c.R), c.A}
}

// MapColorARGB returns c with f applied to the color channels; the alpha
// channel is carried through unchanged.
func MapColorARGB[T, TA, B Channel](c ARGB[T, TA], f func(T) B) ARGB[B, TA] {
	return ARGB[B, TA]{c.A, f(c.R), f(c.G), f(c.B)}
}

// MapColorABGR returns c with f applied to the color channels; the alpha
// channel is carried through unchanged.
func MapColorABGR[T, TA, B Channel](c ABGR[T, TA], f func(T) B) ABGR[B, TA] {
	return ABGR[B, TA]{c.A, f(c.B), f(c.G), f(c.R)}
}

// MapColorGrayAlpha returns c with f applied to the brightness channel; the
// alpha channel is carried through unchanged.
func MapColorGrayAlpha[T, TA, B Channel](c GrayAlpha[T, TA], f func(T) B) GrayAlpha[B, TA] {
	return GrayAlpha[B, TA]{f(c.Y), c.A}
}
