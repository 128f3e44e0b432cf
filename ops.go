package pixel

// The generic algebra is built on the component view: every function below
// works channel-by-channel through [ComponentsOf], so one implementation
// covers all homogeneous variants. Overflow, wrapping and division semantics
// are those of the channel type's native operators; nothing saturates.

// Map returns p with f applied to every channel, the alpha channel included.
// For transforms that change the channel type, see the per-variant Map
// functions; for transforms that must leave alpha untouched, see the
// MapColor methods.
func Map[P Pixel[T], T Channel](p P, f func(T) T) P {
	v := ComponentsOf[P, T](&p)
	for i, c := range v {
		v[i] = f(c)
	}
	return p
}

// AddScalar returns p with s added to every channel, alpha included.
func AddScalar[P Pixel[T], T Channel](p P, s T) P {
	v := ComponentsOf[P, T](&p)
	for i := range v {
		v[i] += s
	}
	return p
}

// SubScalar returns p with s subtracted from every channel, alpha included.
func SubScalar[P Pixel[T], T Channel](p P, s T) P {
	v := ComponentsOf[P, T](&p)
	for i := range v {
		v[i] -= s
	}
	return p
}

// MulScalar returns p with every channel multiplied by s, alpha included.
func MulScalar[P Pixel[T], T Channel](p P, s T) P {
	v := ComponentsOf[P, T](&p)
	for i := range v {
		v[i] *= s
	}
	return p
}

// DivScalar returns p with every channel divided by s, alpha included.
func DivScalar[P Pixel[T], T Channel](p P, s T) P {
	v := ComponentsOf[P, T](&p)
	for i := range v {
		v[i] /= s
	}
	return p
}

// AddScalarInPlace adds s to every channel of *p.
func AddScalarInPlace[P Pixel[T], T Channel](p *P, s T) {
	v := ComponentsOf[P, T](p)
	for i := range v {
		v[i] += s
	}
}

// SubScalarInPlace subtracts s from every channel of *p.
func SubScalarInPlace[P Pixel[T], T Channel](p *P, s T) {
	v := ComponentsOf[P, T](p)
	for i := range v {
		v[i] -= s
	}
}

// MulScalarInPlace multiplies every channel of *p by s.
func MulScalarInPlace[P Pixel[T], T Channel](p *P, s T) {
	v := ComponentsOf[P, T](p)
	for i := range v {
		v[i] *= s
	}
}

// DivScalarInPlace divides every channel of *p by s.
func DivScalarInPlace[P Pixel[T], T Channel](p *P, s T) {
	v := ComponentsOf[P, T](p)
	for i := range v {
		v[i] /= s
	}
}

// AddInPlace adds o to *p channel-wise.
func AddInPlace[P Pixel[T], T Channel](p *P, o P) {
	d, s := ComponentsOf[P, T](p), ComponentsOf[P, T](&o)
	for i := range d {
		d[i] += s[i]
	}
}

// SubInPlace subtracts o from *p channel-wise.
func SubInPlace[P Pixel[T], T Channel](p *P, o P) {
	d, s := ComponentsOf[P, T](p), ComponentsOf[P, T](&o)
	for i := range d {
		d[i] -= s[i]
	}
}

// MulInPlace multiplies *p by o channel-wise.
func MulInPlace[P Pixel[T], T Channel](p *P, o P) {
	d, s := ComponentsOf[P, T](p), ComponentsOf[P, T](&o)
	for i := range d {
		d[i] *= s[i]
	}
}

// Sum returns the channel-wise sum of ps. The sum of no pixels is the zero
// pixel, which is the additive identity.
func Sum[P Pixel[T], T Channel](ps []P) P {
	var sum P
	v := ComponentsOf[P, T](&sum)
	n := len(v)
	for i, c := range Components[P, T](ps) {
		v[i%n] += c
	}
	return sum
}

// FromSlice builds a pixel from the first arity values of s, in declared
// channel order. Panics if s holds fewer values than the pixel has
// channels; surplus values are ignored.
func FromSlice[P Pixel[T], T Channel](s []T) P {
	var p P
	v := ComponentsOf[P, T](&p)
	if len(s) < len(v) {
		panic("pixel: not enough channel values")
	}
	copy(v, s)
	return p
}
