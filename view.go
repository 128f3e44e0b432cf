package pixel

import "unsafe"

// Components returns the pixels in ps as a flat slice of their channel
// values, in declared channel order, without copying. The view aliases ps:
// writes through either are visible in both, and the view must not outlive
// the buffer. len(Components(ps)) == len(ps) × arity.
func Components[P Pixel[T], T Channel](ps []P) []T {
	n := arity[P, T]()
	if len(ps) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&ps[0])), len(ps)*n)
}

// ComponentsOf returns the channels of the single pixel *p, in declared
// order, aliasing *p.
func ComponentsOf[P Pixel[T], T Channel](p *P) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(p)), arity[P, T]())
}

// Bytes returns the pixels in ps as raw bytes, aliasing ps.
// len(Bytes(ps)) == len(Components(ps)) × Sizeof(T), with each channel in
// the host's native representation. See the package documentation for the
// contract that makes this sound.
func Bytes[P Pixel[T], T Channel](ps []P) []byte {
	var c T
	if unsafe.Sizeof(c) == 0 {
		panic("pixel: zero-sized channel type")
	}
	if len(ps) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&ps[0])), len(ps)*int(unsafe.Sizeof(ps[0])))
}

// BytesOf returns the single pixel *p as raw bytes, aliasing *p.
func BytesOf[P Pixel[T], T Channel](p *P) []byte {
	var c T
	if unsafe.Sizeof(c) == 0 {
		panic("pixel: zero-sized channel type")
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// FromBytes is the inverse of [Bytes]: it returns the raw buffer b as a
// slice of pixels, without copying. This is how an externally produced
// buffer, such as an image.RGBA's Pix or a mapped framebuffer, is adopted
// as a pixel buffer.
//
// Panics if len(b) is not a multiple of the pixel size, or if b does not
// start on an address aligned for the channel type.
func FromBytes[P Pixel[T], T Channel](b []byte) []P {
	arity[P, T]() // layout guard
	var p P
	size := int(unsafe.Sizeof(p))
	if len(b)%size != 0 {
		panic("pixel: byte length is not a multiple of the pixel size")
	}
	if len(b) == 0 {
		return nil
	}
	if uintptr(unsafe.Pointer(&b[0]))%unsafe.Alignof(p) != 0 {
		panic("pixel: byte buffer is not aligned for the channel type")
	}
	return unsafe.Slice((*P)(unsafe.Pointer(&b[0])), len(b)/size)
}
