package pixel

import "testing"

func TestBGRAFromSlice(t *testing.T) {
	c := FromSlice[BGRA8]([]uint8{3, 2, 1, 4})
	if want := (BGRA8{B: 3, G: 2, R: 1, A: 4}); c != want {
		t.Errorf("expected %s, got %s", want, c)
	}
	if rgba := c.ToRGBA(); rgba != (RGBA8{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("expected rgba(1,2,3,4), got %s", rgba)
	}
}

func TestRGBAArithmetic(t *testing.T) {
	a := RGBA8{R: 1, G: 2, B: 3, A: 10}
	b := RGBA8{R: 4, G: 5, B: 6, A: 20}

	if sum := a.Add(b); sum != (RGBA8{R: 5, G: 7, B: 9, A: 30}) {
		t.Errorf("expected rgba(5,7,9,30), got %s", sum)
	}
	if diff := b.Sub(a); diff != (RGBA8{R: 3, G: 3, B: 3, A: 10}) {
		t.Errorf("expected rgba(3,3,3,10), got %s", diff)
	}
	if prod := a.Mul(b); prod != (RGBA8{R: 4, G: 10, B: 18, A: 200}) {
		t.Errorf("expected rgba(4,10,18,200), got %s", prod)
	}
}

func TestRGBAHeterogeneousAlpha(t *testing.T) {
	// Alpha of a wider type than the color channels.
	a := RGBA[uint8, uint16]{R: 1, G: 2, B: 3, A: 0x1234}
	b := RGBA[uint8, uint16]{R: 1, G: 1, B: 1, A: 1}

	sum := a.Add(b)
	if sum.R != 2 || sum.A != 0x1235 {
		t.Errorf("expected rgba(2,3,4,0x1235), got %s", sum)
	}
}

func TestMapColorPreservesAlpha(t *testing.T) {
	c := RGBA8{R: 10, G: 20, B: 30, A: 40}

	got := c.MapColor(func(v uint8) uint8 { return v / 2 })
	if want := (RGBA8{R: 5, G: 10, B: 15, A: 40}); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	// The type-changing form carries a distinct alpha type through.
	h := RGBA[uint8, uint16]{R: 100, G: 200, B: 50, A: 0xffff}
	q := MapColorRGBA(h, func(v uint8) uint16 { return uint16(v) << 8 })
	if q.R != 100<<8 || q.A != 0xffff {
		t.Errorf("expected alpha 0xffff carried through, got %s", q)
	}
}

func TestMapRGBAIncludesAlpha(t *testing.T) {
	c := RGBA8{R: 1, G: 2, B: 3, A: 4}
	got := MapRGBA(c, func(v uint8) uint16 { return uint16(v) * 3 })
	if want := (RGBA16{R: 3, G: 6, B: 9, A: 12}); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestAlphaFirstOrders(t *testing.T) {
	argb := ARGB8{A: 4, R: 1, G: 2, B: 3}
	if got := argb.ToRGBA(); got != (RGBA8{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("expected rgba(1,2,3,4), got %s", got)
	}

	abgr := ABGR8{A: 4, B: 3, G: 2, R: 1}
	if got := abgr.ToRGBA(); got != (RGBA8{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("expected rgba(1,2,3,4), got %s", got)
	}

	if a := ARGBArray(argb); a != [4]uint8{4, 1, 2, 3} {
		t.Errorf("expected [4 1 2 3], got %v", a)
	}
	if a := ABGRArray(abgr); a != [4]uint8{4, 3, 2, 1} {
		t.Errorf("expected [4 3 2 1], got %v", a)
	}
}

func TestOrderRoundTrips(t *testing.T) {
	c := RGBA8{R: 1, G: 2, B: 3, A: 4}

	if got := c.ToBGRA(); got != (BGRA8{B: 3, G: 2, R: 1, A: 4}) {
		t.Errorf("expected bgra(3,2,1,4), got %s", got)
	}
	if got := c.ToBGRA().ToRGBA(); got != c {
		t.Errorf("expected %s after round trip, got %s", c, got)
	}
	if got := c.ToARGB().ToRGBA(); got != c {
		t.Errorf("expected %s after round trip, got %s", c, got)
	}
	if got := c.ToABGR().ToRGBA(); got != c {
		t.Errorf("expected %s after round trip, got %s", c, got)
	}
}

func TestFourChannelArrays(t *testing.T) {
	if a := RGBAArray(RGBA8{R: 1, G: 2, B: 3, A: 4}); a != [4]uint8{1, 2, 3, 4} {
		t.Errorf("expected [1 2 3 4], got %v", a)
	}
	if a := BGRAArray(BGRA8{B: 3, G: 2, R: 1, A: 4}); a != [4]uint8{3, 2, 1, 4} {
		t.Errorf("expected [3 2 1 4], got %v", a)
	}
}

func TestArrayStructRoundTrip(t *testing.T) {
	orig := RGBA8{R: 9, G: 8, B: 7, A: 6}
	a := RGBAArray(orig)
	back := FromSlice[RGBA8](a[:])
	if back != orig {
		t.Errorf("expected %s after round trip, got %s", orig, back)
	}

	// Idempotence: converting again changes nothing.
	if again := FromSlice[RGBA8](a[:]); again != back {
		t.Errorf("round trip is not idempotent: %s != %s", again, back)
	}
}
