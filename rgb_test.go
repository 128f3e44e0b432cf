package pixel

import "testing"

func TestRGBFromSlice(t *testing.T) {
	c := FromSlice[RGB8]([]uint8{1, 2, 3})
	if want := (RGB8{R: 1, G: 2, B: 3}); c != want {
		t.Errorf("expected %s, got %s", want, c)
	}
	if a := c.Array(); a != [3]uint8{1, 2, 3} {
		t.Errorf("expected [1 2 3], got %v", a)
	}
}

func TestBGRFromSlice(t *testing.T) {
	// The array form is physically blue-first.
	c := FromSlice[BGR8]([]uint8{3, 2, 1})
	if want := (BGR8{B: 3, G: 2, R: 1}); c != want {
		t.Errorf("expected %s, got %s", want, c)
	}
	if rgb := c.RGB(); rgb != (RGB8{R: 1, G: 2, B: 3}) {
		t.Errorf("expected rgb(1,2,3), got %s", rgb)
	}
	if a := c.Array(); a != [3]uint8{3, 2, 1} {
		t.Errorf("expected [3 2 1], got %v", a)
	}
}

func TestRGBArithmetic(t *testing.T) {
	a := RGB8{R: 1, G: 2, B: 3}
	b := RGB8{R: 4, G: 5, B: 6}

	if sum := a.Add(b); sum != (RGB8{R: 5, G: 7, B: 9}) {
		t.Errorf("expected rgb(5,7,9), got %s", sum)
	}
	if diff := b.Sub(a); diff != (RGB8{R: 3, G: 3, B: 3}) {
		t.Errorf("expected rgb(3,3,3), got %s", diff)
	}
	if prod := a.Mul(b); prod != (RGB8{R: 4, G: 10, B: 18}) {
		t.Errorf("expected rgb(4,10,18), got %s", prod)
	}
}

func TestGRBMapToRGB(t *testing.T) {
	grb := GRB8{G: 1, R: 2, B: 3}.Map(func(c uint8) uint8 { return c * 2 })
	rgb := AddScalar[GRB8, uint8](grb, 1).RGB()
	if want := (RGB8{R: 5, G: 3, B: 7}); rgb != want {
		t.Errorf("expected %s, got %s", want, rgb)
	}
}

func TestRGBChannelOrders(t *testing.T) {
	c := RGB8{R: 1, G: 2, B: 3}
	if bgr := c.BGR(); bgr != (BGR8{B: 3, G: 2, R: 1}) {
		t.Errorf("expected bgr(3,2,1), got %s", bgr)
	}
	if grb := c.GRB(); grb != (GRB8{G: 2, R: 1, B: 3}) {
		t.Errorf("expected grb(2,1,3), got %s", grb)
	}
	if back := c.BGR().RGB(); back != c {
		t.Errorf("expected %s after round trip, got %s", c, back)
	}
}

func TestRGBAlpha(t *testing.T) {
	c := RGB8{R: 1, G: 2, B: 3}
	if ca := c.Alpha(4); ca != (RGBA8{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("expected rgba(1,2,3,4), got %s", ca)
	}

	// The generic form may append an alpha of a different channel type.
	wide := RGBWithAlpha(c, uint16(0xffff))
	if wide.A != 0xffff || wide.R != 1 {
		t.Errorf("expected rgba(1,2,3,0xffff), got %s", wide)
	}
}

func TestMapRGBChangesChannelType(t *testing.T) {
	c := RGB8{R: 1, G: 2, B: 128}
	f := MapRGB(c, func(v uint8) float32 { return float32(v) / 255 })
	if f.R != 1.0/255 || f.G != 2.0/255 || f.B != 128.0/255 {
		t.Errorf("unexpected mapped pixel %s", f)
	}
}

func TestRGBString(t *testing.T) {
	if s := (RGB8{R: 1, G: 2, B: 3}).String(); s != "rgb(1,2,3)" {
		t.Errorf("expected rgb(1,2,3), got %q", s)
	}
	if s := (BGR8{B: 3, G: 2, R: 1}).String(); s != "bgr(3,2,1)" {
		t.Errorf("expected bgr(3,2,1), got %q", s)
	}
}
