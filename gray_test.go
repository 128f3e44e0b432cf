package pixel

import "testing"

func TestGrayArithmetic(t *testing.T) {
	if sum := (Gray8{5}).Add(Gray8{3}); sum != (Gray8{8}) {
		t.Errorf("expected gray(8), got %s", sum)
	}
	if got := SubScalar[Gray8, uint8](Gray8{5}, 1); got != (Gray8{4}) {
		t.Errorf("expected gray(4), got %s", got)
	}
}

func TestGrayOpaque(t *testing.T) {
	c := Gray8{200}

	if got := c.Opaque(); got != (GrayAlpha8{Y: 200, A: 0xff}) {
		t.Errorf("expected graya(200,0xff), got %s", got)
	}

	wide := Gray16{0x0102}.Opaque16()
	if wide != (GrayAlpha16{Y: 0x0102, A: 0xffff}) {
		t.Errorf("expected graya(0x0102,0xffff), got %s", wide)
	}
}

func TestGrayAlpha(t *testing.T) {
	if got := (Gray8{7}).Alpha(9); got != (GrayAlpha8{Y: 7, A: 9}) {
		t.Errorf("expected graya(7,9), got %s", got)
	}

	h := GrayWithAlpha(Gray8{7}, uint16(0xffff))
	if h.Y != 7 || h.A != 0xffff {
		t.Errorf("expected graya(7,0xffff), got %s", h)
	}
}

func TestGrayAlphaMapColor(t *testing.T) {
	c := GrayAlpha8{Y: 100, A: 42}
	got := c.MapColor(func(v uint8) uint8 { return v + 1 })
	if want := (GrayAlpha8{Y: 101, A: 42}); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	if g := c.Gray(); g != (Gray8{100}) {
		t.Errorf("expected gray(100), got %s", g)
	}
}

func TestMapGrayChangesChannelType(t *testing.T) {
	got := MapGray(Gray8{128}, func(v uint8) uint16 { return uint16(v) << 8 })
	if got != (Gray16{128 << 8}) {
		t.Errorf("expected gray(%#04x), got %s", 128<<8, got)
	}
}
