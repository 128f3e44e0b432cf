package pixel

import "testing"

func TestScalarBroadcast(t *testing.T) {
	c := RGBA8{R: 1, G: 2, B: 3, A: 4}

	// Scalar operations hit every channel, alpha included.
	if got := AddScalar[RGBA8, uint8](c, 1); got != (RGBA8{R: 2, G: 3, B: 4, A: 5}) {
		t.Errorf("expected rgba(2,3,4,5), got %s", got)
	}
	if got := SubScalar[RGBA8, uint8](c, 1); got != (RGBA8{R: 0, G: 1, B: 2, A: 3}) {
		t.Errorf("expected rgba(0,1,2,3), got %s", got)
	}
	if got := MulScalar[RGBA8, uint8](c, 2); got != (RGBA8{R: 2, G: 4, B: 6, A: 8}) {
		t.Errorf("expected rgba(2,4,6,8), got %s", got)
	}
	if got := DivScalar[RGBA8, uint8](c, 2); got != (RGBA8{R: 0, G: 1, B: 1, A: 2}) {
		t.Errorf("expected rgba(0,1,1,2), got %s", got)
	}
}

func TestScalarBroadcastGray(t *testing.T) {
	if got := SubScalar[Gray8, uint8](Gray8{5}, 1); got != (Gray8{4}) {
		t.Errorf("expected gray(4), got %s", got)
	}
}

func TestElementwiseMatchesChannels(t *testing.T) {
	a := RGB16{R: 100, G: 200, B: 300}
	b := RGB16{R: 5, G: 6, B: 7}

	sum := a.Add(b)
	va, vb, vs := ComponentsOf[RGB16, uint16](&a), ComponentsOf[RGB16, uint16](&b), ComponentsOf[RGB16, uint16](&sum)
	for k := range vs {
		if vs[k] != va[k]+vb[k] {
			t.Errorf("expected channel %d to be %d, got %d", k, va[k]+vb[k], vs[k])
		}
	}
}

func TestMapGeneric(t *testing.T) {
	got := Map(BGRA8{B: 1, G: 2, R: 3, A: 4}, func(v uint8) uint8 { return v * 10 })
	if want := (BGRA8{B: 10, G: 20, R: 30, A: 40}); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestInPlace(t *testing.T) {
	p := RGB8{R: 1, G: 2, B: 3}

	AddScalarInPlace[RGB8, uint8](&p, 1)
	if p != (RGB8{R: 2, G: 3, B: 4}) {
		t.Errorf("expected rgb(2,3,4), got %s", p)
	}
	MulScalarInPlace[RGB8, uint8](&p, 2)
	if p != (RGB8{R: 4, G: 6, B: 8}) {
		t.Errorf("expected rgb(4,6,8), got %s", p)
	}
	SubScalarInPlace[RGB8, uint8](&p, 1)
	if p != (RGB8{R: 3, G: 5, B: 7}) {
		t.Errorf("expected rgb(3,5,7), got %s", p)
	}
	DivScalarInPlace[RGB8, uint8](&p, 3)
	if p != (RGB8{R: 1, G: 1, B: 2}) {
		t.Errorf("expected rgb(1,1,2), got %s", p)
	}

	AddInPlace[RGB8, uint8](&p, RGB8{R: 1, G: 1, B: 1})
	if p != (RGB8{R: 2, G: 2, B: 3}) {
		t.Errorf("expected rgb(2,2,3), got %s", p)
	}
	SubInPlace[RGB8, uint8](&p, RGB8{R: 1, G: 1, B: 1})
	if p != (RGB8{R: 1, G: 1, B: 2}) {
		t.Errorf("expected rgb(1,1,2), got %s", p)
	}
	MulInPlace[RGB8, uint8](&p, RGB8{R: 3, G: 3, B: 3})
	if p != (RGB8{R: 3, G: 3, B: 6}) {
		t.Errorf("expected rgb(3,3,6), got %s", p)
	}
}

func TestSum(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := Sum[RGB8, uint8]([]RGB8(nil)); got != (RGB8{}) {
			t.Errorf("expected the zero pixel, got %s", got)
		}
	})

	t.Run("single", func(t *testing.T) {
		p := RGB8{R: 1, G: 2, B: 3}
		if got := Sum[RGB8, uint8]([]RGB8{p}); got != p {
			t.Errorf("expected %s, got %s", p, got)
		}
	})

	t.Run("pair", func(t *testing.T) {
		a := RGBA8{R: 1, G: 2, B: 3, A: 4}
		b := RGBA8{R: 10, G: 20, B: 30, A: 40}
		if got, want := Sum[RGBA8, uint8]([]RGBA8{a, b}), a.Add(b); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("overflow wraps like the channel type", func(t *testing.T) {
		got := Sum[Gray8, uint8]([]Gray8{{200}, {100}})
		if got != (Gray8{44}) {
			t.Errorf("expected gray(44), got %s", got)
		}
	})
}

func TestFloatChannels(t *testing.T) {
	a := RGB[float32]{R: 0.5, G: 0.25, B: 0.125}
	got := MulScalar[RGB[float32], float32](a, 2)
	if got != (RGB[float32]{R: 1, G: 0.5, B: 0.25}) {
		t.Errorf("expected rgb(1,0.5,0.25), got %s", got)
	}
}
