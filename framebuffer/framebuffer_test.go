package framebuffer

import "testing"

func TestFormatSize(t *testing.T) {
	if got := FormatRGB8.Size(); got != 3 {
		t.Errorf("expected 3 bytes per pixel, got %d", got)
	}
	if got := FormatBGRA8.Size(); got != 4 {
		t.Errorf("expected 4 bytes per pixel, got %d", got)
	}
	if got := FormatUnknown.Size(); got != 0 {
		t.Errorf("expected 0 bytes per pixel, got %d", got)
	}
}

func TestFormatString(t *testing.T) {
	if got := FormatABGR8.String(); got != "ABGR" {
		t.Errorf("expected ABGR, got %q", got)
	}
	if got := FormatUnknown.String(); got != "unknown" {
		t.Errorf("expected unknown, got %q", got)
	}
}
