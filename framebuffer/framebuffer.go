// Package framebuffer provides access to the operating system's native
// framebuffer as a raw pixel sink.
//
// This requires framebuffer device support in the operating system. The
// framebuffer can be opened with the [Open] call. The device reports the
// channel order of its memory as a [Format], and accepts whole frames of
// bytes in that order.
package framebuffer

import "errors"

// Framebuffer errors.
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrFrameSize    = errors.New("framebuffer: frame size does not match the display")
	ErrFormat       = errors.New("framebuffer: unsupported pixel format")
)

// Format is the channel order of the framebuffer memory.
type Format int

// Supported formats, named after their memory byte order.
const (
	FormatUnknown Format = iota
	FormatRGB8
	FormatBGR8
	FormatRGBA8
	FormatBGRA8
	FormatARGB8
	FormatABGR8
)

func (f Format) String() string {
	switch f {
	case FormatRGB8:
		return "RGB"
	case FormatBGR8:
		return "BGR"
	case FormatRGBA8:
		return "RGBA"
	case FormatBGRA8:
		return "BGRA"
	case FormatARGB8:
		return "ARGB"
	case FormatABGR8:
		return "ABGR"
	default:
		return "unknown"
	}
}

// Size is the number of bytes per pixel.
func (f Format) Size() int {
	switch f {
	case FormatRGB8, FormatBGR8:
		return 3
	case FormatRGBA8, FormatBGRA8, FormatARGB8, FormatABGR8:
		return 4
	default:
		return 0
	}
}
