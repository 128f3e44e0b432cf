//go:build !linux

package framebuffer

import "image"

// Device is a memory mapped framebuffer device.
type Device struct{}

func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}

func (d *Device) String() string            { return "framebuffer (unsupported)" }
func (d *Device) Format() Format            { return FormatUnknown }
func (d *Device) Bounds() image.Rectangle   { return image.Rectangle{} }
func (d *Device) Stride() int               { return 0 }
func (d *Device) Pix() []byte               { return nil }
func (d *Device) WriteFrame(_ []byte) error { return ErrNotSupported }
func (d *Device) Close() error              { return nil }
