package framebuffer

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/pixel/internal/ioctl"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// Device is a memory mapped framebuffer device.
type Device struct {
	f        *os.File
	fd       uintptr
	fixed    fixScreenInfo
	variable varScreenInfo
	format   Format
	pix      []byte
}

// Open a Linux framebuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	d := &Device{
		f:  f,
		fd: f.Fd(),
	}
	if err = ioctl.Do(d.fd, fbioGetFScreenInfo, &d.fixed); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(d.fd, fbioGetVScreenInfo, &d.variable); err != nil {
		_ = f.Close()
		return nil, err
	}

	if d.format, err = detectFormat(&d.variable); err != nil {
		_ = f.Close()
		return nil, err
	}

	if d.pix, err = unix.Mmap(int(d.fd), 0, int(d.fixed.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, err
	}

	return d, nil
}

func (d *Device) String() string {
	size := d.Bounds().Size()
	return fmt.Sprintf("framebuffer %dx%d %s", size.X, size.Y, d.format)
}

// Format reports the channel order of the framebuffer memory.
func (d *Device) Format() Format {
	return d.format
}

func (d *Device) Bounds() image.Rectangle {
	return image.Rect(
		int(d.variable.Xoffset), int(d.variable.Yoffset),
		int(d.variable.Xres), int(d.variable.Yres),
	)
}

// Stride is the length of a scan line in bytes.
func (d *Device) Stride() int {
	return int(d.fixed.LineLength)
}

// Pix is the mapped framebuffer memory. Writes show on screen immediately.
func (d *Device) Pix() []byte {
	return d.pix
}

// WriteFrame copies one full frame into the framebuffer memory. The frame
// must hold exactly one byte per channel for every visible pixel, packed
// with the device's stride.
func (d *Device) WriteFrame(frame []byte) error {
	want := d.Stride() * int(d.variable.Yres)
	if want > len(d.pix) {
		want = len(d.pix)
	}
	if len(frame) != want {
		return ErrFrameSize
	}
	copy(d.pix, frame)
	return nil
}

// Close unmaps the pixel memory and closes the device.
func (d *Device) Close() error {
	if err := unix.Munmap(d.pix); err != nil {
		return err
	}
	return d.f.Close()
}

type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// bitField for the color
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo contains device independent changeable information about a
// frame buffer device and a specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// detectFormat maps the fbdev bitfield description to a byte-order format.
// Bitfield offsets are taken as bit positions in a little-endian pixel word,
// so offset/8 is the byte index of the channel in memory.
func detectFormat(info *varScreenInfo) (Format, error) {
	if info.Red.Length != 8 || info.Green.Length != 8 || info.Blue.Length != 8 {
		return FormatUnknown, ErrFormat
	}

	switch info.BitsPerPixel {
	case 24:
		switch {
		case info.Red.Offset == 0 && info.Green.Offset == 8 && info.Blue.Offset == 16:
			return FormatRGB8, nil
		case info.Blue.Offset == 0 && info.Green.Offset == 8 && info.Red.Offset == 16:
			return FormatBGR8, nil
		}

	case 32:
		if info.Alpha.Length != 0 && info.Alpha.Length != 8 {
			return FormatUnknown, ErrFormat
		}

		// An absent alpha channel still occupies the fourth byte.
		switch {
		case info.Red.Offset == 0 && info.Green.Offset == 8 && info.Blue.Offset == 16:
			return FormatRGBA8, nil
		case info.Blue.Offset == 0 && info.Green.Offset == 8 && info.Red.Offset == 16:
			return FormatBGRA8, nil
		case info.Red.Offset == 8 && info.Green.Offset == 16 && info.Blue.Offset == 24:
			return FormatARGB8, nil
		case info.Blue.Offset == 8 && info.Green.Offset == 16 && info.Red.Offset == 24:
			return FormatABGR8, nil
		}
	}

	return FormatUnknown, ErrFormat
}
