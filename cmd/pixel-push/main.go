// Command pixel-push renders an animated gradient and pushes the raw frames
// to a framebuffer device or a SPI or I²C connected display.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"golang.org/x/image/draw"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/pixel"
	"github.com/BeatGlow/pixel/conn"
	"github.com/BeatGlow/pixel/framebuffer"
)

func main() {
	widthFlag := flag.Int("width", 128, "Display width (spi and i2c)")
	heightFlag := flag.Int("height", 64, "Display height (spi and i2c)")
	fbFlag := flag.String("fb", "/dev/fb0", "Framebuffer device")
	orderFlag := flag.String("order", "rgb", "Channel order for spi and i2c (rgb, bgr or grb)")
	i2cDeviceFlag := flag.Int("i2c-dev", conn.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(conn.DefaultI2CConfig.Addr), "I²C device address")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	spiSpeedFlag := flag.Uint("spi-speed", uint(conn.DefaultSPIConfig.SpeedHz), "SPI speed in Hz")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	cePinFlag := flag.String("ce", "GPIO8", "Chip enable GPIO pin")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <fb|spi|i2c>\n", os.Args[0])
		os.Exit(1)
	}

	switch busType := flag.Arg(0); busType {
	case "fb":
		pushFramebuffer(*fbFlag)
	case "spi", "i2c":
		if _, err := host.Init(); err != nil {
			fatal(err)
		}

		var (
			c   conn.Conn
			err error
		)
		if busType == "spi" {
			c, err = conn.OpenSPI(&conn.SPIConfig{
				Bus:     *spiBusFlag,
				Device:  *spiDeviceFlag,
				SpeedHz: uint32(*spiSpeedFlag),
				Reset:   gpioreg.ByName(*resetPinFlag),
				DC:      gpioreg.ByName(*dcPinFlag),
				CE:      gpioreg.ByName(*cePinFlag),
			})
		} else {
			c, err = conn.OpenI2C(&conn.I2CConfig{
				Device: *i2cDeviceFlag,
				Addr:   uint8(*i2cAddrFlag),
				Reset:  gpioreg.ByName(*resetPinFlag),
			})
		}
		if err != nil {
			fatal(err)
		}
		defer c.Close()
		fmt.Printf("using connection: %s\n", c)

		pushConn(c, *widthFlag, *heightFlag, *orderFlag)
	default:
		fatal(fmt.Errorf("unsupported bus type %q", busType))
	}
}

func pushFramebuffer(name string) {
	fb, err := framebuffer.Open(name)
	if err != nil {
		fatal(err)
	}
	defer fb.Close()
	fmt.Printf("using display: %s\n", fb)

	var (
		size   = fb.Bounds().Size()
		stride = fb.Stride()
		depth  = fb.Format().Size()
		frame  = make([]byte, stride*size.Y)
		dst    = image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
		ticker = time.NewTicker(50 * time.Millisecond)
	)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for offset := 0; ; offset++ {
		src := renderImage(size.X/2, size.Y/2, offset)
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

		raw := frameBytes(pixel.FromBytes[pixel.RGBA8, uint8](dst.Pix), fb.Format())
		row := size.X * depth
		for y := 0; y < size.Y; y++ {
			copy(frame[y*stride:], raw[y*row:(y+1)*row])
		}
		if err := fb.WriteFrame(frame); err != nil {
			fatal(err)
		}
		<-ticker.C
	}
}

func pushConn(c conn.Conn, w, h int, order string) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for offset := 0; ; offset++ {
		ps := renderGradient(w, h, offset)

		var frame []byte
		switch order {
		case "rgb":
			out := make([]pixel.RGB8, len(ps))
			for i, p := range ps {
				out[i] = p.RGB()
			}
			frame = pixel.Bytes[pixel.RGB8, uint8](out)
		case "bgr":
			out := make([]pixel.BGR8, len(ps))
			for i, p := range ps {
				out[i] = p.RGB().BGR()
			}
			frame = pixel.Bytes[pixel.BGR8, uint8](out)
		case "grb":
			out := make([]pixel.GRB8, len(ps))
			for i, p := range ps {
				out[i] = p.RGB().GRB()
			}
			frame = pixel.Bytes[pixel.GRB8, uint8](out)
		default:
			fatal(fmt.Errorf("unsupported channel order %q", order))
		}

		if err := c.WriteFrame(frame); err != nil {
			fatal(err)
		}
		<-ticker.C
	}
}

// renderGradient plots a moving gradient with a soft pulse on the color
// channels.
func renderGradient(w, h, offset int) []pixel.RGBA8 {
	ps := make([]pixel.RGBA8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := pixel.RGBA8{
				R: uint8(x + y + offset),
				G: uint8(x - y + offset),
				B: uint8(x + y - offset),
				A: 0xff,
			}
			ps[y*w+x] = p.MapColor(func(v uint8) uint8 {
				return v/2 + uint8(offset)/2
			})
		}
	}
	return ps
}

func renderImage(w, h, offset int) *image.RGBA {
	return &image.RGBA{
		Pix:    pixel.Bytes[pixel.RGBA8, uint8](renderGradient(w, h, offset)),
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// frameBytes reorders the pixels into the channel order the display expects.
func frameBytes(ps []pixel.RGBA8, format framebuffer.Format) []byte {
	switch format {
	case framebuffer.FormatRGBA8:
		return pixel.Bytes[pixel.RGBA8, uint8](ps)
	case framebuffer.FormatBGRA8:
		out := make([]pixel.BGRA8, len(ps))
		for i, p := range ps {
			out[i] = p.ToBGRA()
		}
		return pixel.Bytes[pixel.BGRA8, uint8](out)
	case framebuffer.FormatARGB8:
		out := make([]pixel.ARGB8, len(ps))
		for i, p := range ps {
			out[i] = p.ToARGB()
		}
		return pixel.Bytes[pixel.ARGB8, uint8](out)
	case framebuffer.FormatABGR8:
		out := make([]pixel.ABGR8, len(ps))
		for i, p := range ps {
			out[i] = p.ToABGR()
		}
		return pixel.Bytes[pixel.ABGR8, uint8](out)
	case framebuffer.FormatRGB8:
		out := make([]pixel.RGB8, len(ps))
		for i, p := range ps {
			out[i] = p.RGB()
		}
		return pixel.Bytes[pixel.RGB8, uint8](out)
	case framebuffer.FormatBGR8:
		out := make([]pixel.BGR8, len(ps))
		for i, p := range ps {
			out[i] = p.RGB().BGR()
		}
		return pixel.Bytes[pixel.BGR8, uint8](out)
	default:
		fatal(fmt.Errorf("unsupported pixel format %q", format))
		return nil
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
