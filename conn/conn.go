// Package conn provides frame transports for pushing raw pixel data to
// hardware over SPI or I²C.
//
// A transport accepts whole frames of bytes in the channel order the target
// device expects. Reinterpreting a pixel buffer as bytes is the caller's
// concern, a transport never inspects the frame contents.
package conn

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

// Conn errors.
var (
	ErrResetPin = errors.New("conn: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("conn: data/command (DC) GPIO pin is invalid")
)

// Conn is a frame transport to a pixel-consuming device.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// Command sends a command byte with optional arguments.
	Command(byte, ...byte) error

	// WriteFrame pushes one frame of raw pixel bytes.
	WriteFrame(frame []byte) error
}
