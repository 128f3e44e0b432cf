package conn

import (
	"fmt"
	"strconv"

	periphconn "periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// Control bytes prefixed to I²C transfers, distinguishing commands from
// pixel data on the wire.
const (
	i2cCommand = 0x00
	i2cData    = 0x40
)

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8

	// Reset pin.
	Reset gpio.PinOut
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3c,
}

type i2cConn struct {
	bus   i2c.BusCloser
	conn  periphconn.Conn
	reset gpio.PinOut
}

// OpenI2C opens an I²C frame transport.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	var (
		bus i2c.BusCloser
		err error
	)
	if config.Device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(config.Device), 10))
	}
	if err != nil {
		return nil, err
	}

	return &i2cConn{
		bus:   bus,
		conn:  &i2c.Dev{Bus: bus, Addr: uint16(config.Addr)},
		reset: config.Reset,
	}, nil
}

func (c *i2cConn) String() string {
	return fmt.Sprintf("I²C bus %s", c.bus)
}

func (c *i2cConn) Close() error {
	return c.bus.Close()
}

func (c *i2cConn) Reset(level gpio.Level) error {
	if c.reset == nil {
		return nil
	}
	return c.reset.Out(level)
}

func (c *i2cConn) Command(cmnd byte, args ...byte) error {
	return c.conn.Tx(append([]byte{i2cCommand, cmnd}, args...), nil)
}

func (c *i2cConn) WriteFrame(frame []byte) error {
	return c.conn.Tx(append([]byte{i2cData}, frame...), nil)
}
