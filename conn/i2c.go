package conn

import (
	"strconv"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Bus is the I²C bus number, use -1 to use the first available bus.
	Bus int

	// Addr is the I²C address of the debug port.
	Addr uint16

	// Activity pin.
	Activity gpio.PinOut
}

var DefaultI2CConfig = I2CConfig{
	Bus:  -1,
	Addr: 0x42,
}

// OpenI2C opens a debug mirror on an I²C bus. The periph host drivers must be
// initialized first. A nil config selects [DefaultI2CConfig].
func OpenI2C(config *I2CConfig) (*Port, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	var name string
	if config.Bus >= 0 {
		name = strconv.Itoa(config.Bus)
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}

	p := New(&i2c.Dev{Bus: bus, Addr: config.Addr}, &Config{
		Activity: config.Activity,
	})
	p.closer = bus.Close
	log.Infof("opened I²C bus %s address %#02x", bus, config.Addr)
	return p, nil
}
