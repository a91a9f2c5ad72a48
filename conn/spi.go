package conn

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Name of the SPI port as known to spireg, empty for the first one.
	Name      string
	Mode      spi.Mode
	SpeedHz   int64
	BatchSize int
	Activity  gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Mode:      spi.Mode0,
	SpeedHz:   1_000_000,
	BatchSize: 4096,
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []int64{
	500_000,
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
	16_000_000,
}

// OpenSPI opens a debug mirror on a SPI port. The periph host drivers must be
// initialized first. A nil config selects [DefaultSPIConfig].
func OpenSPI(config *SPIConfig) (*Port, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultSPIConfig.BatchSize
	}

	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == config.SpeedHz; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("conn: invalid SPI speed %dHz", config.SpeedHz)
	}

	port, err := spireg.Open(config.Name)
	if err != nil {
		return nil, err
	}
	c, err := port.Connect(physic.Frequency(config.SpeedHz)*physic.Hertz, config.Mode, 8)
	if err != nil {
		_ = port.Close()
		return nil, err
	}

	p := New(c, &Config{
		BatchSize: config.BatchSize,
		Activity:  config.Activity,
	})
	p.closer = port.Close
	log.Infof("opened SPI port %s at %dHz", port, config.SpeedHz)
	return p, nil
}
