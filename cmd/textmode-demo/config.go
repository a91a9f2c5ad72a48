package main

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/BeatGlow/textmode"
	"github.com/BeatGlow/textmode/conn"
)

// Config is the demo configuration. It is read from an optional TOML file;
// command line flags override the file.
type Config struct {
	LogLevel   string  `toml:"log_level"`
	Foreground string  `toml:"foreground"`
	Background string  `toml:"background"`
	Output     string  `toml:"output"`
	Format     string  `toml:"format"`
	Font       string  `toml:"font"`
	FontSize   float64 `toml:"font_size"`
	Preview    bool    `toml:"preview"`
	Panic      bool    `toml:"panic"`

	Mirror MirrorConfig `toml:"mirror"`
}

// MirrorConfig selects the debug mirror bus.
type MirrorConfig struct {
	// Bus is "i2c", "spi" or empty to disable mirroring.
	Bus      string `toml:"bus"`
	I2CBus   int    `toml:"i2c_bus"`
	I2CAddr  uint   `toml:"i2c_addr"`
	SPIPort  string `toml:"spi_port"`
	SPISpeed int64  `toml:"spi_speed"`
	Activity string `toml:"activity_pin"`
}

// DefaultConfig are the defaults before a file or flags are applied.
var DefaultConfig = Config{
	LogLevel:   "INFO",
	Foreground: textmode.DefaultForeground.String(),
	Background: textmode.DefaultBackground.String(),
	Format:     "png",
	FontSize:   13,
	Mirror: MirrorConfig{
		I2CBus:   conn.DefaultI2CConfig.Bus,
		I2CAddr:  uint(conn.DefaultI2CConfig.Addr),
		SPISpeed: conn.DefaultSPIConfig.SpeedHz,
	},
}

// parseConfig parses args into a Config. The file named by -config is
// decoded first, then every flag given explicitly is applied on top.
func parseConfig(name string, args []string) (*Config, []string, error) {
	var (
		fs    = flag.NewFlagSet(name, flag.ContinueOnError)
		flags = DefaultConfig
		path  = fs.String("config", "", "TOML configuration file")
	)
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level (DEBUG, INFO, WARNING, ERROR)")
	fs.StringVar(&flags.Foreground, "fg", flags.Foreground, "Foreground color")
	fs.StringVar(&flags.Background, "bg", flags.Background, "Background color")
	fs.StringVar(&flags.Output, "out", flags.Output, "Write a screenshot to this file")
	fs.StringVar(&flags.Format, "format", flags.Format, "Screenshot format (png, bmp, tiff)")
	fs.StringVar(&flags.Font, "font", flags.Font, "Screenshot font: empty for the bitmap font, \"mono\" for Go Mono, or a TTF file")
	fs.Float64Var(&flags.FontSize, "size", flags.FontSize, "TrueType font size in points")
	fs.BoolVar(&flags.Preview, "preview", flags.Preview, "Show the screen in the terminal")
	fs.BoolVar(&flags.Panic, "panic", flags.Panic, "Recover from a panic and report it on screen")
	fs.StringVar(&flags.Mirror.Bus, "mirror", flags.Mirror.Bus, "Mirror output to a debug port (i2c, spi)")
	fs.IntVar(&flags.Mirror.I2CBus, "i2c-bus", flags.Mirror.I2CBus, "I²C bus number (default: use first available)")
	fs.UintVar(&flags.Mirror.I2CAddr, "i2c-addr", flags.Mirror.I2CAddr, "I²C device address")
	fs.StringVar(&flags.Mirror.SPIPort, "spi-port", flags.Mirror.SPIPort, "SPI port name")
	fs.Int64Var(&flags.Mirror.SPISpeed, "spi-speed", flags.Mirror.SPISpeed, "SPI speed in Hz")
	fs.StringVar(&flags.Mirror.Activity, "activity", flags.Mirror.Activity, "Activity GPIO pin")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	config := DefaultConfig
	if *path != "" {
		if _, err := toml.DecodeFile(*path, &config); err != nil {
			return nil, nil, fmt.Errorf("config: %w", err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			config.LogLevel = flags.LogLevel
		case "fg":
			config.Foreground = flags.Foreground
		case "bg":
			config.Background = flags.Background
		case "out":
			config.Output = flags.Output
		case "format":
			config.Format = flags.Format
		case "font":
			config.Font = flags.Font
		case "size":
			config.FontSize = flags.FontSize
		case "preview":
			config.Preview = flags.Preview
		case "panic":
			config.Panic = flags.Panic
		case "mirror":
			config.Mirror.Bus = flags.Mirror.Bus
		case "i2c-bus":
			config.Mirror.I2CBus = flags.Mirror.I2CBus
		case "i2c-addr":
			config.Mirror.I2CAddr = flags.Mirror.I2CAddr
		case "spi-port":
			config.Mirror.SPIPort = flags.Mirror.SPIPort
		case "spi-speed":
			config.Mirror.SPISpeed = flags.Mirror.SPISpeed
		case "activity":
			config.Mirror.Activity = flags.Mirror.Activity
		}
	})

	return &config, fs.Args(), nil
}

// colors resolves the configured color names.
func (c *Config) colors() (fg, bg textmode.Color, err error) {
	var ok bool
	if fg, ok = textmode.ParseColor(c.Foreground); !ok {
		return fg, bg, fmt.Errorf("invalid foreground color %q", c.Foreground)
	}
	if bg, ok = textmode.ParseColor(c.Background); !ok {
		return fg, bg, fmt.Errorf("invalid background color %q", c.Background)
	}
	return
}
