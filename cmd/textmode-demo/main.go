// Command textmode-demo writes text through the shared text-mode writer and
// shows the result as a screenshot, in the terminal, or on a debug port.
package main

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/op/go-logging"
	"golang.org/x/image/font"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/textmode"
	"github.com/BeatGlow/textmode/conn"
	"github.com/BeatGlow/textmode/preview"
	"github.com/BeatGlow/textmode/render"
)

var log = logging.MustGetLogger("textmode-demo")

func main() {
	config, args, err := parseConfig(os.Args[0], os.Args[1:])
	if err != nil {
		fatal(err)
	}
	if err = setLogging(config.LogLevel); err != nil {
		fatal(err)
	}
	if err = run(config, args, os.Stdin, openMirror); err != nil {
		fatal(err)
	}
}

// mirrorOpener opens the debug mirror described by a MirrorConfig.
type mirrorOpener func(*MirrorConfig) (*conn.Port, error)

// run writes args, or stdin when there are none, to the screen and produces
// the configured outputs. An open mirror is detached and closed before run
// returns, whatever the outcome.
func run(config *Config, args []string, stdin io.Reader, open mirrorOpener) (err error) {
	fg, bg, err := config.colors()
	if err != nil {
		return err
	}
	textmode.WithWriter(func(w *textmode.Writer) {
		w.SetColor(fg, bg)
		w.Clear()
	})

	var port *conn.Port
	if config.Mirror.Bus != "" {
		if port, err = open(&config.Mirror); err != nil {
			return err
		}
		defer func() {
			textmode.WithWriter(func(w *textmode.Writer) {
				w.SetMirror(nil)
			})
			if cerr := port.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		log.Infof("using %s", port)
		textmode.WithWriter(func(w *textmode.Writer) {
			w.SetMirror(port)
		})
	}

	if len(args) > 0 {
		textmode.Println(strings.Join(args, " "))
	} else if _, err = io.Copy(textmode.Console, stdin); err != nil {
		return err
	}

	if config.Panic {
		func() {
			defer func() {
				if r := recover(); r != nil {
					textmode.PrintPanic(r)
				}
			}()
			panic(errors.New("demo fault"))
		}()
	}

	if port != nil {
		if err = port.Flush(); err != nil {
			log.Errorf("mirror flush failed: %v", err)
		}
		if n := port.Dropped(); n > 0 {
			log.Warningf("mirror dropped %d bytes", n)
		}
		textmode.WithWriter(func(w *textmode.Writer) {
			if merr := w.MirrorErr(); merr != nil {
				log.Errorf("mirror detached: %v", merr)
			}
		})
	}

	s := textmode.Capture()
	if config.Output != "" {
		if err = screenshot(config, &s); err != nil {
			return err
		}
		log.Infof("wrote %s screenshot to %s", config.Format, config.Output)
	}

	if config.Preview {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		return preview.Run(screen, &s)
	}
	return nil
}

func setLogging(level string) error {
	backend := logging.NewLogBackend(os.Stderr, "", stdlog.Lmicroseconds)
	logging.SetBackend(backend)
	logging.SetFormatter(logging.MustStringFormatter("%{module} %{level:.4s}: %{message}"))

	lv, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	if os.Getenv("TEXTMODE_DEBUG") != "" {
		lv = logging.DEBUG
	}
	logging.SetLevel(lv, "")
	return nil
}

func openMirror(config *MirrorConfig) (*conn.Port, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	var activity gpio.PinOut
	if config.Activity != "" {
		if activity = gpioreg.ByName(config.Activity); activity == nil {
			return nil, fmt.Errorf("invalid activity pin %q", config.Activity)
		}
	}

	switch bus := strings.ToLower(config.Bus); bus {
	case "i2c":
		return conn.OpenI2C(&conn.I2CConfig{
			Bus:      config.I2CBus,
			Addr:     uint16(config.I2CAddr),
			Activity: activity,
		})
	case "spi":
		return conn.OpenSPI(&conn.SPIConfig{
			Name:     config.SPIPort,
			Mode:     conn.DefaultSPIConfig.Mode,
			SpeedHz:  config.SPISpeed,
			Activity: activity,
		})
	default:
		return nil, fmt.Errorf("unsupported bus type %q", bus)
	}
}

func screenshot(config *Config, s *textmode.Snapshot) error {
	var face font.Face
	switch config.Font {
	case "":
	case "mono":
		var err error
		if face, err = render.TrueTypeFace(nil, config.FontSize); err != nil {
			return err
		}
	default:
		ttf, err := os.ReadFile(config.Font)
		if err != nil {
			return err
		}
		if face, err = render.TrueTypeFace(ttf, config.FontSize); err != nil {
			return err
		}
	}

	f, err := os.Create(config.Output)
	if err != nil {
		return err
	}
	if err = render.Encode(f, render.New(face).Image(s), config.Format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
