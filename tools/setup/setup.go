//go:build linux

// Package setup opens the devices named by a configuration. It's shared by
// the lynxctl commands.
package setup

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/starsoc/linux-star-x7/config"
	"github.com/starsoc/linux-star-x7/drivers/hdmi"
	"github.com/starsoc/linux-star-x7/drivers/hdmi/smbus"
	"github.com/starsoc/linux-star-x7/vga"
	"github.com/starsoc/linux-star-x7/vga/vgatest"
)

// ConfigFlag registers the -config flag on flags.
func ConfigFlag(flags *flag.FlagSet) *string {
	return flags.String("config", "", "YAML configuration `file`, defaults if empty")
}

// Config loads the named file, or the defaults if name is empty.
func Config(name string) (*config.Config, error) {
	if name == "" {
		cfg := config.Defaults()
		return cfg, cfg.Validate()
	}
	return config.Load(name)
}

// Cmdline applies the mode from the running kernel's command line to cfg.
func Cmdline(cfg *config.Config) error {
	data, err := os.ReadFile("/proc/cmdline")
	if err != nil {
		return nil
	}
	return cfg.ApplyCmdline(string(data))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Space opens the register space of the configured device.
func Space(cfg config.DeviceConfig) (*vga.Space, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendMMIO:
		m, err := vga.OpenMMIO(cfg.Path, cfg.Offset, cfg.Size)
		if err != nil {
			return nil, nil, err
		}
		return vga.NewSpace(m), m, nil
	case config.BackendIOPort:
		p, err := vga.OpenPortIO(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return vga.NewSpace(p), p, nil
	case config.BackendEmulated:
		return vga.NewSpace(vgatest.NewEmulator()), nopCloser{}, nil
	}
	return nil, nil, fmt.Errorf("setup: unknown backend %q", cfg.Backend)
}

// openBus opens an i2c-dev node directly, which gives E-DDC the combined
// transactions it needs. Other names go through the periph registry.
func openBus(name string) (i2c.BusCloser, error) {
	if strings.HasPrefix(name, "/dev/i2c-") {
		return smbus.OpenRDWR(name)
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	return i2creg.Open(name)
}

// Transmitter probes the configured transmitter. It returns a nil
// Transmitter if none is configured or, for "auto", none answers.
func Transmitter(cfg config.TransmitterConfig, logger *log.Logger) (hdmi.Transmitter, io.Closer, error) {
	if cfg.Type == "none" {
		return nil, nopCloser{}, nil
	}
	bus, err := openBus(cfg.Bus)
	if err != nil {
		return nil, nil, fmt.Errorf("setup: i2c bus %q: %w", cfg.Bus, err)
	}

	var tx hdmi.Transmitter
	if cfg.Type == "auto" {
		tx = hdmi.ProbeAll(bus, logger)
		if tx == nil {
			logger.Printf("setup: no transmitter on %s", bus)
			bus.Close()
			return nil, nopCloser{}, nil
		}
	} else {
		tx, err = hdmi.Open(bus, cfg.Type, cfg.Address, logger)
		if err != nil {
			bus.Close()
			return nil, nil, err
		}
	}
	if s, ok := tx.(interface{ SetHDMI(bool) }); ok {
		s.SetHDMI(cfg.HDMI)
	}
	return tx, bus, nil
}
