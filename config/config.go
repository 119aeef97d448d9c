// Package config loads the daemon configuration from YAML and the kernel
// command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"

	"github.com/starsoc/linux-star-x7/modes"
	"github.com/starsoc/linux-star-x7/notify"
	"github.com/starsoc/linux-star-x7/vga"
)

var ErrInvalid = errors.New("config: invalid")

// Register access backends.
const (
	BackendMMIO     = "mmio"
	BackendIOPort   = "ioport"
	BackendEmulated = "emulated"
)

type Config struct {
	Device      DeviceConfig      `yaml:"device"`
	Mode        ModeConfig        `yaml:"mode"`
	Transmitter TransmitterConfig `yaml:"transmitter"`
	Hotplug     HotplugConfig     `yaml:"hotplug"`
	Framebuffer string            `yaml:"framebuffer"`
	HTTP        HTTPConfig        `yaml:"http"`
	MQTT        MQTTConfig        `yaml:"mqtt"`
}

// DeviceConfig says how the registers are reached. For mmio Path is a file
// mapping the chip's aperture, for example a PCI resource file.
type DeviceConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Offset  int64  `yaml:"offset"`
	Size    int    `yaml:"size"`
}

// ModeConfig is the default mode, named like the mode_str and bits-per-pixel
// device tree properties.
type ModeConfig struct {
	ModeStr      string `yaml:"mode_str"`
	BitsPerPixel int    `yaml:"bits_per_pixel"`
}

func (m ModeConfig) Request() (modes.Request, error) {
	return modes.ParseRequest(m.ModeStr, m.BitsPerPixel)
}

type TransmitterConfig struct {
	Type string `yaml:"type"` // none, auto, sii9022 or sii9134

	// Bus is a periph I2C bus name, empty for the first one, or an
	// i2c-dev node like /dev/i2c-0. Only the latter can read capability
	// blocks longer than two blocks.
	Bus     string `yaml:"bus"`
	Address uint16 `yaml:"address"`
	HDMI    bool   `yaml:"hdmi"`
}

type HotplugConfig struct {
	Pin           string        `yaml:"pin"` // GPIO name, empty disables interrupts
	Debounce      time.Duration `yaml:"debounce"`
	Retries       int           `yaml:"retries"`
	RetryInterval time.Duration `yaml:"retry_interval"`
}

type HTTPConfig struct {
	Listen string `yaml:"listen"`
}

type MQTTConfig struct {
	Enabled           bool `yaml:"enabled"`
	notify.MQTTConfig `yaml:",inline"`
}

func Defaults() *Config {
	return &Config{
		Device: DeviceConfig{
			Backend: BackendMMIO,
			Path:    "/sys/bus/pci/devices/0000:00:0f.0/resource0",
			Offset:  vga.SM712RegOffset,
			Size:    vga.SM712RegSize,
		},
		Mode: ModeConfig{
			ModeStr:      "1024x600@60",
			BitsPerPixel: 16,
		},
		Transmitter: TransmitterConfig{
			Type: "auto",
			HDMI: true,
		},
		Hotplug: HotplugConfig{
			Debounce:      100 * time.Millisecond,
			Retries:       2,
			RetryInterval: 500 * time.Millisecond,
		},
		Framebuffer: "/dev/fb0",
		HTTP:        HTTPConfig{Listen: ":9712"},
		MQTT: MQTTConfig{
			MQTTConfig: notify.MQTTConfig{Topic: "lynxfb"},
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

func (c *Config) Validate() error {
	switch c.Device.Backend {
	case BackendMMIO:
		if c.Device.Path == "" || c.Device.Size <= 0 {
			return invalid("device: mmio needs a path and a size")
		}
	case BackendIOPort, BackendEmulated:
	default:
		return invalid("device.backend %q", c.Device.Backend)
	}

	r, err := c.Mode.Request()
	if err != nil {
		return invalid("mode: %v", err)
	}
	if _, err := modes.Default().Select(r); err != nil {
		return invalid("mode: %v", err)
	}

	switch c.Transmitter.Type {
	case "none", "auto", "sii9022", "sii9134":
	default:
		return invalid("transmitter.type %q", c.Transmitter.Type)
	}
	if c.Transmitter.Address > 0x7f {
		return invalid("transmitter.address %#x is not a 7 bit address", c.Transmitter.Address)
	}

	if c.Hotplug.Debounce < 0 || c.Hotplug.RetryInterval < 0 || c.Hotplug.Retries < 0 {
		return invalid("hotplug: negative value")
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return invalid("mqtt: enabled without broker")
	}
	return nil
}

// FromCmdline returns the mode given as video=lynxfb:<mode_str> on a kernel
// command line. Options after the mode, separated by commas, are ignored.
func FromCmdline(cmdline string) (string, bool, error) {
	words, err := shellquote.Split(cmdline)
	if err != nil {
		return "", false, fmt.Errorf("config: kernel command line: %w", err)
	}
	for _, w := range words {
		opt, ok := strings.CutPrefix(w, "video=lynxfb:")
		if !ok {
			continue
		}
		mode, _, _ := strings.Cut(opt, ",")
		return mode, mode != "", nil
	}
	return "", false, nil
}

// ApplyCmdline overrides the default mode with the one on the kernel command
// line, if any. The depth falls back to the configured one. A mode the table
// doesn't hold is rejected and leaves c unchanged.
func (c *Config) ApplyCmdline(cmdline string) error {
	mode, ok, err := FromCmdline(cmdline)
	if err != nil || !ok {
		return err
	}
	m := ModeConfig{ModeStr: mode, BitsPerPixel: c.Mode.BitsPerPixel}
	r, err := m.Request()
	if err != nil {
		return invalid("video=lynxfb:%s: %v", mode, err)
	}
	if _, err := modes.Default().Select(r); err != nil {
		return invalid("video=lynxfb:%s: %v", mode, err)
	}
	c.Mode = m
	return nil
}
