package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	r, err := cfg.Mode.Request()
	if err != nil {
		t.Fatal(err)
	}
	if r.Width != 1024 || r.Height != 600 || r.BitsPerPixel != 16 || r.RefreshHz != 60 {
		t.Errorf("default mode %v", r)
	}
}

const sample = `
device:
  backend: emulated
mode:
  mode_str: 800x600-32@60
transmitter:
  type: sii9022
  bus: /dev/i2c-2
  address: 0x39
  hdmi: false
hotplug:
  pin: GPIO17
  debounce: 50ms
  retry_interval: 1s
mqtt:
  enabled: true
  broker: tcp://localhost:1883
  topic: star/lynx
`

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "lynxfb.yaml")
	if err := os.WriteFile(name, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Device.Backend != BackendEmulated {
		t.Errorf("backend %q", cfg.Device.Backend)
	}
	if cfg.Mode.ModeStr != "800x600-32@60" || cfg.Mode.BitsPerPixel != 16 {
		t.Errorf("mode %+v", cfg.Mode)
	}
	tx := cfg.Transmitter
	if tx.Type != "sii9022" || tx.Bus != "/dev/i2c-2" || tx.Address != 0x39 || tx.HDMI {
		t.Errorf("transmitter %+v", tx)
	}
	hp := cfg.Hotplug
	if hp.Pin != "GPIO17" || hp.Debounce != 50*time.Millisecond || hp.Retries != 2 || hp.RetryInterval != time.Second {
		t.Errorf("hotplug %+v", hp)
	}
	if !cfg.MQTT.Enabled || cfg.MQTT.Broker != "tcp://localhost:1883" || cfg.MQTT.Topic != "star/lynx" {
		t.Errorf("mqtt %+v", cfg.MQTT)
	}
	if cfg.Framebuffer != "/dev/fb0" || cfg.HTTP.Listen != ":9712" {
		t.Errorf("defaults lost: %q %q", cfg.Framebuffer, cfg.HTTP.Listen)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"backend", "device: {backend: pci}"},
		{"mmio size", "device: {backend: mmio, size: 0}"},
		{"mode syntax", "mode: {mode_str: big}"},
		{"mode missing", "mode: {mode_str: 1280x1024}"},
		{"transmitter", "transmitter: {type: adv7511}"},
		{"address", "transmitter: {address: 0x80}"},
		{"retries", "hotplug: {retries: -1}"},
		{"mqtt", "mqtt: {enabled: true}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); !errors.Is(err, ErrInvalid) {
				t.Errorf("got %v", err)
			}
		})
	}
	if _, err := Parse([]byte("device: [")); err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("syntax error: %v", err)
	}
}

func TestFromCmdline(t *testing.T) {
	tests := []struct {
		cmdline string
		mode    string
		ok      bool
	}{
		{`console=ttyS0,115200 root=/dev/sda1 video=lynxfb:800x600-32@60 quiet`, "800x600-32@60", true},
		{`root="/dev/disk/by-label/star x7" video=lynxfb:640x480,nomtrr`, "640x480", true},
		{`video=vesafb:1024x768 quiet`, "", false},
		{`video=lynxfb:`, "", false},
		{``, "", false},
	}
	for _, tt := range tests {
		mode, ok, err := FromCmdline(tt.cmdline)
		if err != nil {
			t.Errorf("%q: %v", tt.cmdline, err)
			continue
		}
		if mode != tt.mode || ok != tt.ok {
			t.Errorf("%q: got %q %v, want %q %v", tt.cmdline, mode, ok, tt.mode, tt.ok)
		}
	}
	if _, _, err := FromCmdline(`root="/dev/sda1`); err == nil {
		t.Error("unterminated quote accepted")
	}
}

func TestApplyCmdline(t *testing.T) {
	cfg := Defaults()
	if err := cfg.ApplyCmdline("quiet video=lynxfb:640x480@60"); err != nil {
		t.Fatal(err)
	}
	r, _ := cfg.Mode.Request()
	if r.Width != 640 || r.BitsPerPixel != 16 {
		t.Errorf("mode %v", r)
	}
	if err := cfg.ApplyCmdline("video=lynxfb:huge"); !errors.Is(err, ErrInvalid) {
		t.Errorf("got %v", err)
	}
	if err := cfg.ApplyCmdline("video=lynxfb:1280x1024@60"); !errors.Is(err, ErrInvalid) {
		t.Errorf("mode outside the table: got %v", err)
	}
	if err := cfg.ApplyCmdline("video=lynxfb:800x600-8"); !errors.Is(err, ErrInvalid) {
		t.Errorf("depth outside the table: got %v", err)
	}
	if err := cfg.ApplyCmdline("quiet"); err != nil || cfg.Mode.ModeStr != "640x480@60" {
		t.Errorf("mode changed without option: %v %q", err, cfg.Mode.ModeStr)
	}
}
