// Package sii9022 drives the Silicon Image SiI9022 HDMI/DVI transmitter
// through its TPI register interface.
package sii9022

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"periph.io/x/conn/v3/i2c"

	"github.com/starsoc/linux-star-x7/drivers/hdmi/smbus"
	"github.com/starsoc/linux-star-x7/edid"
	"github.com/starsoc/linux-star-x7/modes"
)

// DefaultAddr is the TPI address with CI2CA low.
const DefaultAddr = 0x39

// EDIDLen is the largest capability block read, the base block and up to
// three extensions.
const EDIDLen = 4 * edid.BlockSize

var (
	ErrNotFound   = errors.New("sii9022: device not found")
	ErrDDCTimeout = errors.New("sii9022: DDC bus handover timed out")
)

// Transmitter is a probed SiI9022. It's safe for concurrent use.
type Transmitter struct {
	mu   sync.Mutex
	dev  *smbus.Dev
	ddc  *smbus.Dev
	bus  i2c.Bus
	log  *log.Logger
	hdmi bool

	status byte
	id     [4]byte

	// PollInterval and PollCount bound the wait for DDC handovers.
	PollInterval time.Duration
	PollCount    int
}

// Probe puts the transmitter at addr into TPI mode and checks its device
// ID. If logger is nil, log.Default is used.
func Probe(bus i2c.Bus, addr uint16, logger *log.Logger) (*Transmitter, error) {
	if logger == nil {
		logger = log.Default()
	}
	t := &Transmitter{
		dev:          smbus.New(bus, addr),
		ddc:          smbus.New(bus, ddcAddr),
		bus:          bus,
		log:          logger,
		hdmi:         true,
		PollInterval: 10 * time.Millisecond,
		PollCount:    100,
	}

	// Enter hardware TPI mode, which also leaves D3.
	if err := t.dev.WriteReg(regTPIEnable, 0x00); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	for range 10 {
		id, err := t.dev.ReadReg(regDeviceID)
		if err != nil || id != deviceIDSii902 {
			continue
		}
		t.id[0] = id
		for i, reg := range []byte{regDeviceRev, regTPIRev, regHDCPRev} {
			if t.id[i+1], err = t.dev.ReadReg(reg); err != nil {
				return nil, err
			}
		}
		t.log.Printf("sii9022: device id %02X-%02X-%02X-%02X", t.id[0], t.id[1], t.id[2], t.id[3])
		return t, nil
	}
	return nil, ErrNotFound
}

func (t *Transmitter) Name() string { return "sii9022" }

// ID returns the device ID, device revision, TPI revision and HDCP revision.
func (t *Transmitter) ID() [4]byte { return t.id }

// HDMI reports whether the output is driven in HDMI rather than DVI mode.
func (t *Transmitter) HDMI() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hdmi
}

// SetHDMI selects HDMI or DVI output for the next power on.
func (t *Transmitter) SetHDMI(hdmi bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hdmi = hdmi
}

// EnableHotplug unmasks the hot plug interrupt.
func (t *Transmitter) EnableHotplug() error {
	return t.dev.WriteReg(regIntEnable, intHotPlug)
}

// Setup programs the input video timing. The transmitter needs it after
// every mode change.
func (t *Transmitter) Setup(tm modes.Timing, hz int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	pixclk := tm.PixelClockHz(hz)
	refresh := pixclk / (tm.HTotal * tm.VTotal)
	var vm [8]byte
	binary.LittleEndian.PutUint16(vm[0:], uint16(pixclk/10000))
	binary.LittleEndian.PutUint16(vm[2:], uint16(refresh*100))
	binary.LittleEndian.PutUint16(vm[4:], uint16(tm.HTotal))
	binary.LittleEndian.PutUint16(vm[6:], uint16(tm.VTotal))

	seq := []smbus.Reg{{regPowerState, 0x00}}
	for i, v := range vm {
		seq = append(seq, smbus.Reg{Addr: regVideoMode + byte(i), Val: v})
	}
	seq = append(seq,
		smbus.Reg{Addr: regInputBus, Val: 0x70},    // full pixel wide, rising edge
		smbus.Reg{Addr: regInputFormat, Val: 0x00}, // RGB
		smbus.Reg{Addr: regOutFormat, Val: 0x00},   // RGB
		smbus.Reg{Addr: regI2SEnable, Val: 0x00},
		smbus.Reg{Addr: regI2SFormat, Val: 0x40},
		smbus.Reg{Addr: regI2SHeader, Val: 0x00},
	)
	return t.dev.WriteRegs(seq)
}

// PowerOn enables the TMDS output.
func (t *Transmitter) PowerOn() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.log.Printf("sii9022: power on (hdmi=%v)", t.hdmi)
	return t.dev.WriteReg(regSysCtrl, t.sysCtrl(0))
}

// PowerOff disables the TMDS output. It must be called before changing the
// input timing.
func (t *Transmitter) PowerOff() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.log.Printf("sii9022: power off")
	return t.dev.WriteReg(regSysCtrl, t.sysCtrl(sysTMDSOff))
}

func (t *Transmitter) sysCtrl(v byte) byte {
	if t.hdmi {
		v |= sysOutputHDMI
	}
	return v
}

// CablePresent reads the interrupt status and reports whether a monitor is
// attached. The status is kept for AckInterrupt.
func (t *Transmitter) CablePresent() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.dev.ReadReg(regIntStatus)
	if err != nil {
		return false, err
	}
	t.status = s
	return s&intPlugged != 0, nil
}

// AckInterrupt clears the interrupts seen by the last CablePresent.
func (t *Transmitter) AckInterrupt() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dev.WriteReg(regIntStatus, t.status)
}

// ReadCapabilityBlock borrows the DDC bus from the transmitter and reads the
// monitor's EDID. On success the output mode follows the monitor's HDMI
// support.
func (t *Transmitter) ReadCapabilityBlock(ctx context.Context) (block []byte, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	old, err := t.dev.ReadReg(regSysCtrl)
	if err != nil {
		return nil, err
	}
	defer func() {
		if werr := t.dev.WriteReg(regSysCtrl, old); werr != nil && err == nil {
			err = werr
		}
	}()

	if err = t.dev.WriteReg(regSysCtrl, old|sysDDCRequest); err != nil {
		return nil, err
	}
	if err = t.waitSysCtrl(ctx, func(v byte) bool { return v&sysDDCGranted != 0 }); err != nil {
		return nil, err
	}
	if err = t.dev.WriteReg(regSysCtrl, old|sysDDCRequest|sysDDCGranted); err != nil {
		return nil, err
	}

	block, rerr := t.readEDID()

	// The bus must be handed back even if the read failed.
	if err = t.releaseDDC(ctx, old); err != nil {
		return nil, err
	}
	if rerr != nil {
		return nil, rerr
	}

	e, perr := edid.Parse(block)
	if perr != nil {
		return block, fmt.Errorf("sii9022: %w", perr)
	}
	t.hdmi = e.HDMI
	return block, nil
}

func (t *Transmitter) readEDID() ([]byte, error) {
	data := make([]byte, edid.BlockSize, EDIDLen)
	if err := t.ddc.ReadBlock(0, data); err != nil {
		return nil, err
	}
	ext := min(int(data[126]), EDIDLen/edid.BlockSize-1)
	combiner, ok := t.bus.(smbus.Combiner)
	if !ok && ext > 1 {
		t.log.Printf("sii9022: %s can't address E-DDC segments, reading 1 of %d extensions", t.bus, ext)
		ext = 1
	}
	for n := 1; n <= ext; n++ {
		blk := make([]byte, edid.BlockSize)
		off := byte(n % 2 * edid.BlockSize)
		if seg := n / 2; seg > 0 {
			// The segment pointer only holds until the next stop.
			err := combiner.TxCombined(
				smbus.Msg{Addr: segmentAddr, W: []byte{byte(seg)}},
				smbus.Msg{Addr: ddcAddr, W: []byte{off}, R: blk},
			)
			if err != nil {
				return nil, fmt.Errorf("read capability block %d: %w", n, err)
			}
		} else if err := t.ddc.ReadBlock(off, blk); err != nil {
			return nil, err
		}
		data = append(data, blk...)
	}
	return data, nil
}

func (t *Transmitter) releaseDDC(ctx context.Context, old byte) error {
	for range t.PollCount {
		if err := t.dev.WriteReg(regSysCtrl, old&^(sysDDCRequest|sysDDCGranted)); err != nil {
			return err
		}
		if err := smbus.Sleep(ctx, t.PollInterval); err != nil {
			return err
		}
		v, err := t.dev.ReadReg(regSysCtrl)
		if err != nil {
			return err
		}
		if v&(sysDDCRequest|sysDDCGranted) == 0 {
			return nil
		}
	}
	return ErrDDCTimeout
}

func (t *Transmitter) waitSysCtrl(ctx context.Context, done func(byte) bool) error {
	for range t.PollCount {
		if err := smbus.Sleep(ctx, t.PollInterval); err != nil {
			return err
		}
		v, err := t.dev.ReadReg(regSysCtrl)
		if err != nil {
			return err
		}
		if done(v) {
			return nil
		}
	}
	return ErrDDCTimeout
}
