// Package edid decodes the capability block (EDID) a monitor reports over its
// DDC channel.
//
// Only the parts needed to pick a display mode are decoded: identification,
// the timing lists of the base block and the presence of an HDMI vendor block
// in a CEA-861 extension.
package edid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const BlockSize = 128

var (
	ErrShort    = errors.New("edid: short block")
	ErrHeader   = errors.New("edid: bad header")
	ErrChecksum = errors.New("edid: bad checksum")
)

var header = []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}

// IEEE registration identifier of HDMI Licensing, LLC.
const hdmiOUI = 0x000c03

// EDID is a decoded capability block.
type EDID struct {
	Manufacturer string // three letter PNP ID
	ProductCode  uint16
	SerialNumber uint32
	Week, Year   int
	Version      int
	Revision     int

	// Name and Serial come from the display descriptors, if present.
	Name   string
	Serial string

	WidthCM, HeightCM int

	Established []Mode
	Standard    []Mode
	Detailed    []DetailedTiming

	Extensions int  // number of extension blocks announced
	HDMI       bool // a CEA extension carries the HDMI vendor block

	Raw []byte
}

// Mode is a resolution and refresh rate a monitor accepts.
type Mode struct {
	Width, Height int
	RefreshHz     int
	Interlaced    bool
}

func (m Mode) String() string {
	s := fmt.Sprintf("%dx%d@%d", m.Width, m.Height, m.RefreshHz)
	if m.Interlaced {
		s += "i"
	}
	return s
}

// DetailedTiming is an 18 byte detailed timing descriptor.
type DetailedTiming struct {
	PixelClockHz int

	HActive, HBlank, HSyncOffset, HSyncWidth int
	VActive, VBlank, VSyncOffset, VSyncWidth int

	HSyncPositive, VSyncPositive bool
	Interlaced                   bool
}

// RefreshHz returns the field rate, rounded to the nearest Hz.
func (t *DetailedTiming) RefreshHz() int {
	total := (t.HActive + t.HBlank) * (t.VActive + t.VBlank)
	if total == 0 {
		return 0
	}
	return (t.PixelClockHz + total/2) / total
}

func (t *DetailedTiming) Mode() Mode {
	return Mode{t.HActive, t.VActive, t.RefreshHz(), t.Interlaced}
}

// Checksum reports whether the bytes of block sum to zero.
func Checksum(block []byte) bool {
	var sum byte
	for _, b := range block {
		sum += b
	}
	return sum == 0
}

// Parse decodes the base block in data and any CEA extension blocks that
// follow it. Extension blocks missing from data are ignored.
func Parse(data []byte) (*EDID, error) {
	if len(data) < BlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShort, len(data))
	}
	b := data[:BlockSize]
	if !bytes.Equal(b[:8], header) {
		return nil, ErrHeader
	}
	if !Checksum(b) {
		return nil, ErrChecksum
	}

	e := &EDID{
		Manufacturer: manufacturer(binary.BigEndian.Uint16(b[8:])),
		ProductCode:  binary.LittleEndian.Uint16(b[10:]),
		SerialNumber: binary.LittleEndian.Uint32(b[12:]),
		Week:         int(b[16]),
		Year:         int(b[17]) + 1990,
		Version:      int(b[18]),
		Revision:     int(b[19]),
		WidthCM:      int(b[21]),
		HeightCM:     int(b[22]),
		Extensions:   int(b[126]),
		Raw:          append([]byte(nil), data...),
	}
	e.Established = established(b[35:38])
	for i := 38; i < 54; i += 2 {
		if m, ok := standard(b[i], b[i+1], e.Revision); ok {
			e.Standard = append(e.Standard, m)
		}
	}
	for i := 54; i < 126; i += 18 {
		e.descriptor(b[i : i+18])
	}

	for n := 1; n <= e.Extensions && (n+1)*BlockSize <= len(data); n++ {
		ext := data[n*BlockSize : (n+1)*BlockSize]
		if ext[0] != 0x02 {
			continue
		}
		if !Checksum(ext) {
			return nil, fmt.Errorf("%w: extension %d", ErrChecksum, n)
		}
		e.cea(ext)
	}
	return e, nil
}

func manufacturer(id uint16) string {
	var s [3]byte
	for i := range s {
		s[i] = '@' + byte(id>>(10-5*i)&0x1f)
	}
	return string(s[:])
}

var establishedModes = [17]Mode{
	{720, 400, 70, false}, {720, 400, 88, false},
	{640, 480, 60, false}, {640, 480, 67, false},
	{640, 480, 72, false}, {640, 480, 75, false},
	{800, 600, 56, false}, {800, 600, 60, false},
	{800, 600, 72, false}, {800, 600, 75, false},
	{832, 624, 75, false}, {1024, 768, 87, true},
	{1024, 768, 60, false}, {1024, 768, 70, false},
	{1024, 768, 75, false}, {1280, 1024, 75, false},
	{1152, 870, 75, false},
}

func established(bits []byte) (modes []Mode) {
	for i, m := range establishedModes {
		if bits[i/8]&(0x80>>(i%8)) != 0 {
			modes = append(modes, m)
		}
	}
	return
}

func standard(b0, b1 byte, revision int) (Mode, bool) {
	if b0 == 0x01 && b1 == 0x01 || b0 == 0 {
		return Mode{}, false
	}
	w := (int(b0) + 31) * 8
	var h int
	switch b1 >> 6 {
	case 0:
		if revision < 3 {
			h = w
		} else {
			h = w * 10 / 16
		}
	case 1:
		h = w * 3 / 4
	case 2:
		h = w * 4 / 5
	case 3:
		h = w * 9 / 16
	}
	return Mode{Width: w, Height: h, RefreshHz: int(b1&0x3f) + 60}, true
}

func (e *EDID) descriptor(d []byte) {
	if d[0] != 0 || d[1] != 0 {
		e.Detailed = append(e.Detailed, detailed(d))
		return
	}
	switch d[3] {
	case 0xfc:
		e.Name = text(d[5:])
	case 0xff:
		e.Serial = text(d[5:])
	}
}

func detailed(d []byte) DetailedTiming {
	t := DetailedTiming{
		PixelClockHz: int(binary.LittleEndian.Uint16(d)) * 10000,
		HActive:      int(d[2]) | int(d[4]&0xf0)<<4,
		HBlank:       int(d[3]) | int(d[4]&0x0f)<<8,
		VActive:      int(d[5]) | int(d[7]&0xf0)<<4,
		VBlank:       int(d[6]) | int(d[7]&0x0f)<<8,
		HSyncOffset:  int(d[8]) | int(d[11]&0xc0)<<2,
		HSyncWidth:   int(d[9]) | int(d[11]&0x30)<<4,
		VSyncOffset:  int(d[10]>>4) | int(d[11]&0x0c)<<2,
		VSyncWidth:   int(d[10]&0x0f) | int(d[11]&0x03)<<4,
		Interlaced:   d[17]&0x80 != 0,
	}
	if d[17]&0x18 == 0x18 { // digital separate sync
		t.VSyncPositive = d[17]&0x04 != 0
		t.HSyncPositive = d[17]&0x02 != 0
	}
	return t
}

// text decodes a descriptor string. Strings end at the first line feed and are
// padded with spaces.
func text(b []byte) string {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[:i]
	}
	s, err := charmap.CodePage437.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(s), " \x00")
}

func (e *EDID) cea(ext []byte) {
	end := int(ext[2])
	if end < 4 || end > BlockSize-1 {
		end = BlockSize - 1
	}
	for i := 4; i < end; {
		tag, n := ext[i]>>5, int(ext[i]&0x1f)
		if i+1+n > end {
			break
		}
		if tag == 3 && n >= 3 {
			oui := int(ext[i+1]) | int(ext[i+2])<<8 | int(ext[i+3])<<16
			if oui == hdmiOUI {
				e.HDMI = true
			}
		}
		i += 1 + n
	}
	for i := end; i+18 <= BlockSize-1 && end > 4; i += 18 {
		d := ext[i : i+18]
		if d[0] == 0 && d[1] == 0 {
			break
		}
		e.Detailed = append(e.Detailed, detailed(d))
	}
}

// Modes returns every progressive mode the monitor announces, detailed
// timings first. Modes listed more than once are returned once.
func (e *EDID) Modes() []Mode {
	var all []Mode
	seen := make(map[Mode]bool)
	add := func(m Mode) {
		if m.Interlaced || seen[m] {
			return
		}
		seen[m] = true
		all = append(all, m)
	}
	for i := range e.Detailed {
		add(e.Detailed[i].Mode())
	}
	for _, m := range e.Standard {
		add(m)
	}
	for _, m := range e.Established {
		add(m)
	}
	return all
}

// Supports reports whether the monitor accepts width x height at hz. A zero
// hz matches any refresh rate.
func (e *EDID) Supports(width, height, hz int) bool {
	for _, m := range e.Modes() {
		if m.Width == width && m.Height == height && (hz == 0 || m.RefreshHz == hz) {
			return true
		}
	}
	return false
}

// Preferred returns the first detailed timing, which EDID 1.3 and later
// define as the preferred mode.
func (e *EDID) Preferred() (Mode, bool) {
	for i := range e.Detailed {
		if m := e.Detailed[i].Mode(); !m.Interlaced {
			return m, true
		}
	}
	return Mode{}, false
}
