package edid_test

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/starsoc/linux-star-x7/edid"
)

func checksum(b []byte) {
	var sum byte
	for _, v := range b[:127] {
		sum += v
	}
	b[127] = -sum
}

func descriptor(typ byte, s string) []byte {
	d := make([]byte, 18)
	d[3] = typ
	copy(d[5:], bytes.Repeat([]byte{' '}, 13))
	copy(d[5:], s+"\n")
	return d
}

// testBlock returns an EDID 1.3 base block of a 1024x768 monitor.
func testBlock() []byte {
	b := make([]byte, 128)
	copy(b, []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00})
	copy(b[8:], []byte{0x4c, 0x2d})              // SAM
	copy(b[10:], []byte{0x23, 0x01})             // product 0x0123
	copy(b[12:], []byte{0x78, 0x56, 0x34, 0x12}) // serial
	b[16], b[17] = 10, 20
	b[18], b[19] = 1, 3
	b[21], b[22] = 30, 23
	b[35], b[36] = 0x21, 0x08 // 640x480@60, 800x600@60, 1024x768@60
	copy(b[38:], []byte{0x81, 0x80})
	for i := 40; i < 54; i++ {
		b[i] = 0x01
	}
	copy(b[54:], []byte{
		0x64, 0x19, 0x00, 0x40, 0x41, 0x00, 0x26, 0x30,
		0x18, 0x88, 0x36, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x18,
	})
	copy(b[72:], descriptor(0xfc, "SyncMaster"))
	copy(b[90:], descriptor(0xff, "H9XS123456"))
	copy(b[108:], descriptor(0xfd, ""))
	checksum(b)
	return b
}

func ceaBlock() []byte {
	b := make([]byte, 128)
	b[0], b[1] = 0x02, 0x03
	copy(b[4:], []byte{0x65, 0x03, 0x0c, 0x00, 0x10, 0x00})
	b[2] = 10
	checksum(b)
	return b
}

func TestParse(t *testing.T) {
	e, err := edid.Parse(testBlock())
	if err != nil {
		t.Fatal(err)
	}
	if e.Manufacturer != "SAM" {
		t.Errorf("manufacturer %q", e.Manufacturer)
	}
	if e.ProductCode != 0x0123 || e.SerialNumber != 0x12345678 {
		t.Errorf("product %#x serial %#x", e.ProductCode, e.SerialNumber)
	}
	if e.Week != 10 || e.Year != 2010 || e.Version != 1 || e.Revision != 3 {
		t.Errorf("week %d year %d version %d.%d", e.Week, e.Year, e.Version, e.Revision)
	}
	if e.Name != "SyncMaster" || e.Serial != "H9XS123456" {
		t.Errorf("name %q serial %q", e.Name, e.Serial)
	}
	if len(e.Detailed) != 1 {
		t.Fatalf("got %d detailed timings", len(e.Detailed))
	}
	dt := e.Detailed[0]
	want := edid.DetailedTiming{
		PixelClockHz: 65000000,
		HActive:      1024, HBlank: 320, HSyncOffset: 24, HSyncWidth: 136,
		VActive: 768, VBlank: 38, VSyncOffset: 3, VSyncWidth: 6,
	}
	if dt != want {
		t.Errorf("detailed timing\ngot  %+v\nwant %+v", dt, want)
	}
	if dt.RefreshHz() != 60 {
		t.Errorf("refresh %d", dt.RefreshHz())
	}
	if e.HDMI {
		t.Error("HDMI without extension")
	}

	modes := []edid.Mode{
		{Width: 1024, Height: 768, RefreshHz: 60},
		{Width: 1280, Height: 1024, RefreshHz: 60},
		{Width: 640, Height: 480, RefreshHz: 60},
		{Width: 800, Height: 600, RefreshHz: 60},
	}
	if got := e.Modes(); !slices.Equal(got, modes) {
		t.Errorf("modes %v, want %v", got, modes)
	}
	if !e.Supports(800, 600, 0) || !e.Supports(1024, 768, 60) {
		t.Error("supported mode rejected")
	}
	if e.Supports(1024, 600, 0) || e.Supports(800, 600, 75) {
		t.Error("unsupported mode accepted")
	}
	if m, ok := e.Preferred(); !ok || m != modes[0] {
		t.Errorf("preferred %v", m)
	}
}

func TestParseHDMI(t *testing.T) {
	b := testBlock()
	b[126] = 1
	checksum(b)
	data := append(b, ceaBlock()...)

	e, err := edid.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !e.HDMI {
		t.Error("HDMI vendor block not found")
	}
	if e.Extensions != 1 || len(e.Raw) != 256 {
		t.Errorf("extensions %d, raw %d bytes", e.Extensions, len(e.Raw))
	}

	// A missing extension is not an error.
	if e, err = edid.Parse(b); err != nil || e.HDMI {
		t.Errorf("got %v, HDMI %v", err, e.HDMI)
	}
}

func TestParseErrors(t *testing.T) {
	badHeader := testBlock()
	badHeader[0] = 0x01
	badSum := testBlock()
	badSum[20]++
	badExt := testBlock()
	badExt[126] = 1
	checksum(badExt)
	ext := ceaBlock()
	ext[5]++
	badExt = append(badExt, ext...)

	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"empty", nil, edid.ErrShort},
		{"short", testBlock()[:127], edid.ErrShort},
		{"header", badHeader, edid.ErrHeader},
		{"checksum", badSum, edid.ErrChecksum},
		{"extension", badExt, edid.ErrChecksum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := edid.Parse(tt.data); !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestWriteHex(t *testing.T) {
	var buf bytes.Buffer
	data := make([]byte, 20)
	data[0], data[19] = 0xff, 0x0a
	if err := edid.WriteHex(&buf, data); err != nil {
		t.Fatal(err)
	}
	want := "0xFF " + string(bytes.Repeat([]byte("0x00 "), 15)) + "\n" +
		"0x00 0x00 0x00 0x0A \n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestParseHex(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i * 7)
	}
	var buf bytes.Buffer
	edid.WriteHex(&buf, data)
	got, err := edid.ParseHex(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("got % x", got)
	}
	if _, err := edid.ParseHex([]byte("0x00 0x1G")); err == nil {
		t.Error("bad byte accepted")
	}
	if _, err := edid.ParseHex([]byte("0x100")); err == nil {
		t.Error("out of range byte accepted")
	}
}
