package hdmitest

// Monitor describes the capability block built by EDID.
type Monitor struct {
	Name string
	// Detailed is the preferred mode, 1024x768@60 when zero.
	Width, Height int
	HDMI          bool

	// Extra appends opaque extension blocks after the CEA one, each
	// filled with its block number.
	Extra int
}

// EDID returns a valid capability block for m. The preferred timing only
// carries the active size and a 60 Hz pixel clock, which is all mode
// selection looks at. 640x480@60 and 800x600@60 are announced as established
// timings.
func EDID(m Monitor) []byte {
	w, h := m.Width, m.Height
	if w == 0 || h == 0 {
		w, h = 1024, 768
	}
	hblank, vblank := 320, 38

	b := make([]byte, 128)
	copy(b, []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00})
	b[8], b[9] = 0x4c, 0x2d
	b[18], b[19] = 1, 3
	b[35] = 0x21

	clk := (w + hblank) * (h + vblank) * 60 / 10000
	d := b[54:72]
	d[0], d[1] = byte(clk), byte(clk>>8)
	d[2], d[3] = byte(w), byte(hblank)
	d[4] = byte(w>>8)<<4 | byte(hblank>>8)
	d[5], d[6] = byte(h), byte(vblank)
	d[7] = byte(h>>8)<<4 | byte(vblank>>8)
	d[17] = 0x18

	name := b[72:90]
	name[3] = 0xfc
	copy(name[5:], "             ")
	copy(name[5:], m.Name+"\n")
	for i := 90; i < 126; i += 18 {
		b[i+3] = 0x10 // dummy descriptor
	}

	b[126] = byte(m.Extra)
	if m.HDMI {
		b[126]++
	}
	checksum(b)
	if m.HDMI {
		ext := make([]byte, 128)
		ext[0], ext[1], ext[2] = 0x02, 0x03, 10
		copy(ext[4:], []byte{0x65, 0x03, 0x0c, 0x00, 0x10, 0x00})
		checksum(ext)
		b = append(b, ext...)
	}
	for range m.Extra {
		n := byte(len(b) / 128)
		ext := make([]byte, 128)
		for i := range ext {
			ext[i] = n
		}
		ext[0] = 0xf0
		checksum(ext)
		b = append(b, ext...)
	}
	return b
}

func checksum(b []byte) {
	var sum byte
	for _, v := range b[:127] {
		sum += v
	}
	b[127] = -sum
}
