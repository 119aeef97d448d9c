package edid

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// WriteHex writes data 16 bytes per line in the format of the transmitter's
// sysfs edid attribute ("0x00 0xFF ...").
func WriteHex(w io.Writer, data []byte) error {
	for i := 0; i < len(data); i += 16 {
		for _, b := range data[i:min(i+16, len(data))] {
			if _, err := fmt.Fprintf(w, "0x%02X ", b); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// ParseHex reverses WriteHex. Bytes may be separated by any white space.
func ParseHex(text []byte) ([]byte, error) {
	var data []byte
	for _, f := range bytes.Fields(text) {
		v, err := strconv.ParseUint(string(f), 0, 8)
		if err != nil {
			return nil, fmt.Errorf("edid: bad hex byte %q", f)
		}
		data = append(data, byte(v))
	}
	return data, nil
}
