//go:build linux

package vga

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// PortIO is a Bus over legacy x86 I/O ports, reached through /dev/port. It
// needs CAP_SYS_RAWIO.
type PortIO struct {
	file *os.File
	buf  [1]byte
}

func OpenPortIO(name string) (*PortIO, error) {
	if name == "" {
		name = "/dev/port"
	}
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &PortIO{file: f}, nil
}

func (p *PortIO) Out(port uint16, v byte) error {
	p.buf[0] = v
	n, err := unix.Pwrite(int(p.file.Fd()), p.buf[:], int64(port))
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("short write to port 0x%03x", port)
	}
	return nil
}

func (p *PortIO) In(port uint16) (byte, error) {
	n, err := unix.Pread(int(p.file.Fd()), p.buf[:], int64(port))
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, fmt.Errorf("short read from port 0x%03x", port)
	}
	return p.buf[0], nil
}

func (p *PortIO) Close() error {
	return p.file.Close()
}
