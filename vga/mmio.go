//go:build linux

package vga

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// SM712 register window inside its linear framebuffer aperture. The VGA ports
// appear at their I/O addresses relative to the window base.
const (
	SM712RegOffset = 0x0070_0000
	SM712RegSize   = 0x0010_0000
)

// MMIO is a Bus over a memory mapped register window, e.g. a PCI BAR resource
// file in sysfs or a range of /dev/mem.
type MMIO struct {
	file *os.File
	mem  []byte
}

// OpenMMIO maps size bytes at offset of the named file.
func OpenMMIO(name string, offset int64, size int) (*MMIO, error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	mem, err := unix.Mmap(int(f.Fd()), offset, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("vga: mmap %s: %w", name, err)
	}
	return &MMIO{file: f, mem: mem}, nil
}

func (m *MMIO) Out(port uint16, v byte) error {
	if int(port) >= len(m.mem) {
		return fmt.Errorf("port 0x%03x outside register window", port)
	}
	m.mem[port] = v
	return nil
}

func (m *MMIO) In(port uint16) (byte, error) {
	if int(port) >= len(m.mem) {
		return 0, fmt.Errorf("port 0x%03x outside register window", port)
	}
	return m.mem[port], nil
}

// Close unmaps the register window and closes the underlying file.
func (m *MMIO) Close() error {
	err := unix.Munmap(m.mem)
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	m.mem = nil
	return err
}
