//go:build linux

package smbus

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// From linux/i2c-dev.h and linux/i2c.h.
const (
	ioctlRdwr = 0x707
	flagRD    = 0x0001
)

type i2cMsg struct {
	addr   uint16
	flags  uint16
	length uint16
	buf    uintptr
}

type rdwrIoctlData struct {
	msgs  uintptr
	nmsgs uint32
}

// RDWR is an i2c-dev bus. Every transaction, combined or not, is a single
// I2C_RDWR ioctl.
type RDWR struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

var (
	_ i2c.BusCloser = (*RDWR)(nil)
	_ Combiner      = (*RDWR)(nil)
)

// OpenRDWR opens an i2c-dev node like /dev/i2c-0.
func OpenRDWR(path string) (*RDWR, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &RDWR{f: f, path: path}, nil
}

func (b *RDWR) String() string { return b.path }

func (b *RDWR) Close() error { return b.f.Close() }

// SetSpeed is not supported, the adapter driver owns the clock.
func (b *RDWR) SetSpeed(physic.Frequency) error {
	return fmt.Errorf("smbus: %s: set speed: %w", b.path, errors.ErrUnsupported)
}

func (b *RDWR) Tx(addr uint16, w, r []byte) error {
	return b.TxCombined(Msg{addr, w, r})
}

func (b *RDWR) TxCombined(msgs ...Msg) error {
	raw := make([]i2cMsg, 0, 2*len(msgs))
	for _, m := range msgs {
		if m.Addr >= 0x80 {
			return fmt.Errorf("smbus: invalid address 0x%x", m.Addr)
		}
		if len(m.W) != 0 {
			raw = append(raw, i2cMsg{addr: m.Addr, length: uint16(len(m.W)), buf: uintptr(unsafe.Pointer(&m.W[0]))})
		}
		if len(m.R) != 0 {
			raw = append(raw, i2cMsg{addr: m.Addr, flags: flagRD, length: uint16(len(m.R)), buf: uintptr(unsafe.Pointer(&m.R[0]))})
		}
	}
	if len(raw) == 0 {
		return nil
	}
	data := rdwrIoctlData{msgs: uintptr(unsafe.Pointer(&raw[0])), nmsgs: uint32(len(raw))}

	b.mu.Lock()
	defer b.mu.Unlock()
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, b.f.Fd(), ioctlRdwr, uintptr(unsafe.Pointer(&data)))
	runtime.KeepAlive(raw)
	runtime.KeepAlive(msgs)
	if errno != 0 {
		return fmt.Errorf("smbus: %s: %w", b.path, errno)
	}
	return nil
}
