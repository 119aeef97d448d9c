//go:build linux

package framebuffer

import (
	"fmt"
	"image"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	ioctlGetVScreenInfo = 0x4600
	ioctlPutVScreenInfo = 0x4601
	ioctlGetFScreenInfo = 0x4602
)

// Device is an open fbdev node such as /dev/fb0.
type Device struct {
	file *os.File
	mem  []byte
}

func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &Device{file: f}, nil
}

func (d *Device) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.file.Fd(), req, uintptr(arg))
	if errno != 0 {
		return fmt.Errorf("framebuffer: ioctl %#x on %s: %w", req, d.file.Name(), errno)
	}
	return nil
}

func (d *Device) VarScreenInfo() (*VarScreenInfo, error) {
	var v VarScreenInfo
	if err := d.ioctl(ioctlGetVScreenInfo, unsafe.Pointer(&v)); err != nil {
		return nil, err
	}
	return &v, nil
}

func (d *Device) FixScreenInfo() (*FixScreenInfo, error) {
	var f FixScreenInfo
	if err := d.ioctl(ioctlGetFScreenInfo, unsafe.Pointer(&f)); err != nil {
		return nil, err
	}
	return &f, nil
}

// PutVarScreenInfo asks the driver to switch to v. The driver may adjust v
// to what it actually programmed.
func (d *Device) PutVarScreenInfo(v *VarScreenInfo) error {
	return d.ioctl(ioctlPutVScreenInfo, unsafe.Pointer(v))
}

// Pixels maps the video memory. The mapping lives until Close.
func (d *Device) Pixels() ([]byte, error) {
	if d.mem != nil {
		return d.mem, nil
	}
	fix, err := d.FixScreenInfo()
	if err != nil {
		return nil, err
	}
	mem, err := unix.Mmap(int(d.file.Fd()), 0, int(fix.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("framebuffer: mmap %s: %w", d.file.Name(), err)
	}
	d.mem = mem
	return mem, nil
}

// Framebuffer returns the visible screen of the current mode.
func (d *Device) Framebuffer() (*Framebuffer, error) {
	v, err := d.VarScreenInfo()
	if err != nil {
		return nil, err
	}
	fix, err := d.FixScreenInfo()
	if err != nil {
		return nil, err
	}
	mem, err := d.Pixels()
	if err != nil {
		return nil, err
	}
	off := int(v.YOffset)*int(fix.LineLength) + int(v.XOffset)*int(v.BitsPerPixel)/8
	if off > len(mem) {
		return nil, fmt.Errorf("framebuffer: pan offset %d beyond video memory", off)
	}
	img, err := NewImage(int(v.BitsPerPixel), image.Rect(0, 0, int(v.XRes), int(v.YRes)), mem[off:], int(fix.LineLength))
	if err != nil {
		return nil, err
	}
	return &Framebuffer{Image: img}, nil
}

func (d *Device) Close() error {
	var err error
	if d.mem != nil {
		err = unix.Munmap(d.mem)
		d.mem = nil
	}
	if cerr := d.file.Close(); err == nil {
		err = cerr
	}
	return err
}
