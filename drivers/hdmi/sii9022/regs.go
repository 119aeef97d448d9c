package sii9022

// TPI registers.
const (
	regVideoMode   = 0x00 // 0x00-0x07: pixel clock, refresh, total pixels and lines
	regInputBus    = 0x08
	regInputFormat = 0x09
	regOutFormat   = 0x0a
	regSysCtrl     = 0x1a
	regDeviceID    = 0x1b
	regDeviceRev   = 0x1c
	regTPIRev      = 0x1d
	regPowerState  = 0x1e
	regI2SEnable   = 0x25
	regI2SFormat   = 0x26
	regI2SHeader   = 0x27
	regHDCPRev     = 0x30
	regIntEnable   = 0x3c
	regIntStatus   = 0x3d
	regTPIEnable   = 0xc7
)

// System control bits.
const (
	sysOutputHDMI byte = 1 << 0
	sysDDCGranted byte = 1 << 1
	sysDDCRequest byte = 1 << 2
	sysTMDSOff    byte = 1 << 4
)

// Interrupt bits, enable and status.
const (
	intHotPlug     byte = 1 << 0
	intPlugged     byte = 1 << 2 // status only
	deviceIDSii902 byte = 0xb0
)

// DDC addresses of the monitor's capability block, reachable once the
// transmitter has passed its DDC bus through.
const (
	ddcAddr     = 0x50
	segmentAddr = 0x30
)
