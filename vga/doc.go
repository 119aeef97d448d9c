// Package vga provides register level access to the VGA compatible core of the
// Silicon Motion SM712 display controller.
//
// Registers are reached through index/data port pairs: a register is selected
// by writing its index to the bank's index port and is then read or written
// through the bank's data port. Every access costs exactly two bus
// transactions. Nothing in this package retries or verifies a write.
//
// A Space is owned by one driver instance. It is not safe for concurrent use,
// callers must serialize all access to the same physical device.
package vga

// Silicon Motion SM712 LynxEM+ Databook, chapter "VGA Core Registers"
