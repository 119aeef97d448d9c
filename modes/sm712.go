package modes

// sm712Modes is the SM712 mode table. Each entry is a register dump for one
// display mode and must be kept byte for byte.
var sm712Modes = []Descriptor{
	{
		Width: 640, Height: 480, BitsPerPixel: 16, RefreshHz: 60,
		Misc: 0xE3,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x00, 0x0E,
			},
			SeqExtLow: {
				0xFF, 0xBE, 0xEF, 0xFF, 0x00, 0x0E, 0x17, 0x2C,
				0x99, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x30, 0x02, 0x01, 0x01,
			},
			SeqExtMid: {
				0x32, 0x03, 0xA0, 0x09, 0xC0, 0x32, 0x32, 0x32,
				0x32, 0x32, 0x32, 0x32, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x18, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x32, 0x32, 0x32,
				0x04, 0x24, 0x63, 0x4F, 0x52, 0x0B, 0xDF, 0xEA,
				0x04, 0x50, 0x19, 0x32, 0x32, 0x00, 0x00, 0x32,
				0x01, 0x80, 0x7E, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x74, 0x14, 0x07, 0x82, 0x07, 0x04,
				0x00, 0x45, 0x30, 0x30, 0x40, 0x30,
			},
			SeqExtHigh: {
				0xFF, 0x07, 0x00, 0x6F, 0x7F, 0x7F, 0xFF, 0x32,
				0xF7, 0x00, 0x00, 0x00, 0xEF, 0xFF, 0x32, 0x32,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFF, 0xBF, 0xFF, 0xFF, 0xED, 0xED, 0xED,
				0x7B, 0xFF, 0xFF, 0xFF, 0xBF, 0xEF, 0xFF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0x5F, 0x4F, 0x4F, 0x00, 0x53, 0x1F, 0x0B, 0x3E,
				0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xEA, 0x0C, 0xDF, 0x50, 0x40, 0xDF, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x55, 0x03, 0x20,
				0x00, 0x00, 0x00, 0x40, 0x00, 0xE7, 0xFF, 0xFD,
				0x5F, 0x4F, 0x00, 0x54, 0x00, 0x0B, 0xDF, 0x00,
				0xEA, 0x0C, 0x2E, 0x00, 0x4F, 0xDF,
			},
			CRTCVendor: {
				0x56, 0xDD, 0x5E, 0xEA, 0x87, 0x44, 0x8F, 0x55,
				0x0A, 0x8F, 0x55, 0x0A, 0x00, 0x00, 0x18, 0x00,
				0x11, 0x10, 0x0B, 0x0A, 0x0A, 0x0A, 0x0A, 0x00,
			},
		},
	},
	{
		Width: 640, Height: 480, BitsPerPixel: 24, RefreshHz: 60,
		Misc: 0xE3,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x00, 0x0E,
			},
			SeqExtLow: {
				0xFF, 0xBE, 0xEF, 0xFF, 0x00, 0x0E, 0x17, 0x2C,
				0x99, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x30, 0x02, 0x01, 0x01,
			},
			SeqExtMid: {
				0x32, 0x03, 0xA0, 0x09, 0xC0, 0x32, 0x32, 0x32,
				0x32, 0x32, 0x32, 0x32, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x18, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x32, 0x32, 0x32,
				0x04, 0x24, 0x63, 0x4F, 0x52, 0x0B, 0xDF, 0xEA,
				0x04, 0x50, 0x19, 0x32, 0x32, 0x00, 0x00, 0x32,
				0x01, 0x80, 0x7E, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x74, 0x14, 0x07, 0x82, 0x07, 0x04,
				0x00, 0x45, 0x30, 0x30, 0x40, 0x30,
			},
			SeqExtHigh: {
				0xFF, 0x07, 0x00, 0x6F, 0x7F, 0x7F, 0xFF, 0x32,
				0xF7, 0x00, 0x00, 0x00, 0xEF, 0xFF, 0x32, 0x32,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFF, 0xBF, 0xFF, 0xFF, 0xED, 0xED, 0xED,
				0x7B, 0xFF, 0xFF, 0xFF, 0xBF, 0xEF, 0xFF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0x5F, 0x4F, 0x4F, 0x00, 0x53, 0x1F, 0x0B, 0x3E,
				0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xEA, 0x0C, 0xDF, 0x50, 0x40, 0xDF, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x55, 0x03, 0x20,
				0x00, 0x00, 0x00, 0x40, 0x00, 0xE7, 0xFF, 0xFD,
				0x5F, 0x4F, 0x00, 0x54, 0x00, 0x0B, 0xDF, 0x00,
				0xEA, 0x0C, 0x2E, 0x00, 0x4F, 0xDF,
			},
			CRTCVendor: {
				0x56, 0xDD, 0x5E, 0xEA, 0x87, 0x44, 0x8F, 0x55,
				0x0A, 0x8F, 0x55, 0x0A, 0x00, 0x00, 0x18, 0x00,
				0x11, 0x10, 0x0B, 0x0A, 0x0A, 0x0A, 0x0A, 0x00,
			},
		},
	},
	{
		Width: 640, Height: 480, BitsPerPixel: 32, RefreshHz: 60,
		Misc: 0xE3,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x00, 0x0E,
			},
			SeqExtLow: {
				0xFF, 0xBE, 0xEF, 0xFF, 0x00, 0x0E, 0x17, 0x2C,
				0x99, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x30, 0x02, 0x01, 0x01,
			},
			SeqExtMid: {
				0x32, 0x03, 0xA0, 0x09, 0xC0, 0x32, 0x32, 0x32,
				0x32, 0x32, 0x32, 0x32, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x18, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x32, 0x32, 0x32,
				0x04, 0x24, 0x63, 0x4F, 0x52, 0x0B, 0xDF, 0xEA,
				0x04, 0x50, 0x19, 0x32, 0x32, 0x00, 0x00, 0x32,
				0x01, 0x80, 0x7E, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x74, 0x14, 0x07, 0x82, 0x07, 0x04,
				0x00, 0x45, 0x30, 0x30, 0x40, 0x30,
			},
			SeqExtHigh: {
				0xFF, 0x07, 0x00, 0x6F, 0x7F, 0x7F, 0xFF, 0x32,
				0xF7, 0x00, 0x00, 0x00, 0xEF, 0xFF, 0x32, 0x32,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFF, 0xBF, 0xFF, 0xFF, 0xED, 0xED, 0xED,
				0x7B, 0xFF, 0xFF, 0xFF, 0xBF, 0xEF, 0xFF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0x5F, 0x4F, 0x4F, 0x00, 0x53, 0x1F, 0x0B, 0x3E,
				0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xEA, 0x0C, 0xDF, 0x50, 0x40, 0xDF, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x55, 0x03, 0x20,
				0x00, 0x00, 0x00, 0x40, 0x00, 0xE7, 0xFF, 0xFD,
				0x5F, 0x4F, 0x00, 0x54, 0x00, 0x0B, 0xDF, 0x00,
				0xEA, 0x0C, 0x2E, 0x00, 0x4F, 0xDF,
			},
			CRTCVendor: {
				0x56, 0xDD, 0x5E, 0xEA, 0x87, 0x44, 0x8F, 0x55,
				0x0A, 0x8F, 0x55, 0x0A, 0x00, 0x00, 0x18, 0x00,
				0x11, 0x10, 0x0B, 0x0A, 0x0A, 0x0A, 0x0A, 0x00,
			},
		},
	},
	{
		Width: 800, Height: 600, BitsPerPixel: 16, RefreshHz: 60,
		Misc: 0x2B,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x03, 0x0E,
			},
			SeqExtLow: {
				0xFF, 0xBE, 0xEE, 0xFF, 0x00, 0x0E, 0x17, 0x2C,
				0x99, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x30, 0x02, 0x01, 0x01,
			},
			SeqExtMid: {
				0x34, 0x03, 0x20, 0x09, 0xC0, 0x24, 0x24, 0x24,
				0x24, 0x24, 0x24, 0x24, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x38, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x24, 0x24, 0x24,
				0x04, 0x48, 0x83, 0x63, 0x68, 0x72, 0x57, 0x58,
				0x04, 0x55, 0x59, 0x24, 0x24, 0x00, 0x00, 0x24,
				0x01, 0x80, 0x7A, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x74, 0x14, 0x1C, 0x85, 0x35, 0x13,
				0x02, 0x45, 0x30, 0x35, 0x40, 0x20,
			},
			SeqExtHigh: {
				0x00, 0x00, 0x00, 0x6F, 0x7F, 0x7F, 0xFF, 0x24,
				0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x24, 0x24,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFF, 0xBF, 0xFF, 0xFF, 0xED, 0xED, 0xED,
				0x7B, 0xFF, 0xFF, 0xFF, 0xBF, 0xEF, 0xBF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0x7F, 0x63, 0x63, 0x00, 0x68, 0x18, 0x72, 0xF0,
				0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x58, 0x0C, 0x57, 0x64, 0x40, 0x57, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x33, 0x03, 0x20,
				0x00, 0x00, 0x00, 0x40, 0x00, 0xE7, 0xBF, 0xFD,
				0x7F, 0x63, 0x00, 0x69, 0x18, 0x72, 0x57, 0x00,
				0x58, 0x0C, 0xE0, 0x20, 0x63, 0x57,
			},
			CRTCVendor: {
				0x56, 0x4B, 0x5E, 0x55, 0x86, 0x9D, 0x8E, 0xAA,
				0xDB, 0x2A, 0xDF, 0x33, 0x00, 0x00, 0x18, 0x00,
				0x20, 0x1F, 0x1A, 0x19, 0x0F, 0x0F, 0x0F, 0x00,
			},
		},
	},
	{
		Width: 800, Height: 600, BitsPerPixel: 24, RefreshHz: 60,
		Misc: 0x2B,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x03, 0x0E,
			},
			SeqExtLow: {
				0xFF, 0xBE, 0xEE, 0xFF, 0x00, 0x0E, 0x17, 0x2C,
				0x99, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x30, 0x02, 0x01, 0x01,
			},
			SeqExtMid: {
				0x36, 0x03, 0x20, 0x09, 0xC0, 0x36, 0x36, 0x36,
				0x36, 0x36, 0x36, 0x36, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x18, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x36, 0x36, 0x36,
				0x04, 0x48, 0x83, 0x63, 0x68, 0x72, 0x57, 0x58,
				0x04, 0x55, 0x59, 0x36, 0x36, 0x00, 0x00, 0x36,
				0x01, 0x80, 0x7E, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x74, 0x14, 0x1C, 0x85, 0x35, 0x13,
				0x02, 0x45, 0x30, 0x30, 0x40, 0x20,
			},
			SeqExtHigh: {
				0xFF, 0x07, 0x00, 0x6F, 0x7F, 0x7F, 0xFF, 0x36,
				0xF7, 0x00, 0x00, 0x00, 0xEF, 0xFF, 0x36, 0x36,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFF, 0xBF, 0xFF, 0xFF, 0xED, 0xED, 0xED,
				0x7B, 0xFF, 0xFF, 0xFF, 0xBF, 0xEF, 0xBF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0x7F, 0x63, 0x63, 0x00, 0x68, 0x18, 0x72, 0xF0,
				0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x58, 0x0C, 0x57, 0x64, 0x40, 0x57, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x33, 0x03, 0x20,
				0x00, 0x00, 0x00, 0x40, 0x00, 0xE7, 0xBF, 0xFD,
				0x7F, 0x63, 0x00, 0x69, 0x18, 0x72, 0x57, 0x00,
				0x58, 0x0C, 0xE0, 0x20, 0x63, 0x57,
			},
			CRTCVendor: {
				0x56, 0x4B, 0x5E, 0x55, 0x86, 0x9D, 0x8E, 0xAA,
				0xDB, 0x2A, 0xDF, 0x33, 0x00, 0x00, 0x18, 0x00,
				0x20, 0x1F, 0x1A, 0x19, 0x0F, 0x0F, 0x0F, 0x00,
			},
		},
	},
	{
		Width: 800, Height: 600, BitsPerPixel: 32, RefreshHz: 60,
		Misc: 0x2B,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x03, 0x0E,
			},
			SeqExtLow: {
				0xFF, 0xBE, 0xEE, 0xFF, 0x00, 0x0E, 0x17, 0x2C,
				0x99, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x30, 0x02, 0x01, 0x01,
			},
			SeqExtMid: {
				0x34, 0x03, 0x20, 0x09, 0xC0, 0x24, 0x24, 0x24,
				0x24, 0x24, 0x24, 0x24, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x38, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x24, 0x24, 0x24,
				0x04, 0x48, 0x83, 0x63, 0x68, 0x72, 0x57, 0x58,
				0x04, 0x55, 0x59, 0x24, 0x24, 0x00, 0x00, 0x24,
				0x01, 0x80, 0x7A, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x74, 0x14, 0x1C, 0x85, 0x35, 0x13,
				0x02, 0x45, 0x30, 0x35, 0x40, 0x20,
			},
			SeqExtHigh: {
				0x00, 0x00, 0x00, 0x6F, 0x7F, 0x7F, 0xFF, 0x24,
				0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x24, 0x24,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFF, 0xBF, 0xFF, 0xFF, 0xED, 0xED, 0xED,
				0x7B, 0xFF, 0xFF, 0xFF, 0xBF, 0xEF, 0xBF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0x7F, 0x63, 0x63, 0x00, 0x68, 0x18, 0x72, 0xF0,
				0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x58, 0x0C, 0x57, 0x64, 0x40, 0x57, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x33, 0x03, 0x20,
				0x00, 0x00, 0x00, 0x40, 0x00, 0xE7, 0xBF, 0xFD,
				0x7F, 0x63, 0x00, 0x69, 0x18, 0x72, 0x57, 0x00,
				0x58, 0x0C, 0xE0, 0x20, 0x63, 0x57,
			},
			CRTCVendor: {
				0x56, 0x4B, 0x5E, 0x55, 0x86, 0x9D, 0x8E, 0xAA,
				0xDB, 0x2A, 0xDF, 0x33, 0x00, 0x00, 0x18, 0x00,
				0x20, 0x1F, 0x1A, 0x19, 0x0F, 0x0F, 0x0F, 0x00,
			},
		},
	},
	{
		Width: 1024, Height: 600, BitsPerPixel: 16, RefreshHz: 60,
		Misc: 0xEB,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x00, 0x0E,
			},
			SeqExtLow: {
				0xC8, 0x40, 0x14, 0x60, 0x00, 0x0A, 0x17, 0x20,
				0x51, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x30, 0x02, 0x00, 0x01,
			},
			SeqExtMid: {
				0x22, 0x03, 0x24, 0x09, 0xC0, 0x22, 0x22, 0x22,
				0x22, 0x22, 0x22, 0x22, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x18, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x22, 0x22, 0x22,
				0x06, 0x68, 0xA7, 0x7F, 0x83, 0x24, 0xFF, 0x03,
				0x00, 0x60, 0x59, 0x22, 0x22, 0x00, 0x00, 0x22,
				0x01, 0x80, 0x7A, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x16, 0x02, 0x0D, 0x82, 0x09, 0x02,
				0x04, 0x45, 0x3F, 0x30, 0x40, 0x20,
			},
			SeqExtHigh: {
				0xFF, 0x07, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x3A,
				0xF7, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x3A, 0x3A,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFB, 0x9F, 0x01, 0x00, 0xED, 0xED, 0xED,
				0x7B, 0xFB, 0xFF, 0xFF, 0x97, 0xEF, 0xBF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0xA3, 0x7F, 0x7F, 0x00, 0x85, 0x16, 0x24, 0xF5,
				0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x03, 0x09, 0xFF, 0x80, 0x40, 0xFF, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x02, 0x20,
				0x00, 0x00, 0x00, 0x40, 0x00, 0xFF, 0xBF, 0xFF,
				0xA3, 0x7F, 0x00, 0x82, 0x0B, 0x6F, 0x57, 0x00,
				0x5C, 0x0F, 0xE0, 0xE0, 0x7F, 0x57,
			},
			CRTCVendor: {
				0x55, 0xD9, 0x5D, 0xE1, 0x86, 0x1B, 0x8E, 0x26,
				0xDA, 0x8D, 0xDE, 0x94, 0x00, 0x00, 0x18, 0x00,
				0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x15, 0x03,
			},
		},
	},
	{
		Width: 1024, Height: 768, BitsPerPixel: 24, RefreshHz: 60,
		Misc: 0xEB,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x03, 0x0E,
			},
			SeqExtLow: {
				0xF3, 0xB6, 0xC0, 0xDD, 0x00, 0x0E, 0x17, 0x2C,
				0x99, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x30, 0x02, 0x01, 0x01,
			},
			SeqExtMid: {
				0x38, 0x03, 0x20, 0x09, 0xC0, 0x3A, 0x3A, 0x3A,
				0x3A, 0x3A, 0x3A, 0x3A, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x18, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x00, 0x00, 0x3A,
				0x06, 0x68, 0xA7, 0x7F, 0x83, 0x24, 0xFF, 0x03,
				0x00, 0x60, 0x59, 0x3A, 0x3A, 0x00, 0x00, 0x3A,
				0x01, 0x80, 0x7E, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x74, 0x14, 0x3B, 0x0D, 0x09, 0x02,
				0x04, 0x45, 0x30, 0x30, 0x40, 0x20,
			},
			SeqExtHigh: {
				0xFF, 0x07, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x3A,
				0xF7, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x3A, 0x3A,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFB, 0x9F, 0x01, 0x00, 0xED, 0xED, 0xED,
				0x7B, 0xFB, 0xFF, 0xFF, 0x97, 0xEF, 0xBF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0xA3, 0x7F, 0x7F, 0x00, 0x85, 0x16, 0x24, 0xF5,
				0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x03, 0x09, 0xFF, 0x80, 0x40, 0xFF, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x02, 0x20,
				0x00, 0x00, 0x00, 0x40, 0x00, 0xFF, 0xBF, 0xFF,
				0xA3, 0x7F, 0x00, 0x86, 0x15, 0x24, 0xFF, 0x00,
				0x01, 0x07, 0xE5, 0x20, 0x7F, 0xFF,
			},
			CRTCVendor: {
				0x55, 0xD9, 0x5D, 0xE1, 0x86, 0x1B, 0x8E, 0x26,
				0xDA, 0x8D, 0xDE, 0x94, 0x00, 0x00, 0x18, 0x00,
				0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x15, 0x03,
			},
		},
	},
	{
		Width: 1024, Height: 768, BitsPerPixel: 32, RefreshHz: 60,
		Misc: 0xEB,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x03, 0x0E,
			},
			SeqExtLow: {
				0xF3, 0xB6, 0xC0, 0xDD, 0x00, 0x0E, 0x17, 0x2C,
				0x99, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x32, 0x02, 0x01, 0x01,
			},
			SeqExtMid: {
				0x38, 0x03, 0x20, 0x09, 0xC0, 0x3A, 0x3A, 0x3A,
				0x3A, 0x3A, 0x3A, 0x3A, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x18, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x00, 0x00, 0x3A,
				0x06, 0x68, 0xA7, 0x7F, 0x83, 0x24, 0xFF, 0x03,
				0x00, 0x60, 0x59, 0x3A, 0x3A, 0x00, 0x00, 0x3A,
				0x01, 0x80, 0x7E, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x74, 0x14, 0x3B, 0x0D, 0x09, 0x02,
				0x04, 0x45, 0x30, 0x30, 0x40, 0x20,
			},
			SeqExtHigh: {
				0xFF, 0x07, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x3A,
				0xF7, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x3A, 0x3A,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFB, 0x9F, 0x01, 0x00, 0xED, 0xED, 0xED,
				0x7B, 0xFB, 0xFF, 0xFF, 0x97, 0xEF, 0xBF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0xA3, 0x7F, 0x7F, 0x00, 0x85, 0x16, 0x24, 0xF5,
				0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x03, 0x09, 0xFF, 0x80, 0x40, 0xFF, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x02, 0x20,
				0x00, 0x00, 0x00, 0x40, 0x00, 0xFF, 0xBF, 0xFF,
				0xA3, 0x7F, 0x00, 0x86, 0x15, 0x24, 0xFF, 0x00,
				0x01, 0x07, 0xE5, 0x20, 0x7F, 0xFF,
			},
			CRTCVendor: {
				0x55, 0xD9, 0x5D, 0xE1, 0x86, 0x1B, 0x8E, 0x26,
				0xDA, 0x8D, 0xDE, 0x94, 0x00, 0x00, 0x18, 0x00,
				0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x15, 0x03,
			},
		},
	},
	{
		Width: 320, Height: 240, BitsPerPixel: 16, RefreshHz: 60,
		Misc: 0xEB,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x03, 0x0E,
			},
			SeqExtLow: {
				0xF3, 0xB6, 0xC0, 0xDD, 0x00, 0x0E, 0x17, 0x2C,
				0x99, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x32, 0x02, 0x01, 0x01,
			},
			SeqExtMid: {
				0x38, 0x03, 0x20, 0x09, 0xC0, 0x3A, 0x3A, 0x3A,
				0x3A, 0x3A, 0x3A, 0x3A, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x18, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x00, 0x00, 0x3A,
				0x06, 0x68, 0xA7, 0x7F, 0x83, 0x24, 0xFF, 0x03,
				0x00, 0x60, 0x59, 0x3A, 0x3A, 0x00, 0x00, 0x3A,
				0x01, 0x80, 0x7E, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x74, 0x14, 0x08, 0x43, 0x08, 0x43,
				0x04, 0x45, 0x30, 0x30, 0x40, 0x20,
			},
			SeqExtHigh: {
				0xFF, 0x07, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x3A,
				0xF7, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x3A, 0x3A,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFB, 0x9F, 0x01, 0x00, 0xED, 0xED, 0xED,
				0x7B, 0xFB, 0xFF, 0xFF, 0x97, 0xEF, 0xBF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0xA3, 0x7F, 0x7F, 0x00, 0x85, 0x16, 0x24, 0xF5,
				0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x03, 0x09, 0xFF, 0x80, 0x40, 0xFF, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x02, 0x20,
				0x00, 0x00, 0x30, 0x40, 0x00, 0xFF, 0xBF, 0xFF,
				0x2E, 0x27, 0x00, 0x2B, 0x0C, 0x0F, 0xEF, 0x00,
				0xFE, 0x0F, 0x01, 0xC0, 0x27, 0xEF,
			},
			CRTCVendor: {
				0x55, 0xD9, 0x5D, 0xE1, 0x86, 0x1B, 0x8E, 0x26,
				0xDA, 0x8D, 0xDE, 0x94, 0x00, 0x00, 0x18, 0x00,
				0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x15, 0x03,
			},
		},
	},
	{
		Width: 320, Height: 240, BitsPerPixel: 32, RefreshHz: 60,
		Misc: 0xEB,
		Regs: [NumGroups][]byte{
			SeqBase: {
				0x03, 0x01, 0x0F, 0x03, 0x0E,
			},
			SeqExtLow: {
				0xF3, 0xB6, 0xC0, 0xDD, 0x00, 0x0E, 0x17, 0x2C,
				0x99, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC4, 0x32, 0x02, 0x01, 0x01,
			},
			SeqExtMid: {
				0x38, 0x03, 0x20, 0x09, 0xC0, 0x3A, 0x3A, 0x3A,
				0x3A, 0x3A, 0x3A, 0x3A, 0x00, 0x00, 0x03, 0xFF,
				0x00, 0xFC, 0x00, 0x00, 0x20, 0x18, 0x00, 0xFC,
				0x20, 0x0C, 0x44, 0x20, 0x00, 0x00, 0x00, 0x3A,
				0x06, 0x68, 0xA7, 0x7F, 0x83, 0x24, 0xFF, 0x03,
				0x00, 0x60, 0x59, 0x3A, 0x3A, 0x00, 0x00, 0x3A,
				0x01, 0x80, 0x7E, 0x1A, 0x1A, 0x00, 0x00, 0x00,
				0x50, 0x03, 0x74, 0x14, 0x08, 0x43, 0x08, 0x43,
				0x04, 0x45, 0x30, 0x30, 0x40, 0x20,
			},
			SeqExtHigh: {
				0xFF, 0x07, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x3A,
				0xF7, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x3A, 0x3A,
				0x00, 0x00, 0x00, 0x00,
			},
			SeqVendor: {
				0x00, 0xFB, 0x9F, 0x01, 0x00, 0xED, 0xED, 0xED,
				0x7B, 0xFB, 0xFF, 0xFF, 0x97, 0xEF, 0xBF, 0xDF,
			},
			Gfx: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F,
				0xFF,
			},
			Attr: {
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
				0x41, 0x00, 0x0F, 0x00, 0x00,
			},
			CRTCBase: {
				0xA3, 0x7F, 0x7F, 0x00, 0x85, 0x16, 0x24, 0xF5,
				0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x03, 0x09, 0xFF, 0x80, 0x40, 0xFF, 0x00, 0xE3,
				0xFF,
			},
			CRTCExt: {
				0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x02, 0x20,
				0x00, 0x00, 0x30, 0x40, 0x00, 0xFF, 0xBF, 0xFF,
				0x2E, 0x27, 0x00, 0x2B, 0x0C, 0x0F, 0xEF, 0x00,
				0xFE, 0x0F, 0x01, 0xC0, 0x27, 0xEF,
			},
			CRTCVendor: {
				0x55, 0xD9, 0x5D, 0xE1, 0x86, 0x1B, 0x8E, 0x26,
				0xDA, 0x8D, 0xDE, 0x94, 0x00, 0x00, 0x18, 0x00,
				0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x15, 0x03,
			},
		},
	},
}
