package variant

import "dsipanel/internal/dsi"

// Vendor init sequences. Both were supplied by the panel vendors without
// documentation; each 0xFF 0x30 / 0xFF 0x52 / 0xFF n triple selects register
// page n for the writes that follow.

// nv3051dInit is shared by the RG351V, RG353P/M/V/VS and RK2023 panels.
var nv3051dInit = dsi.Sequence{
	// page 1
	dsi.Write(0xFF, 0x30),
	dsi.Write(0xFF, 0x52),
	dsi.Write(0xFF, 0x01),
	dsi.Write(0xE3, 0x00),
	dsi.Write(0x03, 0x40),
	dsi.Write(0x04, 0x00),
	dsi.Write(0x05, 0x03),
	dsi.Write(0x24, 0x12),
	dsi.Write(0x25, 0x1E),
	dsi.Write(0x26, 0x28),
	dsi.Write(0x27, 0x52),
	dsi.Write(0x28, 0x57),
	dsi.Write(0x29, 0x01),
	dsi.Write(0x2A, 0xDF),
	dsi.Write(0x38, 0x9C),
	dsi.Write(0x39, 0xA7),
	dsi.Write(0x3A, 0x53),
	dsi.Write(0x44, 0x00),
	dsi.Write(0x49, 0x3C),
	dsi.Write(0x59, 0xFE),
	dsi.Write(0x5C, 0x00),
	dsi.Write(0x91, 0x77),
	dsi.Write(0x92, 0x77),
	dsi.Write(0xA0, 0x55),
	dsi.Write(0xA1, 0x50),
	dsi.Write(0xA4, 0x9C),
	dsi.Write(0xA7, 0x02),
	dsi.Write(0xA8, 0x01),
	dsi.Write(0xA9, 0x01),
	dsi.Write(0xAA, 0xFC),
	dsi.Write(0xAB, 0x28),
	dsi.Write(0xAC, 0x06),
	dsi.Write(0xAD, 0x06),
	dsi.Write(0xAE, 0x06),
	dsi.Write(0xAF, 0x03),
	dsi.Write(0xB0, 0x08),
	dsi.Write(0xB1, 0x26),
	dsi.Write(0xB2, 0x28),
	dsi.Write(0xB3, 0x28),
	dsi.Write(0xB4, 0x33),
	dsi.Write(0xB5, 0x08),
	dsi.Write(0xB6, 0x26),
	dsi.Write(0xB7, 0x08),
	dsi.Write(0xB8, 0x26),

	// page 2
	dsi.Write(0xFF, 0x30),
	dsi.Write(0xFF, 0x52),
	dsi.Write(0xFF, 0x02),
	dsi.Write(0xB1, 0x0E),
	dsi.Write(0xD1, 0x0E),
	dsi.Write(0xB4, 0x29),
	dsi.Write(0xD4, 0x2B),
	dsi.Write(0xB2, 0x0C),
	dsi.Write(0xD2, 0x0A),
	dsi.Write(0xB3, 0x28),
	dsi.Write(0xD3, 0x28),
	dsi.Write(0xB6, 0x11),
	dsi.Write(0xD6, 0x0D),
	dsi.Write(0xB7, 0x32),
	dsi.Write(0xD7, 0x30),
	dsi.Write(0xC1, 0x04),
	dsi.Write(0xE1, 0x06),
	dsi.Write(0xB8, 0x0A),
	dsi.Write(0xD8, 0x0A),
	dsi.Write(0xB9, 0x01),
	dsi.Write(0xD9, 0x01),
	dsi.Write(0xBD, 0x13),
	dsi.Write(0xDD, 0x13),
	dsi.Write(0xBC, 0x11),
	dsi.Write(0xDC, 0x11),
	dsi.Write(0xBB, 0x0F),
	dsi.Write(0xDB, 0x0F),
	dsi.Write(0xBA, 0x0F),
	dsi.Write(0xDA, 0x0F),
	dsi.Write(0xBE, 0x18),
	dsi.Write(0xDE, 0x18),
	dsi.Write(0xBF, 0x0F),
	dsi.Write(0xDF, 0x0F),
	dsi.Write(0xC0, 0x17),
	dsi.Write(0xE0, 0x17),
	dsi.Write(0xB5, 0x3B),
	dsi.Write(0xD5, 0x3C),
	dsi.Write(0xB0, 0x0B),
	dsi.Write(0xD0, 0x0C),

	// page 3
	dsi.Write(0xFF, 0x30),
	dsi.Write(0xFF, 0x52),
	dsi.Write(0xFF, 0x03),
	dsi.Write(0x00, 0x2A),
	dsi.Write(0x01, 0x2A),
	dsi.Write(0x02, 0x2A),
	dsi.Write(0x03, 0x2A),
	dsi.Write(0x04, 0x61),
	dsi.Write(0x05, 0x80),
	dsi.Write(0x06, 0xC7),
	dsi.Write(0x07, 0x01),
	dsi.Write(0x08, 0x82),
	dsi.Write(0x09, 0x83),
	dsi.Write(0x30, 0x2A),
	dsi.Write(0x31, 0x2A),
	dsi.Write(0x32, 0x2A),
	dsi.Write(0x33, 0x2A),
	dsi.Write(0x34, 0x61),
	dsi.Write(0x35, 0xC5),
	dsi.Write(0x36, 0x80),
	dsi.Write(0x37, 0x23),
	dsi.Write(0x40, 0x82),
	dsi.Write(0x41, 0x83),
	dsi.Write(0x42, 0x80),
	dsi.Write(0x43, 0x81),
	dsi.Write(0x44, 0x11),
	dsi.Write(0x45, 0xF2),
	dsi.Write(0x46, 0xF1),
	dsi.Write(0x47, 0x11),
	dsi.Write(0x48, 0xF4),
	dsi.Write(0x49, 0xF3),
	dsi.Write(0x50, 0x02),
	dsi.Write(0x51, 0x01),
	dsi.Write(0x52, 0x04),
	dsi.Write(0x53, 0x03),
	dsi.Write(0x54, 0x11),
	dsi.Write(0x55, 0xF6),
	dsi.Write(0x56, 0xF5),
	dsi.Write(0x57, 0x11),
	dsi.Write(0x58, 0xF8),
	dsi.Write(0x59, 0xF7),
	dsi.Write(0x7E, 0x02),
	dsi.Write(0x7F, 0x80),
	dsi.Write(0xE0, 0x5A),
	dsi.Write(0xB1, 0x00),
	dsi.Write(0xB4, 0x0E),
	dsi.Write(0xB5, 0x0F),
	dsi.Write(0xB6, 0x04),
	dsi.Write(0xB7, 0x07),
	dsi.Write(0xB8, 0x06),
	dsi.Write(0xB9, 0x05),
	dsi.Write(0xBA, 0x0F),
	dsi.Write(0xC7, 0x00),
	dsi.Write(0xCA, 0x0E),
	dsi.Write(0xCB, 0x0F),
	dsi.Write(0xCC, 0x04),
	dsi.Write(0xCD, 0x07),
	dsi.Write(0xCE, 0x06),
	dsi.Write(0xCF, 0x05),
	dsi.Write(0xD0, 0x0F),
	dsi.Write(0x81, 0x0F),
	dsi.Write(0x84, 0x0E),
	dsi.Write(0x85, 0x0F),
	dsi.Write(0x86, 0x07),
	dsi.Write(0x87, 0x04),
	dsi.Write(0x88, 0x05),
	dsi.Write(0x89, 0x06),
	dsi.Write(0x8A, 0x00),
	dsi.Write(0x97, 0x0F),
	dsi.Write(0x9A, 0x0E),
	dsi.Write(0x9B, 0x0F),
	dsi.Write(0x9C, 0x07),
	dsi.Write(0x9D, 0x04),
	dsi.Write(0x9E, 0x05),
	dsi.Write(0x9F, 0x06),
	dsi.Write(0xA0, 0x00),

	// page 2
	dsi.Write(0xFF, 0x30),
	dsi.Write(0xFF, 0x52),
	dsi.Write(0xFF, 0x02),
	dsi.Write(0x01, 0x01),
	dsi.Write(0x02, 0xDA),
	dsi.Write(0x03, 0xBA),
	dsi.Write(0x04, 0xA8),
	dsi.Write(0x05, 0x9A),
	dsi.Write(0x06, 0x70),
	dsi.Write(0x07, 0xFF),
	dsi.Write(0x08, 0x91),
	dsi.Write(0x09, 0x90),
	dsi.Write(0x0A, 0xFF),
	dsi.Write(0x0B, 0x8F),
	dsi.Write(0x0C, 0x60),
	dsi.Write(0x0D, 0x58),
	dsi.Write(0x0E, 0x48),
	dsi.Write(0x0F, 0x38),
	dsi.Write(0x10, 0x2B),

	// page 0
	dsi.Write(0xFF, 0x30),
	dsi.Write(0xFF, 0x52),
	dsi.Write(0xFF, 0x00),
	dsi.Write(0x36, 0x02),
	dsi.Write(0x3A, 0x70),
}

// r36sInit programs the R36S panel. It ends by issuing sleep-out and
// display-on itself, both as writes and as bare commands.
var r36sInit = dsi.Sequence{
	// page 1
	dsi.Write(0xFF, 0x30),
	dsi.Write(0xFF, 0x52),
	dsi.Write(0xFF, 0x01),
	dsi.Write(0xE3, 0x00),
	dsi.Write(0x25, 0x10),
	dsi.Write(0x28, 0x6F),
	dsi.Write(0x29, 0x01),
	dsi.Write(0x2A, 0xDF),
	dsi.Write(0x2C, 0x22),
	dsi.Write(0xC3, 0x0F),
	dsi.Write(0x37, 0x9C),
	dsi.Write(0x38, 0xA7),
	dsi.Write(0x39, 0x41),
	dsi.Write(0x80, 0x20),
	dsi.Write(0x91, 0x67),
	dsi.Write(0x92, 0x67),
	dsi.Write(0xA0, 0x55),
	dsi.Write(0xA1, 0x50),
	dsi.Write(0xA3, 0x58),
	dsi.Write(0xA4, 0x9C),
	dsi.Write(0xA7, 0x02),
	dsi.Write(0xA8, 0x01),
	dsi.Write(0xA9, 0x21),
	dsi.Write(0xAA, 0xFC),
	dsi.Write(0xAB, 0x28),
	dsi.Write(0xAC, 0x06),
	dsi.Write(0xAD, 0x06),
	dsi.Write(0xAE, 0x06),
	dsi.Write(0xAF, 0x03),
	dsi.Write(0xB0, 0x08),
	dsi.Write(0xB1, 0x26),
	dsi.Write(0xB2, 0x28),
	dsi.Write(0xB3, 0x28),
	dsi.Write(0xB4, 0x03),
	dsi.Write(0xB5, 0x08),
	dsi.Write(0xB6, 0x26),
	dsi.Write(0xB7, 0x08),
	dsi.Write(0xB8, 0x26),
	dsi.Write(0x2C, 0x22),
	dsi.Write(0x5C, 0x40),
	dsi.Write(0xC0, 0x00),
	dsi.Write(0xC1, 0x00),
	dsi.Write(0xC2, 0x00),

	// page 2
	dsi.Write(0xFF, 0x30),
	dsi.Write(0xFF, 0x52),
	dsi.Write(0xFF, 0x02),
	dsi.Write(0xB0, 0x02),
	dsi.Write(0xD0, 0x02),
	dsi.Write(0xB1, 0x0F),
	dsi.Write(0xD1, 0x10),
	dsi.Write(0xB2, 0x11),
	dsi.Write(0xD2, 0x12),
	dsi.Write(0xB3, 0x32),
	dsi.Write(0xD3, 0x33),
	dsi.Write(0xB4, 0x36),
	dsi.Write(0xD4, 0x36),
	dsi.Write(0xB5, 0x3C),
	dsi.Write(0xD5, 0x3C),
	dsi.Write(0xB6, 0x20),
	dsi.Write(0xD6, 0x20),
	dsi.Write(0xB7, 0x3E),
	dsi.Write(0xD7, 0x3E),
	dsi.Write(0xB8, 0x0E),
	dsi.Write(0xD8, 0x0D),
	dsi.Write(0xB9, 0x05),
	dsi.Write(0xD9, 0x05),
	dsi.Write(0xBA, 0x11),
	dsi.Write(0xDA, 0x12),
	dsi.Write(0xBB, 0x11),
	dsi.Write(0xDB, 0x11),
	dsi.Write(0xBC, 0x13),
	dsi.Write(0xDC, 0x14),
	dsi.Write(0xBD, 0x14),
	dsi.Write(0xDD, 0x14),
	dsi.Write(0xBE, 0x16),
	dsi.Write(0xDE, 0x18),
	dsi.Write(0xBF, 0x0E),
	dsi.Write(0xDF, 0x0F),
	dsi.Write(0xC0, 0x17),
	dsi.Write(0xE0, 0x17),
	dsi.Write(0xC1, 0x07),
	dsi.Write(0xE1, 0x08),

	// page 3
	dsi.Write(0xFF, 0x30),
	dsi.Write(0xFF, 0x52),
	dsi.Write(0xFF, 0x03),
	dsi.Write(0x08, 0x8A),
	dsi.Write(0x09, 0x8B),
	dsi.Write(0x30, 0x00),
	dsi.Write(0x31, 0x00),
	dsi.Write(0x32, 0x00),
	dsi.Write(0x33, 0x00),
	dsi.Write(0x34, 0x61),
	dsi.Write(0x35, 0xD4),
	dsi.Write(0x36, 0x24),
	dsi.Write(0x37, 0x03),
	dsi.Write(0x40, 0x86),
	dsi.Write(0x41, 0x87),
	dsi.Write(0x42, 0x84),
	dsi.Write(0x43, 0x85),
	dsi.Write(0x44, 0x11),
	dsi.Write(0x45, 0xDE),
	dsi.Write(0x46, 0xDD),
	dsi.Write(0x47, 0x11),
	dsi.Write(0x48, 0xE0),
	dsi.Write(0x49, 0xDF),
	dsi.Write(0x50, 0x82),
	dsi.Write(0x51, 0x83),
	dsi.Write(0x52, 0x80),
	dsi.Write(0x53, 0x81),
	dsi.Write(0x54, 0x11),
	dsi.Write(0x55, 0xE2),
	dsi.Write(0x56, 0xE1),
	dsi.Write(0x57, 0x11),
	dsi.Write(0x58, 0xE4),
	dsi.Write(0x59, 0xE3),
	dsi.Write(0x82, 0x0F),
	dsi.Write(0x83, 0x0F),
	dsi.Write(0x84, 0x00),
	dsi.Write(0x85, 0x0F),
	dsi.Write(0x86, 0x0F),
	dsi.Write(0x87, 0x0E),
	dsi.Write(0x88, 0x0E),
	dsi.Write(0x89, 0x06),
	dsi.Write(0x8A, 0x06),
	dsi.Write(0x8B, 0x07),
	dsi.Write(0x8C, 0x07),
	dsi.Write(0x8D, 0x04),
	dsi.Write(0x8E, 0x04),
	dsi.Write(0x8F, 0x05),
	dsi.Write(0x90, 0x05),
	dsi.Write(0x98, 0x0F),
	dsi.Write(0x99, 0x0F),
	dsi.Write(0x9A, 0x00),
	dsi.Write(0x9B, 0x0F),
	dsi.Write(0x9C, 0x0F),
	dsi.Write(0x9D, 0x0E),
	dsi.Write(0x9E, 0x0E),
	dsi.Write(0x9F, 0x06),
	dsi.Write(0xA0, 0x06),
	dsi.Write(0xA1, 0x07),
	dsi.Write(0xA2, 0x07),
	dsi.Write(0xA3, 0x04),
	dsi.Write(0xA4, 0x04),
	dsi.Write(0xA5, 0x05),
	dsi.Write(0xA6, 0x05),
	dsi.Write(0xE0, 0x02),
	dsi.Write(0xE1, 0x52),

	// page 0
	dsi.Write(0xFF, 0x30),
	dsi.Write(0xFF, 0x52),
	dsi.Write(0xFF, 0x00),
	dsi.Write(0x36, 0x02),
	dsi.Write(0x11, 0x00),
	dsi.Write(0x29, 0x00),
	dsi.Bare(0x11),
	dsi.Bare(0x29),
}
