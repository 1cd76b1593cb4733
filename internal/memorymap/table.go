package memorymap

// Values follow the memory map documented at https://n64brew.dev/wiki/Memory_map

var segments = []Entry{
	{0x00000000, 0x7FFFFFFF, "U", "KUSEG", Segment},
	{0x80000000, 0x9FFFFFFF, "0", "KSEG0", Segment},
	{0xA0000000, 0xBFFFFFFF, "1", "KSEG1", Segment},
	{0xC0000000, 0xDFFFFFFF, "S", "KSSEG", Segment},
	{0xE0000000, 0xFFFFFFFF, "3", "KSEG3", Segment},
}

var regions = []Entry{
	{0x00000000, 0x03FFFFFF, "R", "RDRAM", Region},
	{0x04000000, 0x049FFFFF, "G", "RCP", Region},
	{0x05000000, 0x1FBFFFFF, "P", "PI 1/2", Region},
	{0x1FC00000, 0x1FCFFFFF, "S", "SI", Region},
	{0x1FD00000, 0x7FFFFFFF, "B", "PI 2/2", Region},
	{0x80000000, 0xFFFFFFFF, "U", "Unmapped", Region},
}

var subregions = []Entry{
	// RDRAM
	{0x00000000, 0x03EFFFFF, "RDRM", "RDRAM memory-space", Subregion},
	{0x03F00000, 0x03F7FFFF, "RDRR", "RDRAM registers", Subregion},
	{0x03F80000, 0x03FFFFFF, "RDRB", "RDRAM broadcast registers", Subregion},

	// RCP
	{0x04000000, 0x04000FFF, "RSPD", "RSP Data Memory", Subregion},
	{0x04001000, 0x04001FFF, "RSPI", "RSP Instruction Memory", Subregion},
	{0x04002000, 0x0403FFFF, "RSPM", "RSP DMEM/IMEM Mirrors", Subregion},
	{0x04040000, 0x040BFFFF, "RSPR", "RSP Registers", Subregion},
	{0x040C0000, 0x040FFFFF, "RCPU", "Unmapped/fatal", Subregion},
	{0x04100000, 0x041FFFFF, "RDPC", "RDP Command Registers", Subregion},
	{0x04200000, 0x042FFFFF, "RDPS", "RDP Span Registers", Subregion},
	{0x04300000, 0x043FFFFF, "InMI", "MIPS Interface", Subregion},
	{0x04400000, 0x044FFFFF, "InVI", "Video Interface", Subregion},
	{0x04500000, 0x045FFFFF, "InAI", "Audio Interface", Subregion},
	{0x04600000, 0x046FFFFF, "InPI", "Peripheral Interface", Subregion},
	{0x04700000, 0x047FFFFF, "InRI", "RDRAM Interface", Subregion},
	{0x04800000, 0x048FFFFF, "InSI", "Serial Interface", Subregion},
	{0x04900000, 0x04FFFFFF, "RCPu", "Unmapped/fatal", Subregion},

	// PI
	{0x05000000, 0x05FFFFFF, "NDDR", "N64DD Registers", Subregion},
	{0x06000000, 0x07FFFFFF, "NDDI", "N64DD IPL ROM", Subregion},
	{0x08000000, 0x0FFFFFFF, "CSRM", "Cartridge SRAM", Subregion},
	{0x10000000, 0x1FBFFFFF, "CROM", "Cartridge ROM", Subregion},

	// SI. PIF ROM and PIF RAM share a code in trace labels
	{0x1FC00000, 0x1FC007BF, "PIFR", "PIF ROM", Subregion},
	{0x1FC007C0, 0x1FC007FF, "PIFR", "PIF RAM", Subregion},
	{0x1FC00800, 0x1FCFFFFF, "RSVD", "Reserved", Subregion},

	// PI, second half
	{0x1FD00000, 0x1FFFFFFF, "UPB1", "Unused / PI BUS Domain 1", Subregion},
	{0x20000000, 0x7FFFFFFF, "UCPA", "Unused / PI BUS Domain 1 [CPU Accessible]", Subregion},

	// no device
	{0x80000000, 0xFFFFFFFF, "UNMP", "Unmapped/fatal", Subregion},
}

// Segments returns the CPU segments in declaration order.
func Segments() []Entry {
	return clone(segments)
}

// Regions returns the bus regions in declaration order.
func Regions() []Entry {
	return clone(regions)
}

// Subregions returns the device and memory subregions in declaration order.
func Subregions() []Entry {
	return clone(subregions)
}

func clone(e []Entry) []Entry {
	c := make([]Entry, len(e))
	copy(c, e)
	return c
}
