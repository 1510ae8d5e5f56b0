package nes

// device is the capability set every bus-mapped component implements.
// Addresses handed to a device are local: the bus subtracts the mapping
// base and applies the mapping mask before delegating.
type device interface {
	ReadByte(addr uint16) byte
	WriteByte(addr uint16, v byte)
}

// readWriter adapts a pair of funcs into a device. Used by the console to
// wire ports whose read and write sides belong to different components
// ($4017 reads the second controller but writes the APU frame counter).
type readWriter struct {
	read  func(addr uint16) byte
	write func(addr uint16, v byte)
}

func (rw readWriter) ReadByte(addr uint16) byte { return rw.read(addr) }

func (rw readWriter) WriteByte(addr uint16, v byte) { rw.write(addr, v) }

type mapping struct {
	start, end uint16
	mask       uint16
	dev        device
}

// bus decodes addresses into an ordered list of device mappings.
//
// A mask narrower than the mapped range mirrors the device across it: the
// 2KiB internal RAM sits at 0x0000-0x1FFF with mask 0x07FF (four images),
// the eight PPU ports at 0x2000-0x3FFF with mask 0x0007.
//
// The first mapping that covers an address wins, so high-traffic ranges
// should be registered first. Every transferred byte is remembered in the
// open-bus latch; reads from unmapped addresses return the latch and
// unmapped writes are dropped, which is how the real data bus behaves
// thanks to residual capacitance.
type bus struct {
	mappings []mapping
	latch    byte
}

func (b *bus) connect(start, end, mask uint16, dev device) {
	b.mappings = append(b.mappings, mapping{start: start, end: end, mask: mask, dev: dev})
}

func (b *bus) read(addr uint16) byte {
	for _, m := range b.mappings {
		if addr >= m.start && addr <= m.end {
			v := m.dev.ReadByte((addr - m.start) & m.mask)
			b.latch = v
			return v
		}
	}
	return b.latch
}

func (b *bus) write(addr uint16, v byte) {
	b.latch = v
	for _, m := range b.mappings {
		if addr >= m.start && addr <= m.end {
			m.dev.WriteByte((addr-m.start)&m.mask, v)
			return
		}
	}
}

func (b *bus) readAddress(addr uint16) uint16 {
	lo := b.read(addr)
	hi := b.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}
