package nes

const ramSize = 2048

// ram is the console's 2KiB work RAM. The bus mapping supplies the
// mirroring, so indices arriving here are already in range.
type ram struct {
	data [ramSize]byte
}

func (r *ram) ReadByte(addr uint16) byte { return r.data[addr] }

func (r *ram) WriteByte(addr uint16, v byte) { r.data[addr] = v }
