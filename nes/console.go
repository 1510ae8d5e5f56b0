package nes

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// dmcStallCycles is the baseline CPU stall for a DMC sample fetch. The
// exact figure is 3-4 depending on cycle alignment; 4 is the accepted
// baseline.
const dmcStallCycles = 4

// Console wires the CPU, PPU, APU, DMA engines, controllers and
// cartridge together and owns the master clock.
//
// Every master tick moves the PPU one dot; every third tick runs one
// CPU cycle, during which the OAM DMA or the DMC's sample fetch may
// steal the bus. The components never talk to each other directly: NMI
// and IRQ delivery, DMA reads and controller latching all flow through
// here, which keeps the simulation deterministic and free of reference
// cycles.
type Console struct {
	cartridge   *Cartridge
	ram         *ram
	cpu         *cpu
	apu         *apu
	ppu         *ppu
	controller1 *controller
	controller2 *controller
	dma         *oamDMA

	bus *bus

	master    uint64
	cpuCycles uint64
	dmcStall  int

	mu     sync.Mutex
	inputs []inputEvent
	resets int

	openFiles []*os.File
}

type inputEvent struct {
	port    int
	button  Button
	pressed bool
	release bool
}

// NewConsole assembles a machine around a loaded cartridge. sampleRate
// is the host audio rate the mixer downsamples to; debug, when non-nil,
// receives a nestest-format trace line per instruction.
func NewConsole(cart *Cartridge, sampleRate float64, debug io.Writer) *Console {
	console := &Console{
		cartridge:   cart,
		ram:         &ram{},
		controller1: &controller{},
		controller2: &controller{},
		dma:         &oamDMA{},
		bus:         &bus{},
	}

	console.ppu = newPPU(cart)
	console.apu = newAPU(sampleRate)
	console.cpu = newCPU(console.bus, debug)
	console.cpu.ppuView = func() (int, int) { return console.ppu.dot, console.ppu.scanline }

	b := console.bus
	b.connect(0x0000, 0x1FFF, 0x07FF, console.ram)
	b.connect(0x2000, 0x3FFF, 0x0007, readWriter{
		read:  func(local uint16) byte { return console.ppu.readPort(0x2000 + local) },
		write: func(local uint16, v byte) { console.ppu.writePort(0x2000+local, v) },
	})
	b.connect(0x4014, 0x4014, 0x0000, readWriter{
		read:  func(uint16) byte { return b.latch },
		write: func(_ uint16, v byte) { console.dma.arm(v, console.cpuCycles&1 == 1) },
	})
	b.connect(0x4016, 0x4016, 0x0000, readWriter{
		read: func(uint16) byte { return console.controller1.read() },
		write: func(_ uint16, v byte) {
			// the strobe line is shared by both pads
			console.controller1.write(v)
			console.controller2.write(v)
		},
	})
	b.connect(0x4017, 0x4017, 0x0000, readWriter{
		read:  func(uint16) byte { return console.controller2.read() },
		write: func(_ uint16, v byte) { console.apu.writePort(0x4017, v) },
	})
	b.connect(0x4000, 0x4015, 0xFFFF, readWriter{
		read: func(local uint16) byte {
			if local+0x4000 == 0x4015 {
				return console.apu.readPort(0x4015)
			}
			return b.latch // the channel registers are write-only
		},
		write: func(local uint16, v byte) { console.apu.writePort(0x4000+local, v) },
	})
	b.connect(0x4020, 0xFFFF, 0xFFFF, cart)

	console.cpu.reset()

	return console
}

// LoadROM parses an iNES stream and builds a console around it.
func LoadROM(rom io.Reader, sampleRate float64) (*Console, error) {
	cart, err := LoadINES(rom)
	if err != nil {
		return nil, err
	}
	return NewConsole(cart, sampleRate, nil), nil
}

// LoadPath builds a console from a ROM file on disk.
func LoadPath(path string, sampleRate float64) (*Console, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nes: unable to open rom: %w", err)
	}
	defer f.Close()

	return LoadROM(f, sampleRate)
}

// SetPC forces the program counter, used by test harnesses that enter
// ROMs at a non-reset address.
func (c *Console) SetPC(pc uint16) {
	c.cpu.setPC(pc)
}

// Reset queues a console reset; it is applied at the start of the next
// CPU cycle so that host-thread calls cannot split a cycle.
func (c *Console) Reset() {
	c.mu.Lock()
	c.resets++
	c.mu.Unlock()
}

// Press queues a button press on controller port 0 or 1.
func (c *Console) Press(port int, button Button) {
	c.queueInput(inputEvent{port: port, button: button, pressed: true})
}

// Release queues a button release on controller port 0 or 1.
func (c *Console) Release(port int, button Button) {
	c.queueInput(inputEvent{port: port, button: button, release: true})
}

func (c *Console) queueInput(ev inputEvent) {
	c.mu.Lock()
	c.inputs = append(c.inputs, ev)
	c.mu.Unlock()
}

// applyHostState drains the queued controller updates and resets.
// Called at the top of every CPU cycle, which is the only point host
// mutations are allowed to land.
func (c *Console) applyHostState() {
	c.mu.Lock()
	inputs := c.inputs
	c.inputs = nil
	resets := c.resets
	c.resets = 0
	c.mu.Unlock()

	for _, ev := range inputs {
		ctrl := c.controller1
		if ev.port == 1 {
			ctrl = c.controller2
		}
		if ev.pressed {
			ctrl.press(ev.button)
		} else if ev.release {
			ctrl.release(ev.button)
		}
	}

	if resets > 0 {
		c.reset()
	}
}

func (c *Console) reset() {
	c.cpu.reset()
	c.apu.reset()
	c.ppu.reset()
	c.dma.remaining = 0
	c.dmcStall = 0
}

// tick advances the master clock one PPU dot and reports whether a CPU
// instruction completed on this tick.
func (c *Console) tick() bool {
	c.ppu.tick()
	if c.ppu.takeNMI() {
		c.cpu.triggerNMI()
	}

	c.master++
	if c.master%3 == 0 {
		return c.clockCPU()
	}
	return false
}

// clockCPU runs one CPU cycle: host input lands, DMA engines get first
// claim on the cycle, the APU advances (possibly demanding a DMC sample
// fetch), the IRQ line is refreshed, and only then may the CPU itself
// move.
func (c *Console) clockCPU() bool {
	c.cpuCycles++
	c.applyHostState()

	stalled := false
	if c.dma.active() {
		c.dma.tick(c.bus, c.ppu)
		stalled = true
	}

	if addr, ok := c.apu.clock(); ok {
		// the DMC steals the bus for its sample byte
		c.apu.dmc.loadSample(c.bus.read(addr))
		c.dmcStall += dmcStallCycles
	}

	c.cpu.setIRQ(c.apu.irqAsserted())

	if c.dmcStall > 0 {
		c.dmcStall--
		stalled = true
	}
	if stalled {
		return false
	}

	return c.cpu.tick()
}

// Step runs master ticks until one CPU instruction retires. Trace and
// test harnesses use it for per-instruction stepping.
func (c *Console) Step() {
	for !c.tick() {
	}
}

// RunFrame runs the machine until the PPU completes the current frame
// and returns the 256x240 RGB framebuffer along with the audio samples
// accumulated since the previous frame boundary.
//
// The returned framebuffer aliases the PPU's working buffer; hosts that
// hold onto it across frames must copy.
func (c *Console) RunFrame() (frame []byte, audio []float32) {
	f := c.ppu.frame
	for c.ppu.frame == f {
		c.tick()
	}
	return c.ppu.buffer, c.apu.mixer.drain()
}

// Buffer exposes the current framebuffer without running the machine.
func (c *Console) Buffer() []byte {
	return c.ppu.buffer
}

// Read performs a CPU bus read. Debugging aid; it shares the open-bus
// latch with the simulation.
func (c *Console) Read(addr uint16) byte {
	return c.bus.read(addr)
}

// Write performs a CPU bus write. Debugging aid.
func (c *Console) Write(addr uint16, v byte) {
	c.bus.write(addr, v)
}

// DrawNametables renders the four nametables into buf, 512x480 RGB.
func (c *Console) DrawNametables(buf []byte) {
	c.ppu.drawNametables(buf)
}

// DrawPatternTables renders both pattern tables into buf, 256x128 RGB,
// colored through the given palette.
func (c *Console) DrawPatternTables(buf []byte, palette byte) {
	c.ppu.drawPatternTables(buf, palette)
}

// StartRecording opens one WAV file per mixer tap in the current
// directory and begins recording.
func (c *Console) StartRecording() error {
	return c.apu.mixer.startRecording(func(name string) (io.WriteSeeker, error) {
		f, err := os.CreateTemp(".", name+"_*.wav")
		if err != nil {
			return nil, err
		}
		c.openFiles = append(c.openFiles, f)
		return f, nil
	})
}

// PauseRecording suspends the WAV taps without closing the files.
func (c *Console) PauseRecording() {
	c.apu.mixer.pauseRecording()
}

// UnpauseRecording resumes suspended WAV taps.
func (c *Console) UnpauseRecording() {
	c.apu.mixer.unpauseRecording()
}

// StopRecording finalizes the WAV headers and stops recording.
func (c *Console) StopRecording() error {
	return c.apu.mixer.stopRecording()
}

// Close stops any recording in progress and closes the files backing it.
func (c *Console) Close() error {
	err := c.StopRecording()

	for _, f := range c.openFiles {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}
	c.openFiles = nil

	return err
}
