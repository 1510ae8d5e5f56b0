package nes

// The frame counter schedule, in CPU cycles. The divider runs at CPU/2
// on hardware; working in whole CPU cycles sidesteps the half-cycle
// bookkeeping.
const (
	frameQuarter1 = 7457
	frameQuarter2 = 14913
	frameQuarter3 = 22371
	frameStep4    = 29829
	frameStep4Len = 29830
	frameStep5    = 37281
	frameStep5Len = 37282
)

// apu is the 2A03's audio half: two pulses, a triangle, a noise channel
// and the DMC, sequenced by the frame counter and flattened by the
// non-linear mixer. It is clocked once per CPU cycle by the
// orchestrator, and raises DMA requests on the DMC's behalf rather than
// touching the CPU bus itself.
type apu struct {
	pulse1   *pulse
	pulse2   *pulse
	triangle *triangle
	noise    *noise
	dmc      *dmc

	cycles uint64

	frameMode    byte // 0 = 4-step, 1 = 5-step
	irqInhibit   bool
	frameCounter uint16
	frameIRQ     bool

	// one-write queue for the delayed $4017 counter reset
	resetDelay int8
	last4017   byte

	mixer *mixer
}

func newAPU(sampleRate float64) *apu {
	return &apu{
		pulse1:     &pulse{channel: 0, sweep: sweep{channel: 0}},
		pulse2:     &pulse{channel: 1, sweep: sweep{channel: 1}},
		triangle:   &triangle{},
		noise:      &noise{lfsr: 1},
		dmc:        &dmc{silence: true, timerPeriod: dmcRateTable[0]},
		resetDelay: -1,
		mixer:      newMixer(sampleRate),
	}
}

func (a *apu) reset() {
	a.writePort(0x4015, 0)
	a.writePort(0x4017, a.last4017)
	a.frameCounter = 0
	a.frameIRQ = false
}

// irqAsserted is the level the orchestrator drives onto the CPU's IRQ
// line: frame IRQ unless inhibited, or the DMC's.
func (a *apu) irqAsserted() bool {
	return (a.frameIRQ && !a.irqInhibit) || a.dmc.irqPending
}

// readPort services 0x4015, the only readable APU register.
//
// IF-D NT21: DMC IRQ, frame IRQ, DMC bytes remaining, then the four
// length-counter states. Reading acknowledges the frame IRQ.
func (a *apu) readPort(addr uint16) byte {
	if addr != 0x4015 {
		return 0
	}

	var ret byte
	if a.pulse1.lengthCounter > 0 {
		ret |= 0x01
	}
	if a.pulse2.lengthCounter > 0 {
		ret |= 0x02
	}
	if a.triangle.lengthCounter > 0 {
		ret |= 0x04
	}
	if a.noise.lengthCounter > 0 {
		ret |= 0x08
	}
	if a.dmc.bytesRemaining > 0 {
		ret |= 0x10
	}
	if a.frameIRQ {
		ret |= 0x40
	}
	if a.dmc.irqPending {
		ret |= 0x80
	}

	a.frameIRQ = false

	return ret
}

func (a *apu) writePort(addr uint16, v byte) {
	switch addr {
	case 0x4000, 0x4001, 0x4002, 0x4003:
		a.pulse1.writePort(addr, v)

	case 0x4004, 0x4005, 0x4006, 0x4007:
		a.pulse2.writePort(addr-0x0004, v)

	case 0x4008, 0x4009, 0x400A, 0x400B:
		a.triangle.writePort(addr, v)

	case 0x400C, 0x400D, 0x400E, 0x400F:
		a.noise.writePort(addr, v)

	case 0x4010, 0x4011, 0x4012, 0x4013:
		a.dmc.writePort(addr, v)

	case 0x4015: // ---D NT21
		a.pulse1.setEnabled(v&0x01 > 0)
		a.pulse2.setEnabled(v&0x02 > 0)
		a.triangle.setEnabled(v&0x04 > 0)
		a.noise.setEnabled(v&0x08 > 0)
		a.dmc.setEnabled(v&0x10 > 0)

	case 0x4017: // MI-- ----
		a.frameMode = v >> 7
		a.irqInhibit = v&0x40 > 0
		if a.irqInhibit {
			a.frameIRQ = false
		}

		// the counter reset lands 3-4 cycles after the write; mode and
		// inhibit apply immediately
		a.resetDelay = 4

		if a.frameMode == 1 {
			a.clockQuarterFrame()
			a.clockHalfFrame()
		}
		a.last4017 = v
	}
}

// clock advances every APU unit by one CPU cycle and reports whether
// the DMC wants a memory read this cycle.
func (a *apu) clock() (dmaAddr uint16, dmaRequest bool) {
	if a.resetDelay > 0 {
		a.resetDelay--
		if a.resetDelay == 0 {
			a.frameCounter = 0
			a.resetDelay = -1
		}
	}

	// pulse and noise timers run at half the CPU rate
	if a.cycles&1 == 1 {
		a.pulse1.clockTimer()
		a.pulse2.clockTimer()
		a.noise.clockTimer()
	}
	a.triangle.clockTimer()
	a.dmc.clockTimer()
	a.cycles++

	a.clockFrameCounter()

	a.mixer.mix(
		a.pulse1.sample(),
		a.pulse2.sample(),
		a.triangle.sample(),
		a.noise.sample(),
		a.dmc.sample(),
	)

	return a.dmc.wantsDMA()
}

func (a *apu) clockFrameCounter() {
	switch a.frameMode {
	case 0:
		switch a.frameCounter {
		case frameQuarter1:
			a.clockQuarterFrame()
		case frameQuarter2:
			a.clockQuarterFrame()
			a.clockHalfFrame()
		case frameQuarter3:
			a.clockQuarterFrame()
		case frameStep4:
			a.clockQuarterFrame()
			a.clockHalfFrame()
			if !a.irqInhibit {
				a.frameIRQ = true
			}
		}

		a.frameCounter++
		if a.frameCounter == frameStep4Len {
			a.frameCounter = 0
		}

	case 1:
		switch a.frameCounter {
		case frameQuarter1:
			a.clockQuarterFrame()
		case frameQuarter2:
			a.clockQuarterFrame()
			a.clockHalfFrame()
		case frameQuarter3:
			a.clockQuarterFrame()
		case frameStep5:
			a.clockQuarterFrame()
			a.clockHalfFrame()
		}

		a.frameCounter++
		if a.frameCounter == frameStep5Len {
			a.frameCounter = 0
		}
	}
}

// clockQuarterFrame drives the envelopes and the triangle's linear
// counter.
func (a *apu) clockQuarterFrame() {
	a.pulse1.envelope.clock()
	a.pulse2.envelope.clock()
	a.triangle.clockLinear()
	a.noise.envelope.clock()
}

// clockHalfFrame drives the length counters and the sweeps.
func (a *apu) clockHalfFrame() {
	a.pulse1.clockSweep()
	a.pulse1.clockLength()

	a.pulse2.clockSweep()
	a.pulse2.clockLength()

	a.triangle.clockLength()

	a.noise.clockLength()
}
