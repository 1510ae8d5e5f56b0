package nes

import "testing"

func TestTriangleSequence(t *testing.T) {
	a := newAPU(44100)

	a.writePort(0x4015, 0x04)       // enable triangle
	a.writePort(0x4008, 0x7F)       // control clear, linear load 127
	a.writePort(0x400A, 0x10)       // timer lo
	a.writePort(0x400B, 0x08)       // length index 1, timer hi 0
	a.triangle.clockLinear()        // linear counter picks up the reload
	period := a.triangle.timerPeriod

	if period != 0x10 {
		t.Fatalf("period = %04X, want 0010", period)
	}
	if a.triangle.lengthCounter != 254 {
		t.Fatalf("length = %v, want 254", a.triangle.lengthCounter)
	}

	want := []byte{
		15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	}
	for i, w := range want {
		if got := a.triangle.sample(); got != w {
			t.Fatalf("step %d: sample = %v, want %v", i, got, w)
		}
		for c := uint16(0); c <= period; c++ {
			a.triangle.clockTimer()
		}
	}
}

func TestTriangleUltrasonicMute(t *testing.T) {
	a := newAPU(44100)
	a.writePort(0x4015, 0x04)
	a.writePort(0x4008, 0x7F)
	a.writePort(0x400A, 0x01) // period 1 < 2
	a.writePort(0x400B, 0x08)
	a.triangle.clockLinear()

	if got := a.triangle.sample(); got != 0 {
		t.Fatalf("sample = %v, want 0 for ultrasonic period", got)
	}
}

func TestLengthTableLoads(t *testing.T) {
	a := newAPU(44100)
	a.writePort(0x4015, 0x01) // enable pulse 1

	a.writePort(0x4003, 0x08) // index 1
	if got := a.pulse1.lengthCounter; got != 254 {
		t.Fatalf("length = %v, want 254", got)
	}

	a.writePort(0x4003, 0x18) // index 3
	if got := a.pulse1.lengthCounter; got != 2 {
		t.Fatalf("length = %v, want 2", got)
	}
}

func TestLengthCounterDisabledChannelIgnoresLoads(t *testing.T) {
	a := newAPU(44100)

	a.writePort(0x4003, 0x08)
	if got := a.pulse1.lengthCounter; got != 0 {
		t.Fatalf("length = %v, disabled channel must not load", got)
	}

	// enabling later does not auto-load either
	a.writePort(0x4015, 0x01)
	if got := a.pulse1.lengthCounter; got != 0 {
		t.Fatalf("length = %v after enable, want 0", got)
	}

	// and disabling zeroes immediately
	a.writePort(0x4003, 0x08)
	a.writePort(0x4015, 0x00)
	if got := a.pulse1.lengthCounter; got != 0 {
		t.Fatalf("length = %v after disable, want 0", got)
	}
}

func TestNoiseLFSRLongModePeriod(t *testing.T) {
	n := &noise{lfsr: 1}

	seen := n.lfsr
	period := 0
	for {
		var feedback uint16
		feedback = n.lfsr&1 ^ n.lfsr>>1&1
		n.lfsr = n.lfsr>>1 | feedback<<14
		period++

		if n.lfsr == 0 {
			t.Fatalf("lfsr reached 0 after %d shifts", period)
		}
		if n.lfsr == seen {
			break
		}
		if period > 40000 {
			t.Fatalf("no cycle after %d shifts", period)
		}
	}

	if period != 32767 {
		t.Fatalf("lfsr period = %d, want 32767", period)
	}
}

func TestNoiseNeverZero(t *testing.T) {
	a := newAPU(44100)
	a.writePort(0x400E, 0x00) // fastest period, long mode

	for i := 0; i < 100000; i++ {
		a.noise.clockTimer()
		if a.noise.lfsr == 0 {
			t.Fatalf("lfsr hit 0 at clock %d", i)
		}
	}
}

func TestEnvelopeDecay(t *testing.T) {
	e := &envelope{v: 0} // divider period 0: decay every quarter clock

	e.start = true
	e.clock()
	if e.decay != 15 {
		t.Fatalf("decay = %v after start, want 15", e.decay)
	}

	for i := 14; i >= 0; i-- {
		e.clock()
		if e.decay != byte(i) {
			t.Fatalf("decay = %v, want %v", e.decay, i)
		}
	}

	// saturates at 0 without loop
	e.clock()
	if e.decay != 0 {
		t.Fatalf("decay = %v, want to stay 0", e.decay)
	}

	// wraps with loop
	e.loop = true
	e.clock()
	if e.decay != 15 {
		t.Fatalf("decay = %v, want loop back to 15", e.decay)
	}
}

func TestEnvelopeConstantVolume(t *testing.T) {
	e := &envelope{constant: true, v: 9, decay: 3}
	if got := e.output(); got != 9 {
		t.Fatalf("output = %v, want the constant volume 9", got)
	}

	e.constant = false
	if got := e.output(); got != 3 {
		t.Fatalf("output = %v, want the decay level 3", got)
	}
}

func TestSweepMuting(t *testing.T) {
	s := &sweep{}

	// period below 8 mutes regardless of enable
	if !s.muting(7) {
		t.Errorf("period 7 should mute")
	}
	if s.muting(8) {
		t.Errorf("period 8 should not mute")
	}

	// a target past 0x7FF mutes
	s.shift = 1
	if !s.muting(0x600) { // 0x600 + 0x300 = 0x900
		t.Errorf("overflowing target should mute")
	}

	// negate can't overflow upward
	s.negate = true
	if s.muting(0x600) {
		t.Errorf("negated sweep should not mute at 0x600")
	}
}

func TestSweepNegateComplement(t *testing.T) {
	// pulse 1 uses ones' complement, pulse 2 twos' complement
	p1 := &sweep{channel: 0, negate: true, shift: 2}
	p2 := &sweep{channel: 1, negate: true, shift: 2}

	// change = 0x100 >> 2 = 0x40
	if got := p1.target(0x100); got != 0x100-0x40-1 {
		t.Errorf("pulse 1 target = %04X, want %04X", got, 0x100-0x40-1)
	}
	if got := p2.target(0x100); got != 0x100-0x40 {
		t.Errorf("pulse 2 target = %04X, want %04X", got, 0x100-0x40)
	}
}

func TestSweepMutedChannelSilent(t *testing.T) {
	a := newAPU(44100)
	a.writePort(0x4015, 0x01)
	a.writePort(0x4000, 0xBF) // duty 2, constant volume 15
	a.writePort(0x4002, 0x04) // period 4 < 8: sweep mutes
	a.writePort(0x4003, 0x08)

	// walk the duty sequencer through all positions; output stays 0
	for i := 0; i < 16; i++ {
		if got := a.pulse1.sample(); got != 0 {
			t.Fatalf("sample = %v, want muted 0", got)
		}
		a.pulse1.clockTimer()
	}
}

func TestFrameIRQTiming(t *testing.T) {
	a := newAPU(44100)

	// default: 4-step, inhibit clear
	for i := 0; i < frameStep4; i++ {
		a.clock()
		if a.frameIRQ {
			t.Fatalf("frame IRQ fired early, at cycle %d", i)
		}
	}
	a.clock() // processes counter value 29829
	if !a.frameIRQ {
		t.Fatalf("frame IRQ did not fire at cycle %d", frameStep4)
	}
	if !a.irqAsserted() {
		t.Fatalf("irq line not asserted")
	}
}

func TestFrameIRQInhibited(t *testing.T) {
	a := newAPU(44100)
	a.writePort(0x4017, 0x40) // inhibit

	for i := 0; i < frameStep4Len*2; i++ {
		a.clock()
	}
	if a.frameIRQ {
		t.Fatalf("frame IRQ fired with inhibit set")
	}
}

func TestFiveStepModeNoIRQ(t *testing.T) {
	a := newAPU(44100)
	a.writePort(0x4017, 0x80) // 5-step

	for i := 0; i < frameStep5Len*2; i++ {
		a.clock()
	}
	if a.frameIRQ {
		t.Fatalf("frame IRQ fired in 5-step mode")
	}
}

func TestFiveStepModeImmediateClock(t *testing.T) {
	a := newAPU(44100)
	a.writePort(0x4015, 0x04)
	a.writePort(0x4008, 0x7F)
	a.writePort(0x400B, 0x08)

	// writing mode 5 generates an immediate quarter+half clock, which
	// reloads the linear counter
	a.writePort(0x4017, 0x80)
	if a.triangle.linear == 0 {
		t.Fatalf("linear counter not reloaded by the immediate clock")
	}
}

func TestStatusRegisterRead(t *testing.T) {
	a := newAPU(44100)

	a.writePort(0x4015, 0x0F)
	a.writePort(0x4003, 0x08)
	a.writePort(0x400B, 0x08)

	got := a.readPort(0x4015)
	if got&0x01 == 0 {
		t.Errorf("status %02X missing pulse 1 length bit", got)
	}
	if got&0x04 == 0 {
		t.Errorf("status %02X missing triangle length bit", got)
	}
	if got&0x02 != 0 {
		t.Errorf("status %02X has pulse 2 bit with empty length", got)
	}

	// reading acknowledges the frame IRQ
	a.frameIRQ = true
	got = a.readPort(0x4015)
	if got&0x40 == 0 {
		t.Fatalf("status %02X missing frame IRQ bit", got)
	}
	if a.frameIRQ {
		t.Fatalf("frame IRQ not cleared by the read")
	}
}

func TestDMCOutputSaturation(t *testing.T) {
	d := &dmc{timerPeriod: dmcRateTable[0]}

	d.output = 126
	d.silence = false
	d.sampleBuffer = 0xFF // all raises
	d.bitsRemaining = 8
	for i := 0; i < 8; i++ {
		d.timer = 0
		d.clockTimer()
		if d.output > 127 {
			t.Fatalf("output %v exceeded 127", d.output)
		}
	}
	if d.output != 126 {
		t.Fatalf("output = %v, want saturation to hold at 126", d.output)
	}

	d.output = 1
	d.silence = false
	d.sampleBuffer = 0x00 // all drops
	d.bitsRemaining = 8
	for i := 0; i < 8; i++ {
		d.timer = 0
		d.clockTimer()
	}
	if d.output != 1 {
		t.Fatalf("output = %v, want floor to hold at 1", d.output)
	}
}

func TestDMCSampleRegisters(t *testing.T) {
	d := &dmc{}

	d.writePort(0x4012, 0x02)
	if d.sampleAddress != 0xC080 {
		t.Errorf("sample address = %04X, want C080", d.sampleAddress)
	}

	d.writePort(0x4013, 0x03)
	if d.sampleLength != 0x31 {
		t.Errorf("sample length = %04X, want 31", d.sampleLength)
	}
}

func TestDMCMemoryReader(t *testing.T) {
	d := &dmc{silence: true, timerPeriod: dmcRateTable[0]}
	d.writePort(0x4012, 0x00) // 0xC000
	d.writePort(0x4013, 0x00) // length 1

	d.setEnabled(true)
	addr, ok := d.wantsDMA()
	if !ok || addr != 0xC000 {
		t.Fatalf("wantsDMA = %04X/%v, want C000/true", addr, ok)
	}

	d.loadSample(0x55)
	if d.silence {
		t.Errorf("silence still set after loadSample")
	}
	if d.bitsRemaining != 8 {
		t.Errorf("bits = %v, want 8", d.bitsRemaining)
	}
	if d.bytesRemaining != 0 {
		t.Errorf("bytes = %v, want 0", d.bytesRemaining)
	}
	if d.currentAddress != 0xC001 {
		t.Errorf("address = %04X, want C001", d.currentAddress)
	}

	if _, ok := d.wantsDMA(); ok {
		t.Errorf("reader still hungry with no bytes left")
	}
}

func TestDMCAddressWrap(t *testing.T) {
	d := &dmc{silence: true}
	d.currentAddress = 0xFFFF
	d.bytesRemaining = 2

	d.loadSample(0x00)
	if d.currentAddress != 0x8000 {
		t.Fatalf("address = %04X, want wrap to 8000", d.currentAddress)
	}
}

func TestDMCIRQ(t *testing.T) {
	d := &dmc{silence: true}
	d.writePort(0x4010, 0x80) // IRQ enable
	d.currentAddress = 0xC000
	d.bytesRemaining = 1

	d.loadSample(0x00)
	if !d.irqPending {
		t.Fatalf("irq not raised at end of sample")
	}

	// clearing IRQ enable clears the pending flag
	d.writePort(0x4010, 0x00)
	if d.irqPending {
		t.Fatalf("irq still pending after $4010 disable")
	}
}

func TestDMCLoop(t *testing.T) {
	d := &dmc{silence: true}
	d.writePort(0x4010, 0x40) // loop
	d.writePort(0x4012, 0x01)
	d.writePort(0x4013, 0x01)
	d.currentAddress = 0xC000
	d.bytesRemaining = 1

	d.loadSample(0x00)
	if d.bytesRemaining != d.sampleLength {
		t.Fatalf("bytes = %v, want sample restart to %v", d.bytesRemaining, d.sampleLength)
	}
	if d.currentAddress != d.sampleAddress {
		t.Fatalf("address = %04X, want restart at %04X", d.currentAddress, d.sampleAddress)
	}
}

func TestMixerTables(t *testing.T) {
	if pulseMixTable[0] != 0 {
		t.Errorf("pulse mix at 0 = %v, want 0", pulseMixTable[0])
	}
	// spot checks against the documented formula
	want := float32(95.88 / (8128.0/15.0 + 100))
	if got := pulseMixTable[15]; got != want {
		t.Errorf("pulse mix at 15 = %v, want %v", got, want)
	}

	if got := tndMix(0, 0, 0); got != 0 {
		t.Errorf("tnd mix at silence = %v, want 0", got)
	}
	if got := tndMix(15, 0, 0); got <= 0 {
		t.Errorf("tnd mix = %v, want positive", got)
	}
}

func TestChannelSampleBounds(t *testing.T) {
	a := newAPU(44100)
	a.writePort(0x4015, 0x1F)
	a.writePort(0x4000, 0x3F) // constant volume 15
	a.writePort(0x4003, 0x08)
	a.writePort(0x4008, 0x7F)
	a.writePort(0x400B, 0x08)
	a.writePort(0x400F, 0x08)

	for i := 0; i < 100000; i++ {
		a.clock()
		if s := a.pulse1.sample(); s > 15 {
			t.Fatalf("pulse sample %v out of range", s)
		}
		if s := a.triangle.sample(); s > 15 {
			t.Fatalf("triangle sample %v out of range", s)
		}
		if s := a.noise.sample(); s > 15 {
			t.Fatalf("noise sample %v out of range", s)
		}
		if s := a.dmc.sample(); s > 127 {
			t.Fatalf("dmc sample %v out of range", s)
		}
	}
}
