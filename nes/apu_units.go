package nes

// lengthTable maps the 5-bit length index written through a channel's
// last register to a frame count. Shared by pulse, triangle and noise.
var lengthTable = [32]byte{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// envelope is the volume unit shared by the pulses and the noise
// channel, clocked on quarter-frames.
type envelope struct {
	start    bool
	loop     bool
	constant bool
	v        byte // 4-bit volume / divider period
	divider  byte
	decay    byte
}

// clock runs one quarter-frame step: a pending start reloads the decay
// level, otherwise the divider counts down and on underflow the decay
// level ticks, wrapping only when looping.
func (e *envelope) clock() {
	if e.start {
		e.start = false
		e.decay = 15
		e.divider = e.v
		return
	}
	if e.divider > 0 {
		e.divider--
		return
	}
	e.divider = e.v
	if e.decay > 0 {
		e.decay--
	} else if e.loop {
		e.decay = 15
	}
}

func (e *envelope) output() byte {
	if e.constant {
		return e.v
	}
	return e.decay
}

// sweep is the per-pulse pitch unit, clocked on half-frames. The two
// pulse channels negate differently: pulse 1 adds the ones' complement
// of the change (period - change - 1), pulse 2 the twos' complement
// (period - change).
type sweep struct {
	channel byte // 0 = pulse 1
	enabled bool
	period  byte // 3-bit divider period
	negate  bool
	shift   byte
	reload  bool
	divider byte
}

func (s *sweep) writePort(v byte) {
	s.enabled = v&0x80 > 0
	s.period = v >> 4 & 7
	s.negate = v&0x08 > 0
	s.shift = v & 7
	s.reload = true
}

// target computes the period the sweep is aiming at. Negative results
// clamp to zero, which keeps the muting comparison one-sided.
func (s *sweep) target(current uint16) uint16 {
	change := int(current >> s.shift)
	if s.negate {
		change = -change
		if s.channel == 0 {
			change--
		}
	}
	t := int(current) + change
	if t < 0 {
		return 0
	}
	return uint16(t)
}

// muting silences the channel whenever the current period is below 8 or
// the target overflows 11 bits, regardless of the enable bit.
func (s *sweep) muting(current uint16) bool {
	return current < 8 || s.target(current) > 0x7FF
}

// clock runs one half-frame step and returns the updated period.
func (s *sweep) clock(current uint16) uint16 {
	if s.divider == 0 && s.enabled && s.shift > 0 && !s.muting(current) {
		current = s.target(current)
		s.divider = s.period
	} else if s.divider > 0 {
		s.divider--
	}
	if s.reload {
		s.divider = s.period
		s.reload = false
	}
	return current
}
