package nes

import (
	"io"
	"math"

	"github.com/go-audio/wav"
)

// pulseMixTable is the non-linear pulse mix, 95.88 / (8128/n + 100) for
// the summed pulse levels 1..30, with silence at 0.
var pulseMixTable [31]float32

func init() {
	for i := 1; i < len(pulseMixTable); i++ {
		pulseMixTable[i] = float32(95.88 / (8128.0/float64(i) + 100))
	}
}

// tndMix combines triangle, noise and DMC through the documented
// non-linear formula. The three inputs interact, so unlike the pulse
// pair this one is not worth flattening into a table.
func tndMix(t, n, d byte) float32 {
	if t == 0 && n == 0 && d == 0 {
		return 0
	}
	group := float64(t)/8227 + float64(n)/12241 + float64(d)/22638
	return float32(159.79 / (1/group + 100))
}

// mixer downsamples the per-CPU-cycle channel levels to the host rate,
// runs the output through the usual first-order filter chain, and
// accumulates the frame's samples for the orchestrator to hand out.
// Each channel has a WAV recording tap for debugging audio issues.
type mixer struct {
	samples []float32

	divider uint64
	cycles  uint64

	filters []filter

	taps [6]*recordingTap
}

const (
	tapPulse1 = iota
	tapPulse2
	tapTriangle
	tapNoise
	tapDMC
	tapMix
)

var tapNames = [6]string{"pulse_1", "pulse_2", "triangle", "noise", "dmc", "mix"}

func newMixer(sampleRate float64) *mixer {
	m := &mixer{
		divider: uint64(cpuFreq / sampleRate),
		filters: []filter{
			highpass(sampleRate, 90),
			highpass(sampleRate, 440),
			lowpass(sampleRate, 14000),
		},
	}
	for i := range m.taps {
		m.taps[i] = &recordingTap{name: tapNames[i], sampleRate: sampleRate}
	}
	return m
}

func (m *mixer) mix(p1, p2, t, n, d byte) {
	if m.cycles%m.divider == 0 {
		out := pulseMixTable[p1+p2] + tndMix(t, n, d)
		for _, f := range m.filters {
			out = f(out)
		}

		m.taps[tapPulse1].process(pulseMixTable[p1])
		m.taps[tapPulse2].process(pulseMixTable[p2])
		m.taps[tapTriangle].process(tndMix(t, 0, 0))
		m.taps[tapNoise].process(tndMix(0, n, 0))
		m.taps[tapDMC].process(tndMix(0, 0, d))
		m.taps[tapMix].process(out)

		m.samples = append(m.samples, out)
	}
	m.cycles++
}

// drain hands out the samples accumulated since the last call.
func (m *mixer) drain() []float32 {
	s := m.samples
	m.samples = nil
	return s
}

func (m *mixer) startRecording(makeFile func(name string) (io.WriteSeeker, error)) error {
	for _, t := range m.taps {
		if err := t.start(makeFile); err != nil {
			return err
		}
	}
	return nil
}

func (m *mixer) pauseRecording() {
	for _, t := range m.taps {
		t.pause()
	}
}

func (m *mixer) unpauseRecording() {
	for _, t := range m.taps {
		t.unpause()
	}
}

func (m *mixer) stopRecording() error {
	var err error
	for _, t := range m.taps {
		if e := t.stop(); e != nil {
			err = e
		}
	}
	return err
}

// recordingTap writes one channel's pre-mix signal to a WAV file,
// 32-bit float, mono.
type recordingTap struct {
	name       string
	sampleRate float64
	recording  bool
	paused     bool
	enc        *wav.Encoder
}

func (t *recordingTap) start(makeFile func(name string) (io.WriteSeeker, error)) error {
	if t.recording {
		t.paused = false
		return nil
	}

	f, err := makeFile(t.name)
	if err != nil {
		return err
	}

	// 0x0003 is WAVE_FORMAT_IEEE_FLOAT
	t.enc = wav.NewEncoder(f, int(t.sampleRate), 32, 1, 0x0003)
	t.recording = true
	t.paused = false
	return nil
}

func (t *recordingTap) process(v float32) {
	if !t.recording || t.paused {
		return
	}
	_ = t.enc.WriteFrame(v)
}

func (t *recordingTap) pause() {
	if t.recording {
		t.paused = true
	}
}

func (t *recordingTap) unpause() {
	t.paused = false
}

func (t *recordingTap) stop() error {
	if !t.recording {
		return nil
	}
	t.recording = false
	t.paused = false
	return t.enc.Close()
}

type filter func(float32) float32

func lowpass(sampleRate, cutoff float64) filter {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	dt := 1.0 / sampleRate
	alpha := float32(dt / (rc + dt))

	var prev float32
	return func(x float32) float32 {
		ret := alpha*x + (1.0-alpha)*prev
		prev = ret
		return ret
	}
}

func highpass(sampleRate, cutoff float64) filter {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	dt := 1.0 / sampleRate
	alpha := float32(rc / (rc + dt))

	var prev, prevx float32
	return func(x float32) float32 {
		ret := alpha*prev + alpha*(x-prevx)
		prev = ret
		prevx = x
		return ret
	}
}
