package main

import (
	"fmt"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
)

// audioEngine plays the console's sample stream through portaudio. The
// simulation pushes a frame's worth of samples at a time into a buffered
// channel; the callback drains it, padding with silence on underrun. A
// short attack envelope avoids the power-on pop.
type audioEngine struct {
	samples chan float32

	envelope     *envelope
	streamParams portaudio.StreamParameters
	stream       *portaudio.Stream
}

func (a *audioEngine) init() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audioEngine.init: unable to initialize portaudio: %w", err)
	}

	host, err := portaudio.DefaultHostApi()
	if err != nil {
		return fmt.Errorf("audioEngine.init: unable to get default host api: %w", err)
	}

	a.streamParams = portaudio.LowLatencyParameters(nil, host.DefaultOutputDevice)
	a.streamParams.FramesPerBuffer = 256

	// two frames of headroom at 60fps
	a.samples = make(chan float32, int(a.streamParams.SampleRate/30))
	a.envelope = newEnvelope(float32(a.streamParams.SampleRate))

	stream, err := portaudio.OpenStream(a.streamParams, a.callback)
	if err != nil {
		return fmt.Errorf("audioEngine.init: unable to open stream: %w", err)
	}
	a.stream = stream

	return nil
}

func (a *audioEngine) quit() error {
	a.envelope.close()

	if a.stream != nil {
		a.stream.Stop()
		a.stream.Close()
	}
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("audioEngine.quit: %w", err)
	}

	return nil
}

func (a *audioEngine) sampleRate() float64 {
	return a.streamParams.SampleRate
}

func (a *audioEngine) play() error {
	a.envelope.open()
	if err := a.stream.Start(); err != nil {
		return fmt.Errorf("audioEngine.play: unable to start stream: %w", err)
	}
	return nil
}

// queue hands a frame's samples to the callback, dropping on overrun
// rather than blocking the simulation.
func (a *audioEngine) queue(samples []float32) {
	for _, s := range samples {
		select {
		case a.samples <- s:
		default:
			return
		}
	}
}

func (a *audioEngine) callback(out []float32) {
	channels := a.streamParams.Output.Channels

	for i := 0; i < len(out); i += channels {
		var f float32
		select {
		case f = <-a.samples:
		default:
		}
		f *= a.envelope.gain()
		out[i] = f
		out[i+channels-1] = f
	}
}

const (
	envOpen int32 = iota
	envSustain
	envClose
)

// envelope ramps the output gain up over roughly a second after the
// stream opens and cuts it on close.
type envelope struct {
	state      int32
	attackRate float32
	step       float32
}

func newEnvelope(durSamples float32) *envelope {
	return &envelope{
		attackRate: 1.0 / durSamples,
	}
}

func (e *envelope) gain() float32 {
	switch atomic.LoadInt32(&e.state) {
	case envOpen:
		e.step += e.attackRate
		if e.step >= 1.0 {
			e.step = 1.0
			atomic.StoreInt32(&e.state, envSustain)
		}
	case envClose:
		e.step = 0.0
		atomic.StoreInt32(&e.state, envSustain)
	}

	return e.step
}

func (e *envelope) open() {
	atomic.StoreInt32(&e.state, envOpen)
}

func (e *envelope) close() {
	atomic.StoreInt32(&e.state, envClose)
}
