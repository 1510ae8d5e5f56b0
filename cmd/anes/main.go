package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/arvet/nes/nes"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL event handling must stay on the main thread
	runtime.LockOSThread()
}

const (
	screenWidth  = 256
	screenHeight = 240
)

var keymap = map[sdl.Keycode]nes.Button{
	sdl.K_z:      nes.A,
	sdl.K_x:      nes.B,
	sdl.K_RSHIFT: nes.Select,
	sdl.K_RETURN: nes.Start,
	sdl.K_UP:     nes.Up,
	sdl.K_DOWN:   nes.Down,
	sdl.K_LEFT:   nes.Left,
	sdl.K_RIGHT:  nes.Right,
}

func run(romPath string, scale int, trace bool) error {
	var out io.Writer
	if trace {
		out = os.Stderr
	}

	f, err := os.Open(romPath)
	if err != nil {
		return fmt.Errorf("unable to open rom: %w", err)
	}
	cart, err := nes.LoadINES(f)
	f.Close()
	if err != nil {
		return err
	}

	audio := &audioEngine{}
	if err := audio.init(); err != nil {
		return err
	}
	defer audio.quit()

	console := nes.NewConsole(cart, audio.sampleRate(), out)
	defer console.Close()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("unable to init sdl: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("anes",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(screenWidth*scale), int32(screenHeight*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("unable to create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("unable to create renderer: %w", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING,
		screenWidth, screenHeight)
	if err != nil {
		return fmt.Errorf("unable to create texture: %w", err)
	}
	defer texture.Destroy()

	if err := audio.play(); err != nil {
		return err
	}

	paused := false
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
					switch ev.Keysym.Sym {
					case sdl.K_ESCAPE:
						return nil
					case sdl.K_p:
						paused = !paused
						continue
					case sdl.K_r:
						console.Reset()
						continue
					case sdl.K_F5:
						if err := console.StartRecording(); err != nil {
							fmt.Fprintln(os.Stderr, err)
						}
						continue
					case sdl.K_F6:
						if err := console.StopRecording(); err != nil {
							fmt.Fprintln(os.Stderr, err)
						}
						continue
					}
				}

				button, ok := keymap[ev.Keysym.Sym]
				if !ok {
					break
				}
				if ev.Type == sdl.KEYDOWN {
					console.Press(0, button)
				} else {
					console.Release(0, button)
				}
			}
		}

		if paused {
			sdl.Delay(16)
			continue
		}

		frame, samples := console.RunFrame()
		audio.queue(samples)

		if err := texture.Update(nil, framePixels(frame), screenWidth*3); err != nil {
			return err
		}
		if err := renderer.Clear(); err != nil {
			return err
		}
		if err := renderer.Copy(texture, nil, nil); err != nil {
			return err
		}
		renderer.Present()
	}
}

func main() {
	scale := flag.Int("scale", 3, "window scale factor")
	trace := flag.Bool("trace", false, "print a CPU trace to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] rom.nes\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *scale, *trace); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
