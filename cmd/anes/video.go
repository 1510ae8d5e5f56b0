package main

import "unsafe"

// framePixels exposes the framebuffer's backing array for the SDL
// texture upload.
func framePixels(frame []byte) unsafe.Pointer {
	return unsafe.Pointer(&frame[0])
}
