package engine

import "github.com/go-gl/mathgl/mgl32"

// colorRef packs a color as a Win32 COLORREF (0x00BBGGRR).
func colorRef(r, g, b float32) uint32 {
	channel := func(v float32) uint32 {
		return uint32(mgl32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return channel(r) | channel(g)<<8 | channel(b)<<16
}
