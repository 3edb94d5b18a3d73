//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	DWMWA_USE_IMMERSIVE_DARK_MODE = 20
	DWMWA_BORDER_COLOR            = 34
	DWMWA_CAPTION_COLOR           = 35
)

func setDwmAttribute(hwnd unsafe.Pointer, attribute uintptr, value uint32) {
	procDwmSetWindowAttribute.Call(
		uintptr(hwnd),
		attribute,
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
}

// matchTitleBar switches the window frame to dark mode and paints the caption
// and border with the scene background.
func matchTitleBar(window *glfw.Window, background [4]float32) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}

	setDwmAttribute(unsafe.Pointer(hwnd), DWMWA_USE_IMMERSIVE_DARK_MODE, 1)
	color := colorRef(background[0], background[1], background[2])
	setDwmAttribute(unsafe.Pointer(hwnd), DWMWA_BORDER_COLOR, color)
	setDwmAttribute(unsafe.Pointer(hwnd), DWMWA_CAPTION_COLOR, color)
}
