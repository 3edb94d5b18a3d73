package ui

import (
	"github.com/inkyblackness/imgui-go/v4"
)

var (
	headingColor = imgui.Vec4{X: 1, Y: 1, Z: 0, W: 1}
	warmAccent   = imgui.Vec4{X: 0.86, Y: 0.55, Z: 0.24, W: 1.0}
)

// ApplyTheme darkens the default style with a warm accent that sits well on
// the brown scene background, and scales fonts by fontScale.
func ApplyTheme(fontScale float32) {
	style := imgui.CurrentStyle()

	accentHover := imgui.Vec4{X: warmAccent.X, Y: warmAccent.Y, Z: warmAccent.Z, W: 0.6}
	accentActive := imgui.Vec4{X: warmAccent.X, Y: warmAccent.Y, Z: warmAccent.Z, W: 0.8}
	accentDim := imgui.Vec4{X: warmAccent.X, Y: warmAccent.Y, Z: warmAccent.Z, W: 0.4}

	style.SetColor(imgui.StyleColorWindowBg, imgui.Vec4{X: 0.1, Y: 0.1, Z: 0.1, W: 0.9})
	style.SetColor(imgui.StyleColorTitleBg, imgui.Vec4{X: 0.08, Y: 0.08, Z: 0.08, W: 1.0})
	style.SetColor(imgui.StyleColorTitleBgActive, warmAccent)
	style.SetColor(imgui.StyleColorBorder, accentDim)
	style.SetColor(imgui.StyleColorSeparator, accentDim)

	style.SetColor(imgui.StyleColorHeader, accentDim)
	style.SetColor(imgui.StyleColorHeaderHovered, accentHover)
	style.SetColor(imgui.StyleColorHeaderActive, warmAccent)

	style.SetColor(imgui.StyleColorFrameBg, imgui.Vec4{X: 0.2, Y: 0.2, Z: 0.2, W: 0.54})
	style.SetColor(imgui.StyleColorFrameBgHovered, imgui.Vec4{X: 0.25, Y: 0.25, Z: 0.25, W: 0.78})
	style.SetColor(imgui.StyleColorFrameBgActive, imgui.Vec4{X: 0.3, Y: 0.3, Z: 0.3, W: 0.67})

	style.SetColor(imgui.StyleColorSliderGrab, warmAccent)
	style.SetColor(imgui.StyleColorSliderGrabActive, accentActive)
	style.SetColor(imgui.StyleColorCheckMark, warmAccent)
	style.SetColor(imgui.StyleColorButtonHovered, accentHover)
	style.SetColor(imgui.StyleColorButtonActive, accentActive)

	style.SetWindowRounding(4.0)
	style.SetFrameRounding(2.0)
	style.SetGrabRounding(2.0)

	imgui.CurrentIO().SetFontGlobalScale(fontScale)
}

func heading(text string) {
	imgui.PushStyleColor(imgui.StyleColorText, headingColor)
	imgui.Text(text)
	imgui.PopStyleColor()
	imgui.Separator()
}
