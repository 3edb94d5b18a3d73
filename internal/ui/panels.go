package ui

import (
	"fmt"

	"Lumen3D/internal/engine"
	"Lumen3D/internal/renderer"

	"github.com/inkyblackness/imgui-go/v4"
)

const (
	positionRange = 10.0
	minConstant   = 0.01
	maxConstant   = 2.0
	maxFalloff    = 1.0
)

// Panels draws the debug windows and writes edits straight into State.
type Panels struct {
	State  *engine.AppState
	Camera *renderer.Camera

	lightNames []string
}

func NewPanels(state *engine.AppState, camera *renderer.Camera) *Panels {
	return &Panels{
		State:      state,
		Camera:     camera,
		lightNames: lightLabels(state.Bank.Len()),
	}
}

// Draw must run between imgui.NewFrame and imgui.Render.
func (p *Panels) Draw() {
	p.drawDebug()
	p.drawPerformance()
	if p.State.Lighting == renderer.SINGLE_LIGHT {
		p.drawSingleLight()
	} else {
		p.drawLightControls()
	}
	p.drawMaterial()
}

func (p *Panels) drawDebug() {
	state := p.State
	imgui.BeginV("Debug", nil, 0)

	heading("World")
	imgui.ColorEdit4V("Bg Color", &state.ClearColor, imgui.ColorEditFlagsNoInputs)
	imgui.Text(fmt.Sprintf("Camera: (%.2f, %.2f, %.2f)  FOV %.0f", p.Camera.Position.X(), p.Camera.Position.Y(), p.Camera.Position.Z(), p.Camera.Zoom))

	imgui.BeginGroup()
	imgui.Checkbox("Wireframe Mode", &state.Debug.ShowWireframe)
	if state.Overlays {
		imgui.SameLine()
		imgui.Checkbox("Show Light Directions", &state.Debug.ShowLightDirs)
	}
	imgui.EndGroup()
	if state.Overlays {
		imgui.Checkbox("Show Object Normals", &state.Debug.ShowNormals)
	}

	imgui.Separator()
	heading("Time")
	imgui.Text(formatEngineTime(state.Clock.Elapsed))
	imgui.SameLine()
	imgui.Checkbox("Pause Time", &state.Clock.Paused)
	imgui.SliderFloatV("Time Scale", &state.Clock.Scale, 0, engine.MaxTimeScale, "%.2f", 0)

	imgui.Separator()
	imgui.Text("Tab: capture cursor   P: wireframe   F12: screenshot")

	imgui.End()
}

func (p *Panels) drawPerformance() {
	imgui.BeginV("Performance", nil, 0)
	imgui.Text(formatPerformance(p.State.Timer))
	imgui.End()
}

func (p *Panels) drawLightControls() {
	bank := p.State.Bank
	imgui.BeginV("Light Controls", nil, 0)

	if imgui.BeginCombo("Select Light", p.lightNames[bank.Selected()]) {
		for i, name := range p.lightNames {
			if imgui.SelectableV(name, i == bank.Selected(), 0, imgui.Vec2{}) {
				bank.SetSelected(i)
			}
		}
		imgui.EndCombo()
	}

	light := bank.SelectedLight()
	imgui.Checkbox("Enabled", &light.Enabled)
	imgui.SliderFloat3V("Position", (*[3]float32)(&light.Position), -positionRange, positionRange, "%.2f", 0)
	imgui.ColorEdit3V("Ambient", (*[3]float32)(&light.Ambient), 0)
	imgui.ColorEdit3V("Diffuse", (*[3]float32)(&light.Diffuse), 0)
	imgui.ColorEdit3V("Specular", (*[3]float32)(&light.Specular), 0)
	imgui.SliderFloatV("Constant", &light.Constant, minConstant, maxConstant, "%.3f", 0)
	imgui.SliderFloatV("Linear", &light.Linear, 0, maxFalloff, "%.3f", 0)
	imgui.SliderFloatV("Quadratic", &light.Quadratic, 0, maxFalloff, "%.3f", 0)
	sanitizeLight(light)

	imgui.End()
}

func (p *Panels) drawSingleLight() {
	light := p.State.Bank.Get(0)
	imgui.BeginV("Light", nil, 0)

	imgui.Checkbox("Enabled", &light.Enabled)
	imgui.SliderFloat3V("Position", (*[3]float32)(&light.Position), -positionRange, positionRange, "%.2f", 0)
	imgui.SliderFloat3V("Light Ambient", (*[3]float32)(&light.Ambient), 0, 1, "%.2f", 0)
	imgui.SliderFloat3V("Light Diffuse", (*[3]float32)(&light.Diffuse), 0, 1, "%.2f", 0)
	imgui.SliderFloat3V("Light Specular", (*[3]float32)(&light.Specular), 0, 1, "%.2f", 0)

	imgui.End()
}

func (p *Panels) drawMaterial() {
	material := &p.State.Material
	imgui.BeginV("Material", nil, 0)

	imgui.SliderIntV("Shininess (2^x)", &material.ShininessExponent, 0, renderer.MaxShininessExponent, "%d", 0)
	imgui.Text(fmt.Sprintf("Shininess: %.1f", material.Shininess()))

	imgui.End()
}

func lightLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Light %d", i)
	}
	return labels
}

// sanitizeLight keeps attenuation usable after a ctrl+click text entry,
// which bypasses the slider limits.
func sanitizeLight(light *renderer.PointLight) {
	if light.Constant < minConstant {
		light.Constant = minConstant
	}
	if light.Linear < 0 {
		light.Linear = 0
	}
	if light.Quadratic < 0 {
		light.Quadratic = 0
	}
}

func formatPerformance(timer engine.FrameTimer) string {
	if timer.FPS <= 0 {
		return "FPS: measuring..."
	}
	return fmt.Sprintf("FPS: %.1f (%.3f ms/frame)", timer.FPS, timer.MsPer)
}

func formatEngineTime(elapsed float64) string {
	return fmt.Sprintf("Time: %.2f", elapsed)
}
