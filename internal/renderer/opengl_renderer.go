package renderer

import (
	"fmt"

	"Lumen3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// RendererOptions picks the lighting shader, the overlay support and the
// two material maps.
type RendererOptions struct {
	Lighting        LightingModel
	Overlays        bool
	DiffuseTexture  string
	SpecularTexture string
}

type OpenGLRenderer struct {
	options RendererOptions

	lightingShader *Shader
	lampShader     *Shader
	lineShader     *Shader

	cube      *Mesh
	lamp      *Mesh
	cubes     []*Model
	lampModel *Model
	textures  *TextureManager
	diffuse   uint32
	specular  uint32

	lineSink *glLineSink
	lines    *DebugLines

	width, height int32
}

func NewOpenGLRenderer(options RendererOptions) *OpenGLRenderer {
	return &OpenGLRenderer{
		options:   options,
		textures:  NewTextureManager(),
		cubes:     CubeModels(),
		lampModel: LampModel(PointLight{}),
	}
}

// Init loads the GL function pointers and creates every GPU resource. It must
// run on the thread that owns the current context.
func (rend *OpenGLRenderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("renderer: init OpenGL: %w", err)
	}
	logger.Log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	rend.lightingShader = InitLightingShader(rend.options.Lighting)
	rend.lampShader = InitLampShader()
	shaders := []*Shader{rend.lightingShader, rend.lampShader}
	if rend.options.Overlays {
		rend.lineShader = InitLineShader()
		shaders = append(shaders, rend.lineShader)
	}
	var unwind Unwind
	for _, shader := range shaders {
		if err := shader.Compile(); err != nil {
			unwind.Unwind()
			return fmt.Errorf("renderer: %w", err)
		}
		unwind.Add(shader.Delete)
	}
	unwind.Discard()

	rend.cube = NewCubeMesh()
	rend.cube.Upload(CubeVertices)
	rend.lamp = rend.cube.ShareBuffer()

	rend.diffuse = rend.textures.LoadTextureOrPlaceholder(rend.options.DiffuseTexture)
	rend.specular = rend.textures.LoadTextureOrPlaceholder(rend.options.SpecularTexture)

	if rend.options.Overlays {
		rend.lineSink = newGLLineSink(rend.lineShader)
		rend.lines = NewDebugLines(rend.lineSink)
	}

	gl.Enable(gl.DEPTH_TEST)
	rend.UpdateViewport(width, height)

	logger.Log.Info("OpenGL render initialized",
		zap.Stringer("lighting", rend.options.Lighting),
		zap.Bool("overlays", rend.options.Overlays))
	return nil
}

// Render draws one frame: cubes, lamp markers, then the debug overlays in a
// single line batch.
func (rend *OpenGLRenderer) Render(frame Frame) {
	if frame.Debug.ShowWireframe || frame.ForceWireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	c := frame.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := frame.Camera.GetViewMatrix()
	projection := frame.Camera.GetProjectionMatrix(frame.AspectRatio)

	SyncLights(rend.lightingShader, frame.Lighting)
	rend.lightingShader.SetMat4("view", view)
	rend.lightingShader.SetMat4("projection", projection)

	gl.ActiveTexture(gl.TEXTURE0 + uint32(frame.Lighting.Material.DiffuseUnit))
	gl.BindTexture(gl.TEXTURE_2D, rend.diffuse)
	gl.ActiveTexture(gl.TEXTURE0 + uint32(frame.Lighting.Material.SpecularUnit))
	gl.BindTexture(gl.TEXTURE_2D, rend.specular)

	for _, model := range rend.cubes {
		rend.lightingShader.SetMat4("model", model.ModelMatrix)
		rend.cube.Draw()
	}

	rend.lampShader.Use()
	rend.lampShader.SetMat4("view", view)
	rend.lampShader.SetMat4("projection", projection)
	for _, light := range VisibleLamps(frame.Lighting) {
		rend.lampModel.SetPosition(light.Position)
		rend.lampShader.SetMat4("model", rend.lampModel.ModelMatrix)
		rend.lampShader.SetVec3("DiffuseColor", light.Diffuse)
		rend.lamp.Draw()
	}

	if rend.lines != nil {
		BuildDebugOverlays(rend.lines, frame.Debug, frame.Lighting.Sun.Direction, rend.cube, rend.cubes)
		rend.lines.FlushAndDraw(view, projection)
	}
}

// VisibleLamps lists the enabled lights that get a marker. The single light
// model only looks at slot 0.
func VisibleLamps(state LightingState) []PointLight {
	indices := visibleLampIndices(state)
	if indices == nil {
		return nil
	}
	lamps := make([]PointLight, 0, len(indices))
	for _, i := range indices {
		lamps = append(lamps, *state.Bank.Get(i))
	}
	return lamps
}

func visibleLampIndices(state LightingState) []int {
	if state.Bank == nil {
		return nil
	}
	count := state.Bank.Len()
	if state.Model == SINGLE_LIGHT {
		count = 1
	}
	indices := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if state.Bank.Get(i).Enabled {
			indices = append(indices, i)
		}
	}
	return indices
}

// BuildDebugOverlays runs the enabled geometry helpers once per model. The
// light direction lines follow the normalized sun direction.
func BuildDebugOverlays(lines *DebugLines, debug DebugSettings, sunDir mgl32.Vec3, mesh *Mesh, models []*Model) {
	if debug.ShowLightDirs {
		dir := sunDir.Normalize()
		for _, model := range models {
			ShowLightFromSurface(lines, dir, mesh.Positions, model.ModelMatrix)
		}
	}
	if debug.ShowNormals {
		for _, model := range models {
			ShowNormals(lines, mesh.Positions, mesh.Normals, model.ModelMatrix)
		}
	}
}

func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	rend.width, rend.height = width, height
	gl.Viewport(0, 0, width, height)
}

// Screenshot saves the current back buffer into dir.
func (rend *OpenGLRenderer) Screenshot(dir string) (string, error) {
	return CaptureScreenshot(dir, rend.width, rend.height)
}

func (rend *OpenGLRenderer) Cleanup() {
	if rend.lineSink != nil {
		rend.lineSink.Cleanup()
	}
	if rend.lamp != nil {
		rend.lamp.Delete(false)
	}
	if rend.cube != nil {
		rend.cube.Delete(true)
	}
	rend.textures.ReleaseTexture(rend.diffuse)
	rend.textures.ReleaseTexture(rend.specular)
	rend.diffuse, rend.specular = 0, 0
	rend.textures.Clear()
	for _, shader := range []*Shader{rend.lightingShader, rend.lampShader, rend.lineShader} {
		if shader != nil {
			if inactive := shader.InactiveUniforms(); len(inactive) > 0 {
				logger.Log.Debug("Shader ignored uniforms",
					zap.String("shader", shader.name),
					zap.Strings("uniforms", inactive))
			}
			shader.Delete()
		}
	}
	logger.Log.Info("OpenGL renderer cleaned up")
}
