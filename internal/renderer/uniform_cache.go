package renderer

import (
	"sort"

	"Lumen3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// UniformCache caches uniform locations so a frame of light sync does not
// query the driver for every field of every light.
type UniformCache struct {
	shader    string
	locate    func(name string) int32
	locations map[string]int32
}

func NewUniformCache(shader string, program uint32) *UniformCache {
	return newUniformCache(shader, func(name string) int32 {
		return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	})
}

func newUniformCache(shader string, locate func(name string) int32) *UniformCache {
	return &UniformCache{
		shader:    shader,
		locate:    locate,
		locations: make(map[string]int32),
	}
}

// GetLocation returns the cached uniform location or fetches and caches it.
// Names the program does not use resolve to -1, are cached as such and
// logged once.
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := uc.locate(name)
	uc.locations[name] = loc
	if loc == -1 {
		logger.Log.Debug("Uniform not active", zap.String("shader", uc.shader), zap.String("uniform", name))
	}
	return loc
}

// Inactive lists, sorted, the names looked up so far that the program
// does not use.
func (uc *UniformCache) Inactive() []string {
	var names []string
	for name, loc := range uc.locations {
		if loc == -1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (uc *UniformCache) SetFloat(name string, value float32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (uc *UniformCache) SetVec3(name string, x, y, z float32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform3f(loc, x, y, z)
	}
}

func (uc *UniformCache) SetInt(name string, value int32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

func (uc *UniformCache) SetMat4(name string, value mgl32.Mat4) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}
