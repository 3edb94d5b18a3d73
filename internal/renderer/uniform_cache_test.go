package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeLocations resolves names from a table and counts driver lookups.
type fakeLocations struct {
	table   map[string]int32
	lookups int
}

func (f *fakeLocations) locate(name string) int32 {
	f.lookups++
	if loc, ok := f.table[name]; ok {
		return loc
	}
	return -1
}

func TestUniformCacheLooksUpOnce(t *testing.T) {
	fake := &fakeLocations{table: map[string]int32{"viewPos": 3}}
	cache := newUniformCache("lighting", fake.locate)

	assert.Equal(t, int32(3), cache.GetLocation("viewPos"))
	assert.Equal(t, int32(3), cache.GetLocation("viewPos"))
	assert.Equal(t, 1, fake.lookups)
}

func TestUniformCacheRemembersInactive(t *testing.T) {
	fake := &fakeLocations{table: map[string]int32{"light.position": 0}}
	cache := newUniformCache("lighting", fake.locate)

	assert.Equal(t, int32(-1), cache.GetLocation("pointLights[1].constant"))
	assert.Equal(t, int32(-1), cache.GetLocation("pointLights[1].constant"))
	cache.GetLocation("dirLight.direction")
	cache.GetLocation("light.position")

	assert.Equal(t, 3, fake.lookups)
	assert.Equal(t, []string{"dirLight.direction", "pointLights[1].constant"}, cache.Inactive())
}

func TestUniformCacheSkipsInactiveWrites(t *testing.T) {
	cache := newUniformCache("lamp", (&fakeLocations{}).locate)

	// no GL context here; any real upload would crash
	cache.SetFloat("material.shininess", 32)
	cache.SetVec3("viewPos", 0, 0, 3)
	cache.SetInt("material.diffuse", 0)

	assert.Len(t, cache.Inactive(), 3)
}
