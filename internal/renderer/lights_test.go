package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLightBank(t *testing.T) {
	bank := DefaultLightBank()

	require.Equal(t, MaxPointLights, bank.Len())
	assert.Equal(t, 0, bank.Selected())

	positions := map[mgl32.Vec3]bool{}
	for i := 0; i < bank.Len(); i++ {
		light := bank.Get(i)
		assert.True(t, light.Enabled)
		assert.Greater(t, light.Constant, float32(0))
		assert.GreaterOrEqual(t, light.Linear, float32(0))
		assert.GreaterOrEqual(t, light.Quadratic, float32(0))
		positions[light.Position] = true
	}
	assert.Len(t, positions, MaxPointLights, "default positions should be distinct")
}

func TestLightBankGetIsMutable(t *testing.T) {
	bank := DefaultLightBank()

	bank.Get(2).Diffuse = mgl32.Vec3{1, 0, 0}

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, bank.Get(2).Diffuse)
}

func TestLightBankGetOutOfRangePanics(t *testing.T) {
	bank := DefaultLightBank()

	assert.Panics(t, func() { bank.Get(-1) })
	assert.Panics(t, func() { bank.Get(MaxPointLights) })
	assert.NotPanics(t, func() { bank.Get(MaxPointLights - 1) })
}

func TestLightBankSetSelectedClamps(t *testing.T) {
	bank := DefaultLightBank()

	for _, index := range []int{-100, -1, 0, 1, 2, 3, 4, 17} {
		bank.SetSelected(index)
		assert.GreaterOrEqual(t, bank.Selected(), 0)
		assert.Less(t, bank.Selected(), bank.Len())
	}

	bank.SetSelected(2)
	assert.Equal(t, 2, bank.Selected())
	assert.Same(t, bank.Get(2), bank.SelectedLight())

	bank.SetSelected(9)
	assert.Equal(t, MaxPointLights-1, bank.Selected())

	bank.SetSelected(-3)
	assert.Equal(t, 0, bank.Selected())
}

func TestMaterialShininess(t *testing.T) {
	tests := []struct {
		exponent int32
		want     float32
	}{
		{0, 1},
		{5, 32},
		{7, 128},
		{-2, 1},
		{12, 128},
	}
	for _, tt := range tests {
		m := DefaultMaterialSettings()
		m.ShininessExponent = tt.exponent
		assert.Equal(t, tt.want, m.Shininess(), "exponent %d", tt.exponent)
	}
}
