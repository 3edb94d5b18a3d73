package renderer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferImageFlipsAndForcesAlpha(t *testing.T) {
	// 1x2, bottom row first
	pixels := []byte{
		10, 20, 30, 0,
		40, 50, 60, 7,
	}

	img, err := FramebufferImage(pixels, 1, 2)
	require.NoError(t, err)

	top := img.NRGBAAt(0, 0)
	bottom := img.NRGBAAt(0, 1)
	assert.Equal(t, uint8(40), top.R)
	assert.Equal(t, uint8(10), bottom.R)
	assert.Equal(t, uint8(0xff), top.A)
	assert.Equal(t, uint8(0xff), bottom.A)
}

func TestFramebufferImageSizeMismatch(t *testing.T) {
	_, err := FramebufferImage(make([]byte, 7), 1, 2)
	assert.Error(t, err)
}

func TestEncodeScreenshotWritesWebP(t *testing.T) {
	img, err := FramebufferImage(make([]byte, 4*4*4), 4, 4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeScreenshot(&buf, img))

	out := buf.Bytes()
	require.Greater(t, len(out), 12)
	assert.Equal(t, "RIFF", string(out[0:4]))
	assert.Equal(t, "WEBP", string(out[8:12]))
}

func TestWriteScreenshotFile(t *testing.T) {
	img, err := FramebufferImage(make([]byte, 2*2*4), 2, 2)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "shot.webp")

	require.NoError(t, writeScreenshot(path, img))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestWriteScreenshotReportsCreateFailure(t *testing.T) {
	img, err := FramebufferImage(make([]byte, 4), 1, 1)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "missing", "shot.webp")

	err = writeScreenshot(path, img)

	assert.Error(t, err)
	assert.NoFileExists(t, path)
}
