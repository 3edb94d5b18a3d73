package renderer

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"Lumen3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
)

const (
	placeholderSize   = 64
	placeholderChecks = 8
	placeholderName   = "<placeholder>"
)

// TextureStats provides debugging information
type TextureStats struct {
	TotalTextures  int
	CacheHits      int
	CacheMisses    int
	Placeholders   int
	ActiveTextures int
}

// TextureManager loads, caches and frees 2D textures. GL calls must come
// from the thread that owns the context.
type TextureManager struct {
	textureCache    map[string]uint32 // path -> OpenGL texture ID
	textureRefCount map[uint32]int    // texture ID -> reference count
	texturePaths    map[uint32]string // texture ID -> path
	stats           TextureStats
}

func NewTextureManager() *TextureManager {
	return &TextureManager{
		textureCache:    make(map[string]uint32),
		textureRefCount: make(map[uint32]int),
		texturePaths:    make(map[uint32]string),
	}
}

// LoadTexture loads a texture from file or returns the cached one, adding a
// reference either way.
func (tm *TextureManager) LoadTexture(filePath string) (uint32, error) {
	if textureID, exists := tm.textureCache[filePath]; exists {
		tm.textureRefCount[textureID]++
		tm.stats.CacheHits++

		logger.Log.Debug("Texture cache hit",
			zap.String("path", filePath),
			zap.Uint32("textureID", textureID),
			zap.Int("refCount", tm.textureRefCount[textureID]))

		return textureID, nil
	}

	tm.stats.CacheMisses++

	imgFile, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("texture: open %s: %w", filePath, err)
	}
	defer imgFile.Close()

	rgba, err := DecodeTextureImage(imgFile)
	if err != nil {
		return 0, fmt.Errorf("texture: decode %s: %w", filePath, err)
	}

	textureID := uploadTexture(rgba)
	tm.track(filePath, textureID)

	logger.Log.Info("Texture loaded and cached",
		zap.String("path", filePath),
		zap.Uint32("textureID", textureID),
		zap.Int("width", rgba.Rect.Dx()),
		zap.Int("height", rgba.Rect.Dy()))

	return textureID, nil
}

// LoadTextureOrPlaceholder never fails: when filePath cannot be loaded the
// shared checkerboard texture is returned instead.
func (tm *TextureManager) LoadTextureOrPlaceholder(filePath string) uint32 {
	textureID, err := tm.LoadTexture(filePath)
	if err == nil {
		return textureID
	}

	logger.Log.Warn("Texture failed to load, using placeholder", zap.String("path", filePath), zap.Error(err))
	tm.stats.Placeholders++

	if textureID, exists := tm.textureCache[placeholderName]; exists {
		tm.textureRefCount[textureID]++
		return textureID
	}

	textureID = uploadTexture(PlaceholderImage())
	tm.track(placeholderName, textureID)
	return textureID
}

func (tm *TextureManager) track(name string, textureID uint32) {
	tm.textureCache[name] = textureID
	tm.textureRefCount[textureID] = 1
	tm.texturePaths[textureID] = name
	tm.stats.TotalTextures++
	tm.stats.ActiveTextures++
}

// ReleaseTexture drops one reference and frees the texture on the last one.
func (tm *TextureManager) ReleaseTexture(textureID uint32) {
	if textureID == 0 {
		return
	}

	refCount, exists := tm.textureRefCount[textureID]
	if !exists {
		logger.Log.Warn("Attempted to release unknown texture", zap.Uint32("textureID", textureID))
		return
	}

	refCount--
	tm.textureRefCount[textureID] = refCount
	if refCount > 0 {
		return
	}

	gl.DeleteTextures(1, &textureID)

	path := tm.texturePaths[textureID]
	delete(tm.textureCache, path)
	delete(tm.textureRefCount, textureID)
	delete(tm.texturePaths, textureID)
	tm.stats.ActiveTextures--

	logger.Log.Debug("Texture freed", zap.Uint32("textureID", textureID), zap.String("path", path))
}

func (tm *TextureManager) GetStats() TextureStats {
	stats := tm.stats
	stats.ActiveTextures = len(tm.textureRefCount)
	return stats
}

// Clear frees every texture regardless of reference counts.
func (tm *TextureManager) Clear() {
	for textureID := range tm.textureRefCount {
		id := textureID
		gl.DeleteTextures(1, &id)
	}

	tm.textureCache = make(map[string]uint32)
	tm.textureRefCount = make(map[uint32]int)
	tm.texturePaths = make(map[uint32]string)
	tm.stats.ActiveTextures = 0

	logger.Log.Info("Texture manager cleared")
}

// uploadTexture creates a mipmapped, mirrored-repeat texture from rgba.
func uploadTexture(rgba *image.RGBA) uint32 {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return textureID
}

// DecodeTextureImage decodes PNG, JPEG, BMP or TGA into a tightly packed RGBA
// image with the first row at the bottom, the order glTexImage2D expects.
func DecodeTextureImage(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	rgba := toRGBA(img)
	flipVertical(rgba)
	return rgba, nil
}

func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

func flipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// PlaceholderImage is a magenta and black checkerboard.
func PlaceholderImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	cell := placeholderSize / placeholderChecks
	magenta := color.RGBA{R: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, magenta)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}
