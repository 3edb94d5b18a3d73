package renderer

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"Lumen3D/internal/logger"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// FramebufferImage converts bottom-up RGBA rows as returned by glReadPixels
// into a top-down image.
func FramebufferImage(pixels []byte, width, height int) (*image.NRGBA, error) {
	if want := width * height * 4; len(pixels) != want {
		return nil, fmt.Errorf("screenshot: got %d bytes, want %d for %dx%d", len(pixels), want, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowSize : (height-y)*rowSize]
		copy(img.Pix[y*img.Stride:], src)
	}
	// the default framebuffer alpha is not meaningful for a still image
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img, nil
}

func EncodeScreenshot(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("screenshot: encode webp: %w", err)
	}
	return nil
}

// CaptureScreenshot reads the back buffer and writes it to dir as a WebP
// file, returning the file path.
func CaptureScreenshot(dir string, width, height int32) (string, error) {
	pixels := make([]byte, int(width)*int(height)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img, err := FramebufferImage(pixels, int(width), int(height))
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("lumen-%s.webp", time.Now().Format("20060102-150405.000")))

	if err := writeScreenshot(path, img); err != nil {
		return "", err
	}

	logger.Log.Info("Screenshot saved", zap.String("path", path), zap.Int32("width", width), zap.Int32("height", height))
	return path, nil
}

// writeScreenshot encodes img into a new file at path. A failed write or
// close removes the partial file.
func writeScreenshot(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("screenshot: close %s: %w", path, closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return EncodeScreenshot(f, img)
}
