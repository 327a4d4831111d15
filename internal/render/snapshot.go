package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// SnapshotCapture writes rendered frames to lossless WebP files, mainly
// for debugging the rasterizer and for asset tooling.
type SnapshotCapture struct {
	outputDir string
	prefix    string
	palette   []color.RGBA
}

// NewSnapshotCapture creates a capture handler expanding frames through
// the given palette.
func NewSnapshotCapture(outputDir, prefix string, palette []color.RGBA) *SnapshotCapture {
	return &SnapshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		palette:   palette,
	}
}

// Capture writes the framebuffer to a timestamped file and returns the
// path.
func (sc *SnapshotCapture) Capture(buf *PixelBuffer) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.webp", sc.prefix, timestamp)
	path := filepath.Join(sc.outputDir, filename)

	if err := sc.CaptureTo(buf, path); err != nil {
		return "", err
	}
	return path, nil
}

// CaptureTo writes the framebuffer to an explicit path.
func (sc *SnapshotCapture) CaptureTo(buf *PixelBuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, buf.RGBA(sc.palette), nil); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}
