package measure

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/waraq/waraq/geometry"
	"github.com/waraq/waraq/model"
)

// imageHeight returns the rendered height of an image block: the intrinsic
// size scaled down to fit the available width, capped at a fraction of the
// available page height.
func (m *BlockMeasurer) imageHeight(node *model.Image, availWidth float64, cd geometry.ContentDimensions, zoom float64) float64 {
	w, h := node.Width, node.Height
	if w <= 0 || h <= 0 {
		if dw, dh, ok := intrinsicSize(node.Data); ok {
			w, h = dw, dh
		} else {
			return m.config.ImageFallbackHeight * zoom
		}
	}

	scaled := h * zoom
	if w*zoom > availWidth {
		scaled = h * availWidth / w
	}

	maxH := cd.AvailableHeight() * m.config.MaxImageHeightFraction
	if maxH > 0 && scaled > maxH {
		scaled = maxH
	}
	return scaled
}

// intrinsicSize decodes only the image header to get pixel dimensions.
// Decoders for BMP, TIFF, and WebP are registered via golang.org/x/image
// imports; JPEG, PNG, and GIF come from the standard library.
func intrinsicSize(data []byte) (w, h float64, ok bool) {
	if len(data) == 0 {
		return 0, 0, false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, false
	}
	return float64(cfg.Width), float64(cfg.Height), true
}
