package vision

import (
	"errors"
	"fmt"
	"image"

	"github.com/nfnt/resize"

	"skin-vision/internal/domain/port"
)

// Layout порядок осей входного тензора модели.
type Layout string

const (
	LayoutNHWC Layout = "NHWC" // пиксель за пикселем, каналы подряд (Keras)
	LayoutNCHW Layout = "NCHW" // плоскости каналов подряд
)

// ParseLayout разбирает строковое значение раскладки.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutNHWC, LayoutNCHW:
		return Layout(s), nil
	default:
		return "", fmt.Errorf("unknown tensor layout %q", s)
	}
}

// TensorEncoder готовит изображение для модели: приводит к Width x Height
// ближайшим соседом и раскладывает RGB в float32, умножая на Scale.
type TensorEncoder struct {
	Width  int
	Height int
	Layout Layout
	Scale  float32
}

// NewTensorEncoder создаёт кодировщик для квадратного входа size x size.
func NewTensorEncoder(size int, layout Layout, scale float32) *TensorEncoder {
	return &TensorEncoder{
		Width:  size,
		Height: size,
		Layout: layout,
		Scale:  scale,
	}
}

// Len размер тензора в элементах.
func (e *TensorEncoder) Len() int {
	return 3 * e.Width * e.Height
}

// Encode масштабирует изображение и возвращает тензор одного примера.
func (e *TensorEncoder) Encode(img image.Image) ([]float32, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("empty image")
	}
	if e.Width <= 0 || e.Height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", e.Width, e.Height)
	}

	resized := resize.Resize(uint(e.Width), uint(e.Height), dropAlpha(img), resize.NearestNeighbor)
	b := resized.Bounds()
	w, h := b.Dx(), b.Dy()
	plane := w * h

	data := make([]float32, 3*plane)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl := opaqueRGB(resized.At(b.Min.X+x, b.Min.Y+y))
			px := [3]float32{float32(r), float32(g), float32(bl)}

			idx := y*w + x
			for c, v := range px {
				v *= e.Scale
				if e.Layout == LayoutNCHW {
					data[c*plane+idx] = v
				} else {
					data[idx*3+c] = v
				}
			}
		}
	}
	return data, nil
}

// Проверка реализации интерфейса
var _ port.TensorEncoder = (*TensorEncoder)(nil)
