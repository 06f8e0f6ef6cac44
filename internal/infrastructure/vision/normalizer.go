package vision

import (
	"context"
	"errors"
	"image"
	"image/color"
	"slices"

	"skin-vision/internal/domain/entity"
	"skin-vision/internal/domain/port"
)

// LumaNormalizer нормализует яркость без OpenCV, на стандартных типах image.
type LumaNormalizer struct {
	Params entity.NormalizeParams
}

// NewLumaNormalizer создаёт нормализатор с заданными параметрами.
func NewLumaNormalizer(params entity.NormalizeParams) *LumaNormalizer {
	return &LumaNormalizer{Params: params}
}

// Normalize переводит изображение в YCbCr, нормализует Y и оставляет Cb/Cr без изменений.
// Результат всегда *image.YCbCr того же размера, что и src.
func (n *LumaNormalizer) Normalize(ctx context.Context, src image.Image) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if src == nil || src.Bounds().Empty() {
		return nil, errors.New("empty image")
	}

	ycc := toYCbCr(src)
	luma := lumaPlane(ycc)
	setLumaPlane(ycc, NormalizeLuma(luma, n.Params))
	return ycc, nil
}

// toYCbCr возвращает копию изображения в YCbCr.
// Декодированный JPEG уже хранится в YCbCr: плоскости копируются как есть,
// вместе с прореживанием цветности.
func toYCbCr(src image.Image) *image.YCbCr {
	if ycc, ok := src.(*image.YCbCr); ok {
		return &image.YCbCr{
			Y:              slices.Clone(ycc.Y),
			Cb:             slices.Clone(ycc.Cb),
			Cr:             slices.Clone(ycc.Cr),
			YStride:        ycc.YStride,
			CStride:        ycc.CStride,
			SubsampleRatio: ycc.SubsampleRatio,
			Rect:           ycc.Rect,
		}
	}

	b := src.Bounds()
	dst := image.NewYCbCr(b, image.YCbCrSubsampleRatio444)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := opaqueRGB(src.At(x, y))
			yy, cb, cr := color.RGBToYCbCr(r, g, bl)
			dst.Y[dst.YOffset(x, y)] = yy
			off := dst.COffset(x, y)
			dst.Cb[off] = cb
			dst.Cr[off] = cr
		}
	}
	return dst
}

// lumaPlane собирает канал Y в непрерывный срез w*h.
func lumaPlane(ycc *image.YCbCr) []uint8 {
	b := ycc.Rect
	w := b.Dx()
	out := make([]uint8, 0, w*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := ycc.YOffset(b.Min.X, y)
		out = append(out, ycc.Y[start:start+w]...)
	}
	return out
}

func setLumaPlane(ycc *image.YCbCr, luma []uint8) {
	b := ycc.Rect
	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := ycc.YOffset(b.Min.X, y)
		row := (y - b.Min.Y) * w
		copy(ycc.Y[start:start+w], luma[row:row+w])
	}
}

// Проверка реализации интерфейса
var _ port.ImageNormalizer = (*LumaNormalizer)(nil)
