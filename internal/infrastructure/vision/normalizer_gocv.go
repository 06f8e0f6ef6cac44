//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"skin-vision/internal/domain/entity"
	"skin-vision/internal/domain/port"
)

type GoCVNormalizer struct {
	Params entity.NormalizeParams
}

// NewGoCVNormalizer создаёт нормализатор на OpenCV.
func NewGoCVNormalizer(params entity.NormalizeParams) *GoCVNormalizer {
	return &GoCVNormalizer{Params: params}
}

// Normalize раскладывает изображение на Y/Cr/Cb, нормализует Y и собирает обратно.
func (n *GoCVNormalizer) Normalize(ctx context.Context, src image.Image) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if src == nil || src.Bounds().Empty() {
		return nil, errors.New("empty image")
	}

	mat, err := gocv.ImageToMatRGB(src)
	if err != nil {
		return nil, fmt.Errorf("image to mat: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	ycrcb := gocv.NewMat()
	defer ycrcb.Close()
	gocv.CvtColor(mat, &ycrcb, gocv.ColorBGRToYCrCb)

	channels := gocv.Split(ycrcb)
	for i := range channels {
		defer channels[i].Close()
	}
	if len(channels) < 3 {
		return nil, fmt.Errorf("invalid ycrcb channels: %d", len(channels))
	}

	// Цветность (Cr, Cb) не трогаем, меняется только яркость.
	luma := NormalizeLuma(channels[0].ToBytes(), n.Params)
	y, err := gocv.NewMatFromBytes(channels[0].Rows(), channels[0].Cols(), gocv.MatTypeCV8U, luma)
	if err != nil {
		return nil, fmt.Errorf("luma mat: %w", err)
	}
	defer y.Close()

	merged := gocv.NewMat()
	defer merged.Close()
	gocv.Merge([]gocv.Mat{y, channels[1], channels[2]}, &merged)

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(merged, &bgr, gocv.ColorYCrCbToBGR)

	return bgr.ToImage()
}

// Проверка реализации интерфейса
var _ port.ImageNormalizer = (*GoCVNormalizer)(nil)
