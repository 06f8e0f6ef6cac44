//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"
	"image"

	"skin-vision/internal/domain/entity"
)

type GoCVNormalizer struct {
	Params entity.NormalizeParams
}

// NewGoCVNormalizer создаёт нормализатор-заглушку (без OpenCV).
func NewGoCVNormalizer(params entity.NormalizeParams) *GoCVNormalizer {
	return &GoCVNormalizer{Params: params}
}

// Normalize возвращает ошибку, если сборка без тега gocv.
func (n *GoCVNormalizer) Normalize(ctx context.Context, src image.Image) (image.Image, error) {
	_ = ctx
	_ = src
	return nil, errors.New("gocv build tag is not enabled")
}
