package vision

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"skin-vision/internal/domain/entity"
)

// flatLuma значение яркости для вырожденных изображений (нулевое СКО или масштаб).
const flatLuma = 128

// Standardize переводит яркость в [0,1] и приводит её к нулевому среднему
// и единичному СКО (СКО генеральной совокупности).
// ok == false, если СКО равно нулю и нормировать нечего.
func Standardize(luma []uint8) (values []float64, ok bool) {
	values = make([]float64, len(luma))
	for i, v := range luma {
		values[i] = float64(v) / 255
	}
	if len(values) == 0 {
		return values, false
	}

	mean, std := stat.PopMeanStdDev(values, nil)
	floats.AddConst(-mean, values)
	if std == 0 || math.IsNaN(std) {
		return values, false
	}
	floats.Scale(1/std, values)
	return values, true
}

// Percentile считает перцентиль p (0..100) с линейной интерполяцией между
// соседними рангами. sorted должен быть отсортирован по возрастанию.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	rank := p / 100 * float64(n-1)
	rank = math.Max(0, math.Min(rank, float64(n-1)))

	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Stretch масштабирует стандартизованную яркость по модулю перцентилей,
// обрезает до [-ClipLimit, ClipLimit] и переводит в байты [0,255].
func Stretch(values []float64, params entity.NormalizeParams) []uint8 {
	out := make([]uint8, len(values))

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	scale := math.Max(
		math.Abs(Percentile(sorted, params.LowPercentile)),
		math.Abs(Percentile(sorted, params.HighPercentile)),
	)
	limit := params.ClipLimit
	if scale == 0 || math.IsNaN(scale) || limit <= 0 {
		fill(out, flatLuma)
		return out
	}

	for i, v := range values {
		v /= scale
		v = math.Max(-limit, math.Min(v, limit))
		v = (v + limit) / (2 * limit)
		out[i] = uint8(v*255 + 0.5)
	}
	return out
}

// NormalizeLuma стандартизует и растягивает канал яркости целиком.
func NormalizeLuma(luma []uint8, params entity.NormalizeParams) []uint8 {
	values, ok := Standardize(luma)
	if !ok {
		out := make([]uint8, len(luma))
		fill(out, flatLuma)
		return out
	}
	return Stretch(values, params)
}

func fill(buf []uint8, v uint8) {
	for i := range buf {
		buf[i] = v
	}
}
