package vision

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"skin-vision/internal/domain/entity"
)

func randomLuma(n int, seed int64) []uint8 {
	rnd := rand.New(rand.NewSource(seed))
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(rnd.Intn(256))
	}
	return out
}

func TestStandardize_ZeroMeanUnitStd(t *testing.T) {
	values, ok := Standardize(randomLuma(64*48, 1))
	require.True(t, ok)

	mean, std := stat.PopMeanStdDev(values, nil)
	require.InDelta(t, 0, mean, 1e-9)
	require.InDelta(t, 1, std, 1e-9)
}

func TestStandardize_Flat(t *testing.T) {
	luma := []uint8{77, 77, 77, 77}
	_, ok := Standardize(luma)
	require.False(t, ok)

	_, ok = Standardize(nil)
	require.False(t, ok)
}

func TestPercentile_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	require.InDelta(t, 1.0, Percentile(sorted, 0), 1e-12)
	require.InDelta(t, 4.0, Percentile(sorted, 100), 1e-12)
	require.InDelta(t, 2.5, Percentile(sorted, 50), 1e-12)
	// rank = 0.99 * 3 = 2.97
	require.InDelta(t, 3.97, Percentile(sorted, 99), 1e-12)
	// rank = 0.01 * 3 = 0.03
	require.InDelta(t, 1.03, Percentile(sorted, 1), 1e-12)

	require.True(t, math.IsNaN(Percentile(nil, 50)))
}

func TestStretch_RangeAndClip(t *testing.T) {
	values := make([]float64, 101)
	for i := range values {
		values[i] = float64(i-50) / 10 // -5 .. 5
	}
	out := Stretch(values, entity.DefaultNormalizeParams())
	require.Len(t, out, len(values))

	// модуль 1-го и 99-го перцентиля равен 4.9, всё за пределами обрезается
	require.Equal(t, uint8(0), out[0])
	require.Equal(t, uint8(255), out[100])
	require.Equal(t, uint8(128), out[50])
	for i := 1; i < len(out); i++ {
		require.GreaterOrEqual(t, out[i], out[i-1])
	}
}

func TestNormalizeLuma_FlatImage(t *testing.T) {
	out := NormalizeLuma([]uint8{10, 10, 10}, entity.DefaultNormalizeParams())
	require.Equal(t, []uint8{128, 128, 128}, out)
}

func TestNormalizeLuma_PreservesOrder(t *testing.T) {
	luma := randomLuma(1000, 7)
	out := NormalizeLuma(luma, entity.DefaultNormalizeParams())
	require.Len(t, out, len(luma))

	for i := range luma {
		for j := range luma {
			if luma[i] < luma[j] {
				require.LessOrEqual(t, out[i], out[j])
			}
		}
		if i > 20 {
			break
		}
	}
}
