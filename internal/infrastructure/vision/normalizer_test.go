package vision

import (
	"context"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"skin-vision/internal/domain/entity"
)

func noisyRGBA(w, h int, seed int64) *image.RGBA {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rnd.Intn(256)),
				G: uint8(rnd.Intn(256)),
				B: uint8(rnd.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

func noisyYCbCr(w, h int, ratio image.YCbCrSubsampleRatio, seed int64) *image.YCbCr {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewYCbCr(image.Rect(0, 0, w, h), ratio)
	for i := range img.Y {
		img.Y[i] = uint8(rnd.Intn(256))
	}
	for i := range img.Cb {
		img.Cb[i] = uint8(rnd.Intn(256))
		img.Cr[i] = uint8(rnd.Intn(256))
	}
	return img
}

func TestLumaNormalizer_YCbCrKeepsChroma(t *testing.T) {
	src := noisyYCbCr(33, 21, image.YCbCrSubsampleRatio420, 3)
	n := NewLumaNormalizer(entity.DefaultNormalizeParams())

	out, err := n.Normalize(context.Background(), src)
	require.NoError(t, err)

	ycc, ok := out.(*image.YCbCr)
	require.True(t, ok)
	require.Equal(t, src.Bounds(), ycc.Bounds())
	require.Equal(t, src.SubsampleRatio, ycc.SubsampleRatio)
	require.Equal(t, src.Cb, ycc.Cb)
	require.Equal(t, src.Cr, ycc.Cr)
	require.NotEqual(t, src.Y, ycc.Y)
}

func TestLumaNormalizer_DoesNotMutateSource(t *testing.T) {
	src := noisyYCbCr(16, 16, image.YCbCrSubsampleRatio444, 5)
	before := append([]uint8(nil), src.Y...)

	_, err := NewLumaNormalizer(entity.DefaultNormalizeParams()).Normalize(context.Background(), src)
	require.NoError(t, err)
	require.Equal(t, before, src.Y)
}

func TestLumaNormalizer_RGBAInput(t *testing.T) {
	src := noisyRGBA(20, 12, 11)
	out, err := NewLumaNormalizer(entity.DefaultNormalizeParams()).Normalize(context.Background(), src)
	require.NoError(t, err)
	require.Equal(t, src.Bounds().Dx(), out.Bounds().Dx())
	require.Equal(t, src.Bounds().Dy(), out.Bounds().Dy())

	ycc := out.(*image.YCbCr)
	luma := make([]uint8, 0, 20*12)
	for y := 0; y < 12; y++ {
		for x := 0; x < 20; x++ {
			c := src.RGBAAt(x, y)
			yy, cb, cr := color.RGBToYCbCr(c.R, c.G, c.B)
			luma = append(luma, yy)
			require.Equal(t, cb, ycc.Cb[ycc.COffset(x, y)])
			require.Equal(t, cr, ycc.Cr[ycc.COffset(x, y)])
		}
	}

	// промежуточная яркость до обрезки имеет среднее 0 и СКО 1
	values, ok := Standardize(luma)
	require.True(t, ok)
	mean, std := stat.PopMeanStdDev(values, nil)
	require.InDelta(t, 0, mean, 1e-9)
	require.InDelta(t, 1, std, 1e-9)

	require.Equal(t, NormalizeLuma(luma, entity.DefaultNormalizeParams()), lumaPlane(ycc))
}

func TestLumaNormalizer_TranslucentChroma(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(200 - 10*x), G: 100, B: uint8(50 + 5*y), A: 128})
		}
	}

	out, err := NewLumaNormalizer(entity.DefaultNormalizeParams()).Normalize(context.Background(), src)
	require.NoError(t, err)

	ycc := out.(*image.YCbCr)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := src.NRGBAAt(x, y)
			_, cb, cr := color.RGBToYCbCr(c.R, c.G, c.B)
			require.Equal(t, cb, ycc.Cb[ycc.COffset(x, y)])
			require.Equal(t, cr, ycc.Cr[ycc.COffset(x, y)])
		}
	}
}

func TestLumaNormalizer_OffsetBounds(t *testing.T) {
	full := noisyYCbCr(40, 40, image.YCbCrSubsampleRatio444, 9)
	sub := full.SubImage(image.Rect(5, 7, 25, 30)).(*image.YCbCr)

	out, err := NewLumaNormalizer(entity.DefaultNormalizeParams()).Normalize(context.Background(), sub)
	require.NoError(t, err)
	require.Equal(t, sub.Bounds(), out.Bounds())
	require.Len(t, lumaPlane(out.(*image.YCbCr)), 20*23)
}

func TestLumaNormalizer_Errors(t *testing.T) {
	n := NewLumaNormalizer(entity.DefaultNormalizeParams())

	_, err := n.Normalize(context.Background(), image.NewRGBA(image.Rect(0, 0, 0, 0)))
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = n.Normalize(ctx, noisyRGBA(4, 4, 1))
	require.ErrorIs(t, err, context.Canceled)
}
