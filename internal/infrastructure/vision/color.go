package vision

import (
	"image"
	"image/color"
)

// opaqueRGB возвращает RGB пикселя без учёта альфа-канала.
// RGBA() отдаёт значения, умноженные на альфу, поэтому идём через NRGBA.
func opaqueRGB(c color.Color) (r, g, b uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// dropAlpha копирует изображение в непрозрачный RGBA, отбрасывая альфу.
// Непрозрачные изображения возвращаются как есть.
func dropAlpha(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := opaqueRGB(img.At(x, y))
			dst.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 255})
		}
	}
	return dst
}
