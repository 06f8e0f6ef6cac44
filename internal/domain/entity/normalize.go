package entity

import "time"

// NormalizeParams параметры нормализации яркости.
type NormalizeParams struct {
	ClipLimit      float64 // границы обрезки после масштабирования: [-ClipLimit, ClipLimit]
	LowPercentile  float64 // нижний перцентиль для растяжения контраста
	HighPercentile float64 // верхний перцентиль для растяжения контраста
}

// DefaultNormalizeParams возвращает параметры: обрезка ±1, перцентили 1% и 99%.
func DefaultNormalizeParams() NormalizeParams {
	return NormalizeParams{
		ClipLimit:      1.0,
		LowPercentile:  1.0,
		HighPercentile: 99.0,
	}
}

// BatchSummary итог пакетной нормализации.
type BatchSummary struct {
	Processed int
	OutputDir string
	Elapsed   time.Duration
}
