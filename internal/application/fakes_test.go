package app

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"

	"skin-vision/internal/domain/entity"
)

type fakeModel struct {
	mu     sync.Mutex
	scores []float32
	err    error
	calls  int
}

func (m *fakeModel) Predict(ctx context.Context, input []float32) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.scores, nil
}

func (m *fakeModel) Close() error { return nil }

func (m *fakeModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// routedModel возвращает оценки по цвету красного канала первого пикселя.
type routedModel struct {
	byRed map[float32][]float32
	calls int
}

func (m *routedModel) Predict(ctx context.Context, input []float32) ([]float32, error) {
	m.calls++
	scores, ok := m.byRed[input[0]]
	if !ok {
		return nil, errors.New("unexpected input")
	}
	return scores, nil
}

func (m *routedModel) Close() error { return nil }

type fakeEncoder struct{}

func (fakeEncoder) Encode(img image.Image) ([]float32, error) {
	if img == nil {
		return nil, errors.New("empty image")
	}
	r, g, b, _ := img.At(img.Bounds().Min.X, img.Bounds().Min.Y).RGBA()
	return []float32{float32(r >> 8), float32(g >> 8), float32(b >> 8)}, nil
}

type fakeReporter struct {
	mu        sync.Mutex
	summaries []entity.BatchSummary
	tallies   []entity.Tally
	failWith  error
}

func (r *fakeReporter) NormalizeFinished(ctx context.Context, summary entity.BatchSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries = append(r.summaries, summary)
	return r.failWith
}

func (r *fakeReporter) EvaluationFinished(ctx context.Context, tally entity.Tally) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tallies = append(r.tallies, tally)
	return r.failWith
}

func solidImage(red uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: red, G: uint8(x * 40), B: uint8(y * 40), A: 255})
		}
	}
	return img
}
