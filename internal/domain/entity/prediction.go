package entity

import "errors"

// ErrEmptyScores возвращается, если модель не вернула ни одного значения.
var ErrEmptyScores = errors.New("model returned empty scores")

// Prediction результат каскадной классификации одного изображения.
type Prediction struct {
	Primary      int    // argmax первой модели
	HasSecondary bool   // запускалась ли вторая модель
	Secondary    int    // argmax второй модели (если HasSecondary)
	Class        int    // итоговый индекс класса
	Label        string // подпись итогового класса
}

// Argmax возвращает индекс максимального значения. При равенстве выигрывает первый.
func Argmax(scores []float32) (int, error) {
	if len(scores) == 0 {
		return 0, ErrEmptyScores
	}
	best := 0
	for i, v := range scores[1:] {
		if v > scores[best] {
			best = i + 1
		}
	}
	return best, nil
}
