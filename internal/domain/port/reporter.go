package port

import (
	"context"

	"skin-vision/internal/domain/entity"
)

// Reporter интерфейс отправки итогов запусков
type Reporter interface {
	// NormalizeFinished сообщает об окончании пакетной нормализации
	NormalizeFinished(ctx context.Context, summary entity.BatchSummary) error

	// EvaluationFinished сообщает итоговые счётчики оценки
	EvaluationFinished(ctx context.Context, tally entity.Tally) error
}
