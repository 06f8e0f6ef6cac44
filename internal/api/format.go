package telegram

import (
	"fmt"
	"strings"
	"time"

	"skin-vision/internal/domain/entity"
)

// formatPrediction текст ответа на классификацию фото.
func formatPrediction(pred *entity.Prediction) string {
	var b strings.Builder
	if pred.HasSecondary {
		fmt.Fprintf(&b, "🔎 Первая модель: %s\n", entity.LabelAt(entity.PrimaryLabels, pred.Primary))
		fmt.Fprintf(&b, "🏷 Подкласс: %s (индекс %d)", labelOrIndex(pred.Label, pred.Class), pred.Class)
		return b.String()
	}
	fmt.Fprintf(&b, "🏷 Класс: %s (индекс %d)", labelOrIndex(pred.Label, pred.Class), pred.Class)
	return b.String()
}

// formatBatchSummary текст уведомления о завершении нормализации.
func formatBatchSummary(s entity.BatchSummary) string {
	return fmt.Sprintf("✅ Нормализация завершена: %d изображений → %s (%s)",
		s.Processed, s.OutputDir, s.Elapsed.Round(time.Millisecond))
}

// formatTally текст уведомления с итогами оценки.
func formatTally(t entity.Tally) string {
	return "📊 Итоги проверки:\n" + strings.Join(t.Lines(), "\n")
}

func labelOrIndex(label string, idx int) string {
	if label == "" {
		return fmt.Sprintf("#%d", idx)
	}
	return label
}
