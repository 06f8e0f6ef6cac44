package app

import (
	"context"
	"fmt"
	"log"

	"skin-vision/internal/domain/entity"
	"skin-vision/internal/domain/port"
)

// EvaluationSet каталоги с разметкой: все файлы внутри относятся к одному классу.
type EvaluationSet struct {
	AtopicDir string
	OtherDir  string
}

// EvaluationService прогоняет классификатор по размеченным каталогам.
type EvaluationService struct {
	walker     port.DatasetWalker
	classifier *ClassificationService
	reporter   port.Reporter
}

// NewEvaluationService создаёт сервис оценки. reporter может быть nil.
func NewEvaluationService(walker port.DatasetWalker, classifier *ClassificationService, reporter port.Reporter) *EvaluationService {
	return &EvaluationService{
		walker:     walker,
		classifier: classifier,
		reporter:   reporter,
	}
}

// Evaluate классифицирует каждый не скрытый файл обоих деревьев и считает
// верные и неверные ответы. Каждое дерево обходится ровно один раз.
func (s *EvaluationService) Evaluate(ctx context.Context, set EvaluationSet) (entity.Tally, error) {
	var tally entity.Tally

	err := s.walker.Walk(ctx, set.AtopicDir, func(name string) error {
		pred, err := s.classifier.ClassifyFile(ctx, name)
		if err != nil {
			return fmt.Errorf("classify %s: %w", name, err)
		}
		tally.RecordAtopic(pred.Class)
		return nil
	})
	if err != nil {
		return entity.Tally{}, err
	}

	err = s.walker.Walk(ctx, set.OtherDir, func(name string) error {
		pred, err := s.classifier.ClassifyFile(ctx, name)
		if err != nil {
			return fmt.Errorf("classify %s: %w", name, err)
		}
		tally.RecordOther(pred.Class)
		return nil
	})
	if err != nil {
		return entity.Tally{}, err
	}

	if s.reporter != nil {
		if err := s.reporter.EvaluationFinished(ctx, tally); err != nil {
			log.Printf("Error sending evaluation report: %v", err)
		}
	}
	return tally, nil
}
