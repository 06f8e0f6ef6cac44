package container

import (
	app "skin-vision/internal/application"
	"skin-vision/internal/domain/port"
)

// Models две модели каскада и подготовка входа для них.
type Models struct {
	Encoder         port.TensorEncoder
	Primary         port.Model
	Secondary       port.Model
	PrimaryLabels   []string
	SecondaryLabels []string
}

// Options зависимости, из которых собираются сервисы. Незаданные поля допустимы:
// соответствующие сервисы вернут ошибку «not configured» при вызове.
type Options struct {
	Users       port.UserRepository
	Normalizer  port.ImageNormalizer
	Dataset     port.DatasetWalker
	Models      Models
	Reporter    port.Reporter
	Workers     int
	ProgressLog int
}

type Container struct {
	UserService           *app.UserService
	NormalizeService      *app.NormalizeService
	ClassificationService *app.ClassificationService
	EvaluationService     *app.EvaluationService
}

func New(opts Options) *Container {
	var loader port.ImageLoader
	if opts.Dataset != nil {
		loader = opts.Dataset
	}

	classification := app.NewClassificationService(loader, opts.Models.Encoder, opts.Models.Primary, opts.Models.Secondary).
		WithLabels(opts.Models.PrimaryLabels, opts.Models.SecondaryLabels)

	c := &Container{
		NormalizeService:      app.NewNormalizeService(opts.Normalizer, opts.Reporter, opts.Workers, opts.ProgressLog),
		ClassificationService: classification,
	}
	if opts.Users != nil {
		c.UserService = app.NewUserService(opts.Users)
	}
	if opts.Dataset != nil {
		c.EvaluationService = app.NewEvaluationService(opts.Dataset, classification, opts.Reporter)
	}
	return c
}
