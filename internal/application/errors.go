package app

import "errors"

var (
	ErrNormalizerNotConfigured = errors.New("normalizer is not configured")
	ErrModelNotConfigured      = errors.New("model is not configured")
	ErrLoaderNotConfigured     = errors.New("image loader is not configured")
)
