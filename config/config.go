package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Бэкенды нормализации
const (
	BackendGo   = "go"
	BackendGoCV = "gocv"
)

type Config struct {
	// Нормализация
	SourceDir         string
	InputPattern      string
	OutputDir         string
	NormalizeWorkers  int
	NormalizerBackend string
	JPEGQuality       int
	ProgressEvery     int

	// Модели
	Model1Path     string
	Model1Metadata string
	Model2Path     string
	Model2Metadata string
	OnnxRuntimeLib string
	ImageSize      int
	TensorLayout   string
	PixelScale     float64

	// Тестовая выборка
	TestDataDir string
	AtopicDir   string
	OtherDir    string

	// Telegram
	TelegramToken  string
	TelegramChatID int64
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		SourceDir:         getEnv("SOURCE_DIR", "./Dataset/original_data/Other/AtopicDermatitis/arm"),
		InputPattern:      getEnv("INPUT_PATTERN", "*.jpg"),
		OutputDir:         getEnv("OUTPUT_DIR", "./norm_vt_"),
		NormalizerBackend: getEnv("NORMALIZER_BACKEND", BackendGo),

		Model1Path:     getEnv("MODEL1_PATH", "models_and_weights/model_m1.onnx"),
		Model1Metadata: getEnv("MODEL1_METADATA", "models_and_weights/model_m1.json"),
		Model2Path:     getEnv("MODEL2_PATH", "models_and_weights/model_m2.onnx"),
		Model2Metadata: getEnv("MODEL2_METADATA", "models_and_weights/model_m2.json"),
		OnnxRuntimeLib: os.Getenv("ONNXRUNTIME_LIB"),
		TensorLayout:   getEnv("TENSOR_LAYOUT", "NHWC"),

		TestDataDir: getEnv("TEST_DATA_DIR", "Test_Data"),
		AtopicDir:   getEnv("ATOPIC_DIR", "AtopicDermatitis"),
		OtherDir:    getEnv("OTHER_DIR", "Other"),

		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	var err error
	if cfg.NormalizeWorkers, err = getInt("NORMALIZE_WORKERS", 1); err != nil {
		return nil, err
	}
	if cfg.JPEGQuality, err = getInt("JPEG_QUALITY", 75); err != nil {
		return nil, err
	}
	if cfg.ProgressEvery, err = getInt("PROGRESS_EVERY", 100); err != nil {
		return nil, err
	}
	if cfg.ImageSize, err = getInt("IMAGE_SIZE", 128); err != nil {
		return nil, err
	}
	if cfg.PixelScale, err = getFloat("PIXEL_SCALE", 1.0); err != nil {
		return nil, err
	}
	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		if cfg.TelegramChatID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет диапазоны значений.
func (c *Config) Validate() error {
	var errs []error
	if c.NormalizeWorkers < 1 {
		errs = append(errs, fmt.Errorf("NORMALIZE_WORKERS must be >= 1, got %d", c.NormalizeWorkers))
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("JPEG_QUALITY must be in 1..100, got %d", c.JPEGQuality))
	}
	if c.ProgressEvery < 1 {
		errs = append(errs, fmt.Errorf("PROGRESS_EVERY must be >= 1, got %d", c.ProgressEvery))
	}
	if c.ImageSize < 1 {
		errs = append(errs, fmt.Errorf("IMAGE_SIZE must be >= 1, got %d", c.ImageSize))
	}
	if c.NormalizerBackend != BackendGo && c.NormalizerBackend != BackendGoCV {
		errs = append(errs, fmt.Errorf("NORMALIZER_BACKEND must be %q or %q, got %q", BackendGo, BackendGoCV, c.NormalizerBackend))
	}
	if c.TensorLayout != "NHWC" && c.TensorLayout != "NCHW" {
		errs = append(errs, fmt.Errorf("TENSOR_LAYOUT must be NHWC or NCHW, got %q", c.TensorLayout))
	}
	if c.PixelScale <= 0 {
		errs = append(errs, fmt.Errorf("PIXEL_SCALE must be > 0, got %g", c.PixelScale))
	}
	return errors.Join(errs...)
}

// AtopicPath каталог тестовых снимков атопического дерматита.
func (c *Config) AtopicPath() string {
	return filepath.Join(c.TestDataDir, c.AtopicDir)
}

// OtherPath каталог тестовых снимков прочих заболеваний.
func (c *Config) OtherPath() string {
	return filepath.Join(c.TestDataDir, c.OtherDir)
}

// NotifyEnabled включены ли уведомления об итогах в Telegram.
func (c *Config) NotifyEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getFloat(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
