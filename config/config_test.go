package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"SOURCE_DIR", "INPUT_PATTERN", "OUTPUT_DIR", "NORMALIZE_WORKERS", "NORMALIZER_BACKEND",
	"JPEG_QUALITY", "PROGRESS_EVERY", "MODEL1_PATH", "MODEL1_METADATA", "MODEL2_PATH",
	"MODEL2_METADATA", "ONNXRUNTIME_LIB", "IMAGE_SIZE", "TENSOR_LAYOUT", "PIXEL_SCALE",
	"TEST_DATA_DIR", "ATOPIC_DIR", "OTHER_DIR", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID",
}

func clearEnv(t *testing.T) {
	t.Helper()
	// .env ищется в текущем каталоге, уводим тест в пустой
	t.Chdir(t.TempDir())
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "./Dataset/original_data/Other/AtopicDermatitis/arm", cfg.SourceDir)
	require.Equal(t, "*.jpg", cfg.InputPattern)
	require.Equal(t, "./norm_vt_", cfg.OutputDir)
	require.Equal(t, 1, cfg.NormalizeWorkers)
	require.Equal(t, BackendGo, cfg.NormalizerBackend)
	require.Equal(t, 75, cfg.JPEGQuality)
	require.Equal(t, 100, cfg.ProgressEvery)
	require.Equal(t, 128, cfg.ImageSize)
	require.Equal(t, "NHWC", cfg.TensorLayout)
	require.Equal(t, 1.0, cfg.PixelScale)
	require.Equal(t, filepath.Join("Test_Data", "AtopicDermatitis"), cfg.AtopicPath())
	require.Equal(t, filepath.Join("Test_Data", "Other"), cfg.OtherPath())
	require.False(t, cfg.NotifyEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("NORMALIZE_WORKERS", "4")
	t.Setenv("NORMALIZER_BACKEND", "gocv")
	t.Setenv("PIXEL_SCALE", "0.00392")
	t.Setenv("TENSOR_LAYOUT", "NCHW")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 4, cfg.NormalizeWorkers)
	require.Equal(t, BackendGoCV, cfg.NormalizerBackend)
	require.InDelta(t, 0.00392, cfg.PixelScale, 1e-12)
	require.Equal(t, "NCHW", cfg.TensorLayout)
	require.Equal(t, int64(-100123), cfg.TelegramChatID)
	require.True(t, cfg.NotifyEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"NORMALIZE_WORKERS":  "zero",
		"JPEG_QUALITY":       "101",
		"PROGRESS_EVERY":     "0",
		"IMAGE_SIZE":         "-1",
		"NORMALIZER_BACKEND": "vips",
		"TENSOR_LAYOUT":      "CHW",
		"PIXEL_SCALE":        "abc",
		"TELEGRAM_CHAT_ID":   "chat",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}
