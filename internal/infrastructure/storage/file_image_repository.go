package storage

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"skin-vision/internal/domain/port"
)

// DefaultJPEGQuality качество JPEG по умолчанию.
const DefaultJPEGQuality = 75

// FileImageRepository хранилище изображений в каталоге на диске.
// Имена, которые возвращают List и Walk, это пути, пригодные для Load.
type FileImageRepository struct {
	dir     string
	pattern string
	quality int
}

// NewFileImageRepository создаёт хранилище поверх каталога dir.
// pattern отбирает входные файлы для List (например "*.jpg").
func NewFileImageRepository(dir, pattern string, quality int) *FileImageRepository {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &FileImageRepository{
		dir:     dir,
		pattern: pattern,
		quality: quality,
	}
}

// EnsureDir создаёт каталог хранилища, если его нет.
func (r *FileImageRepository) EnsureDir() error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", r.dir, err)
	}
	return nil
}

// Location возвращает каталог хранилища.
func (r *FileImageRepository) Location() string {
	return r.dir
}

// List возвращает пути файлов по шаблону в естественном порядке.
func (r *FileImageRepository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	paths, err := filepath.Glob(filepath.Join(r.dir, r.pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", r.pattern, err)
	}
	SortNatural(paths)
	return paths, nil
}

// Load читает и декодирует изображение (JPEG, PNG, GIF, BMP, WebP).
func (r *FileImageRepository) Load(ctx context.Context, name string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", port.ErrNotFound, name)
		}
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Save пишет изображение в каталог хранилища под базовым именем name.
// Формат выбирается по расширению: .png в PNG, остальное в JPEG.
func (r *FileImageRepository) Save(ctx context.Context, name string, img image.Image) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := filepath.Join(r.dir, filepath.Base(name))
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", out, cerr)
		}
	}()

	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		err = png.Encode(f, img)
	default:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: r.quality})
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	return nil
}

// Walk обходит дерево root внутри каталога хранилища, пропуская скрытые файлы.
func (r *FileImageRepository) Walk(ctx context.Context, root string, fn func(name string) error) error {
	return filepath.WalkDir(filepath.Join(r.dir, root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || isHidden(d.Name()) {
			return nil
		}
		return fn(path)
	})
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Проверка реализации интерфейсов
var (
	_ port.ImageRepository = (*FileImageRepository)(nil)
	_ port.DatasetWalker   = (*FileImageRepository)(nil)
)
