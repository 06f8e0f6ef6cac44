package storage

import (
	"context"
	"fmt"
	"image"
	"path"
	"slices"
	"strings"
	"sync"

	"skin-vision/internal/domain/port"
)

// MemoryImageRepository in-memory хранилище изображений
type MemoryImageRepository struct {
	mu      sync.RWMutex
	pattern string
	images  map[string]image.Image
}

// NewMemoryImageRepository создаёт новое in-memory хранилище.
// Пустой pattern означает «все изображения».
func NewMemoryImageRepository(pattern string) *MemoryImageRepository {
	return &MemoryImageRepository{
		pattern: pattern,
		images:  make(map[string]image.Image),
	}
}

// Put кладёт изображение под точным именем name
func (r *MemoryImageRepository) Put(name string, img image.Image) {
	r.mu.Lock()
	r.images[name] = img
	r.mu.Unlock()
}

// Location возвращает условное расположение хранилища
func (r *MemoryImageRepository) Location() string {
	return "memory"
}

// List возвращает имена по шаблону в естественном порядке
func (r *MemoryImageRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.images))
	for name := range r.images {
		if r.pattern != "" {
			ok, err := path.Match(r.pattern, path.Base(name))
			if err != nil {
				return nil, fmt.Errorf("match %s: %w", r.pattern, err)
			}
			if !ok {
				continue
			}
		}
		names = append(names, name)
	}
	// Порядок обхода map случаен: сначала лексикографически, чтобы равные
	// по естественному ключу имена шли в одном и том же порядке.
	slices.Sort(names)
	SortNatural(names)
	return names, nil
}

// Load возвращает изображение по имени
func (r *MemoryImageRepository) Load(ctx context.Context, name string) (image.Image, error) {
	r.mu.RLock()
	img, ok := r.images[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrNotFound, name)
	}
	return img, nil
}

// Save сохраняет изображение под базовым именем
func (r *MemoryImageRepository) Save(ctx context.Context, name string, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.Put(path.Base(name), img)
	return nil
}

// Walk вызывает fn для всех не скрытых имён под root
func (r *MemoryImageRepository) Walk(ctx context.Context, root string, fn func(name string) error) error {
	prefix := strings.TrimSuffix(root, "/") + "/"

	r.mu.RLock()
	names := make([]string, 0, len(r.images))
	for name := range r.images {
		if strings.HasPrefix(name, prefix) && !isHidden(path.Base(name)) {
			names = append(names, name)
		}
	}
	r.mu.RUnlock()

	slices.Sort(names)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(name); err != nil {
			return err
		}
	}
	return nil
}

// Проверка реализации интерфейсов
var (
	_ port.ImageRepository = (*MemoryImageRepository)(nil)
	_ port.DatasetWalker   = (*MemoryImageRepository)(nil)
)
