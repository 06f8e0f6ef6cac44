package storage

import (
	"sort"

	"github.com/maruel/natural"
)

// SortNatural сортирует пути с учётом чисел внутри имён: img2.jpg раньше img10.jpg.
// Сортировка устойчивая, равные по ключу пути сохраняют исходный порядок.
func SortNatural(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return natural.Less(paths[i], paths[j])
	})
}
