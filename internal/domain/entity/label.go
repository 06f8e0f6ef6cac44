package entity

// Индексы классов первой модели.
const (
	ClassAtopic = 0 // Atopic Dermatitis
	ClassOther  = 1 // прочие заболевания кожи
)

// PrimaryLabels подписи классов первой модели (атопический дерматит / прочее).
var PrimaryLabels = []string{"Atopic Dermatitis", "Other"}

// SecondaryLabels подписи подклассов второй модели.
var SecondaryLabels = []string{"class1", "class2", "class3"}

// LabelAt возвращает подпись по индексу или пустую строку, если индекс вне диапазона.
func LabelAt(labels []string, idx int) string {
	if idx < 0 || idx >= len(labels) {
		return ""
	}
	return labels[idx]
}
