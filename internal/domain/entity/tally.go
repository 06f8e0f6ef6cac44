package entity

import "fmt"

// Tally счётчики верных и неверных ответов по двум классам.
type Tally struct {
	AtopicTrue  int
	AtopicFalse int
	OtherTrue   int
	OtherFalse  int
}

// RecordAtopic учитывает ответ для изображения из каталога атопического дерматита.
func (t *Tally) RecordAtopic(class int) {
	if class == ClassAtopic {
		t.AtopicTrue++
		return
	}
	t.AtopicFalse++
}

// RecordOther учитывает ответ для изображения из каталога прочих заболеваний.
func (t *Tally) RecordOther(class int) {
	if class == ClassOther {
		t.OtherTrue++
		return
	}
	t.OtherFalse++
}

// Total общее число учтённых изображений.
func (t Tally) Total() int {
	return t.AtopicTrue + t.AtopicFalse + t.OtherTrue + t.OtherFalse
}

// Lines возвращает итоговые строки в порядке вывода.
func (t Tally) Lines() []string {
	return []string{
		fmt.Sprintf("True Atopic Dermatitis:  %d", t.AtopicTrue),
		fmt.Sprintf("False Atopic Dermatitis:  %d", t.AtopicFalse),
		fmt.Sprintf("True Other:  %d", t.OtherTrue),
		fmt.Sprintf("False Other:  %d", t.OtherFalse),
	}
}
