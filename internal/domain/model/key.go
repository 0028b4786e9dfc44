package model

import "sort"

// AnswerKey содержит правильные ответы одной книги: номер вопроса -> буква ответа.
// Буквы хранятся в нижнем регистре, номера вопросов внутри ключа уникальны.
type AnswerKey map[int]string

// Questions возвращает номера вопросов ключа по возрастанию.
func (k AnswerKey) Questions() []int {
	qs := make([]int, 0, len(k))
	for q := range k {
		qs = append(qs, q)
	}
	sort.Ints(qs)
	return qs
}

// Clone возвращает независимую копию ключа.
func (k AnswerKey) Clone() AnswerKey {
	cp := make(AnswerKey, len(k))
	for q, a := range k {
		cp[q] = a
	}
	return cp
}
