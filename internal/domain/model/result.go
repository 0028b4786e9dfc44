package model

import "time"

// GradeResult результат проверки одной отправки ответов.
type GradeResult struct {
	Correct int      `json:"correct"`
	Total   int      `json:"total"`
	Percent float64  `json:"percent"`
	Grade   int      `json:"grade"`
	Wrong   []string `json:"wrong"`
}

// ResultEntry строка журнала результатов.
type ResultEntry struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Book      string    `json:"book"`
	GradeResult
}
