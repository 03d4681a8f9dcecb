package models

type QuizQuestion struct {
	Word          Word     `json:"word"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type QuizScore struct {
	CorrectCount int `json:"correct_count"`
	Percentage   int `json:"percentage"`
}
