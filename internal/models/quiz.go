package models

// Question is a single multiple-choice quiz question.
type Question struct {
	ID            int      `json:"id"`            // Question id, unique within its quiz
	Question      string   `json:"question"`      // Prompt text
	Options       []string `json:"options"`       // Ordered answer options
	CorrectAnswer int      `json:"correctAnswer"` // Index into Options
}

// MuseumQuiz is the question set for one museum.
type MuseumQuiz struct {
	MuseumName string     `json:"museumName,omitempty"` // Museum name, for display
	Questions  []Question `json:"questions"`            // Ordered questions
}

// QuizAnswer records a single answered question inside a quiz attempt.
type QuizAnswer struct {
	QuestionID     int `json:"questionId"`     // Question id
	SelectedAnswer int `json:"selectedAnswer"` // Option index chosen by the user
	CorrectAnswer  int `json:"correctAnswer"`  // Option index that was correct
}
