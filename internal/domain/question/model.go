package question

import "strings"

const (
	TypeMultipleChoice = "multiple-choice"
	TypeEssay          = "essay"
	TypeListening      = "listening"
	TypeReading        = "reading"
	TypeSpeaking       = "speaking"
	TypeShortAnswer    = "short-answer"
)

const (
	SectionListening = "listening"
	SectionReading   = "reading"
	SectionWriting   = "writing"
	SectionSpeaking  = "speaking"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

func ValidType(t string) bool {
	switch t {
	case TypeMultipleChoice, TypeEssay, TypeListening, TypeReading, TypeSpeaking, TypeShortAnswer:
		return true
	}
	return false
}

func ValidSection(s string) bool {
	switch s {
	case SectionListening, SectionReading, SectionWriting, SectionSpeaking:
		return true
	}
	return false
}

func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is a mock-test bank entry, stored at questions/<id>.
// TimeLimit is in minutes.
type Question struct {
	ID            string   `json:"id,omitempty"`
	Type          string   `json:"type"`
	Section       string   `json:"section"`
	Difficulty    string   `json:"difficulty"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Points        int      `json:"points"`
	TimeLimit     int      `json:"timeLimit"`
	Explanation   string   `json:"explanation,omitempty"`
	Tags          []string `json:"tags"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
	CreatedBy     string   `json:"createdBy,omitempty"`
}

type CreateQuestionInput struct {
	Type          string   `json:"type"`
	Section       string   `json:"section"`
	Difficulty    string   `json:"difficulty"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Points        int      `json:"points,omitempty"`
	TimeLimit     int      `json:"timeLimit,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

func (in *CreateQuestionInput) Trim() {
	in.Type = strings.TrimSpace(in.Type)
	in.Section = strings.TrimSpace(in.Section)
	in.Difficulty = strings.TrimSpace(in.Difficulty)
	in.Question = strings.TrimSpace(in.Question)
	in.CorrectAnswer = strings.TrimSpace(in.CorrectAnswer)
}

type UpdateQuestionInput struct {
	Type          *string   `json:"type,omitempty"`
	Section       *string   `json:"section,omitempty"`
	Difficulty    *string   `json:"difficulty,omitempty"`
	Question      *string   `json:"question,omitempty"`
	Options       *[]string `json:"options,omitempty"`
	CorrectAnswer *string   `json:"correctAnswer,omitempty"`
	Points        *int      `json:"points,omitempty"`
	TimeLimit     *int      `json:"timeLimit,omitempty"`
	Explanation   *string   `json:"explanation,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
}

func (in UpdateQuestionInput) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.Type != nil {
		f["type"] = strings.TrimSpace(*in.Type)
	}
	if in.Section != nil {
		f["section"] = strings.TrimSpace(*in.Section)
	}
	if in.Difficulty != nil {
		f["difficulty"] = strings.TrimSpace(*in.Difficulty)
	}
	if in.Question != nil {
		f["question"] = strings.TrimSpace(*in.Question)
	}
	if in.Options != nil {
		f["options"] = *in.Options
	}
	if in.CorrectAnswer != nil {
		f["correctAnswer"] = strings.TrimSpace(*in.CorrectAnswer)
	}
	if in.Points != nil {
		f["points"] = *in.Points
	}
	if in.TimeLimit != nil {
		f["timeLimit"] = *in.TimeLimit
	}
	if in.Explanation != nil {
		f["explanation"] = *in.Explanation
	}
	if in.Tags != nil {
		f["tags"] = *in.Tags
	}
	return f
}
