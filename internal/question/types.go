package question

// Type identifies the kind of a question.
type Type string

const (
	// MultipleChoice questions carry a list of options.
	MultipleChoice Type = "multiple_choice_question"
	// ShortAnswer questions are answered with free text.
	ShortAnswer Type = "short_answer_question"
)

// Valid reports whether the type is one of the known variants.
func (t Type) Valid() bool {
	switch t {
	case MultipleChoice, ShortAnswer:
		return true
	default:
		return false
	}
}

// Bank is the file envelope for a question collection loaded from JSON or YAML.
type Bank struct {
	Version   int        `json:"version" yaml:"version"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question represents a single quiz question.
type Question struct {
	ID        int      `json:"id" yaml:"id" validate:"gte=0"`
	Name      string   `json:"name" yaml:"name"`
	Body      string   `json:"body" yaml:"body"`
	Type      Type     `json:"type" yaml:"type" validate:"required,oneof=multiple_choice_question short_answer_question"`
	Options   []string `json:"options" yaml:"options"`
	Expected  string   `json:"expected" yaml:"expected"`
	Points    int      `json:"points" yaml:"points" validate:"gte=0"`
	Published bool     `json:"published" yaml:"published"`
}

// Answer records a respondent's answer to one question.
type Answer struct {
	QuestionID int    `json:"questionId" yaml:"questionId"`
	Text       string `json:"text" yaml:"text"`
	Submitted  bool   `json:"submitted" yaml:"submitted"`
	Correct    bool   `json:"correct" yaml:"correct"`
}
