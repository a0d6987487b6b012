package question

import "testing"

// TestGrade verifies known answers are submitted and checked.
func TestGrade(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Text: " 4 "},
		{QuestionID: 5, Text: "apple"},
		{QuestionID: 99, Text: "??"},
		{QuestionID: 5, Text: "Red"},
		{QuestionID: 5, Text: "red"},
	}
	graded := Grade(sampleQuestions(), answers)
	if !graded[0].Submitted || !graded[0].Correct {
		t.Fatalf("expected first answer correct, got %+v", graded[0])
	}
	if !graded[1].Submitted || graded[1].Correct {
		t.Fatalf("expected second answer incorrect, got %+v", graded[1])
	}
	if graded[2].Submitted || graded[2].Correct {
		t.Fatalf("expected unknown question untouched, got %+v", graded[2])
	}
	if !graded[3].Submitted || graded[3].Correct {
		t.Fatalf("expected answer outside the options to be incorrect, got %+v", graded[3])
	}
	if !graded[4].Correct {
		t.Fatalf("expected listed option to be correct, got %+v", graded[4])
	}
	if answers[0].Submitted {
		t.Fatalf("input was modified")
	}
}

// TestScore verifies correct answers add their question's points once.
func TestScore(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Text: "4"},
		{QuestionID: 9, Text: "circle"},
		{QuestionID: 9, Text: "Circle"},
		{QuestionID: 2, Text: "a"},
	}
	if got := Score(sampleQuestions(), answers); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := Score(sampleQuestions(), MakeAnswers(sampleQuestions())); got != 0 {
		t.Fatalf("expected blank answers to score 0, got %d", got)
	}
}
