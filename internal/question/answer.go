package question

// Grade marks every answer whose question exists as submitted and records
// whether it is correct. Multiple choice answers must also name one of the
// options verbatim. Answers for unknown questions are returned unchanged.
func Grade(questions []Question, answers []Answer) []Answer {
	graded := make([]Answer, 0, len(answers))
	for _, answer := range answers {
		if q, ok := Find(questions, answer.QuestionID); ok {
			answer.Submitted = true
			answer.Correct = IsValid(q, answer.Text) && IsCorrect(q, answer.Text)
		}
		graded = append(graded, answer)
	}
	return graded
}

// Score totals the points of the questions answered correctly.
// Each question counts at most once.
func Score(questions []Question, answers []Answer) int {
	seen := map[int]struct{}{}
	total := 0
	for _, answer := range Grade(questions, answers) {
		if !answer.Correct {
			continue
		}
		if _, dup := seen[answer.QuestionID]; dup {
			continue
		}
		seen[answer.QuestionID] = struct{}{}
		q, _ := Find(questions, answer.QuestionID)
		total += q.Points
	}
	return total
}
