package quiz

import "testing"

func TestNewQuestion_Valid(t *testing.T) {
	q, err := NewQuestion("Capital of France?", []Answer{
		{Text: "Berlin"},
		{Text: "Paris", Correct: true},
		{Text: "Madrid"},
		{Text: "Rome"},
	})
	if err != nil {
		t.Fatalf("NewQuestion returned error: %v", err)
	}
	if q.CorrectIndex() != 1 {
		t.Errorf("CorrectIndex = %d, want 1", q.CorrectIndex())
	}
	if len(q.Answers) != 4 {
		t.Errorf("len(Answers) = %d, want 4", len(q.Answers))
	}
}

func TestNewQuestion_TooFewAnswers(t *testing.T) {
	_, err := NewQuestion("Lonely?", []Answer{{Text: "Yes", Correct: true}})
	if err == nil {
		t.Error("expected error for single-answer question")
	}
}

func TestNewQuestion_CorrectCount(t *testing.T) {
	tests := []struct {
		name    string
		answers []Answer
	}{
		{"no correct answer", []Answer{{Text: "A"}, {Text: "B"}}},
		{"two correct answers", []Answer{{Text: "A", Correct: true}, {Text: "B", Correct: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewQuestion("Q", tt.answers); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewQuestion_CopiesAnswers(t *testing.T) {
	answers := []Answer{
		{Text: "A", Correct: true},
		{Text: "B"},
	}
	q, err := NewQuestion("Q", answers)
	if err != nil {
		t.Fatalf("NewQuestion returned error: %v", err)
	}

	answers[0].Text = "mutated"
	if q.Answers[0].Text != "A" {
		t.Error("question shares backing array with caller's slice")
	}
}
