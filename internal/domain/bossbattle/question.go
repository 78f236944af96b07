package bossbattle

// Question is one multiple-choice prompt of a battle.
type Question struct {
	Question  string   `json:"question"`
	Choices   []string `json:"choices"`
	AnswerIdx int      `json:"answer_idx"`
}

var staticBank = []Question{
	{
		Question:  "What is the time complexity of binary search?",
		Choices:   []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"},
		AnswerIdx: 1,
	},
	{
		Question:  "Which HTTP method is idempotent?",
		Choices:   []string{"POST", "PUT", "PATCH", "CONNECT"},
		AnswerIdx: 1,
	},
	{
		Question: "What does SQL stand for?",
		Choices: []string{
			"Simple Query Language",
			"Structured Query Language",
			"Sequential Query Language",
			"System Query Language",
		},
		AnswerIdx: 1,
	},
	{
		Question:  "Which data structure uses FIFO order?",
		Choices:   []string{"Stack", "Queue", "Tree", "Heap"},
		AnswerIdx: 1,
	},
	{
		Question:  "Which status code means 'Not Found'?",
		Choices:   []string{"200", "301", "404", "500"},
		AnswerIdx: 2,
	},
}

// BankSize is the number of built-in questions and the upper bound on
// questions per battle.
func BankSize() int {
	return len(staticBank)
}

// StaticQuestions returns a copy of the first n built-in questions.
func StaticQuestions(n int) []Question {
	if n > len(staticBank) {
		n = len(staticBank)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Question, n)
	for i := range out {
		q := staticBank[i]
		q.Choices = append([]string(nil), q.Choices...)
		out[i] = q
	}
	return out
}
