// Package scoring validates submitted answers against canonical ones and
// turns a full answer set into per-question and aggregate results.
package scoring

// Answer is the closed union of submitted-answer shapes. Exactly one
// field is populated, matching the question kind it answers:
//
//	multiple choice (single)  SelectedIndex
//	multiple choice (multi)   SelectedIndexes
//	true/false                BoolValue
//	short answer, code        Text
//	fill in the blank         Blanks (one entry per blank, in position order)
//	matching                  Pairs (left index -> right index)
//	ordering                  Order (item ids in submitted sequence)
type Answer struct {
	SelectedIndex   *int        `json:"selectedIndex,omitempty"`
	SelectedIndexes []int       `json:"selectedIndexes,omitempty"`
	BoolValue       *bool       `json:"boolValue,omitempty"`
	Text            *string     `json:"text,omitempty"`
	Blanks          []string    `json:"blanks,omitempty"`
	Pairs           map[int]int `json:"pairs,omitempty"`
	Order           []string    `json:"order,omitempty"`
}

// IndexAnswer wraps a single option index.
func IndexAnswer(i int) Answer { return Answer{SelectedIndex: &i} }

// IndexesAnswer wraps a multi-select option index set.
func IndexesAnswer(idx ...int) Answer { return Answer{SelectedIndexes: idx} }

// BoolAnswer wraps a true/false response.
func BoolAnswer(v bool) Answer { return Answer{BoolValue: &v} }

// TextAnswer wraps a free-text response.
func TextAnswer(s string) Answer { return Answer{Text: &s} }

// BlanksAnswer wraps fill-in-the-blank responses in position order.
func BlanksAnswer(blanks ...string) Answer { return Answer{Blanks: blanks} }

// PairsAnswer wraps a matching response.
func PairsAnswer(pairs map[int]int) Answer { return Answer{Pairs: pairs} }

// OrderAnswer wraps an ordering response.
func OrderAnswer(ids ...string) Answer { return Answer{Order: ids} }

// UserAnswer is one learner response to one question. TimeSpent is in
// seconds; zero means the UI did not capture timing.
type UserAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     Answer `json:"answer"`
	TimeSpent  int    `json:"timeSpent,omitempty"`
}
