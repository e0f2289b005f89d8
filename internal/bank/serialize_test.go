package bank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

func TestBank_ExportImportRoundTrip(t *testing.T) {
	src := New()
	require.NoError(t, src.Add(tf("q1", "TS-Basics", question.DifficultyBeginner, 5, "types")))
	require.NoError(t, src.Add(question.Question{
		ID: "q2", Type: question.TypeMultipleChoice, Prompt: "Pick the primitive types",
		Category: "TS-Basics", Difficulty: question.DifficultyIntermediate, Points: 4,
		MultipleChoice: &question.MultipleChoicePayload{
			Options:        []string{"string", "Array", "number", "Map"},
			AllowMultiple:  true,
			CorrectAnswers: []int{0, 2},
		},
	}))
	require.NoError(t, src.Add(question.Question{
		ID: "q3", Type: question.TypeMatching, Prompt: "Match value to type",
		Category: "TS-Advanced", Difficulty: question.DifficultyAdvanced, Points: 6,
		Matching: &question.MatchingPayload{
			LeftItems:    []string{"\"a\"", "42"},
			RightItems:   []string{"number", "string"},
			CorrectPairs: map[int]int{0: 1, 1: 0},
		},
	}))

	data, err := src.ExportJSON()
	require.NoError(t, err)

	dst := New()
	n, err := dst.ImportJSON(data)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, src.Questions(), dst.Questions())
	assert.Equal(t, src.Categories(), dst.Categories())
	assert.Equal(t, src.Tags(), dst.Tags())
}

func TestBank_ImportJSON_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not JSON", `{"questions": [`},
		{"not an object", `[1, 2, 3]`},
		{"missing questions array", `{"metadata": {}}`},
		{"questions not an array", `{"questions": {"id": "q1"}}`},
		{"question missing points", `{"questions": [{"id": "q1", "type": "true_false"}]}`},
		{"question with zero points", `{"questions": [{"id": "q1", "type": "true_false", "points": 0}]}`},
		{"question with bad payload", `{"questions": [{"id": "q1", "type": "true_false", "points": 2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			require.NoError(t, b.Add(tf("existing", "TS-Basics", question.DifficultyBeginner, 5)))

			_, err := b.ImportJSON([]byte(tt.payload))
			require.Error(t, err)

			var formatErr *FormatError
			assert.True(t, errors.As(err, &formatErr), "want *FormatError, got %T", err)

			// Failed import leaves the bank untouched.
			assert.Equal(t, 1, b.Len())
			_, ok := b.Get("existing")
			assert.True(t, ok)
		})
	}
}

func TestBank_ImportJSON_MergesByID(t *testing.T) {
	b := New()
	require.NoError(t, b.Add(tf("q1", "Old-Category", question.DifficultyBeginner, 1)))

	other := New()
	require.NoError(t, other.Add(tf("q1", "TS-Basics", question.DifficultyBeginner, 5)))
	require.NoError(t, other.Add(tf("q2", "TS-Basics", question.DifficultyBeginner, 3)))
	data, err := other.ExportJSON()
	require.NoError(t, err)

	n, err := b.ImportJSON(data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, b.Len())

	got, _ := b.Get("q1")
	assert.Equal(t, 5, got.Points, "import should overwrite by id")
	assert.Equal(t, []string{"TS-Basics"}, b.Categories())
}
