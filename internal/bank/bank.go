// Package bank implements the in-memory question store: an id-indexed
// collection with category/tag indices, multi-criteria filtering, random
// sampling, aggregate statistics, and a JSON export/import pair.
package bank

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

// Bank owns a set of questions keyed by id plus derived category and tag
// indices. The indices stay consistent with the question set after every
// mutating call returns.
//
// A Bank is not safe for concurrent use; the engine is single-threaded by
// design and callers needing shared access must synchronize externally.
type Bank struct {
	questions  map[string]question.Question
	categories map[string]int // category -> referencing question count
	tags       map[string]int // tag -> referencing question count

	rng *rand.Rand
}

// New returns an empty bank.
func New() *Bank {
	return &Bank{
		questions:  make(map[string]question.Question),
		categories: make(map[string]int),
		tags:       make(map[string]int),
		rng:        rand.New(rand.NewPCG(rand.Uint64(), uint64(time.Now().UnixNano()))),
	}
}

// NewWithSource returns an empty bank whose sampling uses the given
// random source. Used by tests for deterministic sampling.
func NewWithSource(src rand.Source) *Bank {
	b := New()
	b.rng = rand.New(src)
	return b
}

// Add validates q and inserts it, overwriting any existing question with
// the same id (last-write-wins). Indices are updated in place.
func (b *Bank) Add(q question.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if old, ok := b.questions[q.ID]; ok {
		b.unindex(old)
	}
	b.questions[q.ID] = q.Clone()
	b.index(q)
	return nil
}

// Remove deletes the question with the given id. It reports whether the
// question was present. Indices are rebuilt from the remaining questions;
// removal is not a hot path, so the O(n) rebuild is fine.
func (b *Bank) Remove(id string) bool {
	if _, ok := b.questions[id]; !ok {
		return false
	}
	delete(b.questions, id)
	b.rebuildIndices()
	return true
}

// Get returns the question with the given id.
func (b *Bank) Get(id string) (question.Question, bool) {
	q, ok := b.questions[id]
	if !ok {
		return question.Question{}, false
	}
	return q.Clone(), true
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns copies of all questions, ordered by id.
func (b *Bank) Questions() []question.Question {
	ids := make([]string, 0, len(b.questions))
	for id := range b.questions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]question.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.questions[id].Clone())
	}
	return out
}

// Categories returns the sorted set of categories referenced by at least
// one question.
func (b *Bank) Categories() []string {
	return sortedKeys(b.categories)
}

// Tags returns the sorted set of tags referenced by at least one question.
func (b *Bank) Tags() []string {
	return sortedKeys(b.tags)
}

// RandomSample filters the bank (when f is non-nil) and returns
// min(count, matching) questions chosen by uniform shuffle. Fewer than
// count available is not an error; sampling returns what exists. The
// strict pool-size contract lives in the generator.
func (b *Bank) RandomSample(count int, f *Filter) []question.Question {
	if count <= 0 {
		return nil
	}
	var pool []question.Question
	if f != nil {
		pool = b.Filter(*f)
	} else {
		pool = b.Questions()
	}
	b.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if count < len(pool) {
		pool = pool[:count]
	}
	return pool
}

func (b *Bank) index(q question.Question) {
	if q.Category != "" {
		b.categories[q.Category]++
	}
	for _, t := range q.Tags {
		b.tags[t]++
	}
}

func (b *Bank) unindex(q question.Question) {
	if q.Category != "" {
		if b.categories[q.Category]--; b.categories[q.Category] <= 0 {
			delete(b.categories, q.Category)
		}
	}
	for _, t := range q.Tags {
		if b.tags[t]--; b.tags[t] <= 0 {
			delete(b.tags, t)
		}
	}
}

func (b *Bank) rebuildIndices() {
	b.categories = make(map[string]int)
	b.tags = make(map[string]int)
	for _, q := range b.questions {
		b.index(q)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
