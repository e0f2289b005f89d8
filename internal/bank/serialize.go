package bank

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

// FormatError indicates a bank import payload that does not parse or does
// not conform to the export format. The bank is left unchanged when an
// import fails with this error.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid bank payload: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Metadata describes an exported question set.
type Metadata struct {
	TotalQuestions int       `json:"totalQuestions"`
	Categories     []string  `json:"categories"`
	Tags           []string  `json:"tags"`
	ExportDate     time.Time `json:"exportDate"`
}

// payload is the bank's JSON export format: a questions array plus a
// metadata block.
type payload struct {
	Questions []question.Question `json:"questions"`
	Metadata  Metadata            `json:"metadata"`
}

// payloadSchema is the structural contract an import payload must meet
// before any question-level validation runs. Question objects are checked
// in detail by question.Validate after decoding.
const payloadSchema = `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "type", "points"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"type": {"type": "string"},
					"points": {"type": "integer", "minimum": 1}
				}
			}
		},
		"metadata": {"type": "object"}
	}
}`

var compilePayloadSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(payloadSchema))
	if err != nil {
		return nil, fmt.Errorf("parse payload schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://bank-export.json", doc); err != nil {
		return nil, fmt.Errorf("add payload schema: %w", err)
	}
	return c.Compile("schema://bank-export.json")
})

// ExportJSON serializes the full question set plus a metadata block. The
// output round-trips through ImportJSON.
func (b *Bank) ExportJSON() ([]byte, error) {
	p := payload{
		Questions: b.Questions(),
		Metadata: Metadata{
			TotalQuestions: len(b.questions),
			Categories:     b.Categories(),
			Tags:           b.Tags(),
			ExportDate:     time.Now().UTC(),
		},
	}
	if p.Questions == nil {
		p.Questions = []question.Question{}
	}
	return json.MarshalIndent(p, "", "  ")
}

// ImportJSON merges the questions of an exported payload into the bank
// (last-write-wins by id, same as Add) and returns how many were
// imported. A malformed payload or an invalid question fails with a
// *FormatError before any bank state changes; there are no partial
// imports.
func (b *Bank) ImportJSON(data []byte) (int, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0, &FormatError{Err: fmt.Errorf("not valid JSON: %w", err)}
	}

	schema, err := compilePayloadSchema()
	if err != nil {
		return 0, fmt.Errorf("compile payload schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return 0, &FormatError{Err: err}
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return 0, &FormatError{Err: err}
	}
	for i := range p.Questions {
		if err := p.Questions[i].Validate(); err != nil {
			return 0, &FormatError{Err: err}
		}
	}

	for _, q := range p.Questions {
		if old, ok := b.questions[q.ID]; ok {
			b.unindex(old)
		}
		b.questions[q.ID] = q.Clone()
		b.index(q)
	}
	return len(p.Questions), nil
}
