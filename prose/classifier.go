// Package prose implements execscout.NameClassifier with the prose NLP
// library's named-entity recognizer.
package prose

import (
	"context"
	"fmt"

	"github.com/fwojciec/execscout"
	"github.com/jdkato/prose/v2"
)

// personLabel is the entity label prose assigns to people.
const personLabel = "PERSON"

// Ensure Classifier implements execscout.NameClassifier at compile time.
var _ execscout.NameClassifier = (*Classifier)(nil)

// Classifier reports whether text contains a PERSON entity.
//
// The tagger and entity model are loaded once by NewClassifier and reused
// read-only by every IsPersonName call.
type Classifier struct {
	model *prose.Model
}

// NewClassifier loads the embedded English model and returns a Classifier
// that uses it.
func NewClassifier() (*Classifier, error) {
	doc, err := prose.NewDocument("", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("prose: loading model: %w", err)
	}
	return &Classifier{model: doc.Model}, nil
}

// Model returns the model shared by all calls.
func (c *Classifier) Model() *prose.Model {
	return c.model
}

// IsPersonName tags text and reports whether any entity is a person.
func (c *Classifier) IsPersonName(ctx context.Context, text string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// Inputs are a single short phrase, so sentence segmentation is skipped.
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.UsingModel(c.model),
	)
	if err != nil {
		return false, fmt.Errorf("prose: tagging %q: %w", text, err)
	}

	for _, ent := range doc.Entities() {
		if ent.Label == personLabel {
			return true, nil
		}
	}
	return false, nil
}
