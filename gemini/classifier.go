// Package gemini implements execscout.NameClassifier using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/execscout"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Classifier implements execscout.NameClassifier at compile time.
var _ execscout.NameClassifier = (*Classifier)(nil)

// Classifier asks Gemini whether a text is a person's name.
type Classifier struct {
	client *genai.Client
	model  string
}

// NewClassifier creates a new Classifier. An empty model uses DefaultModel.
func NewClassifier(client *genai.Client, model string) *Classifier {
	if model == "" {
		model = DefaultModel
	}
	return &Classifier{client: client, model: model}
}

// IsPersonName reports whether Gemini answers "yes" for text.
func (c *Classifier) IsPersonName(ctx context.Context, text string) (bool, error) {
	if c.client == nil {
		return false, execscout.Errorf(execscout.EUNAVAILABLE, "gemini client not configured")
	}
	if strings.TrimSpace(text) == "" {
		return false, nil
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return false, err
	}
	if result == nil {
		return false, execscout.Errorf(execscout.EINTERNAL, "gemini returned nil result")
	}

	return ParseAnswer(result.Text())
}

// BuildConfig returns the GenerateContentConfig for classification calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You classify short snippets of text taken from company websites. Reply with exactly one word: yes if the snippet is the name of a person, no otherwise.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt wraps text so markup-like input is not read as instructions.
func BuildUserPrompt(text string) string {
	return "<snippet>" + text + "</snippet>\nIs this snippet a person's name?"
}

// ParseAnswer converts a yes/no reply into a verdict.
// Any other reply is an EINTERNAL error so callers fall back.
func ParseAnswer(answer string) (bool, error) {
	a := strings.ToLower(strings.TrimSpace(answer))
	a = strings.TrimRight(a, ".!")
	switch a {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, execscout.Errorf(execscout.EINTERNAL, "unexpected gemini answer %q", answer)
}
