package execscout

import (
	"context"
	"log/slog"
	"strings"
)

// Limits applied to text before it reaches a NameClassifier.
const (
	MaxClassifyWords = 10
	MaxClassifyChars = 100

	// FallbackMaxWords bounds the word-count heuristic used when the
	// classifier fails.
	FallbackMaxWords = 3
)

// DefaultMaxDistance is the number of parent hops FindNameNear searches.
const DefaultMaxDistance = 4

// NameClassifier decides whether a short text is a person's name.
type NameClassifier interface {
	// IsPersonName reports whether text contains a person entity.
	// Returns an error when the classifier is unavailable.
	IsPersonName(ctx context.Context, text string) (bool, error)
}

// NameFinder locates person names near title keywords.
// The Classifier is constructed once by the caller and shared read-only.
type NameFinder struct {
	Classifier NameClassifier

	// Logger receives classifier fallbacks and search outcomes.
	// Defaults to discarding output when nil.
	Logger *slog.Logger
}

// NewNameFinder returns a NameFinder backed by classifier.
func NewNameFinder(classifier NameClassifier, logger *slog.Logger) *NameFinder {
	return &NameFinder{Classifier: classifier, Logger: logger}
}

func (f *NameFinder) logger() *slog.Logger {
	if f.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return f.Logger
}

// IsLikelyName reports whether text looks like a person's name.
//
// Only texts of 1 to MaxClassifyWords words are submitted, truncated to the
// first MaxClassifyWords words and MaxClassifyChars characters. If the
// classifier fails, text is accepted iff it has 1 to FallbackMaxWords words,
// and the failure is logged as a "classifier fallback" event.
func (f *NameFinder) IsLikelyName(ctx context.Context, text string) bool {
	words := strings.Fields(text)
	if len(words) < 1 || len(words) > MaxClassifyWords {
		return false
	}

	limited := truncateRunes(strings.Join(words, " "), MaxClassifyChars)

	if f.Classifier == nil {
		return f.fallback(ctx, words, Errorf(EUNAVAILABLE, "no name classifier configured"))
	}
	ok, err := f.Classifier.IsPersonName(ctx, limited)
	if err != nil {
		return f.fallback(ctx, words, err)
	}
	return ok
}

func (f *NameFinder) fallback(ctx context.Context, words []string, err error) bool {
	accepted := len(words) >= 1 && len(words) <= FallbackMaxWords
	f.logger().WarnContext(ctx, "classifier fallback",
		"words", len(words),
		"accepted", accepted,
		"err", err,
	)
	return accepted
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
