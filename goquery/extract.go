package goquery

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/execscout"
)

// Ensure Extractor implements execscout.PeopleExtractor at compile time.
var _ execscout.PeopleExtractor = (*Extractor)(nil)

// Extractor finds executives in page markup.
//
// For every title keyword, every element whose own text (not its
// descendants' text) contains the keyword as a whole word is a title node.
// A name is searched near the node with FindNameNear, falling back to
// FindNameInText over the node's text.
// Each name found is resolved to a profile and emitted as a record.
type Extractor struct {
	finder      *execscout.NameFinder
	resolver    execscout.ProfileResolver
	maxDistance int
	logger      *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxDistance sets the FindNameNear radius.
// Defaults to execscout.DefaultMaxDistance.
func WithMaxDistance(d int) Option {
	return func(e *Extractor) {
		e.maxDistance = d
	}
}

// WithLogger sets the logger for per-keyword events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor. A nil resolver leaves ProfileURL empty.
func NewExtractor(finder *execscout.NameFinder, resolver execscout.ProfileResolver, opts ...Option) *Extractor {
	e := &Extractor{
		finder:      finder,
		resolver:    resolver,
		maxDistance: execscout.DefaultMaxDistance,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns one record per title node with a name, in keyword order
// and then document order. Script and style elements are ignored.
func (e *Extractor) Extract(ctx context.Context, markup string, companyName string) ([]execscout.PersonRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, execscout.Errorf(execscout.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style").Remove()

	var records []execscout.PersonRecord
	for _, keyword := range execscout.TitleKeywords {
		doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
			if ctx.Err() != nil {
				return
			}
			n := sel.Get(0)
			if !keyword.MatchString(directText(n)) {
				return
			}

			title := NewNode(n)
			text := title.Text()

			name, found := e.finder.FindNameNear(ctx, title, e.maxDistance)
			if !found {
				name, found = e.finder.FindNameInText(ctx, text, keyword)
			}
			if !found {
				e.logger.DebugContext(ctx, "no name found",
					"keyword", string(keyword),
					"tag", title.TagName(),
				)
				return
			}

			records = append(records, execscout.PersonRecord{
				Name:        name,
				Title:       keyword,
				CompanyName: companyName,
				Context:     strings.TrimSpace(text),
				ProfileURL:  e.resolveProfile(ctx, companyName, name),
			})
		})
	}

	return records, nil
}

// resolveProfile never fails; resolver errors are logged and yield "".
func (e *Extractor) resolveProfile(ctx context.Context, companyName, name string) string {
	if e.resolver == nil {
		return ""
	}
	url, err := e.resolver.ResolveProfile(ctx, companyName, name)
	if err != nil {
		e.logger.WarnContext(ctx, "profile resolution failed",
			"company", companyName,
			"name", name,
			"err", err,
		)
		return ""
	}
	return url
}
