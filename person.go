package execscout

import "context"

// PersonRecord is an executive discovered on a company page.
// Records are values; nothing mutates one after the extractor builds it.
type PersonRecord struct {
	Name        string       `json:"name"`
	Title       TitleKeyword `json:"title"`
	CompanyName string       `json:"companyName"`
	Context     string       `json:"context"`    // text of the node the title was found in
	ProfileURL  string       `json:"profileUrl"` // empty when no profile was resolved
}

// Validate returns an error if the record contains invalid fields.
func (r *PersonRecord) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "person name required")
	}
	if !r.Title.Valid() {
		return Errorf(EINVALID, "unknown title keyword %q", r.Title)
	}
	return nil
}

// PeopleExtractor finds executives in a single page of markup.
type PeopleExtractor interface {
	// Extract returns one record per (name, title) found in markup.
	// Records are not deduplicated. Collaborator failures are recovered
	// internally; an error is returned only when the markup cannot be read.
	Extract(ctx context.Context, markup string, companyName string) ([]PersonRecord, error)
}

// Dedupe removes records whose Name was already seen, keeping the first
// occurrence and the relative order of first occurrences. The key is the
// exact name string, so "Jane Doe" and "jane doe" are distinct.
func Dedupe(records []PersonRecord) []PersonRecord {
	if records == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(records))
	unique := make([]PersonRecord, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}
