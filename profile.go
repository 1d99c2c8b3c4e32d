package execscout

import (
	"context"
	"strings"
)

// ProfileResolver finds a professional profile URL for a person.
type ProfileResolver interface {
	// ResolveProfile returns the profile URL for person at company.
	// Returns "" with a nil error when no acceptable profile exists.
	ResolveProfile(ctx context.Context, companyName, personName string) (string, error)
}

// ProfileQuery builds the search query used to resolve a profile.
func ProfileQuery(companyName, personName string) string {
	return companyName + " " + personName + " LinkedIn"
}

// IsProfileURL reports whether link points at a LinkedIn member profile.
func IsProfileURL(link string) bool {
	return strings.Contains(link, "linkedin.com/in/") || strings.Contains(link, "linkedin.com/pub/")
}

// NormalizeProfileURL canonicalizes a profile URL for comparison. The result
// is lower-case with any http(s):// prefix, every "www." and trailing "/"
// removed. Query strings and paths are kept. Steps repeat until nothing
// changes, so NormalizeProfileURL(NormalizeProfileURL(u)) == NormalizeProfileURL(u).
func NormalizeProfileURL(u string) string {
	u = strings.ToLower(u)
	for {
		next := strings.TrimPrefix(u, "https://")
		next = strings.TrimPrefix(next, "http://")
		next = strings.ReplaceAll(next, "www.", "")
		next = strings.TrimSuffix(next, "/")
		if next == u {
			return u
		}
		u = next
	}
}
