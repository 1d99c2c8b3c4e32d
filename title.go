package execscout

import "regexp"

// TitleKeyword is an executive role searched for on company pages.
type TitleKeyword string

// Title keywords recognized by the extractor.
const (
	TitleCEO                    TitleKeyword = "CEO"
	TitleCTO                    TitleKeyword = "CTO"
	TitleFounder                TitleKeyword = "Founder"
	TitleCoFounder              TitleKeyword = "Co-Founder"
	TitleChiefTechnologyOfficer TitleKeyword = "Chief Technology Officer"
	TitleChiefExecutiveOfficer  TitleKeyword = "Chief Executive Officer"
	TitleCoFounders             TitleKeyword = "Co-Founders"
)

// TitleKeywords lists every keyword in the order pages are searched.
var TitleKeywords = []TitleKeyword{
	TitleCEO,
	TitleCTO,
	TitleFounder,
	TitleCoFounder,
	TitleChiefTechnologyOfficer,
	TitleChiefExecutiveOfficer,
	TitleCoFounders,
}

var titlePatterns = compileTitlePatterns()

func compileTitlePatterns() map[TitleKeyword]*regexp.Regexp {
	m := make(map[TitleKeyword]*regexp.Regexp, len(TitleKeywords))
	for _, k := range TitleKeywords {
		m[k] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(string(k)) + `\b`)
	}
	return m
}

// Valid reports whether k is one of TitleKeywords.
func (k TitleKeyword) Valid() bool {
	_, ok := titlePatterns[k]
	return ok
}

// MatchString reports whether s contains k as a whole word, ignoring case.
// "Founder" matches "Co-Founder" but "Co-Founder" does not match "Co-Founders".
func (k TitleKeyword) MatchString(s string) bool {
	re, ok := titlePatterns[k]
	if !ok {
		re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(string(k)) + `\b`)
	}
	return re.MatchString(s)
}

// MatchesAnyTitle reports whether s contains any title keyword.
func MatchesAnyTitle(s string) bool {
	for _, k := range TitleKeywords {
		if k.MatchString(s) {
			return true
		}
	}
	return false
}
