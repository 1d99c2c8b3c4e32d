package execscout

import (
	"context"
	"strings"
)

// WindowSize is the number of words inspected on each side of a keyword.
const WindowSize = 3

// FindNameInText scans up to WindowSize words on either side of the first
// whitespace-delimited word equal to keyword (ignoring case).
//
// Words before the keyword are tried first, closest first, then words after
// it, closest first. Each single word goes through IsLikelyName and the first
// accepted word is returned. Multi-word keywords never equal a single word,
// so they only ever resolve through FindNameNear.
func (f *NameFinder) FindNameInText(ctx context.Context, text string, keyword TitleKeyword) (string, bool) {
	words := strings.Fields(text)

	idx := -1
	for i, w := range words {
		if strings.EqualFold(w, string(keyword)) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", false
	}

	for i := idx - 1; i >= 0 && i >= idx-WindowSize; i-- {
		if f.IsLikelyName(ctx, words[i]) {
			return words[i], true
		}
	}
	for i := idx + 1; i < len(words) && i <= idx+WindowSize; i++ {
		if f.IsLikelyName(ctx, words[i]) {
			return words[i], true
		}
	}
	return "", false
}
