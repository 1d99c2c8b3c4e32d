package execscout_test

import (
	"testing"

	"github.com/fwojciec/execscout"
	"github.com/stretchr/testify/assert"
)

func TestTitleKeyword_MatchString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		keyword execscout.TitleKeyword
		text    string
		want    bool
	}{
		{execscout.TitleCEO, "CEO", true},
		{execscout.TitleCEO, "Jane Doe, ceo", true},
		{execscout.TitleCEO, "CEO & Co-Founder", true},
		{execscout.TitleCEO, "CEOs", false},
		{execscout.TitleCEO, "ProCEO", false},
		{execscout.TitleFounder, "Co-Founder", true},
		{execscout.TitleCoFounder, "co-founder and CTO", true},
		{execscout.TitleCoFounder, "Co-Founders", false},
		{execscout.TitleCoFounders, "Our Co-Founders", true},
		{execscout.TitleChiefExecutiveOfficer, "chief executive officer", true},
		{execscout.TitleChiefExecutiveOfficer, "Chief  Executive Officer", false},
		{execscout.TitleChiefTechnologyOfficer, "Chief Technology Officer (CTO)", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.keyword)+"/"+tt.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.keyword.MatchString(tt.text))
		})
	}
}

func TestTitleKeyword_Valid(t *testing.T) {
	t.Parallel()

	for _, k := range execscout.TitleKeywords {
		assert.True(t, k.Valid(), "keyword %q", k)
	}
	assert.False(t, execscout.TitleKeyword("VP").Valid())
	assert.False(t, execscout.TitleKeyword("ceo").Valid())
}

func TestMatchesAnyTitle(t *testing.T) {
	t.Parallel()

	assert.True(t, execscout.MatchesAnyTitle("Founder & CEO"))
	assert.True(t, execscout.MatchesAnyTitle("Chief Technology Officer"))
	assert.False(t, execscout.MatchesAnyTitle("VP of Engineering"))
	assert.False(t, execscout.MatchesAnyTitle(""))
}
