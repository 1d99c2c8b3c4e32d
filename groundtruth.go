package execscout

import "context"

// GroundTruthRow is one known executive from the labeled dataset.
type GroundTruthRow struct {
	Company         string `csv:"Company" json:"company"`
	FullName        string `csv:"Full Name" json:"fullName"`
	Title           string `csv:"Title" json:"title"`
	LinkedInProfile string `csv:"LinkedIn Profile" json:"linkedinProfile"`
	Domain          string `csv:"Domain" json:"domain"`
}

// GroundTruthLoader reads the labeled dataset.
type GroundTruthLoader interface {
	// LoadGroundTruth reads every row from the dataset at path.
	// Returns ENOTFOUND if the dataset does not exist and EINVALID if
	// required columns are missing.
	LoadGroundTruth(ctx context.Context, path string) ([]GroundTruthRow, error)
}

// FilterGroundTruth keeps rows whose Title contains a title keyword, using
// the same whole-word, case-insensitive match as extraction.
func FilterGroundTruth(rows []GroundTruthRow) []GroundTruthRow {
	var filtered []GroundTruthRow
	for _, row := range rows {
		if MatchesAnyTitle(row.Title) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
