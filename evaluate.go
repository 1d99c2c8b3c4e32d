package execscout

// CompanyStats summarizes matching for one company.
type CompanyStats struct {
	Company string `json:"company"`
	Matches int    `json:"matches"`
	// Total counts ground-truth rows, not unique people, so duplicate rows
	// for one person enlarge the denominator.
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Match pairs a scraped record with the ground-truth row it matched.
type Match struct {
	Record PersonRecord   `json:"record"`
	Truth  GroundTruthRow `json:"truth"`
}

// Evaluation is the outcome of comparing scraped records to ground truth.
type Evaluation struct {
	// Companies is ordered by first appearance in the scraped records.
	Companies []CompanyStats `json:"companies"`
	Matches   []Match        `json:"matches"`
}

// TotalMatches returns the number of matches across all companies.
func (e *Evaluation) TotalMatches() int {
	return len(e.Matches)
}

// Evaluate matches scraped records to ground truth by normalized profile URL.
//
// Rows are grouped by Company and records by CompanyName. For each company
// present in both, each record with a non-empty normalized URL that has not
// been claimed is compared to the company's rows in order; the first equal
// row is a match and the URL is claimed. The claimed set spans all
// companies, so a URL is credited at most once per evaluation. Companies
// with no scraped records, or no ground-truth rows, are not reported.
func Evaluate(scraped []PersonRecord, truth []GroundTruthRow) *Evaluation {
	groups := make(map[string][]GroundTruthRow)
	for _, row := range truth {
		groups[row.Company] = append(groups[row.Company], row)
	}

	var order []string
	byCompany := make(map[string][]PersonRecord)
	for _, r := range scraped {
		if _, ok := byCompany[r.CompanyName]; !ok {
			order = append(order, r.CompanyName)
		}
		byCompany[r.CompanyName] = append(byCompany[r.CompanyName], r)
	}

	eval := &Evaluation{}
	claimed := make(map[string]struct{})

	for _, company := range order {
		rows := groups[company]
		if len(rows) == 0 {
			continue
		}

		stats := CompanyStats{Company: company, Total: len(rows)}
		for _, rec := range byCompany[company] {
			url := NormalizeProfileURL(rec.ProfileURL)
			if url == "" {
				continue
			}
			if _, ok := claimed[url]; ok {
				continue
			}
			for _, row := range rows {
				if NormalizeProfileURL(row.LinkedInProfile) != url {
					continue
				}
				claimed[url] = struct{}{}
				stats.Matches++
				eval.Matches = append(eval.Matches, Match{Record: rec, Truth: row})
				break
			}
		}
		stats.Percentage = float64(stats.Matches) / float64(stats.Total) * 100
		eval.Companies = append(eval.Companies, stats)
	}

	return eval
}
