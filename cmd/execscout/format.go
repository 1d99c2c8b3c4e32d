package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/execscout"
)

// ContextPreviewLen is the number of context characters shown per record.
const ContextPreviewLen = 100

const (
	ruleHeavy = "================================================================================"
	ruleLight = "--------------------------------------------------------------------------------"
)

// writeRecords prints one block per record.
func writeRecords(w io.Writer, records []execscout.PersonRecord) {
	for _, r := range records {
		fmt.Fprintf(w, "\nName: %s\n", r.Name)
		fmt.Fprintf(w, "Title: %s\n", r.Title)
		fmt.Fprintf(w, "LinkedIn: %s\n", profileOrNotFound(r.ProfileURL))
		fmt.Fprintf(w, "Context: %s\n", preview(r.Context, ContextPreviewLen))
		fmt.Fprintln(w, ruleLight)
	}
}

// writeEvaluation prints each company's matches followed by its statistics.
// When nothing matched, every scraped record is listed as unmatched.
func writeEvaluation(w io.Writer, eval *execscout.Evaluation, scraped []execscout.PersonRecord) {
	fmt.Fprintln(w, "\nComparing LinkedIn URLs...")
	fmt.Fprintln(w, ruleHeavy)

	for _, stats := range eval.Companies {
		for _, m := range eval.Matches {
			if m.Truth.Company != stats.Company {
				continue
			}
			fmt.Fprintf(w, "\nMatch found in company: %s\n", stats.Company)
			fmt.Fprintln(w, "\nScraped Data:")
			fmt.Fprintf(w, "Name: %s\n", m.Record.Name)
			fmt.Fprintf(w, "Title: %s\n", m.Record.Title)
			fmt.Fprintf(w, "LinkedIn: %s\n", m.Record.ProfileURL)
			fmt.Fprintf(w, "Context: %s\n", preview(m.Record.Context, ContextPreviewLen))
			fmt.Fprintln(w, "\nGround Truth Data:")
			fmt.Fprintf(w, "Name: %s\n", m.Truth.FullName)
			fmt.Fprintf(w, "Title: %s\n", m.Truth.Title)
			fmt.Fprintf(w, "LinkedIn: %s\n", m.Truth.LinkedInProfile)
			fmt.Fprintln(w, ruleLight)
		}

		fmt.Fprintf(w, "\nStatistics for %s:\n", stats.Company)
		fmt.Fprintf(w, "Matches found: %d\n", stats.Matches)
		fmt.Fprintf(w, "Total profiles in dataset: %d\n", stats.Total)
		fmt.Fprintf(w, "Match percentage: %.2f%%\n", stats.Percentage)
		fmt.Fprintln(w, ruleHeavy)
	}

	if eval.TotalMatches() > 0 {
		return
	}

	fmt.Fprintln(w, "\nNo matching LinkedIn profiles found in any of the processed companies.")
	fmt.Fprintln(w, "\nAll scraped profiles (unmatched):")
	for _, r := range scraped {
		fmt.Fprintf(w, "\nCompany: %s\n", r.CompanyName)
		fmt.Fprintf(w, "Name: %s\n", r.Name)
		fmt.Fprintf(w, "Title: %s\n", r.Title)
		fmt.Fprintf(w, "LinkedIn: %s\n", profileOrNotFound(r.ProfileURL))
	}
}

func profileOrNotFound(url string) string {
	if url == "" {
		return "Not found"
	}
	return url
}

// preview returns the first n characters of s, marking a cut with "...".
func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// errorMessage is execscout.ErrorMessage that also names interruptions.
func errorMessage(err error) string {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "interrupted"
	}
	return execscout.ErrorMessage(err)
}
