// Package execscout locates named executives (CEO, CTO, Founder, ...) on
// company websites and evaluates the results against a labeled dataset.
//
// Pages are scanned for title keywords, the nearest plausible person name is
// found by walking the HTML tree outward from the keyword, and each name is
// resolved to a professional profile URL.
//
// This package contains domain types, interfaces, and the core algorithms
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// prose/, sqlite/).
package execscout
