package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tieubaoca/docsense-be/types"
)

var (
	// Two capitalized words, the usual shape of a western personal name.
	personPattern = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)

	// Capitalized phrase ending in a corporate or institutional suffix.
	organizationPattern = regexp.MustCompile(`\b(?:[A-Z][A-Za-z&]+ )+(?:Inc|Corp|Corporation|Ltd|LLC|Co|Company|Group|Bank|University|Institute|Agency|Association|Foundation)\b\.?`)

	// Numeric dates like 01/02/2024 or 1-2-24.
	numericDatePattern = regexp.MustCompile(`\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b`)

	// Month-name dates like "March 5, 2024", "5 March 2024" or "March 2024".
	// A bare month name with no day or year does not count.
	monthNames       = `(?:January|February|March|April|May|June|July|August|September|October|November|December)`
	monthDatePattern = regexp.MustCompile(`\b(?:\d{1,2} ` + monthNames + `(?:,? \d{4})?|` + monthNames + ` \d{1,2}(?:,? \d{4})?|` + monthNames + ` \d{4})\b`)

	// Capitalized spans, used for gazetteer lookups.
	capitalizedSpanPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)?\b`)
)

// placeGazetteer is the fixed recognizer list for the Place category.
var placeGazetteer = map[string]bool{
	"Paris": true, "London": true, "Berlin": true, "Madrid": true,
	"Rome": true, "Vienna": true, "Amsterdam": true, "Brussels": true,
	"Lisbon": true, "Dublin": true, "Moscow": true, "Istanbul": true,
	"Tokyo": true, "Beijing": true, "Shanghai": true, "Seoul": true,
	"Singapore": true, "Bangkok": true, "Hanoi": true, "Jakarta": true,
	"Mumbai": true, "Delhi": true, "Dubai": true, "Cairo": true,
	"Lagos": true, "Nairobi": true, "Johannesburg": true, "Sydney": true,
	"Melbourne": true, "Auckland": true, "Toronto": true, "Vancouver": true,
	"Chicago": true, "Boston": true, "Seattle": true, "Houston": true,
	"Miami": true, "Atlanta": true, "Dallas": true, "Denver": true,
	"New York": true, "Los Angeles": true, "San Francisco": true,
	"Washington": true, "Mexico City": true, "Buenos Aires": true,
	"Sao Paulo": true, "Rio": true, "Lima": true, "Bogota": true,
	"France": true, "Germany": true, "Spain": true, "Italy": true,
	"England": true, "Scotland": true, "Ireland": true, "Portugal": true,
	"Russia": true, "China": true, "Japan": true, "Korea": true,
	"India": true, "Vietnam": true, "Thailand": true, "Indonesia": true,
	"Australia": true, "Canada": true, "Brazil": true, "Argentina": true,
	"Mexico": true, "Egypt": true, "Kenya": true, "Nigeria": true,
	"America": true, "Europe": true, "Asia": true, "Africa": true,
}

type match struct {
	index int
	value string
}

// EntityService recognizes Person, Organization, Place and Date spans
// with pattern and gazetteer matching. Deterministic for a fixed
// recognizer configuration.
type EntityService struct{}

func NewEntityService() *EntityService {
	return &EntityService{}
}

// Extract returns all four categories, each deduplicated and ordered by
// first occurrence. A category with no matches is an empty sequence,
// never an absent key.
func (s *EntityService) Extract(text string) map[string][]string {
	entities := make(map[string][]string, len(types.EntityCategories))
	for _, category := range types.EntityCategories {
		entities[category] = []string{}
	}

	organizations := collectMatches(text, organizationPattern)
	entities[types.CategoryOrganization] = orderValues(organizations)

	entities[types.CategoryDate] = orderValues(append(
		collectMatches(text, numericDatePattern),
		collectMatches(text, monthDatePattern)...))

	var persons, places []match
	for _, loc := range capitalizedSpanPattern.FindAllStringIndex(text, -1) {
		span := match{index: loc[0], value: text[loc[0]:loc[1]]}
		switch {
		case placeGazetteer[span.value]:
			places = append(places, span)
		case personPattern.MatchString(span.value) && !overlapsAny(span, organizations) && !namesPlace(span.value):
			persons = append(persons, span)
		}
	}
	entities[types.CategoryPerson] = orderValues(persons)
	entities[types.CategoryPlace] = orderValues(places)

	return entities
}

func collectMatches(text string, pattern *regexp.Regexp) []match {
	var matches []match
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		matches = append(matches, match{index: loc[0], value: strings.TrimSuffix(text[loc[0]:loc[1]], ".")})
	}
	return matches
}

// orderValues sorts by position of first occurrence and drops duplicates.
func orderValues(matches []match) []string {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].index < matches[j].index
	})
	seen := make(map[string]bool, len(matches))
	values := []string{}
	for _, m := range matches {
		if seen[m.value] {
			continue
		}
		seen[m.value] = true
		values = append(values, m.value)
	}
	return values
}

func overlapsAny(span match, others []match) bool {
	end := span.index + len(span.value)
	for _, other := range others {
		otherEnd := other.index + len(other.value)
		if span.index < otherEnd && other.index < end {
			return true
		}
	}
	return false
}

// namesPlace reports whether either word of a two-word span is a known
// place, so "New York" never doubles as a person.
func namesPlace(span string) bool {
	for _, word := range strings.Fields(span) {
		if placeGazetteer[word] {
			return true
		}
	}
	return false
}
