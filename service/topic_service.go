package service

import (
	"math"
	"sort"
)

// TopicCount is the fixed number of keywords reported per document.
const TopicCount = 10

// stopwords excluded from topic ranking.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "if": true, "then": true, "else": true, "of": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
	"from": true, "by": true, "with": true, "about": true, "into": true,
	"over": true, "under": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "am": true,
	"do": true, "does": true, "did": true, "have": true, "has": true,
	"had": true, "will": true, "would": true, "shall": true,
	"should": true, "can": true, "could": true, "may": true,
	"might": true, "must": true, "it": true, "its": true, "this": true,
	"that": true, "these": true, "those": true, "he": true, "she": true,
	"they": true, "we": true, "you": true, "i": true, "his": true,
	"her": true, "their": true, "our": true, "your": true, "my": true,
	"me": true, "him": true, "them": true, "us": true, "as": true,
	"so": true, "than": true, "too": true, "very": true, "not": true,
	"no": true, "nor": true, "only": true, "own": true, "same": true,
	"such": true, "both": true, "each": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "any": true, "all": true,
	"there": true, "here": true, "when": true, "where": true,
	"why": true, "how": true, "what": true, "which": true, "who": true,
	"whom": true, "also": true, "just": true, "now": true, "up": true,
	"down": true, "out": true, "off": true, "again": true, "once": true,
}

// TopicService ranks keywords with a term-frequency–inverse-document-
// frequency weight computed over the single input text as its own corpus.
// With only one document the IDF term degenerates to a function of the
// in-document frequency distribution; this is a deliberate
// single-document heuristic, not cross-corpus topic modeling.
type TopicService struct{}

func NewTopicService() *TopicService {
	return &TopicService{}
}

// Extract returns up to TopicCount terms ranked by descending weight,
// ties broken by first occurrence in the text.
func (s *TopicService) Extract(text string) []string {
	tokens := tokenize(text)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	total := 0
	for i, token := range tokens {
		if len(token) < 3 || stopwords[token] {
			continue
		}
		if _, ok := counts[token]; !ok {
			firstSeen[token] = i
		}
		counts[token]++
		total++
	}
	if total == 0 {
		return []string{}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}

	weight := func(term string) float64 {
		tf := float64(counts[term]) / float64(total)
		idf := math.Log(1 + float64(total)/float64(counts[term]))
		return tf * idf
	}

	sort.SliceStable(terms, func(i, j int) bool {
		wi, wj := weight(terms[i]), weight(terms[j])
		if wi != wj {
			return wi > wj
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})

	if len(terms) > TopicCount {
		terms = terms[:TopicCount]
	}
	return terms
}
