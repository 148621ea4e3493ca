package core

import "strings"

// stopwords are filler tokens dropped from search queries: articles,
// prepositions, and words people type when asking for records.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "by": true, "of": true,
	"to": true, "in": true, "on": true, "for": true,
	"album": true, "albums": true, "record": true, "records": true,
	"lp": true, "lps": true,
	"show": true, "me": true, "my": true, "all": true, "find": true,
}

// IsStopword reports whether word is dropped from search queries. Matching
// is case-insensitive.
func IsStopword(word string) bool {
	return stopwords[strings.ToLower(word)]
}

// ExtractKeywords lower-cases the query, splits it on whitespace and drops
// stopwords. "show me all Prince albums" yields ["prince"].
func ExtractKeywords(query string) []string {
	words := strings.Fields(strings.ToLower(query))
	keywords := words[:0]
	for _, w := range words {
		if !IsStopword(w) {
			keywords = append(keywords, w)
		}
	}
	return keywords
}

// Search keeps the records containing every keyword of query somewhere in
// their text. A query with no keywords left after stopword removal returns
// c itself.
func Search(c *Collection, query string) *Collection {
	keywords := ExtractKeywords(query)
	if len(keywords) == 0 {
		return c
	}
	return c.where(func(r Record) bool {
		return matchesAll(r.searchText(), keywords)
	})
}

func matchesAll(text string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

// Apply runs facet filtering, then search, for one interaction.
func Apply(c *Collection, p Params) *Collection {
	return Search(FilterByFacets(c, p.Selection), p.Query)
}
