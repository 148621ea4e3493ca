package core

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"show me all Prince albums", []string{"prince"}},
		{"1983 electronic", []string{"1983", "electronic"}},
		{"  The   Lexicon OF love ", []string{"lexicon", "love"}},
		{"find my records", []string{}},
		{"", []string{}},
		{"12\" single", []string{"12\"", "single"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ExtractKeywords(tt.query)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearch_IdentityOnEmptyQuery(t *testing.T) {
	c := sampleCollection()
	for _, q := range []string{"", "   ", "\t\n", "the", "show me all my records"} {
		if got := Search(c, q); got != c {
			t.Errorf("Search(%q) should return the input collection unchanged", q)
		}
	}
}

func TestSearch_KeywordAND(t *testing.T) {
	c := sampleCollection()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "keywords across different columns",
			query: "1983 electronic",
			want:  []string{"Power, Corruption & Lies", "Nobody's Diary"},
		},
		{
			name:  "order of keywords does not matter",
			query: "electronic 1983",
			want:  []string{"Power, Corruption & Lies", "Nobody's Diary"},
		},
		{
			name:  "stopwords removed and case ignored",
			query: "show me all Prince albums",
			want:  []string{"1999", "Purple Rain"},
		},
		{
			name:  "every keyword required",
			query: "prince electronic",
			want:  nil,
		},
		{
			name:  "substring within a cell",
			query: "bens",
			want:  []string{"In Your Eyes"},
		},
		{
			name:  "punctuation kept in keywords",
			query: "12\" single",
			want:  []string{"Nobody's Diary"},
		},
		{
			name:  "label column searched too",
			query: "warner 1984",
			want:  []string{"Purple Rain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTitles(t, Search(c, tt.query), tt.want)
		})
	}
}

func TestSearch_DoesNotMatchNullPlaceholder(t *testing.T) {
	c := sampleCollection()
	for _, q := range []string{"nan", "none", "null"} {
		if got := Search(c, q); got.Len() != 0 {
			t.Errorf("Search(%q) matched %d rows through null cells", q, got.Len())
		}
	}
}

func TestSearch_DoesNotMutateSource(t *testing.T) {
	c := sampleCollection()
	before := titles(c)

	_ = Search(c, "prince")

	assertTitles(t, c, before)
}

func TestApply_FacetsThenSearch(t *testing.T) {
	c := sampleCollection()
	p := Params{
		Selection: Selection{Genre: "Pop"},
		Query:     "prince",
	}
	assertTitles(t, Apply(c, p), []string{"Purple Rain"})

	empty := Apply(c, Params{Selection: Selection{Artist: "NonexistentArtist"}})
	if empty.Len() != 0 {
		t.Errorf("Apply() with unknown artist = %d rows, want 0", empty.Len())
	}
	if !reflect.DeepEqual(empty.Columns(), c.Columns()) {
		t.Error("empty result should keep the column list")
	}
}

func TestIsStopword(t *testing.T) {
	for word, want := range map[string]bool{
		"the":    true,
		"The":    true,
		"ALBUMS": true,
		"lp":     true,
		"prince": false,
		"1983":   false,
		"":       false,
	} {
		if got := IsStopword(word); got != want {
			t.Errorf("IsStopword(%q) = %v, want %v", word, got, want)
		}
	}
}
